package scoringdto

type LeadScoreInput struct {
	BudgetFits 		  bool
	FinancingSecured  bool
	DocumentsComplete bool
	DownPaymentRatio  float64
}
