package request

type CompleteSale struct {
	SalePrice float64 `json:"sale_price" binding:"required"`
}

type ScoreLead struct {
	BudgetFits 		  bool    `json:"budget_fits"`
	FinancingSecured  bool    `json:"financing_secured"`
	DocumentsComplete bool    `json:"documents_complete"`
	DownPaymentRatio  float64 `json:"down_payment_ratio"`
}
