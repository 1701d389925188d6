package referraldto

type CreateReferralInput struct {
	PropertyID 			  string
	ReferringAmbassadorID string
	BuyerContact
	// Optional. Defaults to the advertised 50/50 split.
	Split *SplitInput
	// Optional. Derived from the property's fee tier when zero.
	PotentialCommission float64
	Notes string
}

type BuyerContact struct {
	Name  string
	Email string
	Phone string
}

type SplitInput struct {
	Referring float64
	Receiving float64
}

type GetReferralsInput struct {
	AmbassadorID *string
	PropertyID 	 *string
	Status 		 *string
	Page 		 int
	Limit 		 int
}
