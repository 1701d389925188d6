package kafka

type ReferralEvent struct {
	ReferralID 			  string  `json:"referral_id"`
	ReferralCode 		  string  `json:"referral_code"`
	PropertyID 			  string  `json:"property_id"`
	ReferringAmbassadorID string  `json:"referring_ambassador_id"`
	ReceivingAmbassadorID string  `json:"receiving_ambassador_id,omitempty"`
	Status 				  string  `json:"status"`
	PotentialCommission   float64 `json:"potential_commission"`
	Notes 				  string  `json:"notes,omitempty"`
}

type ListingEvent struct {
	PropertyID 	 string  `json:"property_id"`
	AmbassadorID string  `json:"ambassador_id"`
	Status 		 string  `json:"status"`
	Score 		 int     `json:"score"`
	SalePrice 	 float64 `json:"sale_price,omitempty"`
}
