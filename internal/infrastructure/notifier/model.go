package notifier

type ReferralCallbackPayload struct {
	ReferralID 			  string  `json:"referral_id"`
	PropertyID 			  string  `json:"property_id"`
	Status 				  string  `json:"status"`
	ReferringAmbassadorID string  `json:"referring_ambassador_id"`
	ReceivingAmbassadorID string  `json:"receiving_ambassador_id,omitempty"`
	PotentialCommission   float64 `json:"potential_commission"`
	Notes 				  string  `json:"notes,omitempty"`
}
