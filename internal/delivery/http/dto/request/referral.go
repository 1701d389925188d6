package request

type CreateReferral struct {
	PropertyID 			  string  `json:"property_id" binding:"required"`
	ReferringAmbassadorID string  `json:"referring_ambassador_id" binding:"required"`
	BuyerName 			  string  `json:"buyer_name" binding:"required"`
	BuyerEmail 			  string  `json:"buyer_email"`
	BuyerPhone 			  string  `json:"buyer_phone"`
	SplitReferring 		  *float64 `json:"split_referring"`
	SplitReceiving 		  *float64 `json:"split_receiving"`
	PotentialCommission   float64 `json:"potential_commission"`
	Notes 				  string  `json:"notes"`
}

type AcceptReferral struct {
	ReceivingAmbassadorID string `json:"receiving_ambassador_id" binding:"required"`
}

type RejectReferral struct {
	Reason string `json:"reason"`
}
