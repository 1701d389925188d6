package response

import (
	"time"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
)

type Referral struct {
	ID 					  string 	 `json:"id"`
	Code 				  string 	 `json:"code"`
	PropertyID 			  string 	 `json:"property_id"`
	ReferringAmbassadorID string 	 `json:"referring_ambassador_id"`
	ReceivingAmbassadorID string 	 `json:"receiving_ambassador_id,omitempty"`
	BuyerName 			  string 	 `json:"buyer_name"`
	BuyerEmail 			  string 	 `json:"buyer_email,omitempty"`
	BuyerPhone 			  string 	 `json:"buyer_phone,omitempty"`
	Status 				  string 	 `json:"status"`
	SplitReferring 		  float64 	 `json:"split_referring"`
	SplitReceiving 		  float64 	 `json:"split_receiving"`
	PotentialCommission   float64 	 `json:"potential_commission"`
	Notes 				  string 	 `json:"notes,omitempty"`
	CreatedAt 			  time.Time  `json:"created_at"`
	ExpiresAt 			  time.Time  `json:"expires_at"`
	AcceptedAt 			  *time.Time `json:"accepted_at,omitempty"`
	ConvertedAt 		  *time.Time `json:"converted_at,omitempty"`
}

func FromDomainReferral(referral *domain.Referral) Referral {
	return Referral{
		ID: referral.ID,
		Code: referral.Code,
		PropertyID: referral.PropertyID,
		ReferringAmbassadorID: referral.ReferringAmbassadorID,
		ReceivingAmbassadorID: referral.ReceivingAmbassadorID,
		BuyerName: referral.BuyerContact.Name,
		BuyerEmail: referral.BuyerContact.Email,
		BuyerPhone: referral.BuyerContact.Phone,
		Status: string(referral.Status),
		SplitReferring: referral.Split.Referring,
		SplitReceiving: referral.Split.Receiving,
		PotentialCommission: referral.PotentialCommission,
		Notes: referral.Notes,
		CreatedAt: referral.CreatedAt,
		ExpiresAt: referral.ExpiresAt,
		AcceptedAt: referral.AcceptedAt,
		ConvertedAt: referral.ConvertedAt,
	}
}

type CommissionAmounts struct {
	ReferringAmount float64 `json:"referring_amount"`
	ReceivingAmount float64 `json:"receiving_amount"`
}

type ReferralList struct {
	Referrals []Referral `json:"referrals"`
	Total 	  int64 	 `json:"total"`
	Page 	  int 		 `json:"page"`
	Limit 	  int 		 `json:"limit"`
}
