package models

import (
	"time"
)

type ReferralModel struct {
	ID 					  string `gorm:"primaryKey"`
	Code 				  string `gorm:"uniqueIndex"`
	PropertyID 			  string
	ReferringAmbassadorID string
	ReceivingAmbassadorID string
	BuyerName 			  string
	BuyerEmail 			  string
	BuyerPhone 			  string
	Status 				  string
	SplitReferring 		  float64
	SplitReceiving 		  float64
	PotentialCommission   float64
	Notes 				  string
	Property 			  PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt 			  time.Time
	UpdatedAt 			  time.Time
	ExpiresAt 			  time.Time
	AcceptedAt 			  *time.Time
	ConvertedAt 		  *time.Time
}
