package models

import (
	"time"
)

type LeadModel struct {
	ID 				  string `gorm:"primaryKey"`
	PropertyID 		  string
	AmbassadorID 	  string
	BuyerName 		  string
	BuyerEmail 		  string
	BuyerPhone 		  string
	BudgetFits 		  bool
	FinancingSecured  bool
	DocumentsComplete bool
	DownPaymentRatio  float64
	Property 		  PropertyModel `gorm:"foreignKey:PropertyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt 		  time.Time
	UpdatedAt 		  time.Time
}
