package models

import (
	"time"
)

type PropertyModel struct {
	ID 			 string `gorm:"primaryKey"`
	SellerID 	 string
	AmbassadorID string
	Title 		 string
	Address 	 string
	Price 		 float64
	SalePrice 	 float64
	Status 		 string
	CreatedAt 	 time.Time
	UpdatedAt 	 time.Time
}
