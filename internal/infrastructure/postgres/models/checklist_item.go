package models

import (
	"time"
)

type ChecklistItemModel struct {
	ID 		   string `gorm:"primaryKey"`
	PropertyID string `gorm:"index"`
	Label 	   string
	Required   bool
	Status 	   string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
