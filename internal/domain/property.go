package domain

import "time"

type PropertyStatus string

const (
	PropertyDraft 		PropertyStatus = "DRAFT"
	PropertyUnderReview PropertyStatus = "UNDER_REVIEW"
	PropertyApproved 	PropertyStatus = "APPROVED"
	PropertySold 		PropertyStatus = "SOLD"
)

type Property struct {
	ID 			 string
	SellerID 	 string
	AmbassadorID string
	Title 		 string
	Address 	 string
	Price 		 float64
	SalePrice 	 float64
	Status 		 PropertyStatus
	CreatedAt 	 time.Time
	UpdatedAt 	 time.Time
}

type ChecklistStatus string

const (
	ChecklistValid 	 ChecklistStatus = "VALID"
	ChecklistInvalid ChecklistStatus = "INVALID"
	ChecklistPending ChecklistStatus = "PENDING"
)

type ChecklistItem struct {
	ID 		   string
	PropertyID string
	Label 	   string
	Required   bool
	Status 	   ChecklistStatus
}

type ValidationResult struct {
	Score 		   int
	ValidCount 	   int
	TotalCount 	   int
	BlockingIssues []ChecklistItem
}

// Approvable is the compound approval rule: a numerically high score never
// outweighs a required item that is not valid.
func (v *ValidationResult) Approvable() bool {
	return len(v.BlockingIssues) == 0
}

type PropertyRepository interface {
	GetPropertyByID(propertyID string) (*Property, error)
	UpdatePropertyStatus(propertyID string, status PropertyStatus) error
	MarkPropertySold(propertyID string, salePrice float64) error
}

type ChecklistRepository interface {
	GetChecklistByProperty(propertyID string) ([]ChecklistItem, error)
	UpdateChecklistItemStatus(itemID string, status ChecklistStatus) error
}
