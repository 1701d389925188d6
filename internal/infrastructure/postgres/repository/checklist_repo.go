package repository

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultChecklistRepository struct {
	db *gorm.DB
}

func NewDefaultChecklistRepository(db *gorm.DB) *DefaultChecklistRepository {
	return &DefaultChecklistRepository{db: db}
}

func (r *DefaultChecklistRepository) GetChecklistByProperty(propertyID string) ([]domain.ChecklistItem, error) {
	var itemModels []models.ChecklistItemModel
	if err := r.db.Model(&models.ChecklistItemModel{}).
		Where("property_id = ?", propertyID).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
			return nil, err
		}
	items := make([]domain.ChecklistItem, len(itemModels))
	for i, itemModel := range itemModels {
		items[i] = mappers.ToDomainChecklistItem(&itemModel)
	}

	return items, nil
}

func (r *DefaultChecklistRepository) UpdateChecklistItemStatus(itemID string, status domain.ChecklistStatus) error {
	return r.db.Model(&models.ChecklistItemModel{ID: itemID}).Update("status", string(status)).Error
}
