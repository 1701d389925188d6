package mappers

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainChecklistItem(model *models.ChecklistItemModel) domain.ChecklistItem {
	return domain.ChecklistItem{
		ID: model.ID,
		PropertyID: model.PropertyID,
		Label: model.Label,
		Required: model.Required,
		Status: domain.ChecklistStatus(model.Status),
	}
}
