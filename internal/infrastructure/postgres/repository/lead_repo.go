package repository

import (
	"errors"
	"fmt"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultLeadRepository struct {
	db *gorm.DB
}

func NewDefaultLeadRepository(db *gorm.DB) *DefaultLeadRepository {
	return &DefaultLeadRepository{db: db}
}

func (r *DefaultLeadRepository) CreateLead(lead *domain.Lead) error {
	leadModel := mappers.ToGORMLead(lead)
	if err := r.db.Create(&leadModel).Error; err != nil {
		return err
	}
	lead.ID = leadModel.ID
	return nil
}

func (r *DefaultLeadRepository) UpdateLead(lead *domain.Lead) error {
	leadModel := mappers.ToGORMLead(lead)
	return r.db.Model(&models.LeadModel{ID: lead.ID}).Updates(map[string]interface{}{
		"budget_fits": leadModel.BudgetFits,
		"financing_secured": leadModel.FinancingSecured,
		"documents_complete": leadModel.DocumentsComplete,
		"down_payment_ratio": leadModel.DownPaymentRatio,
	}).Error
}

func (r *DefaultLeadRepository) GetLeadByID(leadID string) (*domain.Lead, error) {
	var leadModel models.LeadModel
	if err := r.db.Model(&models.LeadModel{}).Where("id = ?", leadID).First(&leadModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLeadNotFound, leadID)
		}
		return nil, err
	}

	return mappers.ToDomainLead(&leadModel), nil
}

func (r *DefaultLeadRepository) GetLeadsByProperty(propertyID string) ([]*domain.Lead, error) {
	var leadModels []models.LeadModel
	if err := r.db.Model(&models.LeadModel{}).
		Where("property_id = ?", propertyID).
		Find(&leadModels).Error; err != nil {
			return nil, err
		}
	leads := make([]*domain.Lead, len(leadModels))
	for i, leadModel := range leadModels {
		leads[i] = mappers.ToDomainLead(&leadModel)
	}

	return leads, nil
}
