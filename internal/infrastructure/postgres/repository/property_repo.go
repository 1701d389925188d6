package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPropertyRepository struct {
	db *gorm.DB
}

func NewDefaultPropertyRepository(db *gorm.DB) *DefaultPropertyRepository {
	return &DefaultPropertyRepository{db: db}
}

func (r *DefaultPropertyRepository) GetPropertyByID(propertyID string) (*domain.Property, error) {
	var propertyModel models.PropertyModel
	if err := r.db.Model(&models.PropertyModel{}).Where("id = ?", propertyID).First(&propertyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, propertyID)
		}
		return nil, err
	}

	return mappers.ToDomainProperty(&propertyModel), nil
}

func (r *DefaultPropertyRepository) UpdatePropertyStatus(propertyID string, status domain.PropertyStatus) error {
	return r.db.Model(&models.PropertyModel{ID: propertyID}).Update("status", string(status)).Error
}

func (r *DefaultPropertyRepository) MarkPropertySold(propertyID string, salePrice float64) error {
	return r.db.Model(&models.PropertyModel{ID: propertyID}).Updates(map[string]interface{}{
		"status": string(domain.PropertySold),
		"sale_price": salePrice,
		"updated_at": time.Now(),
	}).Error
}
