package mappers

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainProperty(model *models.PropertyModel) *domain.Property {
	return &domain.Property{
		ID: model.ID,
		SellerID: model.SellerID,
		AmbassadorID: model.AmbassadorID,
		Title: model.Title,
		Address: model.Address,
		Price: model.Price,
		SalePrice: model.SalePrice,
		Status: domain.PropertyStatus(model.Status),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMProperty(property *domain.Property) *models.PropertyModel {
	return &models.PropertyModel{
		ID: property.ID,
		SellerID: property.SellerID,
		AmbassadorID: property.AmbassadorID,
		Title: property.Title,
		Address: property.Address,
		Price: property.Price,
		SalePrice: property.SalePrice,
		Status: string(property.Status),
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}
