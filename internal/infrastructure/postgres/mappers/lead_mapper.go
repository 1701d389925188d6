package mappers

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainLead(model *models.LeadModel) *domain.Lead {
	return &domain.Lead{
		ID: model.ID,
		PropertyID: model.PropertyID,
		AmbassadorID: model.AmbassadorID,
		BuyerContact: domain.BuyerContact{
			Name: model.BuyerName,
			Email: model.BuyerEmail,
			Phone: model.BuyerPhone,
		},
		BudgetFits: model.BudgetFits,
		FinancingSecured: model.FinancingSecured,
		DocumentsComplete: model.DocumentsComplete,
		DownPaymentRatio: model.DownPaymentRatio,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMLead(lead *domain.Lead) *models.LeadModel {
	return &models.LeadModel{
		ID: lead.ID,
		PropertyID: lead.PropertyID,
		AmbassadorID: lead.AmbassadorID,
		BuyerName: lead.BuyerContact.Name,
		BuyerEmail: lead.BuyerContact.Email,
		BuyerPhone: lead.BuyerContact.Phone,
		BudgetFits: lead.BudgetFits,
		FinancingSecured: lead.FinancingSecured,
		DocumentsComplete: lead.DocumentsComplete,
		DownPaymentRatio: lead.DownPaymentRatio,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
}
