package mappers

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID: model.ID,
		Code: model.Code,
		PropertyID: model.PropertyID,
		ReferringAmbassadorID: model.ReferringAmbassadorID,
		ReceivingAmbassadorID: model.ReceivingAmbassadorID,
		BuyerContact: domain.BuyerContact{
			Name: model.BuyerName,
			Email: model.BuyerEmail,
			Phone: model.BuyerPhone,
		},
		Status: domain.ReferralStatus(model.Status),
		Split: domain.CommissionSplit{
			Referring: model.SplitReferring,
			Receiving: model.SplitReceiving,
		},
		PotentialCommission: model.PotentialCommission,
		Notes: model.Notes,
		CreatedAt: model.CreatedAt,
		ExpiresAt: model.ExpiresAt,
		AcceptedAt: model.AcceptedAt,
		ConvertedAt: model.ConvertedAt,
	}
}

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID: referral.ID,
		Code: referral.Code,
		PropertyID: referral.PropertyID,
		ReferringAmbassadorID: referral.ReferringAmbassadorID,
		ReceivingAmbassadorID: referral.ReceivingAmbassadorID,
		BuyerName: referral.BuyerContact.Name,
		BuyerEmail: referral.BuyerContact.Email,
		BuyerPhone: referral.BuyerContact.Phone,
		Status: string(referral.Status),
		SplitReferring: referral.Split.Referring,
		SplitReceiving: referral.Split.Receiving,
		PotentialCommission: referral.PotentialCommission,
		Notes: referral.Notes,
		CreatedAt: referral.CreatedAt,
		ExpiresAt: referral.ExpiresAt,
		AcceptedAt: referral.AcceptedAt,
		ConvertedAt: referral.ConvertedAt,
	}
}
