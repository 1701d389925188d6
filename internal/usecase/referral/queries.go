package usecase

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	referraldto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/referral"
)

func (uc *DefaultReferralUsecase) GetReferralByID(referralID string) (*domain.Referral, error) {
	return uc.referralRepo.GetReferralByID(referralID)
}

func (uc *DefaultReferralUsecase) GetReferrals(input *referraldto.GetReferralsInput) (*referraldto.GetReferralsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	referrals, total, err := uc.referralRepo.GetReferrals(domain.GetReferralsFilter{
		AmbassadorID: input.AmbassadorID,
		PropertyID: input.PropertyID,
		Status: input.Status,
		Page: page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}
	return &referraldto.GetReferralsOutput{
		Referrals: referrals,
		Total: total,
		Page: page,
		Limit: limit,
	}, nil
}
