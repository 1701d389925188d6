package usecase

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
)

// GetCommissionAmounts returns the payable split amounts for a converted
// referral. Until conversion the amounts are estimates, so the call reports
// ErrAmountsNotFinal instead of a number someone might pay out.
func (uc *DefaultReferralUsecase) GetCommissionAmounts(referralID string) (*domain.CommissionAmounts, error) {
	referral, err := uc.referralRepo.GetReferralByID(referralID)
	if err != nil {
		return nil, err
	}
	return referral.CommissionAmounts()
}
