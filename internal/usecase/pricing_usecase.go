package usecase

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
)

type PricingUsecase interface {
	FeeFor(price float64) (*domain.PriceTier, error)
	ComputeSavings(price float64) (*domain.SavingsResult, error)
	PotentialCommission(price float64) (float64, error)
	Tiers() []domain.PriceTier
}

type DefaultPricingUsecase struct {
	schedule 		*domain.FeeSchedule
	traditionalRate float64
	ambassadorRate 	float64
}

func NewDefaultPricingUsecase(schedule *domain.FeeSchedule, traditionalRate, ambassadorRate float64) *DefaultPricingUsecase {
	return &DefaultPricingUsecase{
		schedule: schedule,
		traditionalRate: traditionalRate,
		ambassadorRate: ambassadorRate,
	}
}

func (uc *DefaultPricingUsecase) FeeFor(price float64) (*domain.PriceTier, error) {
	return uc.schedule.FeeFor(price)
}

// ComputeSavings compares the flat fee against what a traditional agent would
// charge at the reference rate. Savings may come out negative for low-priced
// properties; that is a displayable result, not an error. No rounding here,
// presentation rounds for display only.
func (uc *DefaultPricingUsecase) ComputeSavings(price float64) (*domain.SavingsResult, error) {
	tier, err := uc.schedule.FeeFor(price)
	if err != nil {
		return nil, err
	}
	traditionalFee := price * uc.traditionalRate / 100
	savings := traditionalFee - tier.Fee
	var savingsPercentage float64
	if traditionalFee != 0 {
		savingsPercentage = savings / traditionalFee * 100
	}
	return &domain.SavingsResult{
		TierName: tier.Name,
		Fee: tier.Fee,
		TraditionalFee: traditionalFee,
		Savings: savings,
		SavingsPercentage: savingsPercentage,
	}, nil
}

// PotentialCommission derives the ambassador commission pool for a property
// price: the ambassador share of the flat fee, rounded to cents.
func (uc *DefaultPricingUsecase) PotentialCommission(price float64) (float64, error) {
	tier, err := uc.schedule.FeeFor(price)
	if err != nil {
		return 0, err
	}
	return domain.RoundToCents(tier.Fee * uc.ambassadorRate / 100), nil
}

func (uc *DefaultPricingUsecase) Tiers() []domain.PriceTier {
	return uc.schedule.Tiers()
}
