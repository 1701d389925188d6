package domain

import (
	"fmt"
	"math"
)

type PriceTier struct {
	Name 	 string
	MinPrice float64
	MaxPrice *float64
	Fee 	 float64
}

// Unbounded reports whether the tier covers every price above MinPrice.
func (t *PriceTier) Unbounded() bool {
	return t.MaxPrice == nil
}

type SavingsResult struct {
	TierName 		   string
	Fee 			   float64
	TraditionalFee 	   float64
	Savings 		   float64
	SavingsPercentage  float64
}

// FeeSchedule is an immutable, ordered table of price bands. It is built once
// from config at startup and threaded into every pricing call.
type FeeSchedule struct {
	tiers []PriceTier
}

func NewFeeSchedule(tiers []PriceTier) (*FeeSchedule, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("fee schedule requires at least one tier")
	}
	if tiers[0].MinPrice != 0 {
		return nil, fmt.Errorf("first tier %q must start at 0, got %.2f", tiers[0].Name, tiers[0].MinPrice)
	}
	for i, tier := range tiers {
		last := i == len(tiers)-1
		if tier.Unbounded() && !last {
			return nil, fmt.Errorf("tier %q is unbounded but not last", tier.Name)
		}
		if !last {
			if tier.MaxPrice == nil {
				continue
			}
			if *tier.MaxPrice < tier.MinPrice {
				return nil, fmt.Errorf("tier %q has max below min", tier.Name)
			}
			next := tiers[i+1]
			if next.MinPrice != *tier.MaxPrice+1 {
				return nil, fmt.Errorf("tiers %q and %q are not contiguous", tier.Name, next.Name)
			}
		}
	}
	if !tiers[len(tiers)-1].Unbounded() {
		return nil, fmt.Errorf("last tier %q must be unbounded", tiers[len(tiers)-1].Name)
	}
	copied := make([]PriceTier, len(tiers))
	copy(copied, tiers)
	return &FeeSchedule{tiers: copied}, nil
}

// FeeFor returns the single tier covering the given price. The last tier is
// open-ended, so every non-negative price matches exactly one tier.
func (s *FeeSchedule) FeeFor(price float64) (*PriceTier, error) {
	if price < 0 || math.IsNaN(price) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	for i := range s.tiers {
		tier := &s.tiers[i]
		if tier.Unbounded() || price <= *tier.MaxPrice {
			return tier, nil
		}
	}
	// unreachable: the last tier is validated to be unbounded
	return nil, fmt.Errorf("%w: no tier covers price %v", ErrInvalidPrice, price)
}

func (s *FeeSchedule) Tiers() []PriceTier {
	copied := make([]PriceTier, len(s.tiers))
	copy(copied, s.tiers)
	return copied
}

// DefaultPriceTiers is the flat-fee table advertised on the platform. Used
// when the config file does not override the schedule.
func DefaultPriceTiers() []PriceTier {
	return []PriceTier{
		{Name: "Essential", MinPrice: 0, MaxPrice: f64(150000), Fee: 3000},
		{Name: "Advantage", MinPrice: 150001, MaxPrice: f64(300000), Fee: 4500},
		{Name: "Premium", MinPrice: 300001, MaxPrice: f64(500000), Fee: 6000},
		{Name: "Signature", MinPrice: 500001, MaxPrice: nil, Fee: 9500},
	}
}

func f64(v float64) *float64 {
	return &v
}

// RoundToCents applies the platform-wide money rounding rule: half away from
// zero, two decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
