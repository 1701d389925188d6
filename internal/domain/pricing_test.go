package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeeSchedule_DefaultTiersAreValid(t *testing.T) {
	schedule, err := NewFeeSchedule(DefaultPriceTiers())
	require.NoError(t, err)
	require.NotNil(t, schedule)
	assert.Len(t, schedule.Tiers(), 4)
}

func TestNewFeeSchedule_RejectsBrokenTables(t *testing.T) {
	tests := []struct {
		name  string
		tiers []PriceTier
	}{
		{
			name:  "empty table",
			tiers: nil,
		},
		{
			name: "first tier does not start at zero",
			tiers: []PriceTier{
				{Name: "A", MinPrice: 100, MaxPrice: nil, Fee: 1000},
			},
		},
		{
			name: "gap between tiers",
			tiers: []PriceTier{
				{Name: "A", MinPrice: 0, MaxPrice: f64(100000), Fee: 1000},
				{Name: "B", MinPrice: 200000, MaxPrice: nil, Fee: 2000},
			},
		},
		{
			name: "overlapping tiers",
			tiers: []PriceTier{
				{Name: "A", MinPrice: 0, MaxPrice: f64(100000), Fee: 1000},
				{Name: "B", MinPrice: 50000, MaxPrice: nil, Fee: 2000},
			},
		},
		{
			name: "last tier bounded",
			tiers: []PriceTier{
				{Name: "A", MinPrice: 0, MaxPrice: f64(100000), Fee: 1000},
			},
		},
		{
			name: "unbounded tier in the middle",
			tiers: []PriceTier{
				{Name: "A", MinPrice: 0, MaxPrice: nil, Fee: 1000},
				{Name: "B", MinPrice: 100001, MaxPrice: nil, Fee: 2000},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFeeSchedule(tt.tiers)
			assert.Error(t, err)
		})
	}
}

func TestFeeFor_EveryNonNegativePriceMatchesExactlyOneTier(t *testing.T) {
	schedule, err := NewFeeSchedule(DefaultPriceTiers())
	require.NoError(t, err)

	prices := []float64{0, 1, 149999.99, 150000, 150001, 299999, 300000, 300001, 320000, 500000, 500001, 12500000}
	for _, price := range prices {
		tier, err := schedule.FeeFor(price)
		require.NoError(t, err, "price %v", price)
		require.NotNil(t, tier)
		assert.LessOrEqual(t, tier.MinPrice, price, "price %v below tier min", price)
		if tier.MaxPrice != nil {
			assert.LessOrEqual(t, price, *tier.MaxPrice, "price %v above tier max", price)
		}
	}
}

func TestFeeFor_KnownBands(t *testing.T) {
	schedule, err := NewFeeSchedule(DefaultPriceTiers())
	require.NoError(t, err)

	tests := []struct {
		price    float64
		wantName string
		wantFee  float64
	}{
		{price: 0, wantName: "Essential", wantFee: 3000},
		{price: 150000, wantName: "Essential", wantFee: 3000},
		{price: 150001, wantName: "Advantage", wantFee: 4500},
		{price: 320000, wantName: "Premium", wantFee: 6000},
		{price: 500000, wantName: "Premium", wantFee: 6000},
		{price: 2000000, wantName: "Signature", wantFee: 9500},
	}
	for _, tt := range tests {
		tier, err := schedule.FeeFor(tt.price)
		require.NoError(t, err)
		assert.Equal(t, tt.wantName, tier.Name, "price %v", tt.price)
		assert.Equal(t, tt.wantFee, tier.Fee, "price %v", tt.price)
	}
}

func TestFeeFor_InvalidPrice(t *testing.T) {
	schedule, err := NewFeeSchedule(DefaultPriceTiers())
	require.NoError(t, err)

	_, err = schedule.FeeFor(-1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = schedule.FeeFor(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestRoundToCents(t *testing.T) {
	assert.Equal(t, 0.13, RoundToCents(0.125))
	assert.Equal(t, 0.38, RoundToCents(0.375))
	assert.Equal(t, 10.55, RoundToCents(10.554))
	assert.Equal(t, 0.0, RoundToCents(0))
	assert.Equal(t, 300.0, RoundToCents(300))
}
