package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingReferral() *Referral {
	return &Referral{
		ID: "ref-1",
		Code: "AB12CD34EF",
		PropertyID: "prop-1",
		ReferringAmbassadorID: "amb-referring",
		Status: ReferralPending,
		Split: DefaultCommissionSplit(),
		PotentialCommission: 600,
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestCommissionSplit_Validate(t *testing.T) {
	tests := []struct {
		name    string
		split   CommissionSplit
		wantErr bool
	}{
		{name: "default 50/50", split: DefaultCommissionSplit(), wantErr: false},
		{name: "60/40", split: CommissionSplit{Referring: 60, Receiving: 40}, wantErr: false},
		{name: "fractional shares summing to 100", split: CommissionSplit{Referring: 33.5, Receiving: 66.5}, wantErr: false},
		{name: "sums above 100", split: CommissionSplit{Referring: 60, Receiving: 50}, wantErr: true},
		{name: "sums below 100", split: CommissionSplit{Referring: 40, Receiving: 40}, wantErr: true},
		{name: "negative share", split: CommissionSplit{Referring: -10, Receiving: 110}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.split.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCommissionSplit)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReferral_AcceptFromPending(t *testing.T) {
	referral := pendingReferral()
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	err := referral.Accept("amb-receiving", now)
	require.NoError(t, err)
	assert.Equal(t, ReferralAccepted, referral.Status)
	assert.Equal(t, "amb-receiving", referral.ReceivingAmbassadorID)
	require.NotNil(t, referral.AcceptedAt)
	assert.Equal(t, now, *referral.AcceptedAt)
}

func TestReferral_RejectFromPending(t *testing.T) {
	referral := pendingReferral()

	err := referral.Reject("buyer already working with us")
	require.NoError(t, err)
	assert.Equal(t, ReferralRejected, referral.Status)
	assert.Equal(t, "buyer already working with us", referral.Notes)
	assert.True(t, referral.Terminal())
}

func TestReferral_RejectTwiceFailsSecondTime(t *testing.T) {
	referral := pendingReferral()

	require.NoError(t, referral.Reject("first"))
	err := referral.Reject("second")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	// first rejection untouched
	assert.Equal(t, "first", referral.Notes)
}

func TestReferral_ConvertRequiresAccepted(t *testing.T) {
	now := time.Now()

	referral := pendingReferral()
	err := referral.Convert(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, ReferralPending, referral.Status)

	require.NoError(t, referral.Accept("amb-receiving", now))
	require.NoError(t, referral.Convert(now))
	assert.Equal(t, ReferralConverted, referral.Status)
	require.NotNil(t, referral.ConvertedAt)

	// terminal: nothing moves out of CONVERTED
	assert.ErrorIs(t, referral.Accept("amb-other", now), ErrInvalidTransition)
	assert.ErrorIs(t, referral.Reject("late"), ErrInvalidTransition)
	assert.ErrorIs(t, referral.Convert(now), ErrInvalidTransition)
}

func TestReferral_LifecycleNeverSkipsAccepted(t *testing.T) {
	now := time.Now()

	rejected := pendingReferral()
	require.NoError(t, rejected.Reject("no"))
	assert.ErrorIs(t, rejected.Convert(now), ErrInvalidTransition)
	assert.ErrorIs(t, rejected.Accept("amb", now), ErrInvalidTransition)
}

func TestReferral_CommissionAmounts(t *testing.T) {
	now := time.Now()
	referral := pendingReferral()

	_, err := referral.CommissionAmounts()
	assert.ErrorIs(t, err, ErrAmountsNotFinal)

	require.NoError(t, referral.Accept("amb-receiving", now))
	_, err = referral.CommissionAmounts()
	assert.ErrorIs(t, err, ErrAmountsNotFinal)

	require.NoError(t, referral.Convert(now))
	amounts, err := referral.CommissionAmounts()
	require.NoError(t, err)
	assert.Equal(t, 300.0, amounts.ReferringAmount)
	assert.Equal(t, 300.0, amounts.ReceivingAmount)
}

func TestReferral_CommissionAmountsRoundedToCents(t *testing.T) {
	now := time.Now()
	referral := pendingReferral()
	referral.Split = CommissionSplit{Referring: 33.5, Receiving: 66.5}
	referral.PotentialCommission = 1000

	require.NoError(t, referral.Accept("amb-receiving", now))
	require.NoError(t, referral.Convert(now))

	amounts, err := referral.CommissionAmounts()
	require.NoError(t, err)
	assert.Equal(t, 335.0, amounts.ReferringAmount)
	assert.Equal(t, 665.0, amounts.ReceivingAmount)
}
