package domain

import (
	"fmt"
	"math"
	"time"
)

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "PENDING"
	ReferralAccepted  ReferralStatus = "ACCEPTED"
	ReferralRejected  ReferralStatus = "REJECTED"
	ReferralConverted ReferralStatus = "CONVERTED"
)

type CommissionSplit struct {
	Referring float64
	Receiving float64
}

func DefaultCommissionSplit() CommissionSplit {
	return CommissionSplit{Referring: 50, Receiving: 50}
}

func (s CommissionSplit) Validate() error {
	if s.Referring < 0 || s.Receiving < 0 {
		return fmt.Errorf("%w: shares must be non-negative", ErrInvalidCommissionSplit)
	}
	if math.Abs(s.Referring+s.Receiving-100) > 1e-9 {
		return fmt.Errorf("%w: got %.2f + %.2f", ErrInvalidCommissionSplit, s.Referring, s.Receiving)
	}
	return nil
}

type BuyerContact struct {
	Name  string
	Email string
	Phone string
}

type CommissionAmounts struct {
	ReferringAmount float64
	ReceivingAmount float64
}

type Referral struct {
	ID 					   string
	Code 				   string
	PropertyID 			   string
	ReferringAmbassadorID  string
	ReceivingAmbassadorID  string
	BuyerContact 		   BuyerContact
	Status 				   ReferralStatus
	Split 				   CommissionSplit
	PotentialCommission    float64
	Notes 				   string
	CreatedAt 			   time.Time
	ExpiresAt 			   time.Time
	AcceptedAt 			   *time.Time
	ConvertedAt 		   *time.Time
}

// Accept, Reject and Convert are the only way a referral changes status.
// Handlers and repositories never touch the Status field directly.

func (r *Referral) Accept(receivingAmbassadorID string, now time.Time) error {
	if r.Status != ReferralPending {
		return fmt.Errorf("%w: cannot accept a %s referral", ErrInvalidTransition, r.Status)
	}
	r.Status = ReferralAccepted
	r.ReceivingAmbassadorID = receivingAmbassadorID
	r.AcceptedAt = &now
	return nil
}

func (r *Referral) Reject(reason string) error {
	if r.Status != ReferralPending {
		return fmt.Errorf("%w: cannot reject a %s referral", ErrInvalidTransition, r.Status)
	}
	r.Status = ReferralRejected
	r.Notes = reason
	return nil
}

func (r *Referral) Convert(now time.Time) error {
	if r.Status != ReferralAccepted {
		return fmt.Errorf("%w: cannot convert a %s referral", ErrInvalidTransition, r.Status)
	}
	r.Status = ReferralConverted
	r.ConvertedAt = &now
	return nil
}

// CommissionAmounts returns the payable amounts for both ambassadors. Before
// conversion the commission is an estimate only, so the call fails with
// ErrAmountsNotFinal.
func (r *Referral) CommissionAmounts() (*CommissionAmounts, error) {
	if r.Status != ReferralConverted {
		return nil, fmt.Errorf("%w: referral is %s", ErrAmountsNotFinal, r.Status)
	}
	return &CommissionAmounts{
		ReferringAmount: RoundToCents(r.PotentialCommission * r.Split.Referring / 100),
		ReceivingAmount: RoundToCents(r.PotentialCommission * r.Split.Receiving / 100),
	}, nil
}

func (r *Referral) Terminal() bool {
	return r.Status == ReferralRejected || r.Status == ReferralConverted
}

type GetReferralsFilter struct {
	AmbassadorID *string
	PropertyID 	 *string
	Status 		 *string
	Page 		 int
	Limit 		 int
}

type ReferralRepository interface {
	CreateReferral(referral *Referral) error
	// UpdateReferral persists a transition conditionally on the status the
	// transition started from. ErrStatusConflict when another writer won.
	UpdateReferral(referral *Referral, fromStatus ReferralStatus) error
	GetReferralByID(referralID string) (*Referral, error)
	GetReferralsByProperty(propertyID string, status ReferralStatus) ([]*Referral, error)
	FindExpiredPending(now time.Time) ([]*Referral, error)
	GetReferrals(filter GetReferralsFilter) ([]*Referral, int64, error)
}
