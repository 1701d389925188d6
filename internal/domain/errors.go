package domain

import "errors"

var (
	ErrInvalidPrice = errors.New("price must be a non-negative number")
	ErrInvalidCommissionSplit = errors.New("commission split must sum to 100")
	ErrInvalidTransition = errors.New("invalid referral status transition")
	ErrAmountsNotFinal = errors.New("commission amounts are provisional until the referral is converted")
	ErrStatusConflict = errors.New("referral status changed concurrently")
	ErrListingBlocked = errors.New("listing has unresolved required checklist items")
	ErrReferralNotFound = errors.New("referral not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrLeadNotFound = errors.New("lead not found")
)
