package usecase

import (
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExpireStalePendingReferrals rejects referrals that sat in PENDING past
// their TTL. Run periodically by the background sweep; a referral that was
// accepted or rejected between the query and the update simply loses the
// conditional write and is skipped.
func (uc *DefaultReferralUsecase) ExpireStalePendingReferrals() error {
	referrals, err := uc.referralRepo.FindExpiredPending(uc.now())
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	for _, referral := range referrals {
		if _, err := uc.RejectReferral(referral.ID, "expired without response"); err != nil {
			log.Printf("failed to expire referral %s: %v\n", referral.ID, err)
		}
	}
	return nil
}
