package usecase

import (
	"errors"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RejectReferral moves a PENDING referral to REJECTED and stores the reason.
// REJECTED is terminal: a second reject on the same referral fails with
// ErrInvalidTransition, there is no double side effect to undo.
func (uc *DefaultReferralUsecase) RejectReferral(referralID, reason string) (*domain.Referral, error) {
	referral, err := uc.referralRepo.GetReferralByID(referralID)
	if err != nil {
		return nil, err
	}

	fromStatus := referral.Status
	if err := referral.Reject(reason); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("reject", transitionErrorType(err))
		}
		return nil, err
	}

	if err := uc.referralRepo.UpdateReferral(referral, fromStatus); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("reject", transitionErrorType(err))
		}
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, err
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.RecordReferralTransition(string(domain.ReferralRejected), referral.ReferringAmbassadorID, true)
	}
	uc.announce(referral)

	return referral, nil
}
