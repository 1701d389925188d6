package usecase

import (
	"errors"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AcceptReferral moves a PENDING referral to ACCEPTED on behalf of the
// receiving ambassador. The repository update is conditional on PENDING, so
// when two ambassadors race the loser gets ErrStatusConflict instead of
// silently overwriting the winner.
func (uc *DefaultReferralUsecase) AcceptReferral(referralID, receivingAmbassadorID string) (*domain.Referral, error) {
	referral, err := uc.referralRepo.GetReferralByID(referralID)
	if err != nil {
		return nil, err
	}

	fromStatus := referral.Status
	if err := referral.Accept(receivingAmbassadorID, uc.now()); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("accept", transitionErrorType(err))
		}
		return nil, err
	}

	if err := uc.referralRepo.UpdateReferral(referral, fromStatus); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("accept", transitionErrorType(err))
		}
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, err
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.RecordReferralTransition(string(domain.ReferralAccepted), referral.ReferringAmbassadorID, true)
	}
	uc.announce(referral)

	return referral, nil
}
