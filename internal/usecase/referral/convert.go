package usecase

import (
	"errors"
	"log/slog"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConvertReferral finalizes an ACCEPTED referral once the underlying sale
// closed. Conversion is system-only: nothing in the delivery layer exposes it
// directly, it runs from the sale-completion flow.
func (uc *DefaultReferralUsecase) ConvertReferral(referralID string) (*domain.Referral, error) {
	referral, err := uc.referralRepo.GetReferralByID(referralID)
	if err != nil {
		return nil, err
	}

	fromStatus := referral.Status
	if err := referral.Convert(uc.now()); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("convert", transitionErrorType(err))
		}
		return nil, err
	}

	if err := uc.referralRepo.UpdateReferral(referral, fromStatus); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("convert", transitionErrorType(err))
		}
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, err
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.RecordReferralTransition(string(domain.ReferralConverted), referral.ReferringAmbassadorID, false)
		if amounts, err := referral.CommissionAmounts(); err == nil {
			uc.metrics.RecordCommissionPayable(amounts.ReferringAmount, amounts.ReceivingAmount)
		}
	}
	uc.announce(referral)

	return referral, nil
}

// ConvertByProperty converts every accepted referral attached to a property.
// Called by the listing usecase when a sale completes.
func (uc *DefaultReferralUsecase) ConvertByProperty(propertyID string) error {
	referrals, err := uc.referralRepo.GetReferralsByProperty(propertyID, domain.ReferralAccepted)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	for _, referral := range referrals {
		if _, err := uc.ConvertReferral(referral.ID); err != nil {
			slog.Error("failed to convert referral on sale completion",
				"referral_id", referral.ID, "property_id", propertyID, "error", err.Error())
			return err
		}
	}
	return nil
}
