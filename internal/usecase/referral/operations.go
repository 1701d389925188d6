package usecase

import (
	"errors"
	"log/slog"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	publisher "github.com/hausly/hausly-marketplace-service/internal/infrastructure/kafka"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/notifier"
)

// announce publishes the referral event and fires the webhook callback after
// a committed transition. Both are fire-and-forget: the transition already
// happened and must not be rolled back over a broken broker.
func (uc *DefaultReferralUsecase) announce(referral *domain.Referral) {
	if uc.kafkaPublisher != nil {
		go func(event publisher.ReferralEvent) {
			if err := uc.kafkaPublisher.PublishReferral(event); err != nil {
				slog.Error("failed to publish kafka referral event", "status", event.Status, "error", err.Error())
			}
		}(publisher.ReferralEvent{
			ReferralID: referral.ID,
			ReferralCode: referral.Code,
			PropertyID: referral.PropertyID,
			ReferringAmbassadorID: referral.ReferringAmbassadorID,
			ReceivingAmbassadorID: referral.ReceivingAmbassadorID,
			Status: string(referral.Status),
			PotentialCommission: referral.PotentialCommission,
			Notes: referral.Notes,
		})
	}

	if uc.callbackURL != "" {
		notifier.SendReferralCallback(uc.callbackURL, notifier.ReferralCallbackPayload{
			ReferralID: referral.ID,
			PropertyID: referral.PropertyID,
			Status: string(referral.Status),
			ReferringAmbassadorID: referral.ReferringAmbassadorID,
			ReceivingAmbassadorID: referral.ReceivingAmbassadorID,
			PotentialCommission: referral.PotentialCommission,
			Notes: referral.Notes,
		})
	}
}

func transitionErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrStatusConflict):
		return "status_conflict"
	case errors.Is(err, domain.ErrInvalidCommissionSplit):
		return "invalid_split"
	case errors.Is(err, domain.ErrReferralNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
