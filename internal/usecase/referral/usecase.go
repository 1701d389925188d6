package usecase

import (
	"time"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	publisher "github.com/hausly/hausly-marketplace-service/internal/infrastructure/kafka"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/metrics"
	referraldto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/referral"
)

type ReferralUsecase interface {
	CreateReferral(input *referraldto.CreateReferralInput) (*domain.Referral, error)
	AcceptReferral(referralID, receivingAmbassadorID string) (*domain.Referral, error)
	RejectReferral(referralID, reason string) (*domain.Referral, error)
	ConvertReferral(referralID string) (*domain.Referral, error)
	ConvertByProperty(propertyID string) error
	GetCommissionAmounts(referralID string) (*domain.CommissionAmounts, error)
	GetReferralByID(referralID string) (*domain.Referral, error)
	GetReferrals(input *referraldto.GetReferralsInput) (*referraldto.GetReferralsOutput, error)
	ExpireStalePendingReferrals() error
}

// CommissionEstimator derives a commission pool from a property price. The
// pricing usecase satisfies it.
type CommissionEstimator interface {
	PotentialCommission(price float64) (float64, error)
}

type DefaultReferralUsecase struct {
	referralRepo 	domain.ReferralRepository
	propertyRepo 	domain.PropertyRepository
	estimator 		CommissionEstimator
	kafkaPublisher 	*publisher.KafkaPublisher
	metrics 		*metrics.MarketplaceMetrics
	callbackURL 	string
	referralTTL 	time.Duration
	now 			func() time.Time
}

func NewDefaultReferralUsecase(
	referralRepo domain.ReferralRepository,
	propertyRepo domain.PropertyRepository,
	estimator CommissionEstimator,
	kafkaPublisher *publisher.KafkaPublisher,
	marketplaceMetrics *metrics.MarketplaceMetrics,
	callbackURL string,
	referralTTL time.Duration,
) *DefaultReferralUsecase {
	return &DefaultReferralUsecase{
		referralRepo: referralRepo,
		propertyRepo: propertyRepo,
		estimator: estimator,
		kafkaPublisher: kafkaPublisher,
		metrics: marketplaceMetrics,
		callbackURL: callbackURL,
		referralTTL: referralTTL,
		now: time.Now,
	}
}
