package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	referraldto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/referral"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateReferral opens a referral in PENDING on behalf of the referring
// ambassador. The split must sum to 100; when the caller leaves it out the
// advertised 50/50 economics apply. A zero potential commission is derived
// from the property's fee tier.
func (uc *DefaultReferralUsecase) CreateReferral(input *referraldto.CreateReferralInput) (*domain.Referral, error) {
	split := domain.DefaultCommissionSplit()
	if input.Split != nil {
		split = domain.CommissionSplit{
			Referring: input.Split.Referring,
			Receiving: input.Split.Receiving,
		}
	}
	if err := split.Validate(); err != nil {
		if uc.metrics != nil {
			uc.metrics.RecordTransitionError("create", transitionErrorType(err))
		}
		return nil, err
	}

	potentialCommission := input.PotentialCommission
	property, err := uc.propertyRepo.GetPropertyByID(input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, input.PropertyID)
	}
	if potentialCommission == 0 {
		potentialCommission, err = uc.estimator.PotentialCommission(property.Price)
		if err != nil {
			return nil, err
		}
	}

	codeGenerator, err := nanoid.Standard(10)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	now := uc.now()
	referral := domain.Referral{
		ID: uuid.New().String(),
		Code: codeGenerator(),
		PropertyID: input.PropertyID,
		ReferringAmbassadorID: input.ReferringAmbassadorID,
		BuyerContact: domain.BuyerContact{
			Name: input.BuyerContact.Name,
			Email: input.BuyerContact.Email,
			Phone: input.BuyerContact.Phone,
		},
		Status: domain.ReferralPending,
		Split: split,
		PotentialCommission: potentialCommission,
		Notes: input.Notes,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.referralTTL),
	}

	if err := uc.referralRepo.CreateReferral(&referral); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.RecordReferralCreated(referral.ReferringAmbassadorID)
	}
	uc.announce(&referral)

	return &referral, nil
}
