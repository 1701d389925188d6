package usecase

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	publisher "github.com/hausly/hausly-marketplace-service/internal/infrastructure/kafka"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/metrics"
	referralusecase "github.com/hausly/hausly-marketplace-service/internal/usecase/referral"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ListingUsecase interface {
	ScoreChecklist(items []domain.ChecklistItem) *domain.ValidationResult
	ScoreListing(propertyID string) (*domain.ValidationResult, error)
	ApproveListing(propertyID string) (*domain.ValidationResult, error)
	CompleteSale(propertyID string, salePrice float64) error
}

type DefaultListingUsecase struct {
	propertyRepo 	domain.PropertyRepository
	checklistRepo 	domain.ChecklistRepository
	referralUsecase referralusecase.ReferralUsecase
	kafkaPublisher 	*publisher.KafkaPublisher
	metrics 		*metrics.MarketplaceMetrics
}

func NewDefaultListingUsecase(
	propertyRepo domain.PropertyRepository,
	checklistRepo domain.ChecklistRepository,
	referralUsecase referralusecase.ReferralUsecase,
	kafkaPublisher *publisher.KafkaPublisher,
	marketplaceMetrics *metrics.MarketplaceMetrics,
) *DefaultListingUsecase {
	return &DefaultListingUsecase{
		propertyRepo: propertyRepo,
		checklistRepo: checklistRepo,
		referralUsecase: referralUsecase,
		kafkaPublisher: kafkaPublisher,
		metrics: marketplaceMetrics,
	}
}

// ScoreChecklist computes the compliance percentage and collects blocking
// issues: required items that are not yet valid. The score alone never
// decides approval.
func (uc *DefaultListingUsecase) ScoreChecklist(items []domain.ChecklistItem) *domain.ValidationResult {
	result := domain.ValidationResult{
		TotalCount: len(items),
		BlockingIssues: []domain.ChecklistItem{},
	}
	for _, item := range items {
		if item.Status == domain.ChecklistValid {
			result.ValidCount++
		}
		if item.Required && item.Status != domain.ChecklistValid {
			result.BlockingIssues = append(result.BlockingIssues, item)
		}
	}
	if result.TotalCount > 0 {
		result.Score = int(math.Round(float64(result.ValidCount) / float64(result.TotalCount) * 100))
	}
	return &result
}

func (uc *DefaultListingUsecase) ScoreListing(propertyID string) (*domain.ValidationResult, error) {
	items, err := uc.checklistRepo.GetChecklistByProperty(propertyID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return uc.ScoreChecklist(items), nil
}

// ApproveListing enforces the compound approval rule at the boundary: the
// listing goes live only when no required item is outstanding, regardless of
// how high the numeric score is.
func (uc *DefaultListingUsecase) ApproveListing(propertyID string) (*domain.ValidationResult, error) {
	property, err := uc.propertyRepo.GetPropertyByID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, propertyID)
	}

	items, err := uc.checklistRepo.GetChecklistByProperty(propertyID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	result := uc.ScoreChecklist(items)

	if !result.Approvable() {
		if uc.metrics != nil {
			uc.metrics.RecordListingBlocked(property.AmbassadorID)
		}
		return result, fmt.Errorf("%w: %d required item(s) outstanding", domain.ErrListingBlocked, len(result.BlockingIssues))
	}

	if err := uc.propertyRepo.UpdatePropertyStatus(propertyID, domain.PropertyApproved); err != nil {
		return result, status.Error(codes.Internal, err.Error())
	}

	if uc.metrics != nil {
		uc.metrics.RecordListingApproved(property.AmbassadorID)
	}
	uc.publishListingEvent(property, domain.PropertyApproved, result.Score, 0)

	return result, nil
}

// CompleteSale marks the property sold and converts its accepted referrals.
// This is the single system trigger for referral conversion.
func (uc *DefaultListingUsecase) CompleteSale(propertyID string, salePrice float64) error {
	if salePrice < 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPrice, salePrice)
	}
	property, err := uc.propertyRepo.GetPropertyByID(propertyID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, propertyID)
	}

	if err := uc.propertyRepo.MarkPropertySold(propertyID, salePrice); err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	if err := uc.referralUsecase.ConvertByProperty(propertyID); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.RecordSaleCompleted(property.AmbassadorID, salePrice)
	}
	uc.publishListingEvent(property, domain.PropertySold, 0, salePrice)

	return nil
}

func (uc *DefaultListingUsecase) publishListingEvent(property *domain.Property, propStatus domain.PropertyStatus, score int, salePrice float64) {
	if uc.kafkaPublisher == nil {
		return
	}
	go func(event publisher.ListingEvent) {
		if err := uc.kafkaPublisher.PublishListing(event); err != nil {
			slog.Error("failed to publish kafka listing event", "status", event.Status, "error", err.Error())
		}
	}(publisher.ListingEvent{
		PropertyID: property.ID,
		AmbassadorID: property.AmbassadorID,
		Status: string(propStatus),
		Score: score,
		SalePrice: salePrice,
	})
}
