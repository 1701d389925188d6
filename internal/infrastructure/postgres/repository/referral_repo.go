package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReferralRepository struct {
	db *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{db: db}
}

func (r *DefaultReferralRepository) CreateReferral(referral *domain.Referral) error {
	referralModel := mappers.ToGORMReferral(referral)
	if err := r.db.Create(&referralModel).Error; err != nil {
		return err
	}
	referral.ID = referralModel.ID
	return nil
}

// UpdateReferral writes the transitioned referral conditionally on the status
// the transition started from. A concurrent accept/reject on the same pending
// referral means zero rows match, which surfaces as ErrStatusConflict.
func (r *DefaultReferralRepository) UpdateReferral(referral *domain.Referral, fromStatus domain.ReferralStatus) error {
	result := r.db.Model(&models.ReferralModel{}).
		Where("id = ?", referral.ID).
		Where("status = ?", string(fromStatus)).
		Updates(map[string]interface{}{
			"status": string(referral.Status),
			"receiving_ambassador_id": referral.ReceivingAmbassadorID,
			"notes": referral.Notes,
			"accepted_at": referral.AcceptedAt,
			"converted_at": referral.ConvertedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: referral %s left %s", domain.ErrStatusConflict, referral.ID, fromStatus)
	}
	return nil
}

func (r *DefaultReferralRepository) GetReferralByID(referralID string) (*domain.Referral, error) {
	var referralModel models.ReferralModel
	if err := r.db.Model(&models.ReferralModel{}).Where("id = ?", referralID).First(&referralModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrReferralNotFound, referralID)
		}
		return nil, err
	}

	return mappers.ToDomainReferral(&referralModel), nil
}

func (r *DefaultReferralRepository) GetReferralsByProperty(propertyID string, status domain.ReferralStatus) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.db.Model(&models.ReferralModel{}).
		Where("property_id = ?", propertyID).
		Where("status = ?", string(status)).
		Find(&referralModels).Error; err != nil {
			return nil, err
		}
	referrals := make([]*domain.Referral, len(referralModels))
	for i, referralModel := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModel)
	}

	return referrals, nil
}

func (r *DefaultReferralRepository) FindExpiredPending(now time.Time) ([]*domain.Referral, error) {
	var referralModels []models.ReferralModel
	if err := r.db.Model(&models.ReferralModel{}).
		Where("status = ?", string(domain.ReferralPending)).
		Where("expires_at < ?", now).
		Find(&referralModels).Error; err != nil {
			return nil, err
		}
	referrals := make([]*domain.Referral, len(referralModels))
	for i, referralModel := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModel)
	}

	return referrals, nil
}

func (r *DefaultReferralRepository) GetReferrals(filter domain.GetReferralsFilter) ([]*domain.Referral, int64, error) {
	query := r.db.Model(&models.ReferralModel{})

	if filter.AmbassadorID != nil {
		query = query.Where(
			"referring_ambassador_id = ? OR receiving_ambassador_id = ?",
			*filter.AmbassadorID, *filter.AmbassadorID,
		)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query = query.Offset(offset).Limit(filter.Limit).Order("created_at DESC")

	var referralModels []models.ReferralModel
	if err := query.Find(&referralModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find referral models: %w", err)
	}

	referrals := make([]*domain.Referral, len(referralModels))
	for i, referralModel := range referralModels {
		referrals[i] = mappers.ToDomainReferral(&referralModel)
	}

	return referrals, total, nil
}
