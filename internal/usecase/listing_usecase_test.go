package usecase

import (
	"fmt"
	"testing"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	referraldto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/referral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePropertyRepo struct {
	properties map[string]*domain.Property
	soldPrices map[string]float64
	statuses   map[string]domain.PropertyStatus
}

func newFakePropertyRepo(properties ...*domain.Property) *fakePropertyRepo {
	repo := &fakePropertyRepo{
		properties: map[string]*domain.Property{},
		soldPrices: map[string]float64{},
		statuses:   map[string]domain.PropertyStatus{},
	}
	for _, property := range properties {
		repo.properties[property.ID] = property
	}
	return repo
}

func (f *fakePropertyRepo) GetPropertyByID(propertyID string) (*domain.Property, error) {
	property, ok := f.properties[propertyID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, propertyID)
	}
	copied := *property
	return &copied, nil
}

func (f *fakePropertyRepo) UpdatePropertyStatus(propertyID string, status domain.PropertyStatus) error {
	f.statuses[propertyID] = status
	return nil
}

func (f *fakePropertyRepo) MarkPropertySold(propertyID string, salePrice float64) error {
	f.statuses[propertyID] = domain.PropertySold
	f.soldPrices[propertyID] = salePrice
	return nil
}

type fakeChecklistRepo struct {
	items map[string][]domain.ChecklistItem
}

func (f *fakeChecklistRepo) GetChecklistByProperty(propertyID string) ([]domain.ChecklistItem, error) {
	return f.items[propertyID], nil
}

func (f *fakeChecklistRepo) UpdateChecklistItemStatus(itemID string, status domain.ChecklistStatus) error {
	return nil
}

// stubReferralUsecase records conversion triggers; everything else is unused
// by the listing flow.
type stubReferralUsecase struct {
	convertedProperties []string
}

func (s *stubReferralUsecase) CreateReferral(*referraldto.CreateReferralInput) (*domain.Referral, error) {
	return nil, nil
}
func (s *stubReferralUsecase) AcceptReferral(string, string) (*domain.Referral, error) {
	return nil, nil
}
func (s *stubReferralUsecase) RejectReferral(string, string) (*domain.Referral, error) {
	return nil, nil
}
func (s *stubReferralUsecase) ConvertReferral(string) (*domain.Referral, error) {
	return nil, nil
}
func (s *stubReferralUsecase) ConvertByProperty(propertyID string) error {
	s.convertedProperties = append(s.convertedProperties, propertyID)
	return nil
}
func (s *stubReferralUsecase) GetCommissionAmounts(string) (*domain.CommissionAmounts, error) {
	return nil, nil
}
func (s *stubReferralUsecase) GetReferralByID(string) (*domain.Referral, error) {
	return nil, nil
}
func (s *stubReferralUsecase) GetReferrals(*referraldto.GetReferralsInput) (*referraldto.GetReferralsOutput, error) {
	return nil, nil
}
func (s *stubReferralUsecase) ExpireStalePendingReferrals() error {
	return nil
}

func checklistOf(valid, invalidRequired, pending int) []domain.ChecklistItem {
	var items []domain.ChecklistItem
	for i := 0; i < valid; i++ {
		items = append(items, domain.ChecklistItem{ID: fmt.Sprintf("v%d", i), Status: domain.ChecklistValid})
	}
	for i := 0; i < invalidRequired; i++ {
		items = append(items, domain.ChecklistItem{ID: fmt.Sprintf("r%d", i), Required: true, Status: domain.ChecklistInvalid})
	}
	for i := 0; i < pending; i++ {
		items = append(items, domain.ChecklistItem{ID: fmt.Sprintf("p%d", i), Status: domain.ChecklistPending})
	}
	return items
}

func TestScoreChecklist(t *testing.T) {
	uc := &DefaultListingUsecase{}

	tests := []struct {
		name 		   string
		items 		   []domain.ChecklistItem
		wantScore 	   int
		wantValid 	   int
		wantTotal 	   int
		wantBlocking   int
		wantApprovable bool
	}{
		{
			name: "empty checklist scores zero",
			items: nil,
			wantScore: 0, wantValid: 0, wantTotal: 0, wantBlocking: 0, wantApprovable: true,
		},
		{
			name: "all valid",
			items: checklistOf(5, 0, 0),
			wantScore: 100, wantValid: 5, wantTotal: 5, wantBlocking: 0, wantApprovable: true,
		},
		{
			name: "high score with one invalid required item is not approvable",
			items: checklistOf(9, 1, 0),
			wantScore: 90, wantValid: 9, wantTotal: 10, wantBlocking: 1, wantApprovable: false,
		},
		{
			name: "pending required item blocks too",
			items: []domain.ChecklistItem{
				{ID: "a", Required: true, Status: domain.ChecklistPending},
				{ID: "b", Status: domain.ChecklistValid},
			},
			wantScore: 50, wantValid: 1, wantTotal: 2, wantBlocking: 1, wantApprovable: false,
		},
		{
			name: "two of three valid rounds to 67",
			items: checklistOf(2, 0, 1),
			wantScore: 67, wantValid: 2, wantTotal: 3, wantBlocking: 0, wantApprovable: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := uc.ScoreChecklist(tt.items)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantValid, result.ValidCount)
			assert.Equal(t, tt.wantTotal, result.TotalCount)
			assert.Len(t, result.BlockingIssues, tt.wantBlocking)
			assert.Equal(t, tt.wantApprovable, result.Approvable())
		})
	}
}

func TestApproveListing_BlockedByRequiredItem(t *testing.T) {
	propertyRepo := newFakePropertyRepo(&domain.Property{ID: "prop-1", AmbassadorID: "amb-1", Status: domain.PropertyUnderReview})
	checklistRepo := &fakeChecklistRepo{items: map[string][]domain.ChecklistItem{
		"prop-1": checklistOf(9, 1, 0),
	}}
	uc := NewDefaultListingUsecase(propertyRepo, checklistRepo, &stubReferralUsecase{}, nil, nil)

	result, err := uc.ApproveListing("prop-1")
	require.ErrorIs(t, err, domain.ErrListingBlocked)
	require.NotNil(t, result)
	assert.Equal(t, 90, result.Score)
	assert.Len(t, result.BlockingIssues, 1)

	// the property never moved to APPROVED
	_, touched := propertyRepo.statuses["prop-1"]
	assert.False(t, touched)
}

func TestApproveListing_CleanChecklistApproves(t *testing.T) {
	propertyRepo := newFakePropertyRepo(&domain.Property{ID: "prop-1", AmbassadorID: "amb-1", Status: domain.PropertyUnderReview})
	checklistRepo := &fakeChecklistRepo{items: map[string][]domain.ChecklistItem{
		"prop-1": checklistOf(4, 0, 0),
	}}
	uc := NewDefaultListingUsecase(propertyRepo, checklistRepo, &stubReferralUsecase{}, nil, nil)

	result, err := uc.ApproveListing("prop-1")
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, domain.PropertyApproved, propertyRepo.statuses["prop-1"])
}

func TestApproveListing_UnknownProperty(t *testing.T) {
	uc := NewDefaultListingUsecase(newFakePropertyRepo(), &fakeChecklistRepo{}, &stubReferralUsecase{}, nil, nil)

	_, err := uc.ApproveListing("missing")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestCompleteSale_MarksSoldAndConvertsReferrals(t *testing.T) {
	propertyRepo := newFakePropertyRepo(&domain.Property{ID: "prop-1", AmbassadorID: "amb-1", Status: domain.PropertyApproved})
	referrals := &stubReferralUsecase{}
	uc := NewDefaultListingUsecase(propertyRepo, &fakeChecklistRepo{}, referrals, nil, nil)

	require.NoError(t, uc.CompleteSale("prop-1", 320000))

	assert.Equal(t, domain.PropertySold, propertyRepo.statuses["prop-1"])
	assert.Equal(t, 320000.0, propertyRepo.soldPrices["prop-1"])
	assert.Equal(t, []string{"prop-1"}, referrals.convertedProperties)
}

func TestCompleteSale_RejectsNegativePrice(t *testing.T) {
	uc := NewDefaultListingUsecase(newFakePropertyRepo(), &fakeChecklistRepo{}, &stubReferralUsecase{}, nil, nil)

	err := uc.CompleteSale("prop-1", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}
