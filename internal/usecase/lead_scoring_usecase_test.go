package usecase

import (
	"fmt"
	"testing"

	"github.com/hausly/hausly-marketplace-service/internal/domain"
	scoringdto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadRepo struct {
	leads map[string]*domain.Lead
}

func (f *fakeLeadRepo) GetLeadByID(leadID string) (*domain.Lead, error) {
	lead, ok := f.leads[leadID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrLeadNotFound, leadID)
	}
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepo) CreateLead(lead *domain.Lead) error {
	copied := *lead
	f.leads[lead.ID] = &copied
	return nil
}

func (f *fakeLeadRepo) UpdateLead(lead *domain.Lead) error {
	copied := *lead
	f.leads[lead.ID] = &copied
	return nil
}

func (f *fakeLeadRepo) GetLeadsByProperty(propertyID string) ([]*domain.Lead, error) {
	var out []*domain.Lead
	for _, lead := range f.leads {
		if lead.PropertyID == propertyID {
			copied := *lead
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newTestScoringUsecase() *DefaultLeadScoringUsecase {
	return NewDefaultLeadScoringUsecase(domain.DefaultScoreWeights(), &fakeLeadRepo{leads: map[string]*domain.Lead{}}, nil)
}

func TestScoreLead_WeightedCriteria(t *testing.T) {
	uc := newTestScoringUsecase()

	tests := []struct {
		name      string
		input     scoringdto.LeadScoreInput
		wantValue float64
		wantBand  domain.LeadScoreBand
	}{
		{
			name: "everything satisfied",
			input: scoringdto.LeadScoreInput{BudgetFits: true, FinancingSecured: true, DocumentsComplete: true, DownPaymentRatio: 0.25},
			wantValue: 100,
			wantBand: domain.LeadExcellent,
		},
		{
			name: "nothing satisfied",
			input: scoringdto.LeadScoreInput{},
			wantValue: 0,
			wantBand: domain.LeadAtRisk,
		},
		{
			name: "missing documents lands exactly on excellent boundary",
			input: scoringdto.LeadScoreInput{BudgetFits: true, FinancingSecured: true, DownPaymentRatio: 0.30},
			wantValue: 80,
			wantBand: domain.LeadExcellent,
		},
		{
			name: "missing financing is good",
			input: scoringdto.LeadScoreInput{BudgetFits: true, DocumentsComplete: true, DownPaymentRatio: 0.20},
			wantValue: 70,
			wantBand: domain.LeadGood,
		},
		{
			name: "financing and documents only is at risk",
			input: scoringdto.LeadScoreInput{FinancingSecured: true, DocumentsComplete: true, DownPaymentRatio: 0.10},
			wantValue: 50,
			wantBand: domain.LeadAtRisk,
		},
		{
			name: "down payment below the 20% threshold earns nothing",
			input: scoringdto.LeadScoreInput{BudgetFits: true, FinancingSecured: true, DocumentsComplete: true, DownPaymentRatio: 0.19},
			wantValue: 75,
			wantBand: domain.LeadGood,
		},
		{
			name: "down payment exactly at the threshold counts",
			input: scoringdto.LeadScoreInput{DownPaymentRatio: domain.MinDownPaymentRatio},
			wantValue: 25,
			wantBand: domain.LeadAtRisk,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := uc.ScoreLead(&tt.input)
			assert.Equal(t, tt.wantValue, score.Value)
			assert.Equal(t, tt.wantBand, score.Band)
		})
	}
}

func TestScoreLead_BoundedForAllInputs(t *testing.T) {
	uc := newTestScoringUsecase()

	for mask := 0; mask < 16; mask++ {
		input := scoringdto.LeadScoreInput{
			BudgetFits: mask&1 != 0,
			FinancingSecured: mask&2 != 0,
			DocumentsComplete: mask&4 != 0,
		}
		if mask&8 != 0 {
			input.DownPaymentRatio = 0.5
		}
		score := uc.ScoreLead(&input)
		assert.GreaterOrEqual(t, score.Value, 0.0)
		assert.LessOrEqual(t, score.Value, 100.0)
	}
}

func TestBandFor_InclusiveLowerBounds(t *testing.T) {
	assert.Equal(t, domain.LeadExcellent, domain.BandFor(80))
	assert.Equal(t, domain.LeadGood, domain.BandFor(79.9))
	assert.Equal(t, domain.LeadGood, domain.BandFor(60))
	assert.Equal(t, domain.LeadAtRisk, domain.BandFor(59.9))
	assert.Equal(t, domain.LeadAtRisk, domain.BandFor(0))
	assert.Equal(t, domain.LeadExcellent, domain.BandFor(100))
}

func TestScoreWeights_Validate(t *testing.T) {
	assert.NoError(t, domain.DefaultScoreWeights().Validate())
	assert.Error(t, domain.ScoreWeights{Budget: 50, Financing: 30, Documents: 20, DownPayment: 25}.Validate())
	assert.Error(t, domain.ScoreWeights{Budget: -5, Financing: 55, Documents: 25, DownPayment: 25}.Validate())
}

func TestScoreLeadByID(t *testing.T) {
	repo := &fakeLeadRepo{leads: map[string]*domain.Lead{
		"lead-1": {
			ID: "lead-1",
			PropertyID: "prop-1",
			BudgetFits: true,
			FinancingSecured: true,
			DocumentsComplete: true,
			DownPaymentRatio: 0.22,
		},
	}}
	uc := NewDefaultLeadScoringUsecase(domain.DefaultScoreWeights(), repo, nil)

	lead, score, err := uc.ScoreLeadByID("lead-1")
	require.NoError(t, err)
	assert.Equal(t, "lead-1", lead.ID)
	assert.Equal(t, 100.0, score.Value)
	assert.Equal(t, domain.LeadExcellent, score.Band)

	_, _, err = uc.ScoreLeadByID("missing")
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}
