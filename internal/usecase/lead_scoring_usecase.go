package usecase

import (
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/infrastructure/metrics"
	scoringdto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/scoring"
)

type LeadScoringUsecase interface {
	ScoreLead(input *scoringdto.LeadScoreInput) domain.LeadScore
	ScoreLeadByID(leadID string) (*domain.Lead, domain.LeadScore, error)
}

type DefaultLeadScoringUsecase struct {
	weights  domain.ScoreWeights
	leadRepo domain.LeadRepository
	metrics  *metrics.MarketplaceMetrics
}

func NewDefaultLeadScoringUsecase(
	weights domain.ScoreWeights,
	leadRepo domain.LeadRepository,
	marketplaceMetrics *metrics.MarketplaceMetrics,
) *DefaultLeadScoringUsecase {
	return &DefaultLeadScoringUsecase{
		weights: weights,
		leadRepo: leadRepo,
		metrics: marketplaceMetrics,
	}
}

// ScoreLead evaluates the weighted qualification criteria. Each criterion
// contributes its full weight or nothing; with weights summing to 100 the
// result stays in [0, 100]. Nothing is cached; a new document or budget fact
// means the caller simply scores again.
func (uc *DefaultLeadScoringUsecase) ScoreLead(input *scoringdto.LeadScoreInput) domain.LeadScore {
	var value float64
	if input.BudgetFits {
		value += uc.weights.Budget
	}
	if input.FinancingSecured {
		value += uc.weights.Financing
	}
	if input.DocumentsComplete {
		value += uc.weights.Documents
	}
	if input.DownPaymentRatio >= domain.MinDownPaymentRatio {
		value += uc.weights.DownPayment
	}
	score := domain.LeadScore{
		Value: value,
		Band: domain.BandFor(value),
	}
	if uc.metrics != nil {
		uc.metrics.RecordLeadScore(string(score.Band), score.Value)
	}
	return score
}

func (uc *DefaultLeadScoringUsecase) ScoreLeadByID(leadID string) (*domain.Lead, domain.LeadScore, error) {
	lead, err := uc.leadRepo.GetLeadByID(leadID)
	if err != nil {
		return nil, domain.LeadScore{}, err
	}
	score := uc.ScoreLead(&scoringdto.LeadScoreInput{
		BudgetFits: lead.BudgetFits,
		FinancingSecured: lead.FinancingSecured,
		DocumentsComplete: lead.DocumentsComplete,
		DownPaymentRatio: lead.DownPaymentRatio,
	})
	return lead, score, nil
}
