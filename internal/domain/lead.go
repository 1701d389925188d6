package domain

import (
	"fmt"
	"time"
)

// MinDownPaymentRatio is the policy threshold for the down-payment criterion:
// a buyer qualifies when the planned down payment covers at least 20% of the
// price. Tune here, not in the scoring logic.
const MinDownPaymentRatio = 0.20

type LeadScoreBand string

const (
	LeadExcellent LeadScoreBand = "excellent"
	LeadGood 	  LeadScoreBand = "good"
	LeadAtRisk 	  LeadScoreBand = "at_risk"
)

const (
	excellentThreshold = 80
	goodThreshold 	   = 60
)

type Lead struct {
	ID 				  string
	PropertyID 		  string
	AmbassadorID 	  string
	BuyerContact 	  BuyerContact
	BudgetFits 		  bool
	FinancingSecured  bool
	DocumentsComplete bool
	DownPaymentRatio  float64
	CreatedAt 		  time.Time
	UpdatedAt 		  time.Time
}

type ScoreWeights struct {
	Budget 		float64
	Financing 	float64
	Documents 	float64
	DownPayment float64
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{Budget: 25, Financing: 30, Documents: 20, DownPayment: 25}
}

func (w ScoreWeights) Validate() error {
	for name, v := range map[string]float64{
		"budget": w.Budget, "financing": w.Financing,
		"documents": w.Documents, "down_payment": w.DownPayment,
	} {
		if v < 0 {
			return fmt.Errorf("scoring weight %s must be non-negative", name)
		}
	}
	if sum := w.Budget + w.Financing + w.Documents + w.DownPayment; sum != 100 {
		return fmt.Errorf("scoring weights must sum to 100, got %.2f", sum)
	}
	return nil
}

type LeadScore struct {
	Value float64
	Band  LeadScoreBand
}

func BandFor(value float64) LeadScoreBand {
	switch {
	case value >= excellentThreshold:
		return LeadExcellent
	case value >= goodThreshold:
		return LeadGood
	default:
		return LeadAtRisk
	}
}

type LeadRepository interface {
	GetLeadByID(leadID string) (*Lead, error)
	CreateLead(lead *Lead) error
	UpdateLead(lead *Lead) error
	GetLeadsByProperty(propertyID string) ([]*Lead, error)
}
