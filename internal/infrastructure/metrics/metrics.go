package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics holds every engine-facing metric.
type MarketplaceMetrics struct {
	// Referral lifecycle
	ReferralsCreatedTotal prometheus.CounterVec
	ReferralTransitionsTotal prometheus.CounterVec
	ReferralTransitionErrorsTotal prometheus.CounterVec
	ReferralsPendingCount prometheus.GaugeVec

	// Commission economics
	CommissionPayableTotal prometheus.CounterVec

	// Qualification
	LeadScoreDistribution prometheus.HistogramVec

	// Listing validation
	ListingsApprovedTotal prometheus.CounterVec
	ListingsBlockedTotal prometheus.CounterVec
	SalesCompletedTotal prometheus.CounterVec
	SalesAmountTotal prometheus.CounterVec
}

func NewMarketplaceMetrics() *MarketplaceMetrics {
	return &MarketplaceMetrics{
		ReferralsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referrals_created_total",
				Help: "Total number of created referrals",
			},
			[]string{"referring_ambassador_id"},
		),

		ReferralTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_transitions_total",
				Help: "Referral lifecycle transitions by target status",
			},
			[]string{"status"},
		),

		ReferralTransitionErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_transition_errors_total",
				Help: "Rejected lifecycle transitions by error type",
			},
			[]string{"operation", "error_type"},
		),

		ReferralsPendingCount: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "referrals_pending_count",
				Help: "Current number of referrals waiting for a response",
			},
			[]string{"referring_ambassador_id"},
		),

		CommissionPayableTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_payable_total",
				Help: "Total commission amounts that became payable on conversion",
			},
			[]string{"role"},
		),

		LeadScoreDistribution: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lead_score_distribution",
				Help:    "Distribution of computed lead qualification scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11), // 0, 10, ... 100
			},
			[]string{"band"},
		),

		ListingsApprovedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_approved_total",
				Help: "Total number of listings that passed the approval rule",
			},
			[]string{"ambassador_id"},
		),

		ListingsBlockedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "listings_blocked_total",
				Help: "Approval attempts blocked by required checklist items",
			},
			[]string{"ambassador_id"},
		),

		SalesCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_completed_total",
				Help: "Total number of completed sales",
			},
			[]string{"ambassador_id"},
		),

		SalesAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_amount_total",
				Help: "Total sale price of completed sales",
			},
			[]string{"ambassador_id"},
		),
	}
}

func (m *MarketplaceMetrics) RecordReferralCreated(referringAmbassadorID string) {
	m.ReferralsCreatedTotal.WithLabelValues(referringAmbassadorID).Inc()
	m.ReferralsPendingCount.WithLabelValues(referringAmbassadorID).Inc()
}

func (m *MarketplaceMetrics) RecordReferralTransition(status, referringAmbassadorID string, leftPending bool) {
	m.ReferralTransitionsTotal.WithLabelValues(status).Inc()
	if leftPending {
		m.ReferralsPendingCount.WithLabelValues(referringAmbassadorID).Dec()
	}
}

func (m *MarketplaceMetrics) RecordTransitionError(operation, errorType string) {
	m.ReferralTransitionErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

func (m *MarketplaceMetrics) RecordCommissionPayable(referringAmount, receivingAmount float64) {
	m.CommissionPayableTotal.WithLabelValues("referring").Add(referringAmount)
	m.CommissionPayableTotal.WithLabelValues("receiving").Add(receivingAmount)
}

func (m *MarketplaceMetrics) RecordLeadScore(band string, value float64) {
	m.LeadScoreDistribution.WithLabelValues(band).Observe(value)
}

func (m *MarketplaceMetrics) RecordListingApproved(ambassadorID string) {
	m.ListingsApprovedTotal.WithLabelValues(ambassadorID).Inc()
}

func (m *MarketplaceMetrics) RecordListingBlocked(ambassadorID string) {
	m.ListingsBlockedTotal.WithLabelValues(ambassadorID).Inc()
}

func (m *MarketplaceMetrics) RecordSaleCompleted(ambassadorID string, salePrice float64) {
	m.SalesCompletedTotal.WithLabelValues(ambassadorID).Inc()
	m.SalesAmountTotal.WithLabelValues(ambassadorID).Add(salePrice)
}
