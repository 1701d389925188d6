package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/request"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/response"
	"github.com/hausly/hausly-marketplace-service/internal/usecase"
	scoringdto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/scoring"
)

type ScoringHandler struct {
	scoringUsecase usecase.LeadScoringUsecase
}

func NewScoringHandler(scoringUsecase usecase.LeadScoringUsecase) *ScoringHandler {
	return &ScoringHandler{scoringUsecase: scoringUsecase}
}

// ScoreLead scores an ad-hoc set of qualification facts without touching
// storage. Dashboards use it for what-if previews.
func (h *ScoringHandler) ScoreLead(c *gin.Context) {
	var req request.ScoreLead
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	score := h.scoringUsecase.ScoreLead(&scoringdto.LeadScoreInput{
		BudgetFits: req.BudgetFits,
		FinancingSecured: req.FinancingSecured,
		DocumentsComplete: req.DocumentsComplete,
		DownPaymentRatio: req.DownPaymentRatio,
	})

	c.JSON(http.StatusOK, gin.H{"value": score.Value, "band": string(score.Band)})
}

func (h *ScoringHandler) ScoreStoredLead(c *gin.Context) {
	lead, score, err := h.scoringUsecase.ScoreLeadByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lead_id": lead.ID,
		"property_id": lead.PropertyID,
		"value": score.Value,
		"band": string(score.Band),
	})
}
