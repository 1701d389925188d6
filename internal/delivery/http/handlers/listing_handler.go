package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/request"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/response"
	"github.com/hausly/hausly-marketplace-service/internal/domain"
	"github.com/hausly/hausly-marketplace-service/internal/usecase"
)

type ListingHandler struct {
	listingUsecase usecase.ListingUsecase
}

func NewListingHandler(listingUsecase usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{listingUsecase: listingUsecase}
}

func (h *ListingHandler) GetValidation(c *gin.Context) {
	result, err := h.listingUsecase.ScoreListing(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, validationBody(result))
}

func (h *ListingHandler) ApproveListing(c *gin.Context) {
	result, err := h.listingUsecase.ApproveListing(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingBlocked) && result != nil {
			body := validationBody(result)
			body["error"] = err.Error()
			c.JSON(http.StatusConflict, body)
			return
		}
		respondError(c, err)
		return
	}

	body := validationBody(result)
	body["status"] = string(domain.PropertyApproved)
	c.JSON(http.StatusOK, body)
}

func (h *ListingHandler) CompleteSale(c *gin.Context) {
	var req request.CompleteSale
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.listingUsecase.CompleteSale(c.Param("id"), req.SalePrice); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(domain.PropertySold)})
}

func validationBody(result *domain.ValidationResult) gin.H {
	issues := make([]gin.H, len(result.BlockingIssues))
	for i, item := range result.BlockingIssues {
		issues[i] = gin.H{
			"id": item.ID,
			"label": item.Label,
			"status": string(item.Status),
		}
	}
	return gin.H{
		"score": result.Score,
		"valid_count": result.ValidCount,
		"total_count": result.TotalCount,
		"blocking_issues": issues,
		"approvable": result.Approvable(),
	}
}
