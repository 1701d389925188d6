package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/response"
	"github.com/hausly/hausly-marketplace-service/internal/domain"
)

// respondError maps engine errors onto HTTP statuses. Invalid transitions and
// status conflicts come back as 409 with the original message: both are
// expected outcomes of two ambassadors acting on the same referral, and the
// message tells the caller what actually happened.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidCommissionSplit):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrAmountsNotFinal),
		errors.Is(err, domain.ErrListingBlocked):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrReferralNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrLeadNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
	}
}
