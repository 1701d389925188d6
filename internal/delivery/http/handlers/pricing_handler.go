package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/response"
	"github.com/hausly/hausly-marketplace-service/internal/usecase"
)

type PricingHandler struct {
	pricingUsecase usecase.PricingUsecase
}

func NewPricingHandler(pricingUsecase usecase.PricingUsecase) *PricingHandler {
	return &PricingHandler{pricingUsecase: pricingUsecase}
}

// GetSavingsQuote answers "what would this seller save" for a price. The
// engine returns unrounded numbers; rounding happens here, at display time.
func (h *PricingHandler) GetSavingsQuote(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Query("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "price query parameter must be a number"})
		return
	}

	result, err := h.pricingUsecase.ComputeSavings(price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tier": result.TierName,
		"fee": result.Fee,
		"traditional_fee": result.TraditionalFee,
		"savings": result.Savings,
		"savings_percentage": result.SavingsPercentage,
	})
}

func (h *PricingHandler) GetTiers(c *gin.Context) {
	tiers := h.pricingUsecase.Tiers()
	out := make([]gin.H, len(tiers))
	for i, tier := range tiers {
		entry := gin.H{
			"name": tier.Name,
			"min": tier.MinPrice,
			"fee": tier.Fee,
		}
		if tier.MaxPrice != nil {
			entry["max"] = *tier.MaxPrice
		}
		out[i] = entry
	}
	c.JSON(http.StatusOK, gin.H{"tiers": out})
}
