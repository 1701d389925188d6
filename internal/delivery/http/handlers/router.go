package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(
	referralHandler *ReferralHandler,
	pricingHandler *PricingHandler,
	scoringHandler *ScoringHandler,
	listingHandler *ListingHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	referrals := r.Group("/referrals")
	{
		referrals.POST("", referralHandler.CreateReferral)
		referrals.GET("", referralHandler.ListReferrals)
		referrals.GET("/:id", referralHandler.GetReferral)
		referrals.POST("/:id/accept", referralHandler.AcceptReferral)
		referrals.POST("/:id/reject", referralHandler.RejectReferral)
		referrals.GET("/:id/commission", referralHandler.GetCommissionAmounts)
	}

	pricing := r.Group("/pricing")
	{
		pricing.GET("/quote", pricingHandler.GetSavingsQuote)
		pricing.GET("/tiers", pricingHandler.GetTiers)
	}

	scoring := r.Group("/scoring")
	{
		scoring.POST("/lead", scoringHandler.ScoreLead)
	}
	r.GET("/leads/:id/score", scoringHandler.ScoreStoredLead)

	properties := r.Group("/properties")
	{
		properties.GET("/:id/validation", listingHandler.GetValidation)
		properties.POST("/:id/approve", listingHandler.ApproveListing)
		properties.POST("/:id/sale", listingHandler.CompleteSale)
	}

	return r
}
