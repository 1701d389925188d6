package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/request"
	"github.com/hausly/hausly-marketplace-service/internal/delivery/http/dto/response"
	referraldto "github.com/hausly/hausly-marketplace-service/internal/usecase/dto/referral"
	referralusecase "github.com/hausly/hausly-marketplace-service/internal/usecase/referral"
)

type ReferralHandler struct {
	referralUsecase referralusecase.ReferralUsecase
}

func NewReferralHandler(referralUsecase referralusecase.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase}
}

func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var req request.CreateReferral
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	input := referraldto.CreateReferralInput{
		PropertyID: req.PropertyID,
		ReferringAmbassadorID: req.ReferringAmbassadorID,
		BuyerContact: referraldto.BuyerContact{
			Name: req.BuyerName,
			Email: req.BuyerEmail,
			Phone: req.BuyerPhone,
		},
		PotentialCommission: req.PotentialCommission,
		Notes: req.Notes,
	}
	if req.SplitReferring != nil || req.SplitReceiving != nil {
		split := referraldto.SplitInput{}
		if req.SplitReferring != nil {
			split.Referring = *req.SplitReferring
		}
		if req.SplitReceiving != nil {
			split.Receiving = *req.SplitReceiving
		}
		input.Split = &split
	}

	referral, err := h.referralUsecase.CreateReferral(&input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDomainReferral(referral))
}

func (h *ReferralHandler) AcceptReferral(c *gin.Context) {
	var req request.AcceptReferral
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	referral, err := h.referralUsecase.AcceptReferral(c.Param("id"), req.ReceivingAmbassadorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainReferral(referral))
}

func (h *ReferralHandler) RejectReferral(c *gin.Context) {
	var req request.RejectReferral
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	referral, err := h.referralUsecase.RejectReferral(c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainReferral(referral))
}

func (h *ReferralHandler) GetReferral(c *gin.Context) {
	referral, err := h.referralUsecase.GetReferralByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDomainReferral(referral))
}

func (h *ReferralHandler) GetCommissionAmounts(c *gin.Context) {
	amounts, err := h.referralUsecase.GetCommissionAmounts(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.CommissionAmounts{
		ReferringAmount: amounts.ReferringAmount,
		ReceivingAmount: amounts.ReceivingAmount,
	})
}

func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	input := referraldto.GetReferralsInput{Page: 1, Limit: 20}
	if v := c.Query("ambassador_id"); v != "" {
		input.AmbassadorID = &v
	}
	if v := c.Query("property_id"); v != "" {
		input.PropertyID = &v
	}
	if v := c.Query("status"); v != "" {
		input.Status = &v
	}
	if v, ok := queryInt(c, "page"); ok {
		input.Page = v
	}
	if v, ok := queryInt(c, "limit"); ok {
		input.Limit = v
	}

	output, err := h.referralUsecase.GetReferrals(&input)
	if err != nil {
		respondError(c, err)
		return
	}

	referrals := make([]response.Referral, len(output.Referrals))
	for i, referral := range output.Referrals {
		referrals[i] = response.FromDomainReferral(referral)
	}
	c.JSON(http.StatusOK, response.ReferralList{
		Referrals: referrals,
		Total: output.Total,
		Page: output.Page,
		Limit: output.Limit,
	})
}
