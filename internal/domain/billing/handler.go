package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type StatusResponse struct {
	Status        string `json:"status"`
	Usable        bool   `json:"usable"`
	DaysRemaining int    `json:"days_remaining"`
}

type ActivateRequest struct {
	Months int `json:"months"`
}

// GetStatus godoc
// @Summary Account subscription status for the gym
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /billing [get]
func (h *Handler) GetStatus(c *gin.Context) {
	sub, usable, err := h.service.GetStatus(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		if err == ErrNoSubscription {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STATUS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, StatusResponse{
		Status:        string(sub.Status),
		Usable:        usable,
		DaysRemaining: sub.DaysRemaining(h.service.clk.Now()),
	})
}

// Activate godoc
// @Summary Activate the account after payment (owner only)
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body ActivateRequest false "Months to activate (default 1)"
// @Success 200 {object} AccountSubscription
// @Router /billing/activate [post]
func (h *Handler) Activate(c *gin.Context) {
	var req ActivateRequest
	_ = c.ShouldBindJSON(&req)

	sub, err := h.service.Activate(c.Request.Context(), c.GetInt64("gym_id"), req.Months)
	if err != nil {
		if err == ErrNoSubscription {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "ACTIVATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, sub)
}

// Cancel godoc
// @Summary Cancel the account subscription (owner only)
// @Tags Billing
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /billing/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.GetInt64("gym_id")); err != nil {
		if err == ErrNoSubscription {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CANCEL_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "subscription cancelled"})
}

// RegisterRoutes registers billing routes. Activation and cancellation are
// deliberately outside the billing gate so an expired gym can come back.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, ownerOnly gin.HandlerFunc) {
	b := r.Group("/billing")
	{
		b.GET("", h.GetStatus)
		b.POST("/activate", ownerOnly, h.Activate)
		b.POST("/cancel", ownerOnly, h.Cancel)
	}
}
