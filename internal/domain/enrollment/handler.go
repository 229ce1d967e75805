package enrollment

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type EnrollRequest struct {
	ClientID  int64      `json:"client_id" binding:"required"`
	PlanID    int64      `json:"plan_id" binding:"required"`
	StartDate *time.Time `json:"start_date"`
}

// Enroll godoc
// @Summary Enroll a client into a plan
// @Tags Enrollments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body EnrollRequest true "Client, plan and optional start date"
// @Success 201 {object} Enrollment
// @Router /enrollments [post]
func (h *Handler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	e, err := h.service.Enroll(c.Request.Context(), c.GetInt64("gym_id"), req.ClientID, req.PlanID, req.StartDate)
	if err != nil {
		switch err {
		case ErrClientNotFound, ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "ENROLL_FAILED", err.Error())
		}
		return
	}
	response.Success(c, http.StatusCreated, e)
}

// ListByClient godoc
// @Summary Enrollment history of a client
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} Enrollment
// @Router /clients/{id}/enrollments [get]
func (h *Handler) ListByClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	list, err := h.service.ListByClient(c.Request.Context(), c.GetInt64("gym_id"), clientID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Cancel godoc
// @Summary Cancel an enrollment
// @Tags Enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} map[string]interface{}
// @Router /enrollments/{id}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid enrollment ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), c.GetInt64("gym_id"), id); err != nil {
		if err == ErrEnrollmentNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CANCEL_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "enrollment cancelled"})
}

// Reconcile godoc
// @Summary Sync enrollment statuses and client active flags for the gym
// @Description Flips stale "current" enrollments to "expired" and recomputes
// @Description each client's active flag. Safe to run repeatedly.
// @Tags Enrollments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ReconcileSummary
// @Router /enrollments/reconcile [post]
func (h *Handler) Reconcile(c *gin.Context) {
	summary, err := h.service.ReconcileGym(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RECONCILE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/enrollments", h.Enroll)
	r.POST("/enrollments/reconcile", h.Reconcile)
	r.POST("/enrollments/:id/cancel", h.Cancel)
	r.GET("/clients/:id/enrollments", h.ListByClient)
}
