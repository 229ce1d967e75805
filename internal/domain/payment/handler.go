package payment

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/clock"
	"gymdesk/internal/pkg/response"
)

type Handler struct {
	repo Repository
	clk  clock.Clock
}

func NewHandler(repo Repository, clk clock.Clock) *Handler {
	return &Handler{repo: repo, clk: clk}
}

type CreateRequest struct {
	ClientID     int64      `json:"client_id" binding:"required"`
	EnrollmentID *int64     `json:"enrollment_id"`
	Amount       float64    `json:"amount" binding:"required,gt=0"`
	Method       Method     `json:"method" binding:"required,oneof=cash card transfer"`
	Concept      string     `json:"concept"`
	PaidAt       *time.Time `json:"paid_at"`
}

// Create godoc
// @Summary Log a payment
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Payment data"
// @Success 201 {object} Payment
// @Router /payments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	paidAt := h.clk.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	p := &Payment{
		GymID:        c.GetInt64("gym_id"),
		ClientID:     req.ClientID,
		EnrollmentID: req.EnrollmentID,
		Amount:       req.Amount,
		Method:       req.Method,
		Concept:      req.Concept,
		PaidAt:       paidAt,
		RecordedBy:   c.GetInt64("user_id"),
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// List godoc
// @Summary Payments of the gym for a period (?from=YYYY-MM-DD&to=YYYY-MM-DD, default current month)
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /payments [get]
func (h *Handler) List(c *gin.Context) {
	gymID := c.GetInt64("gym_id")
	today := clock.Today(h.clk)

	from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, clock.Zone)
	to := from.AddDate(0, 1, 0)

	if f := c.Query("from"); f != "" {
		t, err := time.ParseInLocation("2006-01-02", f, clock.Zone)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "from must be YYYY-MM-DD")
			return
		}
		from = clock.DateOf(t)
	}
	if f := c.Query("to"); f != "" {
		t, err := time.ParseInLocation("2006-01-02", f, clock.Zone)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "to must be YYYY-MM-DD")
			return
		}
		to = clock.DateOf(t).AddDate(0, 0, 1)
	}

	list, err := h.repo.ListByGym(c.Request.Context(), gymID, from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	total, err := h.repo.TotalByGym(c.Request.Context(), gymID, from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payments": list,
		"total":    total,
	})
}

// ListByClient godoc
// @Summary Payment history of a client
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} Payment
// @Router /clients/{id}/payments [get]
func (h *Handler) ListByClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	list, err := h.repo.ListByClient(c.Request.Context(), c.GetInt64("gym_id"), clientID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/payments", h.Create)
	r.GET("/payments", h.List)
	r.GET("/clients/:id/payments", h.ListByClient)
}
