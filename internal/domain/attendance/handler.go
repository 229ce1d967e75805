package attendance

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/clock"
	"gymdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type CheckInRequest struct {
	ClientID int64 `json:"client_id" binding:"required"`
}

// CheckIn godoc
// @Summary Register a client visit
// @Tags Attendance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CheckInRequest true "Client to check in"
// @Success 201 {object} Attendance
// @Router /attendance/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	a, err := h.service.CheckIn(c.Request.Context(), c.GetInt64("gym_id"), req.ClientID)
	if err != nil {
		if err == ErrClientNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CHECKIN_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, a)
}

// Today godoc
// @Summary Today's check-ins, or a specific day via ?date=YYYY-MM-DD
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Attendance
// @Router /attendance/today [get]
func (h *Handler) Today(c *gin.Context) {
	gymID := c.GetInt64("gym_id")
	ctx := c.Request.Context()

	if d := c.Query("date"); d != "" {
		date, err := time.ParseInLocation("2006-01-02", d, clock.Zone)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			return
		}
		list, err := h.service.ListByDate(ctx, gymID, date)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
			return
		}
		response.Success(c, http.StatusOK, list)
		return
	}

	list, err := h.service.TodayList(ctx, gymID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

// History godoc
// @Summary Visit history of a client (?limit=N, default 30)
// @Tags Attendance
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {array} Attendance
// @Router /clients/{id}/attendance [get]
func (h *Handler) History(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	limit := 30
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.service.History(c.Request.Context(), c.GetInt64("gym_id"), clientID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/attendance/checkin", h.CheckIn)
	r.GET("/attendance/today", h.Today)
	r.GET("/clients/:id/attendance", h.History)
}
