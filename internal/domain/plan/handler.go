package plan

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gymdesk/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type CreateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
}

type UpdateRequest struct {
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	DurationDays *int     `json:"duration_days"`
}

// List godoc
// @Summary List active plans of the gym
// @Tags Plans
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Plan
// @Router /plans [get]
func (h *Handler) List(c *gin.Context) {
	plans, err := h.repo.ListByGym(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, plans)
}

// Create godoc
// @Summary Create a plan (owner only)
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Plan data"
// @Success 201 {object} Plan
// @Router /plans [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	p := &Plan{
		GymID:        c.GetInt64("gym_id"),
		Name:         req.Name,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		IsActive:     true,
	}
	if err := h.repo.Create(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// Update godoc
// @Summary Update a plan (owner only)
// @Tags Plans
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} Plan
// @Router /plans/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid plan ID")
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), c.GetInt64("gym_id"), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Plan not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", err.Error())
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.DurationDays != nil {
		p.DurationDays = *req.DurationDays
	}

	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Delete godoc
// @Summary Deactivate a plan (owner only)
// @Tags Plans
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} map[string]interface{}
// @Router /plans/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid plan ID")
		return
	}

	if err := h.repo.Deactivate(c.Request.Context(), c.GetInt64("gym_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "plan deactivated"})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, ownerOnly gin.HandlerFunc) {
	pl := r.Group("/plans")
	{
		pl.GET("", h.List)
		pl.POST("", ownerOnly, h.Create)
		pl.PUT("/:id", ownerOnly, h.Update)
		pl.DELETE("/:id", ownerOnly, h.Delete)
	}
}
