package gym

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Get godoc
// @Summary Get the authenticated staff member's gym
// @Tags Gym
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Gym
// @Router /gym [get]
func (h *Handler) Get(c *gin.Context) {
	g, err := h.repo.GetByID(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gym not found")
		return
	}
	response.Success(c, http.StatusOK, g)
}

// Update godoc
// @Summary Update gym profile (owner only)
// @Tags Gym
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} Gym
// @Router /gym [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	g, err := h.repo.GetByID(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gym not found")
		return
	}

	if req.Name != "" {
		g.Name = req.Name
	}
	if req.Phone != nil {
		g.Phone = *req.Phone
	}
	if req.Address != nil {
		g.Address = *req.Address
	}

	if err := h.repo.Update(c.Request.Context(), g); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, g)
}

type UpdateRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, ownerOnly gin.HandlerFunc) {
	r.GET("/gym", h.Get)
	r.PUT("/gym", ownerOnly, h.Update)
}
