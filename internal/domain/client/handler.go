package client

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gymdesk/internal/pkg/response"
	"gymdesk/internal/pkg/validator"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type CreateRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=120"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

type UpdateRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// List godoc
// @Summary List clients of the gym
// @Description Optional filters: ?active=true, ?q=<name search>
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Client
// @Router /clients [get]
func (h *Handler) List(c *gin.Context) {
	gymID := c.GetInt64("gym_id")
	ctx := c.Request.Context()

	var (
		clients []*Client
		err     error
	)
	switch {
	case c.Query("q") != "":
		clients, err = h.repo.Search(ctx, gymID, c.Query("q"))
	case c.Query("active") == "true":
		clients, err = h.repo.ListActiveByGym(ctx, gymID)
	default:
		clients, err = h.repo.ListByGym(ctx, gymID)
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, clients)
}

// Get godoc
// @Summary Get one client
// @Tags Clients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} Client
// @Router /clients/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), c.GetInt64("gym_id"), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, cl)
}

// Create godoc
// @Summary Register a new client
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateRequest true "Client data"
// @Success 201 {object} Client
// @Router /clients [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid client data", errs)
		return
	}

	cl := &Client{
		GymID: c.GetInt64("gym_id"),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := h.repo.Create(c.Request.Context(), cl); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, cl)
}

// Update godoc
// @Summary Update a client's contact data
// @Tags Clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} Client
// @Router /clients/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	cl, err := h.repo.GetByID(c.Request.Context(), c.GetInt64("gym_id"), id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.Name != "" {
		cl.Name = req.Name
	}
	if req.Phone != nil {
		cl.Phone = *req.Phone
	}
	if req.Email != nil {
		cl.Email = *req.Email
	}

	if err := h.repo.Update(c.Request.Context(), cl); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, cl)
}

// Delete godoc
// @Summary Delete a client (owner only, admin action)
// @Tags Clients
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Router /clients/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), c.GetInt64("gym_id"), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "client deleted"})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler, ownerOnly gin.HandlerFunc) {
	cl := r.Group("/clients")
	{
		cl.GET("", h.List)
		cl.POST("", h.Create)
		cl.GET("/:id", h.Get)
		cl.PUT("/:id", h.Update)
		cl.DELETE("/:id", ownerOnly, h.Delete)
	}
}
