package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a gym owner and create the gym
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Owner and gym data"
// @Success 201 {object} AuthResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if err == ErrEmailTaken {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, AuthResponse{Token: res.Token, User: res.User})
}

// Login godoc
// @Summary Log in a staff account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{Token: res.Token, User: res.User})
}

// Me godoc
// @Summary Current authenticated user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} User
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	response.Success(c, http.StatusOK, user)
}

// CreateReceptionist godoc
// @Summary Create a receptionist account (owner only)
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body CreateReceptionistRequest true "Receptionist data"
// @Success 201 {object} User
// @Router /receptionists [post]
func (h *Handler) CreateReceptionist(c *gin.Context) {
	var req CreateReceptionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	user, err := h.service.CreateReceptionist(c.Request.Context(), c.GetInt64("gym_id"), req)
	if err != nil {
		if err == ErrEmailTaken {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// ListReceptionists godoc
// @Summary List receptionist accounts (owner only)
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {array} User
// @Router /receptionists [get]
func (h *Handler) ListReceptionists(c *gin.Context) {
	users, err := h.service.ListReceptionists(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, users)
}

// DeleteReceptionist godoc
// @Summary Delete a receptionist account (owner only)
// @Tags Auth
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /receptionists/{id} [delete]
func (h *Handler) DeleteReceptionist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	err = h.service.DeleteReceptionist(c.Request.Context(), c.GetInt64("gym_id"), id)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "receptionist deleted"})
	case ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrNotSameGym:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case ErrCannotDeleteOwner:
		response.Error(c, http.StatusBadRequest, "INVALID_TARGET", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
	}
}
