package coach

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

// Problems godoc
// @Summary Clients flagged with a problem (expired plan, inactive, absent)
// @Description Runs the status reconciler first, then classifies each client.
// @Tags Coach
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ProblemReport
// @Router /coach/problems [get]
func (h *Handler) Problems(c *gin.Context) {
	reports, err := h.service.Detector().DetectProblems(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DETECT_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, reports)
}

// Achievements godoc
// @Summary Clients flagged with a positive signal (streaks, milestones, newcomers)
// @Tags Coach
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Achievement
// @Router /coach/achievements [get]
func (h *Handler) Achievements(c *gin.Context) {
	achievements, err := h.service.Detector().DetectAchievements(c.Request.Context(), c.GetInt64("gym_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DETECT_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, achievements)
}

type GenerateRequest struct {
	Kind Kind `json:"kind" binding:"required,oneof=problem achievement"`
}

// Generate godoc
// @Summary Draft social posts for every flagged client
// @Description At most one post per client, day and kind; re-running returns
// @Description the already saved posts. Posts are drafts for manual review,
// @Description nothing is published automatically.
// @Tags Coach
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body GenerateRequest true "problem or achievement"
// @Success 200 {array} GeneratedContent
// @Router /coach/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	var (
		contents []*GeneratedContent
		err      error
	)
	if req.Kind == KindAchievement {
		contents, err = h.service.GenerateAchievements(c.Request.Context(), c.GetInt64("gym_id"))
	} else {
		contents, err = h.service.GenerateProblems(c.Request.Context(), c.GetInt64("gym_id"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "GENERATE_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, contents)
}

// Content godoc
// @Summary Saved posts for a day (?date=YYYY-MM-DD, default today)
// @Tags Coach
// @Security BearerAuth
// @Produce json
// @Success 200 {array} GeneratedContent
// @Router /coach/content [get]
func (h *Handler) Content(c *gin.Context) {
	contents, err := h.service.ListContent(c.Request.Context(), c.GetInt64("gym_id"), c.Query("date"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}
	response.Success(c, http.StatusOK, contents)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	coach := r.Group("/coach")
	{
		coach.GET("/problems", h.Problems)
		coach.GET("/achievements", h.Achievements)
		coach.POST("/generate", h.Generate)
		coach.GET("/content", h.Content)
	}
}
