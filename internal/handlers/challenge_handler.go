package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
)

type ChallengeHandler struct {
	BaseHandler
	challengeService services.ChallengeService
}

func NewChallengeHandler(challengeService services.ChallengeService, logger utils.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		BaseHandler:      NewBaseHandler(logger),
		challengeService: challengeService,
	}
}

// CreateChallenge creates a new writing challenge
// @Summary Create challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param challenge body services.CreateChallengeRequest true "Challenge data"
// @Success 201 {object} models.Challenge
// @Failure 400 {object} ErrorResponse
// @Router /challenges [post]
func (h *ChallengeHandler) CreateChallenge(c *gin.Context) {
	var req services.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	challenge, err := h.challengeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// GetChallenge retrieves one of the caller's challenges
// @Summary Get challenge
// @Tags challenges
// @Produce json
// @Param id path uint true "Challenge ID"
// @Success 200 {object} models.Challenge
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	challenge, err := h.challengeService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// ListChallenges pages through the caller's challenges
// @Summary List challenges
// @Tags challenges
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param difficulty query string false "CEFR level filter"
// @Success 200 {object} ListResponse
// @Router /challenges [get]
func (h *ChallengeHandler) ListChallenges(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	page := parseIntQuery(c, "page", 1)
	size := parseIntQuery(c, "size", 20)
	filters := repositories.ChallengeFilters{
		Limit:     size,
		Offset:    (page - 1) * size,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		level := models.DifficultyLevel(difficulty)
		filters.Difficulty = &level
	}

	challenges, total, err := h.challengeService.List(c.Request.Context(), userID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Items: challenges,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// DeleteChallenge removes one of the caller's challenges
// @Summary Delete challenge
// @Tags challenges
// @Param id path uint true "Challenge ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenges/{id} [delete]
func (h *ChallengeHandler) DeleteChallenge(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	if err := h.challengeService.Delete(c.Request.Context(), userID, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SubmitChallenge records a finished writing session
// @Summary Submit challenge
// @Tags challenges
// @Accept json
// @Produce json
// @Param id path uint true "Challenge ID"
// @Param submission body services.SubmitChallengeRequest true "Submission data"
// @Success 201 {object} models.ChallengeSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /challenges/{id}/submit [post]
func (h *ChallengeHandler) SubmitChallenge(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	var req services.SubmitChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Submitting challenge", "challenge_id", id)

	submission, err := h.challengeService.Submit(c.Request.Context(), userID, id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}
