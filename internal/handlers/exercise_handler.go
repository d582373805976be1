package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
)

type ExerciseHandler struct {
	BaseHandler
	contentService services.ContentService
	attemptService services.AttemptService
}

func NewExerciseHandler(
	contentService services.ContentService,
	attemptService services.AttemptService,
	logger utils.Logger,
) *ExerciseHandler {
	return &ExerciseHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
		attemptService: attemptService,
	}
}

// ===== REGISTRY =====

// GetTypes lists every registered exercise type tag
// @Summary List exercise types
// @Tags exercises
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /exercises/types [get]
func (h *ExerciseHandler) GetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": h.contentService.GetTypes()})
}

// GetTemplate returns the authoring template for one exercise type
// @Summary Get exercise type template
// @Tags exercises
// @Produce json
// @Param type path string true "Exercise type tag"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /exercises/types/{type}/template [get]
func (h *ExerciseHandler) GetTemplate(c *gin.Context) {
	exerciseType := ParseStringIDParam(c, "type")
	if exerciseType == "" {
		return
	}

	template, err := h.contentService.GetTemplate(exerciseType)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Unknown exercise type",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// ===== CONTENT =====

// GetContent fetches the content pool for an (exercise, type) pair
// @Summary Get exercise content
// @Tags exercises
// @Produce json
// @Param id path uint true "Exercise ID"
// @Param type path string true "Exercise type tag"
// @Success 200 {object} services.ContentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /exercises/{id}/content/{type} [get]
func (h *ExerciseHandler) GetContent(c *gin.Context) {
	exerciseID := parseUintParam(c, "id")
	if exerciseID == 0 {
		return
	}
	exerciseType := ParseStringIDParam(c, "type")
	if exerciseType == "" {
		return
	}

	h.LogRequest(c, "Fetching exercise content",
		"exercise_id", exerciseID, "exercise_type", exerciseType)

	response, err := h.contentService.FetchContent(c.Request.Context(), exerciseID, exerciseType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// RefreshContent drops the cached pool and refetches it
// @Summary Refresh exercise content
// @Tags exercises
// @Produce json
// @Param id path uint true "Exercise ID"
// @Param type path string true "Exercise type tag"
// @Success 200 {object} services.ContentResponse
// @Failure 502 {object} ErrorResponse
// @Router /exercises/{id}/content/{type}/refresh [post]
func (h *ExerciseHandler) RefreshContent(c *gin.Context) {
	exerciseID := parseUintParam(c, "id")
	if exerciseID == 0 {
		return
	}
	exerciseType := ParseStringIDParam(c, "type")
	if exerciseType == "" {
		return
	}

	h.LogRequest(c, "Refreshing exercise content",
		"exercise_id", exerciseID, "exercise_type", exerciseType)

	response, err := h.contentService.RefreshContent(c.Request.Context(), exerciseID, exerciseType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// PickContent draws one random content item, optionally scoped to a
// topic, resolved through the player dispatch rule
// @Summary Pick a random content item
// @Tags exercises
// @Produce json
// @Param id path uint true "Exercise ID"
// @Param type path string true "Exercise type tag"
// @Param topic query string false "Topic to scope the draw to"
// @Success 200 {object} services.PickResponse
// @Failure 404 {object} ErrorResponse
// @Router /exercises/{id}/content/{type}/pick [get]
func (h *ExerciseHandler) PickContent(c *gin.Context) {
	exerciseID := parseUintParam(c, "id")
	if exerciseID == 0 {
		return
	}
	exerciseType := ParseStringIDParam(c, "type")
	if exerciseType == "" {
		return
	}
	topic := c.Query("topic")

	item, err := h.contentService.PickForTopic(c.Request.Context(), exerciseID, exerciseType, topic)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateContent adds a new content item to an exercise
// @Summary Create exercise content
// @Tags exercises
// @Accept json
// @Produce json
// @Param content body services.CreateContentRequest true "Content data"
// @Success 201 {object} services.ContentItem
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /exercises/content [post]
func (h *ExerciseHandler) CreateContent(c *gin.Context) {
	var req services.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if _, ok := h.requireUserID(c); !ok {
		return
	}

	item, err := h.contentService.CreateContent(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// ===== ATTEMPTS =====

// SubmitAttempt grades an answer and records the attempt
// @Summary Submit an exercise attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body services.SubmitAttemptRequest true "Attempt data"
// @Success 201 {object} services.AttemptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /attempts [post]
func (h *ExerciseHandler) SubmitAttempt(c *gin.Context) {
	var req services.SubmitAttemptRequest
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

	response, err := h.attemptService.SubmitAttempt(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetAttempt retrieves one attempt with its exercise and content
// @Summary Get attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} models.ExerciseAttempt
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /attempts/{id} [get]
func (h *ExerciseHandler) GetAttempt(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	attempt, err := h.attemptService.GetAttempt(c.Request.Context(), userID, attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}

// ListAttempts pages through the caller's attempt history
// @Summary List attempts
// @Tags attempts
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Param exercise_type query string false "Filter by exercise type"
// @Success 200 {object} ListResponse
// @Router /attempts [get]
func (h *ExerciseHandler) ListAttempts(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	page := parseIntQuery(c, "page", 1)
	size := parseIntQuery(c, "size", 20)
	filters := repositories.AttemptFilters{
		Limit:  size,
		Offset: (page - 1) * size,
		SortBy: c.DefaultQuery("sort_by", "completed_at"),
	}
	if exerciseType := c.Query("exercise_type"); exerciseType != "" {
		filters.ExerciseType = &exerciseType
	}
	if from := c.Query("date_from"); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			filters.DateFrom = &parsed
		}
	}
	if to := c.Query("date_to"); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			filters.DateTo = &parsed
		}
	}

	attempts, total, err := h.attemptService.GetUserAttempts(c.Request.Context(), userID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Items: attempts,
		Total: total,
		Page:  page,
		Size:  size,
	})
}
