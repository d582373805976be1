package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
)

type AIHandler struct {
	BaseHandler
	feedbackService   services.FeedbackService
	suggestionService services.SuggestionService
}

func NewAIHandler(
	feedbackService services.FeedbackService,
	suggestionService services.SuggestionService,
	logger utils.Logger,
) *AIHandler {
	return &AIHandler{
		BaseHandler:       NewBaseHandler(logger),
		feedbackService:   feedbackService,
		suggestionService: suggestionService,
	}
}

// GenerateFeedback asks the AI coach for feedback on a draft
// @Summary Generate writing feedback
// @Tags ai
// @Accept json
// @Produce json
// @Param request body services.FeedbackRequest true "Draft to review"
// @Success 200 {object} services.FeedbackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /ai/feedback [post]
func (h *AIHandler) GenerateFeedback(c *gin.Context) {
	var req services.FeedbackRequest
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

	h.LogRequest(c, "Generating feedback", "challenge_id", req.ChallengeID)

	response, err := h.feedbackService.GenerateFeedback(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GenerateSuggestions asks the AI for challenge ideas at a CEFR level
// @Summary Generate challenge suggestions
// @Tags ai
// @Accept json
// @Produce json
// @Param request body services.SuggestionRequest true "Suggestion parameters"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /ai/suggestions [post]
func (h *AIHandler) GenerateSuggestions(c *gin.Context) {
	var req services.SuggestionRequest
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

	h.LogRequest(c, "Generating suggestions", "difficulty", req.DifficultyLevel)

	suggestions, err := h.suggestionService.GenerateSuggestions(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// FormatSuggestionRequest carries the suggestion to render plus the time
// allocation the client currently displays, used when the suggestion has
// none of its own.
type FormatSuggestionRequest struct {
	Suggestion     services.ChallengeSuggestion `json:"suggestion"`
	TimeAllocation int                          `json:"time_allocation"`
}

// FormatSuggestion renders a suggestion into challenge instructions text
// @Summary Format suggestion instructions
// @Tags ai
// @Accept json
// @Produce json
// @Param request body FormatSuggestionRequest true "Suggestion to format"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /ai/suggestions/format [post]
func (h *AIHandler) FormatSuggestion(c *gin.Context) {
	var req FormatSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"instructions": h.suggestionService.FormatInstructions(req.Suggestion, req.TimeAllocation),
	})
}
