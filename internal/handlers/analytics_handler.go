package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
)

type AnalyticsHandler struct {
	BaseHandler
	analyticsService services.AnalyticsService
	wordsmithService services.WordsmithService
	exportService    services.ExportService
}

func NewAnalyticsHandler(
	analyticsService services.AnalyticsService,
	wordsmithService services.WordsmithService,
	exportService services.ExportService,
	logger utils.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      NewBaseHandler(logger),
		analyticsService: analyticsService,
		wordsmithService: wordsmithService,
		exportService:    exportService,
	}
}

// GetPerformance returns the caller's performance dashboard payload
// @Summary Get performance dashboard
// @Tags analytics
// @Produce json
// @Success 200 {object} services.PerformanceResponse
// @Failure 401 {object} ErrorResponse
// @Router /analytics/performance [get]
func (h *AnalyticsHandler) GetPerformance(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	response, err := h.analyticsService.GetPerformance(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListWordsmiths pages through the community writer directory
// @Summary List wordsmiths
// @Tags wordsmiths
// @Produce json
// @Param search query string false "Name or email search"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} ListResponse
// @Router /wordsmiths [get]
func (h *AnalyticsHandler) ListWordsmiths(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	size := parseIntQuery(c, "size", 20)
	filters := repositories.WordsmithFilters{
		Search: c.Query("search"),
		Limit:  size,
		Offset: (page - 1) * size,
	}

	entries, total, err := h.wordsmithService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Items: entries,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// GetWordsmith returns one writer's public profile
// @Summary Get wordsmith profile
// @Tags wordsmiths
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} repositories.WordsmithEntry
// @Failure 404 {object} ErrorResponse
// @Router /wordsmiths/{id} [get]
func (h *AnalyticsHandler) GetWordsmith(c *gin.Context) {
	userID := ParseStringIDParam(c, "id")
	if userID == "" {
		return
	}

	entry, err := h.wordsmithService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ExportProgress streams the caller's history as an XLSX workbook
// @Summary Export progress
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param include_challenges query bool false "Include challenge submissions"
// @Param include_exercises query bool false "Include exercise attempts"
// @Param date_from query string false "RFC3339 lower bound"
// @Param date_to query string false "RFC3339 upper bound"
// @Success 200
// @Failure 400 {object} ErrorResponse
// @Router /analytics/export [get]
func (h *AnalyticsHandler) ExportProgress(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	req := &models.ExportRequest{
		UserID:            userID,
		Format:            "xlsx",
		IncludeChallenges: c.DefaultQuery("include_challenges", "true") == "true",
		IncludeExercises:  c.DefaultQuery("include_exercises", "true") == "true",
	}
	if from := c.Query("date_from"); from != "" {
		if parsed, err := time.Parse(time.RFC3339, from); err == nil {
			req.DateFrom = &parsed
		}
	}
	if to := c.Query("date_to"); to != "" {
		if parsed, err := time.Parse(time.RFC3339, to); err == nil {
			req.DateTo = &parsed
		}
	}

	h.LogRequest(c, "Exporting progress",
		"include_challenges", req.IncludeChallenges,
		"include_exercises", req.IncludeExercises)

	data, summary, err := h.exportService.ExportProgress(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("progress-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Export-Challenges", fmt.Sprintf("%d", summary.Challenges))
	c.Header("X-Export-Attempts", fmt.Sprintf("%d", summary.Attempts))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
