package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/middleware"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
)

type HandlerManager struct {
	exerciseHandler  *ExerciseHandler
	challengeHandler *ChallengeHandler
	aiHandler        *AIHandler
	analyticsHandler *AnalyticsHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		exerciseHandler:  NewExerciseHandler(serviceManager.Content, serviceManager.Attempt, logger),
		challengeHandler: NewChallengeHandler(serviceManager.Challenge, logger),
		aiHandler:        NewAIHandler(serviceManager.Feedback, serviceManager.Suggestion, logger),
		analyticsHandler: NewAnalyticsHandler(serviceManager.Analytics, serviceManager.Wordsmith, serviceManager.Export, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, auth *middleware.Authenticator) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "exercise-service",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireUser())
	{
		// Exercise registry and content routes
		exercises := v1.Group("/exercises")
		{
			exercises.GET("/types", hm.exerciseHandler.GetTypes)
			exercises.GET("/types/:type/template", hm.exerciseHandler.GetTemplate)
			exercises.POST("/content", hm.exerciseHandler.CreateContent)
			exercises.GET("/:id/content/:type", hm.exerciseHandler.GetContent)
			exercises.POST("/:id/content/:type/refresh", hm.exerciseHandler.RefreshContent)
			exercises.GET("/:id/content/:type/pick", hm.exerciseHandler.PickContent)
		}

		// Attempt routes
		attempts := v1.Group("/attempts")
		{
			attempts.POST("", hm.exerciseHandler.SubmitAttempt)
			attempts.GET("", hm.exerciseHandler.ListAttempts)
			attempts.GET("/:id", hm.exerciseHandler.GetAttempt)
		}

		// Challenge routes
		challenges := v1.Group("/challenges")
		{
			challenges.POST("", hm.challengeHandler.CreateChallenge)
			challenges.GET("", hm.challengeHandler.ListChallenges)
			challenges.GET("/:id", hm.challengeHandler.GetChallenge)
			challenges.DELETE("/:id", hm.challengeHandler.DeleteChallenge)
			challenges.POST("/:id/submit", hm.challengeHandler.SubmitChallenge)
		}

		// AI routes
		ai := v1.Group("/ai")
		{
			ai.POST("/feedback", hm.aiHandler.GenerateFeedback)
			ai.POST("/suggestions", hm.aiHandler.GenerateSuggestions)
			ai.POST("/suggestions/format", hm.aiHandler.FormatSuggestion)
		}

		// Analytics and community routes
		v1.GET("/analytics/performance", hm.analyticsHandler.GetPerformance)
		v1.GET("/analytics/export", hm.analyticsHandler.ExportProgress)
		v1.GET("/wordsmiths", hm.analyticsHandler.ListWordsmiths)
		v1.GET("/wordsmiths/:id", hm.analyticsHandler.GetWordsmith)
	}
}
