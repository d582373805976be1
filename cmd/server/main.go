package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/testmanship/exercise-service/internal/cache"
	"github.com/testmanship/exercise-service/internal/config"
	"github.com/testmanship/exercise-service/internal/handlers"
	"github.com/testmanship/exercise-service/internal/middleware"
	"github.com/testmanship/exercise-service/internal/repositories/postgres"
	"github.com/testmanship/exercise-service/internal/services"
	"github.com/testmanship/exercise-service/internal/utils"
	"github.com/testmanship/exercise-service/internal/validator"
	"github.com/testmanship/exercise-service/pkg"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	var appLogger utils.Logger
	if cfg.IsDevelopment() {
		appLogger = utils.NewDevelopmentLogger()
	} else {
		appLogger = utils.NewDefaultLogger()
	}
	logger := utils.ToSlogLogger(appLogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pkg.AutoMigrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		logger.Error("Failed to build zap logger", "error", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	publisher, err := cfg.Events.CreateEventPublisher(logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	repo := postgres.NewRepository(db)
	v := validator.New()
	redisCache := cache.NewRedisCache(redisClient, zapLogger)
	contentCache := cache.NewContentCache()
	picker := cache.NewPicker()

	aiClient := services.NewChatClient(services.AIClientConfig{
		BaseURL:   cfg.AIBaseURL,
		APIKey:    cfg.AIAPIKey,
		Model:     cfg.AIModel,
		MaxTokens: cfg.AIMaxTokens,
	})

	analyticsService := services.NewAnalyticsService(repo, redisCache, logger)
	serviceManager := services.ServiceManager{
		Content:    services.NewContentService(repo, contentCache, picker, v, logger),
		Attempt:    services.NewAttemptService(repo, v, publisher, analyticsService, logger),
		Feedback:   services.NewFeedbackService(aiClient, repo, publisher, logger, cfg.AIModel, cfg.AIMaxTokens),
		Suggestion: services.NewSuggestionService(aiClient, v, publisher, logger, cfg.AIModel, cfg.AIMaxTokens),
		Challenge:  services.NewChallengeService(repo, v, publisher, analyticsService, logger),
		Analytics:  analyticsService,
		Wordsmith:  services.NewWordsmithService(repo, logger),
		Export:     services.NewExportService(repo, v, logger),
	}

	auth := middleware.NewAuthenticator(cfg, repo.User(), logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(appLogger))

	handlerManager := handlers.NewHandlerManager(serviceManager, appLogger)
	handlerManager.SetupRoutes(router, auth)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
