package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/validator"
	"gorm.io/datatypes"
)

type challengeService struct {
	repo      repositories.Repository
	validator *validator.Validator
	publisher events.EventPublisher
	analytics AnalyticsService
	logger    *slog.Logger
	ops       *ServiceLogger
}

func NewChallengeService(repo repositories.Repository, v *validator.Validator, publisher events.EventPublisher, analytics AnalyticsService, logger *slog.Logger) ChallengeService {
	return &challengeService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		analytics: analytics,
		logger:    logger,
		ops:       NewServiceLogger(logger, "challenges"),
	}
}

// ===== CORE CRUD OPERATIONS =====

func (s *challengeService) Create(ctx context.Context, userID string, req *CreateChallengeRequest) (created *models.Challenge, err error) {
	op := s.ops.WithOperation(ctx, "create_challenge", userID)
	defer func() {
		var id uint
		if created != nil {
			id = created.ID
		}
		op.LogResult(id, "challenge", err)
	}()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	challenge := &models.Challenge{
		UserID:          userID,
		Title:           req.Title,
		Instructions:    req.Instructions,
		DifficultyLevel: models.DifficultyLevel(req.DifficultyLevel),
		TimeAllocation:  req.TimeAllocation,
		Format:          req.Format,
		WordCount:       req.WordCount,
		Example:         req.Example,
	}

	if challenge.GrammarFocus, err = marshalStringList(req.GrammarFocus); err != nil {
		return nil, err
	}
	if challenge.VocabularyThemes, err = marshalStringList(req.VocabularyThemes); err != nil {
		return nil, err
	}
	if challenge.Checklist, err = marshalStringList(req.Checklist); err != nil {
		return nil, err
	}

	if err := s.repo.Challenge().Create(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}

	event := events.NewChallengeCreatedEvent(challenge.ID, challenge.Title,
		string(challenge.DifficultyLevel), userID, req.FromSuggestion, challenge.CreatedAt)
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish challenge created event",
			"challenge_id", challenge.ID, "error", err)
	}

	return challenge, nil
}

func (s *challengeService) GetByID(ctx context.Context, userID string, id uint) (*models.Challenge, error) {
	challenge, err := s.repo.Challenge().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}

	if challenge.UserID != userID {
		return nil, ErrChallengeNotOwned
	}

	return challenge, nil
}

func (s *challengeService) List(ctx context.Context, userID string, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	return s.repo.Challenge().GetByUser(ctx, userID, filters)
}

func (s *challengeService) Delete(ctx context.Context, userID string, id uint) (err error) {
	op := s.ops.WithOperation(ctx, "delete_challenge", userID)
	defer func() { op.LogResult(id, "challenge", err) }()

	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Challenge().Delete(ctx, id)
}

// ===== SUBMISSIONS =====

func (s *challengeService) Submit(ctx context.Context, userID string, challengeID uint, req *SubmitChallengeRequest) (result *models.ChallengeSubmission, err error) {
	op := s.ops.WithOperation(ctx, "submit_challenge", userID)
	defer func() { op.LogResult(challengeID, "challenge", err) }()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.GetByID(ctx, userID, challengeID); err != nil {
		return nil, err
	}

	completedAt := time.Now()
	submission := &models.ChallengeSubmission{
		ChallengeID: challengeID,
		UserID:      userID,
		Content:     req.Content,
		WordCount:   len(strings.Fields(req.Content)),
		TimeSpent:   req.TimeSpent,
		Performance: req.Performance,
		Feedback:    req.Feedback,
		CompletedAt: completedAt,
	}

	if err := s.repo.Challenge().CreateSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	if err := s.analytics.InvalidatePerformance(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate performance cache",
			"user_id", userID, "error", err)
	}

	event := events.NewChallengeSubmittedEvent(challengeID, userID,
		submission.WordCount, submission.TimeSpent, submission.Performance, completedAt)
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish challenge submitted event",
			"challenge_id", challengeID, "error", err)
	}

	return submission, nil
}

func marshalStringList(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return datatypes.JSON(data), nil
}
