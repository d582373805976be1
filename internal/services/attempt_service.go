package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/validator"
)

type attemptService struct {
	repo      repositories.Repository
	validator *validator.Validator
	publisher events.EventPublisher
	analytics AnalyticsService
	logger    *slog.Logger
	ops       *ServiceLogger
}

func NewAttemptService(repo repositories.Repository, v *validator.Validator, publisher events.EventPublisher, analytics AnalyticsService, logger *slog.Logger) AttemptService {
	return &attemptService{
		repo:      repo,
		validator: v,
		publisher: publisher,
		analytics: analytics,
		logger:    logger,
		ops:       NewServiceLogger(logger, "attempts"),
	}
}

// ===== CORE ATTEMPT OPERATIONS =====

// SubmitAttempt grades the answer against the stored content and records
// the outcome. Score and total are fixed here; nothing recomputes them
// afterwards.
func (s *attemptService) SubmitAttempt(ctx context.Context, userID string, req *SubmitAttemptRequest) (resp *AttemptResponse, err error) {
	op := s.ops.WithOperation(ctx, "submit_attempt", userID)
	defer func() { op.LogResult(req.ExerciseID, "attempt", err) }()

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	content, err := s.repo.Exercise().GetContentByID(ctx, req.ContentID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrContentNotFound
		}
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	tag := exercises.Normalize(req.ExerciseType)
	if content.ExerciseID != req.ExerciseID || exercises.Normalize(content.ExerciseType) != tag {
		return nil, NewBusinessRuleError("content_mismatch",
			"content row does not belong to the submitted exercise and type",
			map[string]interface{}{
				"content_id":    req.ContentID,
				"exercise_id":   req.ExerciseID,
				"exercise_type": req.ExerciseType,
			})
	}

	attempt, err := exercises.NewAttempt(tag, json.RawMessage(content.Content))
	if err != nil {
		return nil, s.mapGradingError(err)
	}

	completedAt := time.Now()
	record := &models.ExerciseAttempt{
		ID:           uuid.NewString(),
		UserID:       userID,
		ExerciseID:   req.ExerciseID,
		ContentID:    req.ContentID,
		ExerciseType: string(tag),
		TimeSpent:    req.TimeSpent,
		CompletedAt:  completedAt,
	}

	result, err := attempt.Complete(req.Answer, func(score, total int) {
		record.Score = score
		record.Total = total
	})
	if err != nil {
		return nil, s.mapGradingError(err)
	}

	if err := s.repo.Attempt().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist attempt: %w", err)
	}

	if err := s.analytics.RecordAttempt(ctx, record); err != nil {
		// Aggregates can be rebuilt; the graded attempt must not be lost
		s.logger.Warn("Failed to update analytics for attempt",
			"attempt_id", record.ID, "error", err)
	}

	event := events.NewExerciseCompletedEvent(record.ID, record.ExerciseID, record.ExerciseType,
		content.Topic, userID, record.Score, record.Total, record.TimeSpent, completedAt)
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish exercise completed event",
			"attempt_id", record.ID, "error", err)
	}

	accuracy := 0.0
	if result.Total > 0 {
		accuracy = float64(result.Score) / float64(result.Total) * 100
	}

	return &AttemptResponse{
		ID:          record.ID,
		Score:       result.Score,
		Total:       result.Total,
		Accuracy:    accuracy,
		CompletedAt: completedAt,
	}, nil
}

func (s *attemptService) GetAttempt(ctx context.Context, userID, attemptID string) (*models.ExerciseAttempt, error) {
	attempt, err := s.repo.Attempt().GetByIDWithDetails(ctx, attemptID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}

	if attempt.UserID != userID {
		return nil, ErrAttemptAccessDenied
	}

	return attempt, nil
}

func (s *attemptService) GetUserAttempts(ctx context.Context, userID string, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	return s.repo.Attempt().GetByUser(ctx, userID, filters)
}

// mapGradingError translates registry errors into service errors
func (s *attemptService) mapGradingError(err error) error {
	switch {
	case errors.Is(err, exercises.ErrUnknownType):
		return fmt.Errorf("%w: %v", ErrInvalidExerciseType, err)
	case errors.Is(err, exercises.ErrEmptyContent), errors.Is(err, exercises.ErrInvalidContent):
		return NewBusinessRuleError("ungradable_content", err.Error(), nil)
	default:
		return fmt.Errorf("grading failed: %w", err)
	}
}
