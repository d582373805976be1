package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/testmanship/exercise-service/internal/cache"
	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/validator"
	"gorm.io/datatypes"
)

type contentService struct {
	repo      repositories.Repository
	cache     *cache.ContentCache
	picker    *cache.Picker
	validator *validator.Validator
	logger    *slog.Logger
}

func NewContentService(repo repositories.Repository, contentCache *cache.ContentCache, picker *cache.Picker, v *validator.Validator, logger *slog.Logger) ContentService {
	return &contentService{
		repo:      repo,
		cache:     contentCache,
		picker:    picker,
		validator: v,
		logger:    logger,
	}
}

// ===== REGISTRY ACCESS =====

func (s *contentService) GetTypes() []string {
	types := exercises.Types()
	tags := make([]string, len(types))
	for i, t := range types {
		tags[i] = string(t)
	}
	return tags
}

func (s *contentService) GetTemplate(exerciseType string) (interface{}, error) {
	tag := exercises.Normalize(exerciseType)
	template, err := exercises.TemplateFor(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExerciseType, exerciseType)
	}
	return template, nil
}

// ===== CONTENT ACCESS =====

// FetchContent serves from the cache when possible. A failed database
// fetch leaves the cache entry untouched, so a later retry starts from
// the same miss instead of caching the failure.
func (s *contentService) FetchContent(ctx context.Context, exerciseID uint, exerciseType string) (*ContentResponse, error) {
	tag := exercises.Normalize(exerciseType)
	if !exercises.IsValid(tag) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExerciseType, exerciseType)
	}

	key := cache.ContentKey{ExerciseID: exerciseID, ExerciseType: tag}
	if rows, ok := s.cache.Get(key); ok {
		return s.buildResponse(exerciseID, tag, rows, true), nil
	}

	rows, err := s.fetchAndCache(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(exerciseID, tag, rows, false), nil
}

// RefreshContent drops the cache entry and refetches. When the refetch
// fails the entry stays unset so stale rows cannot resurface.
func (s *contentService) RefreshContent(ctx context.Context, exerciseID uint, exerciseType string) (*ContentResponse, error) {
	tag := exercises.Normalize(exerciseType)
	if !exercises.IsValid(tag) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExerciseType, exerciseType)
	}

	key := cache.ContentKey{ExerciseID: exerciseID, ExerciseType: tag}
	s.cache.Invalidate(key)

	rows, err := s.fetchAndCache(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(exerciseID, tag, rows, false), nil
}

// PickForTopic draws one cached row and resolves it through the player
// dispatch rule: an unknown tag, or a row whose declared type doesn't
// match the selection, comes back as an empty-state rendering rather
// than raw content.
func (s *contentService) PickForTopic(ctx context.Context, exerciseID uint, exerciseType, topic string) (*PickResponse, error) {
	tag := exercises.Normalize(exerciseType)
	if !exercises.IsValid(tag) {
		return &PickResponse{Rendering: exercises.Resolve(exerciseType, tag, nil)}, nil
	}

	key := cache.ContentKey{ExerciseID: exerciseID, ExerciseType: tag}
	rows, ok := s.cache.Get(key)
	if !ok {
		var err error
		rows, err = s.fetchAndCache(ctx, key)
		if err != nil {
			return nil, err
		}
	}

	row, ok := s.picker.PickForTopic(rows, topic)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, topic)
	}

	rendering := exercises.Resolve(exerciseType,
		exercises.ExerciseType(row.ExerciseType), json.RawMessage(row.Content))

	return &PickResponse{
		ID:        row.ID,
		Topic:     row.Topic,
		Rendering: rendering,
	}, nil
}

// ===== AUTHORING =====

func (s *contentService) CreateContent(ctx context.Context, req *CreateContentRequest) (*ContentItem, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	tag := exercises.Normalize(req.ExerciseType)
	if err := s.validator.Content().ValidateContent(tag, req.Content); err != nil {
		return nil, NewBusinessRuleError("content_shape", err.Error(), map[string]interface{}{
			"exercise_type": string(tag),
		})
	}

	if _, err := s.repo.Exercise().GetByID(ctx, req.ExerciseID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("failed to load exercise: %w", err)
	}

	content := &models.ExerciseContent{
		ExerciseID:   req.ExerciseID,
		ExerciseType: string(tag),
		Topic:        req.Topic,
		Content:      datatypes.JSON(req.Content),
	}
	if err := s.repo.Exercise().CreateContent(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	// New rows must be visible on the next fetch
	s.cache.Invalidate(cache.ContentKey{ExerciseID: req.ExerciseID, ExerciseType: tag})

	s.logger.Info("Exercise content created",
		"exercise_id", req.ExerciseID,
		"exercise_type", string(tag),
		"content_id", content.ID)

	return &ContentItem{
		ID:      content.ID,
		Topic:   content.Topic,
		Content: json.RawMessage(content.Content),
	}, nil
}

// ===== HELPERS =====

func (s *contentService) fetchAndCache(ctx context.Context, key cache.ContentKey) ([]models.ExerciseContent, error) {
	fetched, err := s.repo.Exercise().GetContent(ctx, key.ExerciseID, string(key.ExerciseType))
	if err != nil {
		s.logger.Error("Exercise content fetch failed",
			"exercise_id", key.ExerciseID,
			"exercise_type", string(key.ExerciseType),
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrContentFetchFailed, err)
	}

	rows := make([]models.ExerciseContent, len(fetched))
	for i, row := range fetched {
		rows[i] = *row
	}
	s.cache.Put(key, rows)

	return rows, nil
}

func (s *contentService) buildResponse(exerciseID uint, tag exercises.ExerciseType, rows []models.ExerciseContent, fromCache bool) *ContentResponse {
	items := make([]ContentItem, len(rows))
	for i, row := range rows {
		items[i] = ContentItem{
			ID:      row.ID,
			Topic:   row.Topic,
			Content: json.RawMessage(row.Content),
		}
	}

	return &ContentResponse{
		ExerciseID:   exerciseID,
		ExerciseType: string(tag),
		Topics:       s.picker.Topics(rows),
		Items:        items,
		FromCache:    fromCache,
	}
}
