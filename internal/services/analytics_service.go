package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/testmanship/exercise-service/internal/cache"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
)

// performanceCacheTTL bounds how stale the dashboard aggregates may be.
const performanceCacheTTL = 5 * time.Minute

const trendWeeks = 12

type analyticsService struct {
	repo       repositories.Repository
	redisCache cache.CacheService
	logger     *slog.Logger
}

func NewAnalyticsService(repo repositories.Repository, redisCache cache.CacheService, logger *slog.Logger) AnalyticsService {
	return &analyticsService{
		repo:       repo,
		redisCache: redisCache,
		logger:     logger,
	}
}

// GetPerformance assembles the performance dashboard payload, served
// from Redis when a fresh copy exists.
func (s *analyticsService) GetPerformance(ctx context.Context, userID string) (*PerformanceResponse, error) {
	key := performanceCacheKey(userID)

	var cached PerformanceResponse
	err := s.redisCache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// A broken cache should degrade to database reads, not errors
		s.logger.Warn("Performance cache read failed", "user_id", userID, "error", err)
	}

	response, err := s.assemblePerformance(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.redisCache.Set(ctx, key, response, performanceCacheTTL); err != nil {
		s.logger.Warn("Performance cache write failed", "user_id", userID, "error", err)
	}

	return response, nil
}

func (s *analyticsService) InvalidatePerformance(ctx context.Context, userID string) error {
	return s.redisCache.Delete(ctx, performanceCacheKey(userID))
}

// RecordAttempt folds one graded attempt into the per-user aggregates:
// the skill metric for its exercise type and the running weekly trend.
func (s *analyticsService) RecordAttempt(ctx context.Context, attempt *models.ExerciseAttempt) error {
	accuracy := 0.0
	if attempt.Total > 0 {
		accuracy = float64(attempt.Score) / float64(attempt.Total) * 100
	}

	metric := &models.SkillMetric{
		UserID:           attempt.UserID,
		Category:         "exercises",
		SkillName:        attempt.ExerciseType,
		ProficiencyLevel: accuracy / 10, // 0..10 scale
		UpdatedAt:        time.Now(),
	}
	if err := s.repo.Progress().UpsertSkillMetric(ctx, metric); err != nil {
		return fmt.Errorf("failed to update skill metric: %w", err)
	}

	week := isoWeek(attempt.CompletedAt)
	trends, err := s.repo.Progress().GetTrends(ctx, attempt.UserID, 1)
	if err != nil {
		return fmt.Errorf("failed to load trend: %w", err)
	}

	trend := &models.PerformanceTrend{UserID: attempt.UserID, Week: week}
	if len(trends) > 0 && trends[0].Week == week {
		trend = trends[0]
	}
	// Running average over the attempts counted into this week so far
	n := float64(trend.ChallengesCompleted)
	trend.AvgScore = (trend.AvgScore*n + accuracy) / (n + 1)
	trend.AvgTime = (trend.AvgTime*n + float64(attempt.TimeSpent)) / (n + 1)
	trend.ChallengesCompleted++
	if err := s.repo.Progress().UpsertTrend(ctx, trend); err != nil {
		return fmt.Errorf("failed to update trend: %w", err)
	}

	return s.InvalidatePerformance(ctx, attempt.UserID)
}

func (s *analyticsService) assemblePerformance(ctx context.Context, userID string) (*PerformanceResponse, error) {
	progress, err := s.repo.Progress().GetProgress(ctx, userID)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	// New users simply have no progress row yet

	skills, err := s.repo.Progress().GetSkillMetrics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill metrics: %w", err)
	}

	trends, err := s.repo.Progress().GetTrends(ctx, userID, trendWeeks)
	if err != nil {
		return nil, fmt.Errorf("failed to load trends: %w", err)
	}

	wordCounts, err := s.repo.Progress().GetWordCountSeries(ctx, userID, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to load word count series: %w", err)
	}

	exerciseStats, err := s.repo.Attempt().GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercise stats: %w", err)
	}

	challengeStats, err := s.repo.Challenge().GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenge stats: %w", err)
	}

	return &PerformanceResponse{
		Progress:       progress,
		Skills:         skills,
		Trends:         trends,
		WordCounts:     wordCounts,
		ExerciseStats:  exerciseStats,
		ChallengeStats: challengeStats,
	}, nil
}

func performanceCacheKey(userID string) string {
	return "performance:" + userID
}

// isoWeek formats a timestamp as its ISO week, e.g. "2026-W35".
func isoWeek(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
