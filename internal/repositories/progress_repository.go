package repositories

import (
	"context"

	"github.com/testmanship/exercise-service/internal/models"
)

// ProgressRepository interface for dashboard aggregate operations
type ProgressRepository interface {
	// Per-user aggregates
	GetProgress(ctx context.Context, userID string) (*models.UserProgress, error)
	UpsertProgress(ctx context.Context, progress *models.UserProgress) error

	// Skill metrics
	GetSkillMetrics(ctx context.Context, userID string) ([]*models.SkillMetric, error)
	UpsertSkillMetric(ctx context.Context, metric *models.SkillMetric) error

	// Weekly trends
	GetTrends(ctx context.Context, userID string, weeks int) ([]*models.PerformanceTrend, error)
	UpsertTrend(ctx context.Context, trend *models.PerformanceTrend) error

	// Time series for the words-per-challenge chart
	GetWordCountSeries(ctx context.Context, userID string, limit int) ([]models.WordCountPoint, error)

	// Community directory
	GetWordsmiths(ctx context.Context, filters WordsmithFilters) ([]*WordsmithEntry, int64, error)
}
