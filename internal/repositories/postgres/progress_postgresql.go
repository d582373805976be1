package postgres

import (
	"context"
	"errors"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressPostgreSQL struct {
	db *gorm.DB
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{db: db}
}

func (p *ProgressPostgreSQL) GetProgress(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := p.db.WithContext(ctx).First(&progress, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserProgress{UserID: userID}, nil
		}
		return nil, err
	}

	return &progress, nil
}

func (p *ProgressPostgreSQL) UpsertProgress(ctx context.Context, progress *models.UserProgress) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(progress).Error
}

func (p *ProgressPostgreSQL) GetSkillMetrics(ctx context.Context, userID string) ([]*models.SkillMetric, error) {
	var metrics []*models.SkillMetric
	if err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category asc, skill_name asc").
		Find(&metrics).Error; err != nil {
		return nil, err
	}

	return metrics, nil
}

func (p *ProgressPostgreSQL) UpsertSkillMetric(ctx context.Context, metric *models.SkillMetric) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "skill_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"proficiency_level", "improvement_rate", "updated_at"}),
		}).
		Create(metric).Error
}

func (p *ProgressPostgreSQL) GetTrends(ctx context.Context, userID string, weeks int) ([]*models.PerformanceTrend, error) {
	var trends []*models.PerformanceTrend
	query := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week desc")
	if weeks > 0 {
		query = query.Limit(weeks)
	}
	if err := query.Find(&trends).Error; err != nil {
		return nil, err
	}

	return trends, nil
}

func (p *ProgressPostgreSQL) UpsertTrend(ctx context.Context, trend *models.PerformanceTrend) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week"}},
			UpdateAll: true,
		}).
		Create(trend).Error
}

func (p *ProgressPostgreSQL) GetWordCountSeries(ctx context.Context, userID string, limit int) ([]models.WordCountPoint, error) {
	var points []models.WordCountPoint
	query := p.db.WithContext(ctx).
		Model(&models.ChallengeSubmission{}).
		Select("word_count, completed_at").
		Where("user_id = ?", userID).
		Order("completed_at asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&points).Error; err != nil {
		return nil, err
	}

	return points, nil
}

func (p *ProgressPostgreSQL) GetWordsmiths(ctx context.Context, filters repositories.WordsmithFilters) ([]*repositories.WordsmithEntry, int64, error) {
	var users []*models.User
	var total int64

	query := p.db.WithContext(ctx).Model(&models.User{}).Where("is_active = ?", true)
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("full_name asc"), filters.Limit, filters.Offset)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	entries := make([]*repositories.WordsmithEntry, 0, len(users))
	for _, user := range users {
		entry := &repositories.WordsmithEntry{
			User:         *user,
			LastActiveAt: user.LastLoginAt,
		}

		type submissionAgg struct {
			Completed      int64
			TotalWords     int64
			AvgPerformance float64
		}
		var agg submissionAgg
		if err := p.db.WithContext(ctx).
			Model(&models.ChallengeSubmission{}).
			Select("COUNT(*) as completed, COALESCE(SUM(word_count), 0) as total_words, COALESCE(AVG(performance), 0) as avg_performance").
			Where("user_id = ?", user.ID).
			Scan(&agg).Error; err != nil {
			return nil, 0, err
		}

		entry.ChallengesCompleted = int(agg.Completed)
		entry.TotalWordsWritten = int(agg.TotalWords)
		entry.AveragePerformance = agg.AvgPerformance
		entries = append(entries, entry)
	}

	return entries, total, nil
}
