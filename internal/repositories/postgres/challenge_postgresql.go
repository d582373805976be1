package postgres

import (
	"context"
	"errors"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
)

type ChallengePostgreSQL struct {
	db *gorm.DB
}

func NewChallengePostgreSQL(db *gorm.DB) repositories.ChallengeRepository {
	return &ChallengePostgreSQL{db: db}
}

func (c *ChallengePostgreSQL) Create(ctx context.Context, challenge *models.Challenge) error {
	return c.db.WithContext(ctx).Create(challenge).Error
}

func (c *ChallengePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := c.db.WithContext(ctx).Preload("Creator").First(&challenge, id).Error; err != nil {
		return nil, err
	}

	return &challenge, nil
}

func (c *ChallengePostgreSQL) Update(ctx context.Context, challenge *models.Challenge) error {
	return c.db.WithContext(ctx).Save(challenge).Error
}

func (c *ChallengePostgreSQL) Delete(ctx context.Context, id uint) error {
	return c.db.WithContext(ctx).Delete(&models.Challenge{}, id).Error
}

func (c *ChallengePostgreSQL) List(ctx context.Context, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	var challenges []*models.Challenge
	var total int64

	query := c.db.WithContext(ctx).Model(&models.Challenge{})
	query = c.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applySort(query, filters.SortBy, filters.SortOrder, map[string]bool{
		"created_at":       true,
		"title":            true,
		"difficulty_level": true,
	})
	query = applyPagination(query, filters.Limit, filters.Offset)

	if err := query.Preload("Creator").Find(&challenges).Error; err != nil {
		return nil, 0, err
	}

	return challenges, total, nil
}

func (c *ChallengePostgreSQL) GetByUser(ctx context.Context, userID string, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error) {
	filters.UserID = &userID
	return c.List(ctx, filters)
}

func (c *ChallengePostgreSQL) GetLatestByUser(ctx context.Context, userID string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&challenge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &challenge, nil
}

func (c *ChallengePostgreSQL) CreateSubmission(ctx context.Context, submission *models.ChallengeSubmission) error {
	return c.db.WithContext(ctx).Create(submission).Error
}

func (c *ChallengePostgreSQL) GetSubmissions(ctx context.Context, challengeID uint) ([]*models.ChallengeSubmission, error) {
	var submissions []*models.ChallengeSubmission
	if err := c.db.WithContext(ctx).
		Where("challenge_id = ?", challengeID).
		Order("completed_at desc").
		Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (c *ChallengePostgreSQL) GetSubmissionsByUser(ctx context.Context, userID string, limit int) ([]*models.ChallengeSubmission, error) {
	var submissions []*models.ChallengeSubmission
	query := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Preload("Challenge").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

func (c *ChallengePostgreSQL) GetUserStats(ctx context.Context, userID string) (*repositories.ChallengeStats, error) {
	stats := &repositories.ChallengeStats{}

	var totalChallenges int64
	if err := c.db.WithContext(ctx).
		Model(&models.Challenge{}).
		Where("user_id = ?", userID).
		Count(&totalChallenges).Error; err != nil {
		return nil, err
	}
	stats.TotalChallenges = int(totalChallenges)

	type submissionAgg struct {
		Completed      int64
		AvgPerformance float64
		TotalWords     int64
		TotalTime      int64
	}
	var agg submissionAgg
	if err := c.db.WithContext(ctx).
		Model(&models.ChallengeSubmission{}).
		Select("COUNT(*) as completed, COALESCE(AVG(performance), 0) as avg_performance, COALESCE(SUM(word_count), 0) as total_words, COALESCE(SUM(time_spent), 0) as total_time").
		Where("user_id = ?", userID).
		Scan(&agg).Error; err != nil {
		return nil, err
	}

	stats.CompletedChallenges = int(agg.Completed)
	stats.AveragePerformance = agg.AvgPerformance
	stats.TotalWordsWritten = int(agg.TotalWords)
	stats.TotalTimeSpent = int(agg.TotalTime)

	return stats, nil
}

func (c *ChallengePostgreSQL) applyFilters(query *gorm.DB, filters repositories.ChallengeFilters) *gorm.DB {
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty_level = ?", *filters.Difficulty)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}
