package postgres

import (
	"context"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a *AttemptPostgreSQL) Create(ctx context.Context, attempt *models.ExerciseAttempt) error {
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a *AttemptPostgreSQL) GetByID(ctx context.Context, id string) (*models.ExerciseAttempt, error) {
	var attempt models.ExerciseAttempt
	if err := a.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &attempt, nil
}

func (a *AttemptPostgreSQL) GetByIDWithDetails(ctx context.Context, id string) (*models.ExerciseAttempt, error) {
	var attempt models.ExerciseAttempt
	if err := a.db.WithContext(ctx).
		Preload("Exercise").
		Preload("Content").
		First(&attempt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a *AttemptPostgreSQL) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	var attempts []*models.ExerciseAttempt
	var total int64

	// apply filter first
	query := a.db.WithContext(ctx).Model(&models.ExerciseAttempt{})
	query = a.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// then apply pagination and sorting
	query = applySort(query, filters.SortBy, filters.SortOrder, map[string]bool{
		"created_at":   true,
		"completed_at": true,
		"score":        true,
	})
	query = applyPagination(query, filters.Limit, filters.Offset)

	if err := query.Preload("Exercise").Find(&attempts).Error; err != nil {
		return nil, 0, err
	}

	return attempts, total, nil
}

func (a *AttemptPostgreSQL) GetByUser(ctx context.Context, userID string, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	filters.UserID = &userID
	return a.List(ctx, filters)
}

func (a *AttemptPostgreSQL) GetByExercise(ctx context.Context, exerciseID uint, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error) {
	filters.ExerciseID = &exerciseID
	return a.List(ctx, filters)
}

func (a *AttemptPostgreSQL) GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*models.ExerciseAttempt, error) {
	var attempts []*models.ExerciseAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ? AND completed_at BETWEEN ? AND ?", userID, from, to).
		Order("completed_at asc").
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	return attempts, nil
}

func (a *AttemptPostgreSQL) GetUserStats(ctx context.Context, userID string) (*repositories.UserAttemptStats, error) {
	var attempts []*models.ExerciseAttempt
	if err := a.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&attempts).Error; err != nil {
		return nil, err
	}

	stats := &repositories.UserAttemptStats{
		AttemptsByType: make(map[string]int),
		AccuracyByType: make(map[string]float64),
	}

	var accuracySum float64
	accuracyByType := make(map[string]float64)
	for _, attempt := range attempts {
		stats.TotalAttempts++
		stats.TotalTimeSpent += attempt.TimeSpent
		stats.AttemptsByType[attempt.ExerciseType]++

		accuracy := 0.0
		if attempt.Total > 0 {
			accuracy = float64(attempt.Score) / float64(attempt.Total) * 100
		}
		accuracySum += accuracy
		accuracyByType[attempt.ExerciseType] += accuracy
	}

	if stats.TotalAttempts > 0 {
		stats.AverageAccuracy = accuracySum / float64(stats.TotalAttempts)
	}
	for exerciseType, sum := range accuracyByType {
		stats.AccuracyByType[exerciseType] = sum / float64(stats.AttemptsByType[exerciseType])
	}

	return stats, nil
}

func (a *AttemptPostgreSQL) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := a.db.WithContext(ctx).
		Model(&models.ExerciseAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (a *AttemptPostgreSQL) applyFilters(query *gorm.DB, filters repositories.AttemptFilters) *gorm.DB {
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.ExerciseID != nil {
		query = query.Where("exercise_id = ?", *filters.ExerciseID)
	}
	if filters.ExerciseType != nil {
		query = query.Where("exercise_type = ?", *filters.ExerciseType)
	}
	if filters.DateFrom != nil {
		query = query.Where("completed_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("completed_at <= ?", *filters.DateTo)
	}
	return query
}
