package repositories

import (
	"context"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
)

// AttemptRepository interface for graded exercise attempt operations
type AttemptRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, attempt *models.ExerciseAttempt) error
	GetByID(ctx context.Context, id string) (*models.ExerciseAttempt, error)
	GetByIDWithDetails(ctx context.Context, id string) (*models.ExerciseAttempt, error) // Include exercise, content

	// Query operations
	List(ctx context.Context, filters AttemptFilters) ([]*models.ExerciseAttempt, int64, error)
	GetByUser(ctx context.Context, userID string, filters AttemptFilters) ([]*models.ExerciseAttempt, int64, error)
	GetByExercise(ctx context.Context, exerciseID uint, filters AttemptFilters) ([]*models.ExerciseAttempt, int64, error)
	GetByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*models.ExerciseAttempt, error)

	// Statistics and analytics
	GetUserStats(ctx context.Context, userID string) (*UserAttemptStats, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
