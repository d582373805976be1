package repositories

import (
	"context"

	"github.com/testmanship/exercise-service/internal/models"
)

// ChallengeRepository interface for writing challenge operations
type ChallengeRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, challenge *models.Challenge) error
	GetByID(ctx context.Context, id uint) (*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	Delete(ctx context.Context, id uint) error

	// Query operations
	List(ctx context.Context, filters ChallengeFilters) ([]*models.Challenge, int64, error)
	GetByUser(ctx context.Context, userID string, filters ChallengeFilters) ([]*models.Challenge, int64, error)
	GetLatestByUser(ctx context.Context, userID string) (*models.Challenge, error)

	// Submissions
	CreateSubmission(ctx context.Context, submission *models.ChallengeSubmission) error
	GetSubmissions(ctx context.Context, challengeID uint) ([]*models.ChallengeSubmission, error)
	GetSubmissionsByUser(ctx context.Context, userID string, limit int) ([]*models.ChallengeSubmission, error)

	// Statistics
	GetUserStats(ctx context.Context, userID string) (*ChallengeStats, error)
}
