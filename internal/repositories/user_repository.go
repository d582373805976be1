package repositories

import (
	"context"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
)

// UserRepository interface for user operations (identity lives in the
// auth provider; this service mirrors the profile fields it displays)
type UserRepository interface {
	// Basic operations
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]*models.User, error)

	// Validation and checks
	ExistsByID(ctx context.Context, id string) (bool, error)
	IsActive(ctx context.Context, id string) (bool, error)

	// Search operations
	Search(ctx context.Context, query string, limit, offset int) ([]*models.User, error)

	// Activity tracking
	UpdateLastLogin(ctx context.Context, id string, loginTime time.Time) error
	GetActiveUsers(ctx context.Context, since time.Time) ([]*models.User, error)
}
