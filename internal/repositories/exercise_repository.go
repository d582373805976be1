package repositories

import (
	"context"

	"github.com/testmanship/exercise-service/internal/models"
)

// ExerciseRepository interface for exercise and exercise content operations
type ExerciseRepository interface {
	// Exercise CRUD
	Create(ctx context.Context, exercise *models.Exercise) error
	GetByID(ctx context.Context, id uint) (*models.Exercise, error)
	GetByIDWithContent(ctx context.Context, id uint) (*models.Exercise, error)
	Update(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*models.Exercise, int64, error)

	// Content operations. GetContent is the fetch the content cache sits
	// in front of: all rows of one type for one exercise.
	GetContent(ctx context.Context, exerciseID uint, exerciseType string) ([]*models.ExerciseContent, error)
	GetContentByID(ctx context.Context, id uint) (*models.ExerciseContent, error)
	CreateContent(ctx context.Context, content *models.ExerciseContent) error
	CreateContentBatch(ctx context.Context, contents []*models.ExerciseContent) error
	UpdateContent(ctx context.Context, content *models.ExerciseContent) error
	DeleteContent(ctx context.Context, id uint) error
	DeleteContentByType(ctx context.Context, exerciseID uint, exerciseType string) error
}
