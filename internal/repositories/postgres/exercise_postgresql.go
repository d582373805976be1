package postgres

import (
	"context"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
)

type ExercisePostgreSQL struct {
	db *gorm.DB
}

func NewExercisePostgreSQL(db *gorm.DB) repositories.ExerciseRepository {
	return &ExercisePostgreSQL{db: db}
}

func (e *ExercisePostgreSQL) Create(ctx context.Context, exercise *models.Exercise) error {
	return e.db.WithContext(ctx).Create(exercise).Error
}

func (e *ExercisePostgreSQL) GetByID(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := e.db.WithContext(ctx).First(&exercise, id).Error; err != nil {
		return nil, err
	}

	return &exercise, nil
}

func (e *ExercisePostgreSQL) GetByIDWithContent(ctx context.Context, id uint) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := e.db.WithContext(ctx).
		Preload("Content").
		First(&exercise, id).Error; err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (e *ExercisePostgreSQL) Update(ctx context.Context, exercise *models.Exercise) error {
	return e.db.WithContext(ctx).Save(exercise).Error
}

func (e *ExercisePostgreSQL) Delete(ctx context.Context, id uint) error {
	return e.db.WithContext(ctx).Delete(&models.Exercise{}, id).Error
}

func (e *ExercisePostgreSQL) List(ctx context.Context, limit, offset int) ([]*models.Exercise, int64, error) {
	var exercises []*models.Exercise
	var total int64

	query := e.db.WithContext(ctx).Model(&models.Exercise{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("topic asc")
	query = applyPagination(query, limit, offset)
	if err := query.Find(&exercises).Error; err != nil {
		return nil, 0, err
	}

	return exercises, total, nil
}

func (e *ExercisePostgreSQL) GetContent(ctx context.Context, exerciseID uint, exerciseType string) ([]*models.ExerciseContent, error) {
	var contents []*models.ExerciseContent
	if err := e.db.WithContext(ctx).
		Where("exercise_id = ? AND exercise_type = ?", exerciseID, exerciseType).
		Order("id asc").
		Find(&contents).Error; err != nil {
		return nil, err
	}

	return contents, nil
}

func (e *ExercisePostgreSQL) GetContentByID(ctx context.Context, id uint) (*models.ExerciseContent, error) {
	var content models.ExerciseContent
	if err := e.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}

	return &content, nil
}

func (e *ExercisePostgreSQL) CreateContent(ctx context.Context, content *models.ExerciseContent) error {
	return e.db.WithContext(ctx).Create(content).Error
}

func (e *ExercisePostgreSQL) CreateContentBatch(ctx context.Context, contents []*models.ExerciseContent) error {
	if len(contents) == 0 {
		return nil
	}
	return e.db.WithContext(ctx).Create(&contents).Error
}

func (e *ExercisePostgreSQL) UpdateContent(ctx context.Context, content *models.ExerciseContent) error {
	return e.db.WithContext(ctx).Save(content).Error
}

func (e *ExercisePostgreSQL) DeleteContent(ctx context.Context, id uint) error {
	return e.db.WithContext(ctx).Delete(&models.ExerciseContent{}, id).Error
}

func (e *ExercisePostgreSQL) DeleteContentByType(ctx context.Context, exerciseID uint, exerciseType string) error {
	return e.db.WithContext(ctx).
		Where("exercise_id = ? AND exercise_type = ?", exerciseID, exerciseType).
		Delete(&models.ExerciseContent{}).Error
}
