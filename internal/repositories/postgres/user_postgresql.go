package postgres

import (
	"context"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserPostgreSQL struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{db: db}
}

// Upsert mirrors a profile row from the auth provider. Existing rows are
// updated in place so repeated logins stay idempotent.
func (u *UserPostgreSQL) Upsert(ctx context.Context, user *models.User) error {
	return u.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "email", "avatar_url", "is_active", "updated_at"}),
		}).
		Create(user).Error
}

func (u *UserPostgreSQL) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *UserPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *UserPostgreSQL) GetByIDs(ctx context.Context, ids []string) ([]*models.User, error) {
	var users []*models.User
	if err := u.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (u *UserPostgreSQL) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (u *UserPostgreSQL) IsActive(ctx context.Context, id string) (bool, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Select("is_active").First(&user, "id = ?", id).Error; err != nil {
		return false, err
	}

	return user.IsActive, nil
}

func (u *UserPostgreSQL) Search(ctx context.Context, query string, limit, offset int) ([]*models.User, error) {
	var users []*models.User
	db := u.db.WithContext(ctx).Model(&models.User{})
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	db = applyPagination(db.Order("full_name asc"), limit, offset)

	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (u *UserPostgreSQL) UpdateLastLogin(ctx context.Context, id string, loginTime time.Time) error {
	return u.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", loginTime).Error
}

func (u *UserPostgreSQL) GetActiveUsers(ctx context.Context, since time.Time) ([]*models.User, error) {
	var users []*models.User
	if err := u.db.WithContext(ctx).
		Where("is_active = ? AND last_login_at >= ?", true, since).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
