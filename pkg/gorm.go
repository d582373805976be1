package pkg

import (
	"fmt"

	"github.com/testmanship/exercise-service/internal/config"
	"github.com/testmanship/exercise-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Environment == "production" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate keeps the schema aligned with the model definitions.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.ExerciseContent{},
		&models.ExerciseAttempt{},
		&models.Challenge{},
		&models.ChallengeSubmission{},
		&models.UserProgress{},
		&models.SkillMetric{},
		&models.PerformanceTrend{},
	)
}
