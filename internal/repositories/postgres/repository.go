package postgres

import (
	"github.com/testmanship/exercise-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	challenge repositories.ChallengeRepository
	exercise  repositories.ExerciseRepository
	attempt   repositories.AttemptRepository
	user      repositories.UserRepository
	progress  repositories.ProgressRepository
}

// NewRepository wires the per-entity PostgreSQL repositories into one
// aggregate.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		challenge: NewChallengePostgreSQL(db),
		exercise:  NewExercisePostgreSQL(db),
		attempt:   NewAttemptPostgreSQL(db),
		user:      NewUserPostgreSQL(db),
		progress:  NewProgressPostgreSQL(db),
	}
}

func (r *repository) Challenge() repositories.ChallengeRepository {
	return r.challenge
}

func (r *repository) Exercise() repositories.ExerciseRepository {
	return r.exercise
}

func (r *repository) Attempt() repositories.AttemptRepository {
	return r.attempt
}

func (r *repository) User() repositories.UserRepository {
	return r.user
}

func (r *repository) Progress() repositories.ProgressRepository {
	return r.progress
}
