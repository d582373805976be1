package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories so services take one
// dependency instead of five.
type Repository interface {
	Challenge() ChallengeRepository
	Exercise() ExerciseRepository
	Attempt() AttemptRepository
	User() UserRepository
	Progress() ProgressRepository
}

// IsNotFoundError reports whether err is the storage layer's record-not-
// found condition.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
