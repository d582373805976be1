package repositories

import (
	"time"

	"github.com/testmanship/exercise-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type ChallengeFilters struct {
	UserID     *string                 `json:"user_id"`
	Difficulty *models.DifficultyLevel `json:"difficulty"`
	DateFrom   *time.Time              `json:"date_from"`
	DateTo     *time.Time              `json:"date_to"`
	Limit      int                     `json:"limit"`
	Offset     int                     `json:"offset"`
	SortBy     string                  `json:"sort_by"`    // "created_at", "title", "difficulty_level"
	SortOrder  string                  `json:"sort_order"` // "asc", "desc"
}

type AttemptFilters struct {
	UserID       *string    `json:"user_id"`
	ExerciseID   *uint      `json:"exercise_id"`
	ExerciseType *string    `json:"exercise_type"`
	DateFrom     *time.Time `json:"date_from"`
	DateTo       *time.Time `json:"date_to"`
	Limit        int        `json:"limit"`
	Offset       int        `json:"offset"`
	SortBy       string     `json:"sort_by"`
	SortOrder    string     `json:"sort_order"`
}

type WordsmithFilters struct {
	Search string `json:"search"` // Matches name or email
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type UserAttemptStats struct {
	TotalAttempts    int                  `json:"total_attempts"`
	AverageAccuracy  float64              `json:"average_accuracy"` // 0..100
	TotalTimeSpent   int                  `json:"total_time_spent"` // Seconds
	AttemptsByType   map[string]int       `json:"attempts_by_type"`
	AccuracyByType   map[string]float64   `json:"accuracy_by_type"`
}

type ChallengeStats struct {
	TotalChallenges     int     `json:"total_challenges"`
	CompletedChallenges int     `json:"completed_challenges"`
	AveragePerformance  float64 `json:"average_performance"`
	TotalWordsWritten   int     `json:"total_words_written"`
	TotalTimeSpent      int     `json:"total_time_spent"`
}

// WordsmithEntry is one row of the community directory: a user plus the
// aggregates the dashboard card shows.
type WordsmithEntry struct {
	User                models.User `json:"user"`
	ChallengesCompleted int         `json:"challenges_completed"`
	TotalWordsWritten   int         `json:"total_words_written"`
	AveragePerformance  float64     `json:"average_performance"`
	LastActiveAt        *time.Time  `json:"last_active_at"`
}
