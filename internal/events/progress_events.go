package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of progress events
type EventType string

const (
	// Exercise events
	EventExerciseCompleted EventType = "exercise.completed"

	// Challenge events
	EventChallengeCreated   EventType = "challenge.created"
	EventChallengeSubmitted EventType = "challenge.submitted"

	// AI events
	EventFeedbackGenerated    EventType = "feedback.generated"
	EventSuggestionsGenerated EventType = "suggestions.generated"
)

// ProgressEvent is the base event structure published to the progress
// topic. Downstream consumers (streak tracking, notifications) fan out
// from here.
type ProgressEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Exercise event payloads

type ExerciseCompletedEvent struct {
	AttemptID    string    `json:"attempt_id"`
	ExerciseID   uint      `json:"exercise_id"`
	ExerciseType string    `json:"exercise_type"`
	Topic        string    `json:"topic"`
	UserID       string    `json:"user_id"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	TimeSpent    int       `json:"time_spent"` // Seconds
	CompletedAt  time.Time `json:"completed_at"`
}

// Challenge event payloads

type ChallengeCreatedEvent struct {
	ChallengeID     uint      `json:"challenge_id"`
	Title           string    `json:"title"`
	DifficultyLevel string    `json:"difficulty_level"`
	UserID          string    `json:"user_id"`
	FromSuggestion  bool      `json:"from_suggestion"`
	CreatedAt       time.Time `json:"created_at"`
}

type ChallengeSubmittedEvent struct {
	ChallengeID uint      `json:"challenge_id"`
	UserID      string    `json:"user_id"`
	WordCount   int       `json:"word_count"`
	TimeSpent   int       `json:"time_spent"` // Seconds
	Performance float64   `json:"performance"`
	CompletedAt time.Time `json:"completed_at"`
}

// AI event payloads

type FeedbackGeneratedEvent struct {
	ChallengeID uint      `json:"challenge_id"`
	UserID      string    `json:"user_id"`
	WordCount   int       `json:"word_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

type SuggestionsGeneratedEvent struct {
	UserID          string    `json:"user_id"`
	DifficultyLevel string    `json:"difficulty_level"`
	Count           int       `json:"count"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Event factory functions

func NewExerciseCompletedEvent(attemptID string, exerciseID uint, exerciseType, topic, userID string, score, total, timeSpent int, completedAt time.Time) *ProgressEvent {
	return &ProgressEvent{
		ID:        GenerateEventID(),
		Type:      EventExerciseCompleted,
		Timestamp: time.Now(),
		Source:    "exercise-service",
		Version:   "1.0",
		Data: ExerciseCompletedEvent{
			AttemptID:    attemptID,
			ExerciseID:   exerciseID,
			ExerciseType: exerciseType,
			Topic:        topic,
			UserID:       userID,
			Score:        score,
			Total:        total,
			TimeSpent:    timeSpent,
			CompletedAt:  completedAt,
		},
	}
}

func NewChallengeCreatedEvent(challengeID uint, title, difficultyLevel, userID string, fromSuggestion bool, createdAt time.Time) *ProgressEvent {
	return &ProgressEvent{
		ID:        GenerateEventID(),
		Type:      EventChallengeCreated,
		Timestamp: time.Now(),
		Source:    "exercise-service",
		Version:   "1.0",
		Data: ChallengeCreatedEvent{
			ChallengeID:     challengeID,
			Title:           title,
			DifficultyLevel: difficultyLevel,
			UserID:          userID,
			FromSuggestion:  fromSuggestion,
			CreatedAt:       createdAt,
		},
	}
}

func NewChallengeSubmittedEvent(challengeID uint, userID string, wordCount, timeSpent int, performance float64, completedAt time.Time) *ProgressEvent {
	return &ProgressEvent{
		ID:        GenerateEventID(),
		Type:      EventChallengeSubmitted,
		Timestamp: time.Now(),
		Source:    "exercise-service",
		Version:   "1.0",
		Data: ChallengeSubmittedEvent{
			ChallengeID: challengeID,
			UserID:      userID,
			WordCount:   wordCount,
			TimeSpent:   timeSpent,
			Performance: performance,
			CompletedAt: completedAt,
		},
	}
}

func NewFeedbackGeneratedEvent(challengeID uint, userID string, wordCount int) *ProgressEvent {
	now := time.Now()
	return &ProgressEvent{
		ID:        GenerateEventID(),
		Type:      EventFeedbackGenerated,
		Timestamp: now,
		Source:    "exercise-service",
		Version:   "1.0",
		Data: FeedbackGeneratedEvent{
			ChallengeID: challengeID,
			UserID:      userID,
			WordCount:   wordCount,
			GeneratedAt: now,
		},
	}
}

func NewSuggestionsGeneratedEvent(userID, difficultyLevel string, count int) *ProgressEvent {
	now := time.Now()
	return &ProgressEvent{
		ID:        GenerateEventID(),
		Type:      EventSuggestionsGenerated,
		Timestamp: now,
		Source:    "exercise-service",
		Version:   "1.0",
		Data: SuggestionsGeneratedEvent{
			UserID:          userID,
			DifficultyLevel: difficultyLevel,
			Count:           count,
			GeneratedAt:     now,
		},
	}
}

// GenerateEventID returns a unique event identifier
func GenerateEventID() string {
	return uuid.NewString()
}
