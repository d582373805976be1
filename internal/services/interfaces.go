package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/testmanship/exercise-service/internal/exercises"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
)

// ===== CONTENT =====

// ContentItem is one playable content row with its raw payload.
type ContentItem struct {
	ID      uint            `json:"id"`
	Topic   string          `json:"topic"`
	Content json.RawMessage `json:"content"`
}

// PickResponse is one drawn row resolved through the player dispatch
// rule. When the rendering is empty the dashboard shows the blank
// template placeholder instead of content.
type PickResponse struct {
	ID    uint   `json:"id,omitempty"`
	Topic string `json:"topic,omitempty"`
	exercises.Rendering
}

// ContentResponse is everything the exercise player needs for one
// (exercise, type) pair: the rows plus the topics they span.
type ContentResponse struct {
	ExerciseID   uint          `json:"exercise_id"`
	ExerciseType string        `json:"exercise_type"`
	Topics       []string      `json:"topics"`
	Items        []ContentItem `json:"items"`
	FromCache    bool          `json:"from_cache"`
}

type ContentService interface {
	// Types and templates from the registry
	GetTypes() []string
	GetTemplate(exerciseType string) (interface{}, error)

	// Cache-first content access
	FetchContent(ctx context.Context, exerciseID uint, exerciseType string) (*ContentResponse, error)
	RefreshContent(ctx context.Context, exerciseID uint, exerciseType string) (*ContentResponse, error)
	PickForTopic(ctx context.Context, exerciseID uint, exerciseType, topic string) (*PickResponse, error)

	// Authoring
	CreateContent(ctx context.Context, req *CreateContentRequest) (*ContentItem, error)
}

type CreateContentRequest struct {
	ExerciseID   uint            `json:"exercise_id" validate:"required"`
	ExerciseType string          `json:"exercise_type" validate:"required,exercise_type"`
	Topic        string          `json:"topic" validate:"required,max=200"`
	Content      json.RawMessage `json:"content" validate:"required"`
}

// ===== ATTEMPTS =====

type SubmitAttemptRequest struct {
	ExerciseID   uint            `json:"exercise_id" validate:"required"`
	ContentID    uint            `json:"content_id" validate:"required"`
	ExerciseType string          `json:"exercise_type" validate:"required,exercise_type"`
	Answer       json.RawMessage `json:"answer" validate:"required"`
	TimeSpent    int             `json:"time_spent" validate:"min=0"`
}

type AttemptResponse struct {
	ID          string    `json:"id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Accuracy    float64   `json:"accuracy"` // 0..100
	CompletedAt time.Time `json:"completed_at"`
}

type AttemptService interface {
	SubmitAttempt(ctx context.Context, userID string, req *SubmitAttemptRequest) (*AttemptResponse, error)
	GetAttempt(ctx context.Context, userID, attemptID string) (*models.ExerciseAttempt, error)
	GetUserAttempts(ctx context.Context, userID string, filters repositories.AttemptFilters) ([]*models.ExerciseAttempt, int64, error)
}

// ===== AI FEEDBACK =====

type FeedbackRequest struct {
	ChallengeID uint   `json:"challenge_id" validate:"required"`
	Text        string `json:"text"`
}

type FeedbackResponse struct {
	Feedback    string    `json:"feedback"`
	GeneratedAt time.Time `json:"generated_at"`
}

type FeedbackService interface {
	GenerateFeedback(ctx context.Context, userID string, req *FeedbackRequest) (*FeedbackResponse, error)

	// SetActiveChallenge clears per-user feedback state when the user
	// switches to a different challenge.
	SetActiveChallenge(userID string, challengeID uint)
}

// ===== AI SUGGESTIONS =====

type SuggestionRequest struct {
	Title           string `json:"title" validate:"max=200"`
	DifficultyLevel string `json:"difficulty_level" validate:"required,difficulty_level"`
	Format          string `json:"format" validate:"max=100"`
	TimeAllocation  int    `json:"time_allocation" validate:"min=0,max=180"` // Minutes
	Count           int    `json:"count" validate:"min=1,max=5"`
}

type ChallengeSuggestion struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	KeyPoints        []string `json:"keyPoints"`
	GrammarFocus     []string `json:"grammarFocus"`
	VocabularyThemes []string `json:"vocabularyThemes"`
	Checklist        []string `json:"checklist"`
	WordCount        int      `json:"wordCount"`
	TimeAllocation   int      `json:"timeAllocation"` // Minutes
}

type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, userID string, req *SuggestionRequest) ([]ChallengeSuggestion, error)

	// FormatInstructions renders a suggestion into the instructions block
	// a challenge stores. displayedTimeAllocation fills in when the
	// suggestion carries no allocation of its own.
	FormatInstructions(suggestion ChallengeSuggestion, displayedTimeAllocation int) string
}

// ===== CHALLENGES =====

type CreateChallengeRequest struct {
	Title            string   `json:"title" validate:"required,min=1,max=200"`
	Instructions     string   `json:"instructions" validate:"required"`
	DifficultyLevel  string   `json:"difficulty_level" validate:"required,difficulty_level"`
	TimeAllocation   int      `json:"time_allocation" validate:"required,min=5,max=180"`
	Format           string   `json:"format" validate:"max=100"`
	WordCount        *int     `json:"word_count" validate:"omitempty,min=10"`
	GrammarFocus     []string `json:"grammar_focus"`
	VocabularyThemes []string `json:"vocabulary_themes"`
	Checklist        []string `json:"checklist"`
	Example          *string  `json:"example"`
	FromSuggestion   bool     `json:"from_suggestion"`
}

type SubmitChallengeRequest struct {
	Content     string  `json:"content" validate:"required"`
	TimeSpent   int     `json:"time_spent" validate:"min=0"`
	Performance float64 `json:"performance" validate:"min=0,max=100"`
	Feedback    *string `json:"feedback"`
}

type ChallengeService interface {
	Create(ctx context.Context, userID string, req *CreateChallengeRequest) (*models.Challenge, error)
	GetByID(ctx context.Context, userID string, id uint) (*models.Challenge, error)
	List(ctx context.Context, userID string, filters repositories.ChallengeFilters) ([]*models.Challenge, int64, error)
	Delete(ctx context.Context, userID string, id uint) error
	Submit(ctx context.Context, userID string, challengeID uint, req *SubmitChallengeRequest) (*models.ChallengeSubmission, error)
}

// ===== ANALYTICS =====

type PerformanceResponse struct {
	Progress       *models.UserProgress           `json:"progress"`
	Skills         []*models.SkillMetric          `json:"skills"`
	Trends         []*models.PerformanceTrend     `json:"trends"`
	WordCounts     []models.WordCountPoint        `json:"word_counts"`
	ExerciseStats  *repositories.UserAttemptStats `json:"exercise_stats"`
	ChallengeStats *repositories.ChallengeStats   `json:"challenge_stats"`
}

type AnalyticsService interface {
	GetPerformance(ctx context.Context, userID string) (*PerformanceResponse, error)
	InvalidatePerformance(ctx context.Context, userID string) error
	RecordAttempt(ctx context.Context, attempt *models.ExerciseAttempt) error
}

// ===== WORDSMITHS =====

type WordsmithService interface {
	List(ctx context.Context, filters repositories.WordsmithFilters) ([]*repositories.WordsmithEntry, int64, error)
	GetProfile(ctx context.Context, userID string) (*repositories.WordsmithEntry, error)
}

// ===== EXPORT =====

type ExportService interface {
	ExportProgress(ctx context.Context, req *models.ExportRequest) ([]byte, *models.ExportSummary, error)
}

// ===== SERVICE MANAGER =====

// ServiceManager bundles the services the handler layer depends on.
type ServiceManager struct {
	Content    ContentService
	Attempt    AttemptService
	Feedback   FeedbackService
	Suggestion SuggestionService
	Challenge  ChallengeService
	Analytics  AnalyticsService
	Wordsmith  WordsmithService
	Export     ExportService
}
