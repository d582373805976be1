package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DifficultyLevel follows the CEFR scale the dashboard uses.
type DifficultyLevel string

const (
	DifficultyA1 DifficultyLevel = "A1"
	DifficultyA2 DifficultyLevel = "A2"
	DifficultyB1 DifficultyLevel = "B1"
	DifficultyB2 DifficultyLevel = "B2"
	DifficultyC1 DifficultyLevel = "C1"
	DifficultyC2 DifficultyLevel = "C2"
)

// Challenge is a writing assignment, distinct from the interactive
// exercises that drill sub-skills. Created by the generator flow
// (possibly pre-filled from an AI suggestion) and read by the dashboard.
type Challenge struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          string          `json:"user_id" gorm:"not null;size:255;index"`
	Title           string          `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Instructions    string          `json:"instructions" gorm:"type:text" validate:"required"`
	DifficultyLevel DifficultyLevel `json:"difficulty_level" gorm:"not null;size:2;index" validate:"required,difficulty_level"`
	TimeAllocation  int             `json:"time_allocation" gorm:"not null" validate:"required,min=5,max=180"` // Minutes
	Format          string          `json:"format" gorm:"size:100"`

	// Optional generator metadata
	WordCount        *int           `json:"word_count" validate:"omitempty,min=10"`
	GrammarFocus     datatypes.JSON `json:"grammar_focus" gorm:"type:jsonb"`     // []string
	VocabularyThemes datatypes.JSON `json:"vocabulary_themes" gorm:"type:jsonb"` // []string
	Checklist        datatypes.JSON `json:"checklist" gorm:"type:jsonb"`         // []string
	Example          *string        `json:"example" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Creator User `json:"creator" gorm:"foreignKey:UserID"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeSubmission is one completed run of a challenge: the essay the
// user wrote plus the grading outcome.
type ChallengeSubmission struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ChallengeID uint    `json:"challenge_id" gorm:"not null;index"`
	UserID      string  `json:"user_id" gorm:"not null;size:255;index"`
	Content     string  `json:"content" gorm:"type:text"`
	WordCount   int     `json:"word_count"`
	TimeSpent   int     `json:"time_spent"` // Seconds
	Performance float64 `json:"performance" validate:"min=0,max=100"`
	Feedback    *string `json:"feedback" gorm:"type:text"`

	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
}

func (ChallengeSubmission) TableName() string {
	return "challenge_submissions"
}
