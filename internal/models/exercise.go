package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exercise groups interactive drills around one grammar or vocabulary
// theme. Which formats it offers is data, not schema: ExerciseTypes holds
// the tags the dashboard renders as selectable tabs.
type Exercise struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Topic       string         `json:"topic" gorm:"not null;size:200;index"`
	Description string         `json:"description" gorm:"type:text"`
	Difficulty  DifficultyLevel `json:"difficulty" gorm:"size:2;index"`
	ExerciseTypes datatypes.JSON `json:"exercise_types" gorm:"type:jsonb"` // []string of exercise type tags

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Content []ExerciseContent `json:"content" gorm:"foreignKey:ExerciseID"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// ExerciseContent is one concrete instance of exercise data (a specific
// matching set, a specific gap sentence, ...) tied to a topic. The
// payload is a tagged union discriminated by ExerciseType; its shape is
// validated against the registry template before it reaches a player.
type ExerciseContent struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	ExerciseID   uint           `json:"exercise_id" gorm:"not null;index:idx_content_exercise_type"`
	ExerciseType string         `json:"exercise_type" gorm:"not null;size:50;index:idx_content_exercise_type" validate:"required,exercise_type"`
	Topic        string         `json:"topic" gorm:"size:200;index"`
	Content      datatypes.JSON `json:"content" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ExerciseContent) TableName() string {
	return "exercise_content"
}

// ExerciseAttempt records one graded submission. Score and Total are
// written exactly once, when the attempt is completed.
type ExerciseAttempt struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	UserID       string    `json:"user_id" gorm:"not null;size:255;index"`
	ExerciseID   uint      `json:"exercise_id" gorm:"not null;index"`
	ContentID    uint      `json:"content_id" gorm:"not null"`
	ExerciseType string    `json:"exercise_type" gorm:"not null;size:50"`
	Score        int       `json:"score" gorm:"not null"`
	Total        int       `json:"total" gorm:"not null"`
	TimeSpent    int       `json:"time_spent"` // Seconds
	CompletedAt  time.Time `json:"completed_at"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Exercise Exercise        `json:"exercise" gorm:"foreignKey:ExerciseID"`
	Content  ExerciseContent `json:"content" gorm:"foreignKey:ContentID"`
}

func (ExerciseAttempt) TableName() string {
	return "exercise_attempts"
}
