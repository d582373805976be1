package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProgress is the aggregate row behind the performance dashboard.
type UserProgress struct {
	UserID                   string         `json:"user_id" gorm:"primaryKey;size:255"`
	TotalChallengesCompleted int            `json:"total_challenges_completed"`
	TotalWordsWritten        int            `json:"total_words_written"`
	TotalTimeSpent           int            `json:"total_time_spent"` // Seconds
	AveragePerformance       float64        `json:"average_performance"`
	WeakestSkills            datatypes.JSON `json:"weakest_skills" gorm:"type:jsonb"` // []string
	LastActiveLevel          string         `json:"last_active_level" gorm:"size:2"`
	LongestStreak            int            `json:"longest_streak"`
	UpdatedAt                time.Time      `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// SkillMetric tracks proficiency in one skill area over time.
type SkillMetric struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_skill_user_category_name"`
	Category         string    `json:"category" gorm:"size:100;uniqueIndex:idx_skill_user_category_name"`
	SkillName        string    `json:"skill_name" gorm:"size:100;uniqueIndex:idx_skill_user_category_name"`
	ProficiencyLevel float64   `json:"proficiency_level" validate:"min=0,max=10"`
	ImprovementRate  float64   `json:"improvement_rate"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SkillMetric) TableName() string {
	return "skill_metrics"
}

// PerformanceTrend is one week of aggregated activity.
type PerformanceTrend struct {
	UserID              string  `json:"user_id" gorm:"primaryKey;size:255"`
	Week                string  `json:"week" gorm:"primaryKey;size:10"` // ISO week, e.g. "2026-W35"
	AvgScore            float64 `json:"avg_score"`
	AvgWords            float64 `json:"avg_words"`
	AvgTime             float64 `json:"avg_time"`
	ChallengesCompleted int     `json:"challenges_completed"`
}

func (PerformanceTrend) TableName() string {
	return "user_performance_trends"
}

// WordCountPoint is one sample in the words-per-challenge time series.
type WordCountPoint struct {
	WordCount   int       `json:"word_count"`
	CompletedAt time.Time `json:"completed_at"`
}
