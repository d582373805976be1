package models

import "time"

// ExportRequest describes a progress-report export.
type ExportRequest struct {
	UserID            string     `json:"user_id" validate:"required"`
	Format            string     `json:"format" validate:"oneof=xlsx"`
	IncludeChallenges bool       `json:"include_challenges"`
	IncludeExercises  bool       `json:"include_exercises"`
	DateFrom          *time.Time `json:"date_from"`
	DateTo            *time.Time `json:"date_to"`
}

// ExportSummary reports what an export run produced.
type ExportSummary struct {
	Challenges     int           `json:"challenges"`
	Attempts       int           `json:"attempts"`
	ProcessingTime time.Duration `json:"processing_time"`
}
