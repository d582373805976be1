package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/repositories"
	"github.com/testmanship/exercise-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

type exportService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *slog.Logger
}

func NewExportService(repo repositories.Repository, v *validator.Validator, logger *slog.Logger) ExportService {
	return &exportService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

// ExportProgress renders a user's challenge and exercise history as an
// XLSX workbook, one sheet per section.
func (s *exportService) ExportProgress(ctx context.Context, req *models.ExportRequest) ([]byte, *models.ExportSummary, error) {
	start := time.Now()

	if err := s.validator.Validate(req); err != nil {
		return nil, nil, err
	}

	f := excelize.NewFile()
	summary := &models.ExportSummary{}

	if req.IncludeChallenges {
		count, err := s.writeChallengeSheet(ctx, f, req)
		if err != nil {
			return nil, nil, err
		}
		summary.Challenges = count
	}

	if req.IncludeExercises {
		count, err := s.writeAttemptSheet(ctx, f, req)
		if err != nil {
			return nil, nil, err
		}
		summary.Attempts = count
	}

	// Drop the default sheet when real sheets were written
	if req.IncludeChallenges || req.IncludeExercises {
		f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	summary.ProcessingTime = time.Since(start)
	s.logger.Info("Progress export generated",
		"user_id", req.UserID,
		"challenges", summary.Challenges,
		"attempts", summary.Attempts)

	return buf.Bytes(), summary, nil
}

func (s *exportService) writeChallengeSheet(ctx context.Context, f *excelize.File, req *models.ExportRequest) (int, error) {
	submissions, err := s.repo.Challenge().GetSubmissionsByUser(ctx, req.UserID, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to load submissions: %w", err)
	}

	sheetName := "Challenges"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Challenge", "Difficulty", "Words", "Time Spent (s)", "Performance", "Completed At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 0
	for _, submission := range submissions {
		if !inRange(submission.CompletedAt, req.DateFrom, req.DateTo) {
			continue
		}
		row := []interface{}{
			submission.Challenge.Title,
			string(submission.Challenge.DifficultyLevel),
			submission.WordCount,
			submission.TimeSpent,
			submission.Performance,
			submission.CompletedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
		rowIndex++
	}

	return rowIndex, nil
}

func (s *exportService) writeAttemptSheet(ctx context.Context, f *excelize.File, req *models.ExportRequest) (int, error) {
	filters := repositories.AttemptFilters{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Limit:    100,
		SortBy:   "completed_at",
	}
	attempts, _, err := s.repo.Attempt().GetByUser(ctx, req.UserID, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to load attempts: %w", err)
	}

	sheetName := "Exercises"
	if _, err := f.NewSheet(sheetName); err != nil {
		return 0, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := []string{"Exercise", "Type", "Score", "Total", "Time Spent (s)", "Completed At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, attempt := range attempts {
		row := []interface{}{
			attempt.Exercise.Topic,
			attempt.ExerciseType,
			attempt.Score,
			attempt.Total,
			attempt.TimeSpent,
			attempt.CompletedAt.Format(time.RFC3339),
		}
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return len(attempts), nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
