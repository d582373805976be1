package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/models"
	"github.com/testmanship/exercise-service/internal/validator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type attemptFixture struct {
	svc       AttemptService
	repo      *MockRepository
	publisher *events.MockEventPublisher
	analytics *recordingAnalytics
}

// recordingAnalytics captures RecordAttempt calls without a database.
type recordingAnalytics struct {
	recorded    []*models.ExerciseAttempt
	invalidated []string
}

func (a *recordingAnalytics) GetPerformance(ctx context.Context, userID string) (*PerformanceResponse, error) {
	return &PerformanceResponse{}, nil
}

func (a *recordingAnalytics) InvalidatePerformance(ctx context.Context, userID string) error {
	a.invalidated = append(a.invalidated, userID)
	return nil
}

func (a *recordingAnalytics) RecordAttempt(ctx context.Context, attempt *models.ExerciseAttempt) error {
	a.recorded = append(a.recorded, attempt)
	return nil
}

func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()

	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(slog.Default())
	analytics := &recordingAnalytics{}
	svc := NewAttemptService(repo, validator.New(), publisher, analytics, slog.Default())
	return &attemptFixture{svc: svc, repo: repo, publisher: publisher, analytics: analytics}
}

func matchingContentRow(id, exerciseID uint) *models.ExerciseContent {
	return &models.ExerciseContent{
		ID:           id,
		ExerciseID:   exerciseID,
		ExerciseType: "matching",
		Topic:        "travel",
		Content:      datatypes.JSON(`{"pairs":[{"left":"der Zug","right":"the train"},{"left":"das Gleis","right":"the platform"}]}`),
	}
}

func TestSubmitAttempt_GradesAndPersists(t *testing.T) {
	f := newAttemptFixture(t)

	f.repo.ExerciseRepo.On("GetContentByID", mock.Anything, uint(5)).
		Return(matchingContentRow(5, 1), nil)

	var persisted *models.ExerciseAttempt
	f.repo.AttemptRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ExerciseAttempt")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.ExerciseAttempt)
		}).
		Return(nil)

	resp, err := f.svc.SubmitAttempt(context.Background(), "user-1", &SubmitAttemptRequest{
		ExerciseID:   1,
		ContentID:    5,
		ExerciseType: "matching",
		Answer:       []byte(`{"pairs":{"der Zug":"the train","das Gleis":"the door"}}`),
		TimeSpent:    45,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Score)
	assert.Equal(t, 2, resp.Total)
	assert.InDelta(t, 50.0, resp.Accuracy, 0.01)

	// The stored record carries the same once-only score
	require.NotNil(t, persisted)
	assert.Equal(t, 1, persisted.Score)
	assert.Equal(t, 2, persisted.Total)
	assert.Equal(t, "user-1", persisted.UserID)
	assert.NotEmpty(t, persisted.ID)

	require.Len(t, f.analytics.recorded, 1)
	assert.Equal(t, persisted.ID, f.analytics.recorded[0].ID)

	published := f.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventExerciseCompleted, published[0].Type)
}

func TestSubmitAttempt_ContentMismatch(t *testing.T) {
	f := newAttemptFixture(t)

	// Row belongs to exercise 2, the request claims exercise 1
	f.repo.ExerciseRepo.On("GetContentByID", mock.Anything, uint(5)).
		Return(matchingContentRow(5, 2), nil)

	_, err := f.svc.SubmitAttempt(context.Background(), "user-1", &SubmitAttemptRequest{
		ExerciseID:   1,
		ContentID:    5,
		ExerciseType: "matching",
		Answer:       []byte(`{"pairs":{}}`),
		TimeSpent:    10,
	})

	assert.True(t, IsBusinessRule(err))
	f.repo.AttemptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitAttempt_ContentNotFound(t *testing.T) {
	f := newAttemptFixture(t)

	f.repo.ExerciseRepo.On("GetContentByID", mock.Anything, uint(99)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.SubmitAttempt(context.Background(), "user-1", &SubmitAttemptRequest{
		ExerciseID:   1,
		ContentID:    99,
		ExerciseType: "matching",
		Answer:       []byte(`{"pairs":{}}`),
	})

	assert.ErrorIs(t, err, ErrContentNotFound)
}

func TestGetAttempt_OwnershipEnforced(t *testing.T) {
	f := newAttemptFixture(t)

	f.repo.AttemptRepo.On("GetByIDWithDetails", mock.Anything, "attempt-1").
		Return(&models.ExerciseAttempt{ID: "attempt-1", UserID: "owner"}, nil)

	attempt, err := f.svc.GetAttempt(context.Background(), "owner", "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", attempt.ID)

	_, err = f.svc.GetAttempt(context.Background(), "intruder", "attempt-1")
	assert.ErrorIs(t, err, ErrAttemptAccessDenied)
}
