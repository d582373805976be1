package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/models"
)

func newFeedbackFixture(t *testing.T, stub *stubChatCompleter) (*feedbackService, *MockRepository, *events.MockEventPublisher) {
	t.Helper()

	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(slog.Default())
	svc := NewFeedbackService(stub, repo, publisher, slog.Default(), "test-model", 512).(*feedbackService)
	return svc, repo, publisher
}

func feedbackChallenge(id uint, userID string) *models.Challenge {
	return &models.Challenge{
		ID:              id,
		UserID:          userID,
		Title:           "Describe your weekend",
		Instructions:    "Write 120 words about your last weekend.",
		DifficultyLevel: models.DifficultyB1,
		TimeAllocation:  30,
	}
}

func TestGenerateFeedback_Success(t *testing.T) {
	stub := &stubChatCompleter{response: "Nice work, watch your past tense."}
	svc, repo, publisher := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	resp, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{
		ChallengeID: 1,
		Text:        "Last weekend I go to the lake.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Nice work, watch your past tense.", resp.Feedback)
	assert.Equal(t, 1, stub.calls)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventFeedbackGenerated, published[0].Type)
}

func TestGenerateFeedback_EmptyText(t *testing.T) {
	stub := &stubChatCompleter{response: "unused"}
	svc, _, _ := newFeedbackFixture(t, stub)

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{
		ChallengeID: 1,
		Text:        "   \n\t",
	})

	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, stub.calls)
}

func TestGenerateFeedback_ChallengeOwnership(t *testing.T) {
	stub := &stubChatCompleter{response: "unused"}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(7)).
		Return(feedbackChallenge(7, "someone-else"), nil)

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{
		ChallengeID: 7,
		Text:        "My text",
	})

	assert.ErrorIs(t, err, ErrChallengeNotOwned)
	assert.Zero(t, stub.calls)
}

func TestGenerateFeedback_RateLimitWindow(t *testing.T) {
	stub := &stubChatCompleter{response: "Feedback"}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	req := &FeedbackRequest{ChallengeID: 1, Text: "Draft one."}

	// First request passes and opens the window
	_, err := svc.GenerateFeedback(context.Background(), "user-1", req)
	require.NoError(t, err)

	// Two seconds later the same user is told to wait the remaining 3
	current = base.Add(2 * time.Second)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", req)
	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 3, rateErr.WaitSeconds)
	assert.True(t, IsRateLimit(err))

	// Partial seconds round up
	current = base.Add(4100 * time.Millisecond)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", req)
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 1, rateErr.WaitSeconds)

	// After the full interval the user is admitted again
	current = base.Add(minFeedbackInterval)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", req)
	require.NoError(t, err)

	// Another user is never throttled by user-1's window
	current = base.Add(minFeedbackInterval + time.Second)
	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(2)).
		Return(feedbackChallenge(2, "user-2"), nil)
	_, err = svc.GenerateFeedback(context.Background(), "user-2", &FeedbackRequest{ChallengeID: 2, Text: "Other draft."})
	require.NoError(t, err)
}

func TestGenerateFeedback_SwitchingChallengeResetsWindow(t *testing.T) {
	stub := &stubChatCompleter{response: "Feedback"}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)
	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(2)).
		Return(feedbackChallenge(2, "user-1"), nil)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 1, Text: "Draft."})
	require.NoError(t, err)

	// Still inside the window, but a new challenge starts a fresh session
	current = base.Add(time.Second)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 2, Text: "Draft."})
	require.NoError(t, err)

	// The fresh window applies to the new challenge
	current = base.Add(2 * time.Second)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 2, Text: "Draft."})
	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 4, rateErr.WaitSeconds)
}

func TestGenerateFeedback_FailedCallDoesNotStartWindow(t *testing.T) {
	stub := &stubChatCompleter{err: errors.New("upstream unavailable")}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	req := &FeedbackRequest{ChallengeID: 1, Text: "Draft one."}

	// The provider fails on the first call
	_, err := svc.GenerateFeedback(context.Background(), "user-1", req)
	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)

	// The provider recovers; a retry two seconds later is admitted because
	// only successful calls open the rate-limit window
	stub.err = nil
	stub.response = "Feedback"
	current = base.Add(2 * time.Second)
	resp, err := svc.GenerateFeedback(context.Background(), "user-1", req)
	require.NoError(t, err)
	assert.Equal(t, "Feedback", resp.Feedback)

	// The successful retry opens the window as usual
	current = base.Add(4 * time.Second)
	_, err = svc.GenerateFeedback(context.Background(), "user-1", req)
	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 3, rateErr.WaitSeconds)
}

func TestGenerateFeedback_RemoteRateLimitNormalized(t *testing.T) {
	stub := &stubChatCompleter{err: errors.New("429: Rate limit exceeded for model")}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 1, Text: "Draft."})

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 5, rateErr.WaitSeconds)
}

func TestGenerateFeedback_RemoteFailure(t *testing.T) {
	stub := &stubChatCompleter{err: errors.New("upstream unavailable")}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 1, Text: "Draft."})

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "feedback", remoteErr.Operation)
	assert.True(t, IsRemoteService(err))
}

func TestGenerateFeedback_EmptyCompletion(t *testing.T) {
	stub := &stubChatCompleter{response: "   "}
	svc, repo, _ := newFeedbackFixture(t, stub)

	repo.ChallengeRepo.On("GetByID", mock.Anything, uint(1)).
		Return(feedbackChallenge(1, "user-1"), nil)

	_, err := svc.GenerateFeedback(context.Background(), "user-1", &FeedbackRequest{ChallengeID: 1, Text: "Draft."})

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
}

func TestRateLimitError_Message(t *testing.T) {
	err := NewRateLimitError(3)
	assert.Equal(t, fmt.Sprintf("rate limited: please wait %d seconds before requesting again", 3), err.Error())
}
