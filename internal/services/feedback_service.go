package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/repositories"
)

// minFeedbackInterval is the per-user spacing between feedback requests.
const minFeedbackInterval = 5 * time.Second

const feedbackSystemPrompt = `You are a supportive language writing coach. ` +
	`Review the learner's text against the challenge instructions. ` +
	`Point out grammar and vocabulary issues, then suggest one concrete improvement. ` +
	`Keep the tone encouraging and answer in under 200 words.`

type feedbackService struct {
	client    ChatCompleter
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	model     string
	maxTokens int

	// now is injectable so rate-limit windows are testable
	now func() time.Time

	mu              sync.Mutex
	lastRequest     map[string]time.Time
	activeChallenge map[string]uint
}

func NewFeedbackService(client ChatCompleter, repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, model string, maxTokens int) FeedbackService {
	return &feedbackService{
		client:          client,
		repo:            repo,
		publisher:       publisher,
		logger:          logger,
		model:           model,
		maxTokens:       maxTokens,
		now:             time.Now,
		lastRequest:     make(map[string]time.Time),
		activeChallenge: make(map[string]uint),
	}
}

// GenerateFeedback asks the AI coach for feedback on the user's draft.
// Successful calls are spaced at least minFeedbackInterval apart per
// user; a request inside the window fails fast with the seconds left to
// wait. Only successes start a window, so a failed call can be retried
// immediately.
func (s *feedbackService) GenerateFeedback(ctx context.Context, userID string, req *FeedbackRequest) (*FeedbackResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	challenge, err := s.repo.Challenge().GetByID(ctx, req.ChallengeID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to load challenge: %w", err)
	}
	if challenge.UserID != userID {
		return nil, ErrChallengeNotOwned
	}

	s.SetActiveChallenge(userID, req.ChallengeID)

	if err := s.checkWindow(userID); err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: feedbackSystemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Challenge instructions:\n%s\n\nLearner text:\n%s",
					challenge.Instructions, text),
			},
		},
	})
	if err != nil {
		return nil, normalizeAIError(s.logger, "feedback", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, NewRemoteServiceError("feedback", fmt.Errorf("empty completion"))
	}

	s.recordSuccess(userID)

	wordCount := len(strings.Fields(text))
	event := events.NewFeedbackGeneratedEvent(req.ChallengeID, userID, wordCount)
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish feedback event",
			"challenge_id", req.ChallengeID, "error", err)
	}

	return &FeedbackResponse{
		Feedback:    resp.Choices[0].Message.Content,
		GeneratedAt: s.now(),
	}, nil
}

// SetActiveChallenge resets the user's rate-limit window when they move
// to a different challenge, mirroring a fresh editing session.
func (s *feedbackService) SetActiveChallenge(userID string, challengeID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.activeChallenge[userID]; ok && current == challengeID {
		return
	}
	s.activeChallenge[userID] = challengeID
	delete(s.lastRequest, userID)
}

// checkWindow enforces the per-user interval against the last successful
// call. Failed calls leave no timestamp, so the user can retry right away.
func (s *feedbackService) checkWindow(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastRequest[userID]; ok {
		elapsed := s.now().Sub(last)
		if elapsed < minFeedbackInterval {
			wait := int(math.Ceil((minFeedbackInterval - elapsed).Seconds()))
			return NewRateLimitError(wait)
		}
	}
	return nil
}

// recordSuccess stamps the window start once a feedback call completed.
func (s *feedbackService) recordSuccess(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRequest[userID] = s.now()
}
