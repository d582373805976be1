package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/validator"
)

const suggestionSystemPrompt = `You generate writing challenge ideas for language learners. ` +
	`Respond with a JSON array only, no prose. Each element must have the fields: ` +
	`title, description, keyPoints (array of strings), grammarFocus (array of strings), ` +
	`vocabularyThemes (array of strings), checklist (array of strings), ` +
	`wordCount (number) and timeAllocation (number of minutes).`

type suggestionService struct {
	client    ChatCompleter
	validator *validator.Validator
	publisher events.EventPublisher
	logger    *slog.Logger
	model     string
	maxTokens int
}

func NewSuggestionService(client ChatCompleter, v *validator.Validator, publisher events.EventPublisher, logger *slog.Logger, model string, maxTokens int) SuggestionService {
	return &suggestionService{
		client:    client,
		validator: v,
		publisher: publisher,
		logger:    logger,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (s *suggestionService) GenerateSuggestions(ctx context.Context, userID string, req *SuggestionRequest) ([]ChallengeSuggestion, error) {
	if req.Count == 0 {
		req.Count = 3
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: suggestionSystemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSuggestionPrompt(req),
			},
		},
	})
	if err != nil {
		return nil, normalizeAIError(s.logger, "suggestions", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptySuggestions
	}

	suggestions, err := parseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		s.logger.Error("Failed to parse suggestion response", "error", err)
		return nil, NewRemoteServiceError("suggestions", err)
	}
	if len(suggestions) == 0 {
		return nil, ErrEmptySuggestions
	}

	event := events.NewSuggestionsGeneratedEvent(userID, req.DifficultyLevel, len(suggestions))
	if err := s.publisher.PublishProgressEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish suggestions event", "error", err)
	}

	return suggestions, nil
}

// buildSuggestionPrompt seeds the model with whatever the user already
// has on screen: the working title, format and time budget, when set.
func buildSuggestionPrompt(req *SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d writing challenges for CEFR level %s.", req.Count, req.DifficultyLevel)
	if req.Title != "" {
		fmt.Fprintf(&b, " Base them on the working title %q.", req.Title)
	}
	if req.Format != "" {
		fmt.Fprintf(&b, " The writing format is %s.", req.Format)
	}
	if req.TimeAllocation > 0 {
		fmt.Fprintf(&b, " The learner has %d minutes.", req.TimeAllocation)
	}
	return b.String()
}

// FormatInstructions renders a suggestion into the instructions text a
// challenge stores: description, then key points as bullets, closed by
// the time allocation. A suggestion without its own allocation falls
// back to the one currently displayed.
func (s *suggestionService) FormatInstructions(suggestion ChallengeSuggestion, displayedTimeAllocation int) string {
	allocation := suggestion.TimeAllocation
	if allocation == 0 {
		allocation = displayedTimeAllocation
	}

	var b strings.Builder
	b.WriteString(suggestion.Description)
	b.WriteString("\n\nKey Points:\n")
	for _, point := range suggestion.KeyPoints {
		b.WriteString("• ")
		b.WriteString(point)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("• Time Allocation: %d minutes", allocation))
	return b.String()
}

// parseSuggestions tolerates the code fences some models wrap JSON in.
func parseSuggestions(raw string) ([]ChallengeSuggestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var suggestions []ChallengeSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, fmt.Errorf("invalid suggestion payload: %w", err)
	}
	return suggestions, nil
}
