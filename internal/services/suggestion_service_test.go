package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testmanship/exercise-service/internal/events"
	"github.com/testmanship/exercise-service/internal/validator"
)

const suggestionPayload = `[
  {
    "title": "A Letter Home",
    "description": "Write a letter to your family about your new city.",
    "keyPoints": ["Describe your neighborhood", "Mention one surprise"],
    "grammarFocus": ["present perfect"],
    "vocabularyThemes": ["city life"],
    "checklist": ["Greeting", "Closing"],
    "wordCount": 150,
    "timeAllocation": 30
  }
]`

func newSuggestionFixture(t *testing.T, stub *stubChatCompleter) (SuggestionService, *events.MockEventPublisher) {
	t.Helper()

	publisher := events.NewMockEventPublisher(slog.Default())
	svc := NewSuggestionService(stub, validator.New(), publisher, slog.Default(), "test-model", 512)
	return svc, publisher
}

func TestGenerateSuggestions_ParsesPayload(t *testing.T) {
	stub := &stubChatCompleter{response: suggestionPayload}
	svc, publisher := newSuggestionFixture(t, stub)

	suggestions, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		DifficultyLevel: "B1",
		Count:           1,
	})

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "A Letter Home", suggestions[0].Title)
	assert.Equal(t, []string{"present perfect"}, suggestions[0].GrammarFocus)
	assert.Equal(t, 30, suggestions[0].TimeAllocation)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventSuggestionsGenerated, published[0].Type)
}

func TestGenerateSuggestions_StripsCodeFences(t *testing.T) {
	stub := &stubChatCompleter{response: "```json\n" + suggestionPayload + "\n```"}
	svc, _ := newSuggestionFixture(t, stub)

	suggestions, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		DifficultyLevel: "B1",
	})

	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "A Letter Home", suggestions[0].Title)
}

func TestGenerateSuggestions_EmptyArray(t *testing.T) {
	stub := &stubChatCompleter{response: "[]"}
	svc, _ := newSuggestionFixture(t, stub)

	_, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		DifficultyLevel: "A2",
	})

	assert.ErrorIs(t, err, ErrEmptySuggestions)
}

func TestGenerateSuggestions_MalformedPayload(t *testing.T) {
	stub := &stubChatCompleter{response: "Sorry, I cannot produce JSON today."}
	svc, _ := newSuggestionFixture(t, stub)

	_, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		DifficultyLevel: "A2",
	})

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "suggestions", remoteErr.Operation)
}

func TestGenerateSuggestions_InvalidDifficulty(t *testing.T) {
	stub := &stubChatCompleter{response: suggestionPayload}
	svc, _ := newSuggestionFixture(t, stub)

	_, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		DifficultyLevel: "D9",
	})

	require.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestGenerateSuggestions_PromptCarriesRequestContext(t *testing.T) {
	stub := &stubChatCompleter{response: suggestionPayload}
	svc, _ := newSuggestionFixture(t, stub)

	_, err := svc.GenerateSuggestions(context.Background(), "user-1", &SuggestionRequest{
		Title:           "A Letter Home",
		DifficultyLevel: "B1",
		Format:          "formal letter",
		TimeAllocation:  45,
		Count:           2,
	})

	require.NoError(t, err)
	require.Len(t, stub.lastRequest.Messages, 2)
	prompt := stub.lastRequest.Messages[1].Content
	assert.Contains(t, prompt, "Generate 2 writing challenges for CEFR level B1.")
	assert.Contains(t, prompt, `"A Letter Home"`)
	assert.Contains(t, prompt, "formal letter")
	assert.Contains(t, prompt, "45 minutes")
}

func TestFormatInstructions(t *testing.T) {
	svc, _ := newSuggestionFixture(t, &stubChatCompleter{})

	suggestion := ChallengeSuggestion{
		Description:    "Write a letter to your family about your new city.",
		KeyPoints:      []string{"Describe your neighborhood", "Mention one surprise"},
		TimeAllocation: 30,
	}

	expected := "Write a letter to your family about your new city.\n\n" +
		"Key Points:\n" +
		"• Describe your neighborhood\n" +
		"• Mention one surprise\n" +
		"• Time Allocation: 30 minutes"
	assert.Equal(t, expected, svc.FormatInstructions(suggestion, 20))
}

func TestFormatInstructions_FallsBackToDisplayedAllocation(t *testing.T) {
	svc, _ := newSuggestionFixture(t, &stubChatCompleter{})

	suggestion := ChallengeSuggestion{
		Description: "Describe your favorite meal.",
		KeyPoints:   []string{"Name the dish"},
	}

	formatted := svc.FormatInstructions(suggestion, 20)
	assert.Contains(t, formatted, "• Time Allocation: 20 minutes")
	assert.NotContains(t, formatted, "0 minutes")
}
