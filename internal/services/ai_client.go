package services

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the AI services use.
// OpenRouter speaks the same wire protocol, so the real client works
// against either; tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// AIClientConfig configures the chat completion client.
type AIClientConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
}

// NewChatClient builds an OpenAI-protocol client pointed at the
// configured provider.
func NewChatClient(cfg AIClientConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// normalizeAIError folds provider-side throttling into the same
// RateLimitError callers already handle; everything else is a remote
// service failure.
func normalizeAIError(logger *slog.Logger, operation string, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "rate limit") {
		return NewRateLimitError(int(minFeedbackInterval.Seconds()))
	}
	logger.Error("AI provider request failed", "operation", operation, "error", err)
	return NewRemoteServiceError(operation, err)
}
