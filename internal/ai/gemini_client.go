package ai

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type GeminiClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewGeminiClient(cfg GeminiConfig, logger *slog.Logger) *GeminiClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if oc.BaseURL == "" {
		oc.BaseURL = DefaultBaseURL
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	if logger == nil {
		logger = slog.Default()
	}

	return &GeminiClient{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
		logger: logger,
	}
}

func (c *GeminiClient) Answer(ctx context.Context, question string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: OneWordPrompt(question),
			},
		},
	})
	if err != nil {
		c.logger.Error("[ai] completion error", "model", c.model, "error", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("[ai] empty choices", "model", c.model)
		return "", ErrEmptyChoices
	}

	text := resp.Choices[0].Message.Content
	c.logger.Debug("[ai] raw response", "model", c.model, "text", text)

	return text, nil
}
