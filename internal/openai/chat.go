package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the model used for classification and query generation
// when none is configured.
const DefaultChatModel = openai.GPT4oMini

// DefaultChatTimeout bounds a single completion call. The remote call is
// blocking and never retried, so a stuck request must not stall the question
// past this deadline.
const DefaultChatTimeout = 30 * time.Second

// CompletionAPI defines the interface for chat completion generation
type CompletionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatClient sends structured prompts to an OpenAI-compatible text-generation
// backend and returns raw text. The backend is selected once at construction
// (model + base URL); routing logic never inspects provider specifics.
type ChatClient struct {
	api     CompletionAPI
	model   string
	timeout time.Duration
}

// ChatConfig configures the chat client. BaseURL allows any
// OpenAI-compatible endpoint (Groq, local inference servers).
type ChatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewChatClient creates a chat client with explicit configuration.
func NewChatClient(cfg ChatConfig) *ChatClient {
	model := cfg.Model
	if model == "" {
		model = DefaultChatModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultChatTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &ChatClient{
		api:     openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
	}
}

// Generate sends a single-turn prompt and returns the raw completion text.
// Generation is deterministic (temperature 0) since downstream parsing
// depends on stable label and query output.
func (c *ChatClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyText
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
