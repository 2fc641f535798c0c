// File: internal/chat/client.go
package chat

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"caffind_backend/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces one completion for a role-tagged prompt.
type Completer interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// InferenceClient talks to an OpenAI-compatible /chat/completions endpoint.
type InferenceClient struct {
	client *openai.Client
	model  string
}

// NewInferenceClient builds the client once for the process lifetime. Timeouts are applied
// per call through the context.
func NewInferenceClient(cfg *config.Config) *InferenceClient {
	clientCfg := openai.DefaultConfig(cfg.InferenceAPIKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.InferenceBaseURL, "/")
	clientCfg.HTTPClient = &http.Client{}
	return &InferenceClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.InferenceModel,
	}
}

// Complete sends messages and returns the first choice's content.
func (c *InferenceClient) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	prompt := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		prompt = append(prompt, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  prompt,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from inference endpoint")
	}
	return resp.Choices[0].Message.Content, nil
}
