// Package llm implements the text-generation provider over the OpenAI chat
// completions API.
package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"swiftride/internal/service"
)

// Client implements service.Completer using OpenAI chat completions.
type Client struct {
	api   *openai.Client
	model string
}

// Ensure Client implements the completer interface.
var _ service.Completer = (*Client)(nil)

// New creates an OpenAI-backed completer. An empty model selects gpt-4o-mini.
func New(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// Complete sends one chat completion request and returns the first choice.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("provider returned no completion")
	}
	return resp.Choices[0].Message.Content, nil
}
