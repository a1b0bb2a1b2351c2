package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI calls an OpenAI-compatible chat completion endpoint. Self-hosted
// gateways work through the configurable base URL.
type OpenAI struct {
	api   *openai.Client
	model string
}

// NewOpenAI creates a generator against an OpenAI-compatible API. An empty
// baseURL uses the public OpenAI endpoint.
func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAI{
		api:   openai.NewClientWithConfig(config),
		model: model,
	}
}

// Generate sends the composed single-turn message and returns the first
// choice's content.
func (o *OpenAI) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := o.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: composeMessage(systemPrompt, userMessage)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrInvalidResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
