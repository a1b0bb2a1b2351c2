package llm

import (
	"context"
	"errors"
	"fmt"
)

// Generator produces text from a fixed system prompt and a user message.
// Implementations make a single best-effort call with no retries; any failure
// is reported through the error taxonomy below and absorbed by the caller.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

var (
	// ErrUnavailable indicates the generation service is unreachable or
	// returned a transport-level failure.
	ErrUnavailable = errors.New("generation service unavailable")
	// ErrInvalidResponse indicates the service replied in an unexpected shape.
	ErrInvalidResponse = errors.New("invalid generation response")
)

// Config selects and configures a generation provider.
type Config struct {
	Provider        string // "bedrock", "openai", or "none"
	Model           string
	Region          string // bedrock
	AccessKeyID     string // bedrock
	SecretAccessKey string // bedrock
	BaseURL         string // openai-compatible endpoints
	APIKey          string // openai
}

// New creates a Generator from configuration. A nil Generator with a nil
// error means generation is not configured (missing credentials or provider
// "none"); callers then produce deterministic fallback reports. An unknown
// provider name is a configuration error.
func New(ctx context.Context, cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "bedrock":
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, nil
		}
		return NewBedrock(ctx, cfg)
	case "openai":
		if cfg.APIKey == "" {
			return nil, nil
		}
		return NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown generation provider: %q", cfg.Provider)
	}
}

// composeMessage builds the single-turn user message: system prompt, a blank
// line, then the prefixed user message.
func composeMessage(systemPrompt, userMessage string) string {
	return systemPrompt + "\n\nUser: " + userMessage
}
