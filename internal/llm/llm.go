package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"

	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.8

	// placeholderKey ships in .env.example and never reaches a provider.
	placeholderKey = "demo-key"
)

var (
	ErrNoResponse    = errors.New("no response")
	ErrEmptyResponse = errors.New("empty response")
)

// Provider runs a single chat completion that must answer with a JSON object.
type Provider interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

type Options struct {
	Provider    string
	Model       string
	Temperature float64
	APIKey      string
	BaseURL     string
}

// Configured reports whether key is a usable credential.
func Configured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != placeholderKey
}

// New builds the provider named in opts. It returns (nil, nil) when no usable
// API key is configured so callers can fall back to canned content.
func New(opts Options) (Provider, error) {
	if !Configured(opts.APIKey) {
		return nil, nil
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}

	switch strings.ToLower(opts.Provider) {
	case "", ProviderOpenAI:
		if opts.Model == "" {
			opts.Model = DefaultOpenAIModel
		}
		return NewOpenAIClient(opts.APIKey, opts.Model, opts.Temperature, opts.BaseURL), nil
	case ProviderGroq:
		if opts.Model == "" {
			opts.Model = DefaultGroqModel
		}
		client, err := NewGroqClient(opts.APIKey, opts.Model, opts.Temperature, opts.BaseURL)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}
