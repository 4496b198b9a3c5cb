package llm

import (
	"context"
	"fmt"

	"github.com/conneroisu/groq-go"
)

type GroqClient struct {
	client      *groq.Client
	model       groq.ChatModel
	temperature float32
}

func NewGroqClient(apiKey, model string, temperature float64, baseURL string) (*GroqClient, error) {
	var opts []groq.Opts
	if baseURL != "" {
		opts = append(opts, groq.WithBaseURL(baseURL))
	}

	client, err := groq.NewClient(apiKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client:      client,
		model:       groq.ChatModel(model),
		temperature: float32(temperature),
	}, nil
}

func (c *GroqClient) Name() string { return ProviderGroq }

func (c *GroqClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt},
			{Role: groq.RoleUser, Content: userPrompt},
		},
		Temperature: c.temperature,
		ResponseFormat: &groq.ChatResponseFormat{
			Type: "json_object",
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoResponse
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
