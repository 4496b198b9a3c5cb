package app

import (
	"context"
	"fmt"
	"log/slog"

	"tubeseo/internal/llm"
	"tubeseo/internal/metadata"
	"tubeseo/internal/server"
	"tubeseo/internal/storage"
	"tubeseo/internal/youtube"
	"tubeseo/pkg/config"
	"tubeseo/pkg/prompts"
)

type App struct {
	Config    *config.Config
	Generator *metadata.Generator
	Auth      *youtube.Auth
	Publisher *youtube.Publisher
	// Provider is nil when no LLM key is configured.
	Provider llm.Provider
}

func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	p, err := LoadPrompts(ctx, cfg.Prompts.Path)
	if err != nil {
		return nil, err
	}

	provider, err := llm.New(llm.Options{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		APIKey:      cfg.LLMAPIKey(),
		BaseURL:     cfg.LLM.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	var completer metadata.Completer
	if provider != nil {
		slog.Debug("Metadata provider configured", "provider", provider.Name(), "model", cfg.LLM.Model)
		completer = provider
	} else {
		slog.Warn("No LLM API key configured, serving fallback metadata", "provider", cfg.LLM.Provider)
	}

	auth := youtube.NewAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	if !auth.Configured() {
		slog.Warn("GOOGLE_CLIENT_ID not set, account linking disabled")
	}

	return &App{
		Config:    cfg,
		Generator: metadata.NewGenerator(completer, p),
		Auth:      auth,
		Publisher: youtube.NewPublisher(auth),
		Provider:  provider,
	}, nil
}

func (a *App) Server() *server.Server {
	return server.New(a.Config, a.Auth, a.Generator, a.Publisher)
}

// LoadPrompts reads prompt overrides from a local file or gs:// object. An
// empty location returns the built-in prompts.
func LoadPrompts(ctx context.Context, location string) (*prompts.Prompts, error) {
	if location == "" {
		return prompts.Default(), nil
	}

	src, name, closeFn, err := storage.OpenSource(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompts source: %w", err)
	}
	defer func() { _ = closeFn() }()

	p, err := prompts.LoadFromSource(ctx, src, name)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded prompts", "location", location)
	return p, nil
}
