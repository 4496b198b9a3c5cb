package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tubeseo/pkg/config"
	"tubeseo/pkg/prompts"
)

func TestLoadPrompts(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "prompts.yaml")
	if err := os.WriteFile(path, []byte("metadata:\n  user: \"Custom {{.Category}}\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		location string
		wantUser string
		wantErr  bool
	}{
		{name: "default", location: "", wantUser: prompts.Default().Metadata.User},
		{name: "localFile", location: path, wantUser: "Custom {{.Category}}"},
		{name: "missingFile", location: filepath.Join(tmp, "nope.yaml"), wantErr: true},
		{name: "badGCSLocation", location: "gs://bucket-only", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadPrompts(context.Background(), tt.location)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPrompts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Metadata.User != tt.wantUser {
				t.Errorf("Metadata.User = %q, want %q", got.Metadata.User, tt.wantUser)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *config.Config
		wantFallback bool
		wantProvider string
		wantLinking  bool
	}{
		{
			name:         "noKeys",
			cfg:          &config.Config{LLM: config.LLMConfig{Provider: "openai"}},
			wantFallback: true,
		},
		{
			name:         "demoKey",
			cfg:          &config.Config{OpenAIAPIKey: "demo-key", LLM: config.LLMConfig{Provider: "openai"}},
			wantFallback: true,
		},
		{
			name:         "openai",
			cfg:          &config.Config{OpenAIAPIKey: "sk-test", GoogleClientID: "id", LLM: config.LLMConfig{Provider: "openai"}},
			wantProvider: "openai",
			wantLinking:  true,
		},
		{
			name:         "groq",
			cfg:          &config.Config{GroqAPIKey: "gsk-test", LLM: config.LLMConfig{Provider: "groq"}},
			wantProvider: "groq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if a.Generator.UsesFallback() != tt.wantFallback {
				t.Errorf("UsesFallback() = %v, want %v", a.Generator.UsesFallback(), tt.wantFallback)
			}
			if tt.wantProvider != "" && (a.Provider == nil || a.Provider.Name() != tt.wantProvider) {
				t.Errorf("Provider = %v, want %s", a.Provider, tt.wantProvider)
			}
			if a.Auth.Configured() != tt.wantLinking {
				t.Errorf("Auth.Configured() = %v, want %v", a.Auth.Configured(), tt.wantLinking)
			}
			if a.Server() == nil {
				t.Error("Server() = nil")
			}
		})
	}
}

func TestBuildUnknownProvider(t *testing.T) {
	cfg := &config.Config{OpenAIAPIKey: "sk", LLM: config.LLMConfig{Provider: "mystery"}}
	if _, err := Build(context.Background(), cfg); err == nil {
		t.Error("Build() expected error for unknown provider")
	}
}
