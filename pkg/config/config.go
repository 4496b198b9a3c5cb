package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config.yaml"

	defaultRedirectURI       = "http://localhost:3000/api/auth/callback"
	defaultPort              = "3000"
	defaultShutdownTimeout   = 10 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second
	defaultMaxUploadBytes    = 2 << 30
	defaultLLMProvider       = "openai"
	defaultLLMTemperature    = 0.8

	EnvironmentProduction = "production"
)

type Config struct {
	GoogleClientID     string `yaml:"-"`
	GoogleClientSecret string `yaml:"-"`
	GoogleRedirectURI  string `yaml:"-"`
	OpenAIAPIKey       string `yaml:"-"`
	GroqAPIKey         string `yaml:"-"`
	Environment        string `yaml:"-"`
	Port               string `yaml:"-"`
	GCPProject         string `yaml:"-"`

	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Prompts PromptsConfig `yaml:"prompts"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	MaxUploadBytes    int64         `yaml:"max_upload_bytes"`
}

type LLMConfig struct {
	Provider    string  `yaml:"provider"` // "openai" or "groq"
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url"`
}

type PromptsConfig struct {
	// Path is a local YAML file or a gs://bucket/object URL.
	Path string `yaml:"path"`
}

// Secrets that may live in Secret Manager under the same name as the env var.
var secretKeys = []string{"GOOGLE_CLIENT_SECRET", "OPENAI_API_KEY", "GROQ_API_KEY"}

func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, DefaultConfigPath)
}

func LoadFrom(ctx context.Context, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  getEnvOrDefault("GOOGLE_REDIRECT_URI", defaultRedirectURI),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		Environment:        os.Getenv("ENVIRONMENT"),
		Port:               getEnvOrDefault("PORT", defaultPort),
		GCPProject:         os.Getenv("GOOGLE_CLOUD_PROJECT"),
	}

	if err := loadYAMLConfig(cfg, path); err != nil {
		return nil, err
	}
	if cfg.GCPProject != "" {
		resolveSecrets(ctx, cfg)
	}
	applyDefaults(cfg)

	return cfg, nil
}

func loadYAMLConfig(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("No config file found, using defaults", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(cfg)
	applyLLMDefaults(cfg)
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":" + cfg.Port
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = defaultMaxUploadBytes
	}
}

func applyLLMDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultLLMProvider
		if cfg.OpenAIAPIKey == "" && cfg.GroqAPIKey != "" {
			cfg.LLM.Provider = "groq"
		}
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = defaultLLMTemperature
	}
}

func (c *Config) Production() bool {
	return c.Environment == EnvironmentProduction
}

// LLMAPIKey returns the key for the selected provider.
func (c *Config) LLMAPIKey() string {
	if c.LLM.Provider == "groq" {
		return c.GroqAPIKey
	}
	return c.OpenAIAPIKey
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
