package config

import (
	"context"
	"fmt"
	"log/slog"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

type SecretAccessor interface {
	AccessSecret(ctx context.Context, name string) (string, error)
	Close() error
}

type SecretManager struct {
	client  *secretmanager.Client
	project string
}

func NewSecretManager(ctx context.Context, project string) (*SecretManager, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}
	return &SecretManager{client: client, project: project}, nil
}

// AccessSecret reads the latest version of a secret in the configured project.
func (s *SecretManager) AccessSecret(ctx context.Context, name string) (string, error) {
	resp, err := s.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", s.project, name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to access secret %s: %w", name, err)
	}
	return string(resp.GetPayload().GetData()), nil
}

func (s *SecretManager) Close() error {
	return s.client.Close()
}

var newSecretAccessor = func(ctx context.Context, project string) (SecretAccessor, error) {
	return NewSecretManager(ctx, project)
}

// resolveSecrets fills secrets missing from the environment. Failures leave
// the value empty; the app degrades to fallback metadata or disabled linking.
func resolveSecrets(ctx context.Context, cfg *Config) {
	targets := map[string]*string{
		"GOOGLE_CLIENT_SECRET": &cfg.GoogleClientSecret,
		"OPENAI_API_KEY":       &cfg.OpenAIAPIKey,
		"GROQ_API_KEY":         &cfg.GroqAPIKey,
	}

	var missing []string
	for _, key := range secretKeys {
		if *targets[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return
	}

	accessor, err := newSecretAccessor(ctx, cfg.GCPProject)
	if err != nil {
		slog.Warn("Secret Manager unavailable", "error", err)
		return
	}
	defer func() { _ = accessor.Close() }()

	for _, key := range missing {
		value, err := accessor.AccessSecret(ctx, key)
		if err != nil {
			slog.Debug("Secret not resolved", "name", key, "error", err)
			continue
		}
		*targets[key] = value
		slog.Debug("Resolved secret from Secret Manager", "name", key)
	}
}
