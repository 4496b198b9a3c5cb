package prompts

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

type Prompts struct {
	Metadata MetadataPrompts `yaml:"metadata"`
}

type MetadataPrompts struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type MetadataParams struct {
	Category     string
	Language     string
	Keywords     string
	VideoContext string
}

// Source opens named prompt files. Local directories and GCS buckets both
// satisfy it.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

func Default() *Prompts {
	var p Prompts
	if err := yaml.Unmarshal(defaultPrompts, &p); err != nil {
		panic(fmt.Sprintf("embedded prompts.yaml is invalid: %v", err))
	}
	return &p
}

func LoadFromSource(ctx context.Context, src Source, name string) (*Prompts, error) {
	r, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompts %s: %w", name, err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts %s: %w", name, err)
	}
	return Parse(data)
}

// Parse reads a prompts document. Templates left out keep their defaults.
func Parse(data []byte) (*Prompts, error) {
	p := Default()
	var override Prompts
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	if override.Metadata.System != "" {
		p.Metadata.System = override.Metadata.System
	}
	if override.Metadata.User != "" {
		p.Metadata.User = override.Metadata.User
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Prompts) Validate() error {
	for name, tmpl := range map[string]string{
		"metadata.system": p.Metadata.System,
		"metadata.user":   p.Metadata.User,
	} {
		if _, err := template.New(name).Parse(tmpl); err != nil {
			return fmt.Errorf("invalid %s template: %w", name, err)
		}
	}
	return nil
}

func (p *Prompts) RenderMetadataSystem(params MetadataParams) (string, error) {
	return render(p.Metadata.System, params)
}

func (p *Prompts) RenderMetadataUser(params MetadataParams) (string, error) {
	return render(p.Metadata.User, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
