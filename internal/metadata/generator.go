package metadata

import (
	"context"
	"fmt"
	"log/slog"

	"tubeseo/internal/catalog"
	"tubeseo/pkg/prompts"
)

// Completer is the slice of an LLM provider the generator needs.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Request struct {
	Category catalog.Category
	Language catalog.Language
	FileName string
	URL      string
}

// VideoContext describes the video to the model. A file wins over a URL.
func (r Request) VideoContext() string {
	switch {
	case r.FileName != "":
		return "video file: " + r.FileName
	case r.URL != "":
		return "video URL: " + r.URL
	default:
		return "video content"
	}
}

type Generator struct {
	completer Completer
	prompts   *prompts.Prompts
}

// NewGenerator returns a generator that answers from the fallback tables when
// completer is nil.
func NewGenerator(completer Completer, p *prompts.Prompts) *Generator {
	if p == nil {
		p = prompts.Default()
	}
	return &Generator{completer: completer, prompts: p}
}

func (g *Generator) UsesFallback() bool {
	return g.completer == nil
}

func (g *Generator) Generate(ctx context.Context, req Request) (*VideoMetadata, error) {
	category := catalog.ParseCategory(string(req.Category))
	language := catalog.ParseLanguage(string(req.Language))

	if g.UsesFallback() {
		slog.Debug("Using fallback metadata", "category", category, "language", language)
		return Fallback(category), nil
	}

	params := prompts.MetadataParams{
		Category:     string(category),
		Language:     language.DisplayName(),
		Keywords:     category.Keywords(),
		VideoContext: req.VideoContext(),
	}

	systemPrompt, err := g.prompts.RenderMetadataSystem(params)
	if err != nil {
		return nil, fmt.Errorf("%w: system prompt: %v", ErrGenerationFailed, err)
	}
	userPrompt, err := g.prompts.RenderMetadataUser(params)
	if err != nil {
		return nil, fmt.Errorf("%w: user prompt: %v", ErrGenerationFailed, err)
	}

	content, err := g.completer.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	meta, err := Decode([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	slog.Debug("Generated metadata", "category", category, "language", language, "title", meta.Title)
	return meta, nil
}
