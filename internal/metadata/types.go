package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMalformedResponse = errors.New("malformed metadata response")
	ErrGenerationFailed  = errors.New("failed to generate metadata")
	ErrMetadataRequired  = errors.New("metadata required")
)

type VideoMetadata struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Hashtags        []string `json:"hashtags"`
	ThumbnailPrompt string   `json:"thumbnailPrompt"`
}

// FullDescription is the description as published: body, blank line, hashtags.
func (m VideoMetadata) FullDescription() string {
	return m.Description + "\n\n" + strings.Join(m.Hashtags, " ")
}

type wireMetadata struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Tags            *[]string `json:"tags"`
	Hashtags        *[]string `json:"hashtags"`
	ThumbnailPrompt *string   `json:"thumbnailPrompt"`
}

// Decode parses model output. Every field must be present with the right
// type, nothing else may appear, and only a single JSON object is accepted.
func Decode(data []byte) (*VideoMetadata, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireMetadata
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedResponse)
	}

	switch {
	case w.Title == nil || strings.TrimSpace(*w.Title) == "":
		return nil, fmt.Errorf("%w: missing title", ErrMalformedResponse)
	case w.Description == nil || strings.TrimSpace(*w.Description) == "":
		return nil, fmt.Errorf("%w: missing description", ErrMalformedResponse)
	case w.Tags == nil || len(*w.Tags) == 0:
		return nil, fmt.Errorf("%w: missing tags", ErrMalformedResponse)
	case w.Hashtags == nil || len(*w.Hashtags) == 0:
		return nil, fmt.Errorf("%w: missing hashtags", ErrMalformedResponse)
	case w.ThumbnailPrompt == nil:
		return nil, fmt.Errorf("%w: missing thumbnailPrompt", ErrMalformedResponse)
	}

	return &VideoMetadata{
		Title:           *w.Title,
		Description:     *w.Description,
		Tags:            *w.Tags,
		Hashtags:        *w.Hashtags,
		ThumbnailPrompt: *w.ThumbnailPrompt,
	}, nil
}

// ParseSubmitted reads metadata sent back by the client after editing. Unlike
// Decode it only requires well-formed JSON; the user owns the content.
func ParseSubmitted(raw string) (*VideoMetadata, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMetadataRequired
	}

	var m VideoMetadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataRequired, err)
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.Hashtags == nil {
		m.Hashtags = []string{}
	}
	return &m, nil
}
