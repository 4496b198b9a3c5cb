package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"tubeseo/internal/catalog"
	"tubeseo/internal/metadata"
	"tubeseo/internal/session"
)

const (
	StatusPublished = "Published"
	StatusScheduled = "Scheduled"

	privacyPublic  = "public"
	privacyPrivate = "private"

	watchURL = "https://www.youtube.com/watch?v="
)

var (
	ErrURLUploadUnsupported = errors.New("video URL upload not yet implemented")
	ErrNoVideo              = errors.New("video file or URL required")
)

// CheckVideoSource validates where the upload bytes come from. Only an
// attached file can be uploaded; a URL alone yields ErrURLUploadUnsupported.
func CheckVideoSource(hasFile bool, videoURL string) error {
	switch {
	case hasFile:
		return nil
	case strings.TrimSpace(videoURL) != "":
		return ErrURLUploadUnsupported
	default:
		return ErrNoVideo
	}
}

type UploadRequest struct {
	Metadata metadata.VideoMetadata
	Category catalog.Category
	Video    io.Reader
	// PublishAt schedules the video. Nil publishes immediately.
	PublishAt *time.Time
}

type UploadResult struct {
	VideoID  string
	VideoURL string
	Status   string
}

type Option func(*Publisher)

// WithEndpoint points the publisher at another API root.
func WithEndpoint(url string) Option {
	return func(p *Publisher) { p.endpoint = url }
}

type Publisher struct {
	auth     *Auth
	endpoint string
}

func NewPublisher(auth *Auth, opts ...Option) *Publisher {
	p := &Publisher{auth: auth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Publisher) Upload(ctx context.Context, creds session.Credentials, req UploadRequest) (*UploadResult, error) {
	if req.Video == nil {
		return nil, ErrNoVideo
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(p.auth.Client(ctx, creds))}
	if p.endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(p.endpoint))
	}

	svc, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	video := BuildVideo(req)
	slog.Info("Uploading video",
		"title", video.Snippet.Title,
		"category", video.Snippet.CategoryId,
		"privacy", video.Status.PrivacyStatus,
		"publish_at", video.Status.PublishAt,
	)

	// A zero chunk size sends the whole video in one multipart request.
	resp, err := svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(req.Video, googleapi.ChunkSize(0)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	status := StatusPublished
	if req.PublishAt != nil {
		status = StatusScheduled
	}

	return &UploadResult{
		VideoID:  resp.Id,
		VideoURL: watchURL + resp.Id,
		Status:   status,
	}, nil
}

// BuildVideo maps metadata onto the insert payload. Scheduled videos stay
// private until publishAt.
func BuildVideo(req UploadRequest) *youtube.Video {
	tags := req.Metadata.Tags
	if tags == nil {
		tags = []string{}
	}

	status := &youtube.VideoStatus{
		PrivacyStatus:           privacyPublic,
		SelfDeclaredMadeForKids: false,
		Embeddable:              true,
		PublicStatsViewable:     true,
		ForceSendFields:         []string{"SelfDeclaredMadeForKids"},
	}
	if req.PublishAt != nil {
		status.PrivacyStatus = privacyPrivate
		status.PublishAt = FormatPublishAt(*req.PublishAt)
	}

	return &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       req.Metadata.Title,
			Description: req.Metadata.FullDescription(),
			Tags:        tags,
			CategoryId:  catalog.ParseCategory(string(req.Category)).YouTubeID(),
		},
		Status: status,
	}
}

// APIErrorStatus extracts a client-facing status and message from an API
// failure. ok is false when err carries no usable message.
func APIErrorStatus(err error) (status int, message string, ok bool) {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Message == "" {
		return 0, "", false
	}

	status = gerr.Code
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusInternalServerError
	}
	return status, gerr.Message, true
}
