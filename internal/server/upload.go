package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tubeseo/internal/catalog"
	"tubeseo/internal/metadata"
	"tubeseo/internal/metrics"
	"tubeseo/internal/session"
	"tubeseo/internal/youtube"
)

const (
	msgNotAuthenticated    = "Not authenticated"
	msgMetadataRequired    = "Metadata required"
	msgURLUploadPending    = "Video URL upload not yet implemented. Please upload a file."
	msgVideoRequired       = "Video file or URL required"
	msgInvalidSchedule     = "Invalid schedule time"
	msgVideoTooLarge       = "Video file too large"
	msgUploadFailedGeneric = "Failed to upload video. Make sure your Google account has access to YouTube."
)

type uploadResponse struct {
	VideoID       string                  `json:"videoId"`
	VideoURL      string                  `json:"videoUrl"`
	Metadata      *metadata.VideoMetadata `json:"metadata"`
	ScheduledTime *string                 `json:"scheduledTime"`
	Status        string                  `json:"status"`
}

func (s *Server) handleUpload(c *gin.Context) {
	creds, err := session.Load(s.store(c))
	if err != nil {
		respondError(c, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	if !s.parseForm(c) {
		return
	}

	meta, err := metadata.ParseSubmitted(c.PostForm("metadata"))
	if err != nil {
		respondError(c, http.StatusBadRequest, msgMetadataRequired)
		return
	}

	fh, fileErr := c.FormFile("video")
	if err := youtube.CheckVideoSource(fileErr == nil, c.PostForm("videoUrl")); err != nil {
		respondError(c, http.StatusBadRequest, videoSourceMessage(err))
		return
	}

	rawSchedule := strings.TrimSpace(c.PostForm("scheduleTime"))
	publishAt, err := youtube.ParseScheduleTime(rawSchedule, s.location)
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidSchedule)
		return
	}

	video, err := readVideo(fh)
	if err != nil {
		slog.Error("Failed to read uploaded video", "error", err)
		respondError(c, http.StatusBadRequest, msgVideoRequired)
		return
	}

	// Accepted for the form contract; YouTube monetization is not set here.
	monetization := c.PostForm("monetization") == "true"
	category := catalog.ParseCategory(c.PostForm("category"))

	slog.Info("Upload requested",
		"file", fh.Filename,
		"size", len(video),
		"category", category,
		"scheduled", publishAt != nil,
		"monetization", monetization,
		"request_id", c.GetString("request_id"),
	)

	result, err := s.uploader.Upload(c.Request.Context(), creds, youtube.UploadRequest{
		Metadata:  *meta,
		Category:  category,
		Video:     bytes.NewReader(video),
		PublishAt: publishAt,
	})
	if err != nil {
		metrics.RecordUpload("error", 0)
		slog.Error("Upload failed", "error", err, "request_id", c.GetString("request_id"))
		if status, message, ok := youtube.APIErrorStatus(err); ok {
			respondError(c, status, message)
			return
		}
		respondError(c, http.StatusInternalServerError, msgUploadFailedGeneric)
		return
	}
	metrics.RecordUpload(strings.ToLower(result.Status), int64(len(video)))

	resp := uploadResponse{
		VideoID:  result.VideoID,
		VideoURL: result.VideoURL,
		Metadata: meta,
		Status:   result.Status,
	}
	if rawSchedule != "" {
		resp.ScheduledTime = &rawSchedule
	}
	c.JSON(http.StatusOK, resp)
}

func videoSourceMessage(err error) string {
	if errors.Is(err, youtube.ErrURLUploadUnsupported) {
		return msgURLUploadPending
	}
	return msgVideoRequired
}

func readVideo(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return data, nil
}
