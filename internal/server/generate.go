package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeseo/internal/catalog"
	"tubeseo/internal/metadata"
	"tubeseo/internal/metrics"
)

func (s *Server) handleGenerateMetadata(c *gin.Context) {
	if !s.parseForm(c) {
		return
	}

	req := metadata.Request{
		Category: catalog.ParseCategory(c.PostForm("category")),
		Language: catalog.ParseLanguage(c.PostForm("language")),
		URL:      c.PostForm("videoUrl"),
	}
	// Only the name of an attached file reaches the prompt.
	if fh, err := c.FormFile("video"); err == nil {
		req.FileName = fh.Filename
	}

	source := metrics.SourceLLM
	if s.generator.UsesFallback() {
		source = metrics.SourceFallback
	}

	meta, err := s.generator.Generate(c.Request.Context(), req)
	metrics.RecordGeneration(source, string(req.Category), err)
	if err != nil {
		slog.Error("Metadata generation failed",
			"error", err,
			"category", req.Category,
			"language", req.Language,
			"request_id", c.GetString("request_id"),
		)
		respondError(c, http.StatusInternalServerError, "Failed to generate metadata")
		return
	}

	c.JSON(http.StatusOK, gin.H{"metadata": meta})
}
