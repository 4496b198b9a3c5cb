// Package server exposes the upload flow over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tubeseo/internal/metadata"
	"tubeseo/internal/session"
	"tubeseo/internal/youtube"
	"tubeseo/pkg/config"
)

// Linker links a Google account.
type Linker interface {
	Configured() bool
	AuthURL() string
	Exchange(ctx context.Context, code string) (session.Credentials, error)
}

type Generator interface {
	Generate(ctx context.Context, req metadata.Request) (*metadata.VideoMetadata, error)
	UsesFallback() bool
}

type Uploader interface {
	Upload(ctx context.Context, creds session.Credentials, req youtube.UploadRequest) (*youtube.UploadResult, error)
}

type Server struct {
	cfg       *config.Config
	engine    *gin.Engine
	linker    Linker
	generator Generator
	uploader  Uploader
	// location reads zoneless schedule times.
	location *time.Location
}

func New(cfg *config.Config, linker Linker, generator Generator, uploader Uploader) *Server {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:       cfg,
		engine:    gin.New(),
		linker:    linker,
		generator: generator,
		uploader:  uploader,
		location:  time.Local,
	}

	s.engine.Use(gin.Recovery(), requestID(), requestLogger(), requestMetrics())
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	registerAuthRoutes(api, s)
	api.POST("/generate-metadata", s.handleGenerateMetadata)
	api.POST("/upload", s.handleUpload)

	registerWebRoutes(s.engine)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: s.cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", s.cfg.Server.Addr, "fallback_metadata", s.generator.UsesFallback())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func (s *Server) store(c *gin.Context) session.Store {
	return session.NewCookieStore(c.Writer, c.Request, s.cfg.Production())
}

// parseForm caps the request body at the configured upload size and parses it.
// It answers 413 and returns false when the body is over the cap.
func (s *Server) parseForm(c *gin.Context) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadBytes)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, msgVideoTooLarge)
			return false
		}
		slog.Debug("Unreadable form", "error", err, "path", c.Request.URL.Path)
	}
	return true
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
