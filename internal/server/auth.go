package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tubeseo/internal/metrics"
	"tubeseo/internal/session"
)

func registerAuthRoutes(rg *gin.RouterGroup, s *Server) {
	auth := rg.Group("/auth")
	auth.GET("/google", s.handleAuthStart)
	auth.GET("/callback", s.handleAuthCallback)
	auth.GET("/status", s.handleAuthStatus)
}

func (s *Server) handleAuthStart(c *gin.Context) {
	if !s.linker.Configured() {
		respondError(c, http.StatusServiceUnavailable, "Google OAuth is not configured")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, s.linker.AuthURL())
}

func (s *Server) handleAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		metrics.RecordOAuthCallback("no_code")
		c.Redirect(http.StatusTemporaryRedirect, "/?error=no_code")
		return
	}

	creds, err := s.linker.Exchange(c.Request.Context(), code)
	if err != nil {
		slog.Error("OAuth callback failed", "error", err, "request_id", c.GetString("request_id"))
		metrics.RecordOAuthCallback("auth_failed")
		c.Redirect(http.StatusTemporaryRedirect, "/?error=auth_failed")
		return
	}

	session.Save(s.store(c), creds)
	metrics.RecordOAuthCallback("linked")
	slog.Info("Google account linked", "refresh_token", creds.RefreshToken != "")
	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func (s *Server) handleAuthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": session.Authenticated(s.store(c))})
}
