// Package session keeps the linked Google account's tokens on the client.
package session

import (
	"errors"
	"net/http"
	"time"
)

const (
	AccessTokenKey  = "google_access_token"
	RefreshTokenKey = "google_refresh_token"

	// CredentialTTL is how long the browser keeps the tokens.
	CredentialTTL = 30 * 24 * time.Hour
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Store is a per-client key/value store. Implementations are scoped to a
// single request.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string, ttl time.Duration)
}

type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

// NewCookieStore reads from r and writes Set-Cookie headers to w, so any
// net/http handler can use it. Cookies are SameSite=Lax and marked Secure
// when secure is true.
func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{r: r, w: w, secure: secure}
}

func (s *CookieStore) Get(key string) (string, bool) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) Set(key, value string, ttl time.Duration) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// Load returns the stored credentials. A missing or empty access token is
// ErrNotAuthenticated; the refresh token is optional.
func Load(s Store) (Credentials, error) {
	access, ok := s.Get(AccessTokenKey)
	if !ok || access == "" {
		return Credentials{}, ErrNotAuthenticated
	}
	refresh, _ := s.Get(RefreshTokenKey)
	return Credentials{AccessToken: access, RefreshToken: refresh}, nil
}

// Save writes the access token and, when present, the refresh token.
func Save(s Store, c Credentials) {
	s.Set(AccessTokenKey, c.AccessToken, CredentialTTL)
	if c.RefreshToken != "" {
		s.Set(RefreshTokenKey, c.RefreshToken, CredentialTTL)
	}
}

func Authenticated(s Store) bool {
	_, err := Load(s)
	return err == nil
}
