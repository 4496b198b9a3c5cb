// Package youtube links Google accounts and publishes videos through the
// YouTube Data API.
package youtube

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"tubeseo/internal/session"
)

// The callback only looks at the code, so the state is fixed.
const authState = "state-token"

var scopes = []string{
	"https://www.googleapis.com/auth/youtube.upload",
	"https://www.googleapis.com/auth/youtube",
}

type Auth struct {
	config *oauth2.Config
}

func NewAuth(clientID, clientSecret, redirectURL string) *Auth {
	return &Auth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       scopes,
			RedirectURL:  redirectURL,
		},
	}
}

func (a *Auth) Configured() bool {
	return a.config.ClientID != ""
}

// AuthURL is the consent page. Offline access with a forced prompt makes
// Google issue a refresh token on every link.
func (a *Auth) AuthURL() string {
	return a.config.AuthCodeURL(authState, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (a *Auth) Exchange(ctx context.Context, code string) (session.Credentials, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return session.Credentials{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	return session.Credentials{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// Client returns an HTTP client authorised with creds. The token carries no
// expiry so it is used as-is until Google rejects it.
func (a *Auth) Client(ctx context.Context, creds session.Credentials) *http.Client {
	return a.config.Client(ctx, &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    "Bearer",
	})
}
