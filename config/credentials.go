// ABOUTME: Credential storage and token refresh against the identity provider
// ABOUTME: Tokens live at an XDG data path; refresh goes through oauth2
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/oauth2"
)

// CredentialsPath returns where the console stores its tokens.
func CredentialsPath() string {
	return filepath.Join(xdg.DataHome, "studioctl", "credentials.json")
}

// SaveToken persists a token to the XDG data directory.
func SaveToken(token *oauth2.Token) error {
	path := CredentialsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	// Tokens are credentials: owner-only.
	return os.WriteFile(path, data, 0600)
}

// LoadToken reads the stored token, or an error telling the user to log
// in when none exists.
func LoadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(CredentialsPath())
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("no stored credentials, run 'studioctl login'")
	}
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse stored credentials: %w", err)
	}
	return &token, nil
}

// ClearToken removes stored credentials.
func ClearToken() error {
	err := os.Remove(CredentialsPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// oauthConfig builds the refresh configuration against the identity
// provider's token endpoint.
func (c *Config) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID: "studioctl",
		Endpoint: oauth2.Endpoint{
			TokenURL: c.IdentityURL + "/token",
		},
	}
}

// TokenSource returns a credential for API clients: the stored token,
// auto-refreshed through the identity provider and persisted back on
// rotation. This is the explicit per-client credential; nothing global.
func (c *Config) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := LoadToken()
	if err != nil {
		return nil, err
	}
	if c.IdentityURL == "" {
		// No refresh endpoint configured; use the token as-is.
		return oauth2.StaticTokenSource(token), nil
	}
	base := c.oauthConfig().TokenSource(ctx, token)
	return &persistingTokenSource{base: oauth2.ReuseTokenSource(token, base), last: token.AccessToken}, nil
}

// persistingTokenSource writes refreshed tokens back to disk so the next
// invocation starts from the rotated credential.
type persistingTokenSource struct {
	base oauth2.TokenSource
	last string
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != s.last {
		s.last = token.AccessToken
		if err := SaveToken(token); err != nil {
			// Refresh worked; a failed save only costs a refresh next run.
			fmt.Fprintf(os.Stderr, "warning: failed to persist refreshed token: %v\n", err)
		}
	}
	return token, nil
}
