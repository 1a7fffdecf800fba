package artifact_source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mitchellh/go-homedir"
	typehelpers "github.com/turbot/go-kit/types"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/impersonate"
)

// ErrNoToken is returned when an OAuth client is configured but no token has been saved yet
var ErrNoToken = errors.New("no saved token - run 'energy-import auth' first")

var driveScopes = []string{drive.DriveReadonlyScope}

// TokenSource returns the token source for the configured credentials
func (c *GoogleDriveSourceConfig) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	// the token endpoints use the shared transport
	ctx = context.WithValue(ctx, oauth2.HTTPClient, sharedHTTPClient)

	switch {
	case c.Impersonate != nil:
		return impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: *c.Impersonate,
			Scopes:          driveScopes,
		})

	case c.Credentials != nil:
		contents, err := pathOrContents(*c.Credentials)
		if err != nil {
			return nil, fmt.Errorf("error reading credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, []byte(contents), driveScopes...)
		if err != nil {
			return nil, fmt.Errorf("error parsing credentials: %w", err)
		}
		return creds.TokenSource, nil

	case c.ClientSecrets != nil:
		oauthConfig, err := c.OAuthConfig()
		if err != nil {
			return nil, err
		}
		tokenPath, err := homedir.Expand(typehelpers.SafeString(c.TokenFile))
		if err != nil {
			return nil, err
		}
		token, err := LoadToken(tokenPath)
		if err != nil {
			return nil, err
		}
		return &persistingTokenSource{
			base: oauthConfig.TokenSource(ctx, token),
			path: tokenPath,
			last: token,
		}, nil

	default:
		creds, err := google.FindDefaultCredentials(ctx, driveScopes...)
		if err != nil {
			return nil, fmt.Errorf("no credentials configured and no default credentials found: %w", err)
		}
		return creds.TokenSource, nil
	}
}

// OAuthConfig reads the OAuth client from client_secrets
func (c *GoogleDriveSourceConfig) OAuthConfig() (*oauth2.Config, error) {
	if c.ClientSecrets == nil {
		return nil, errors.New("client_secrets is not set")
	}
	contents, err := pathOrContents(*c.ClientSecrets)
	if err != nil {
		return nil, fmt.Errorf("error reading client secrets: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON([]byte(contents), driveScopes...)
	if err != nil {
		return nil, fmt.Errorf("error parsing client secrets: %w", err)
	}
	return oauthConfig, nil
}

// LoadToken reads a token saved by SaveToken
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w (%s)", ErrNoToken, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	token := &oauth2.Token{}
	if err := json.Unmarshal(data, token); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	return token, nil
}

// SaveToken writes the token to path, readable only by the current user
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// persistingTokenSource saves the token back to the token file whenever it is refreshed
type persistingTokenSource struct {
	base oauth2.TokenSource
	path string

	mut  sync.Mutex
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mut.Lock()
	defer s.mut.Unlock()
	if s.last == nil || token.AccessToken != s.last.AccessToken {
		if err := SaveToken(s.path, token); err != nil {
			// the refreshed token is still usable for this run
			slog.Warn("failed to save refreshed token", "path", s.path, "error", err)
		}
		s.last = token
	}
	return token, nil
}
