package artifact_source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	typehelpers "github.com/turbot/go-kit/types"
	"golang.org/x/oauth2"
)

// Authorize runs the interactive OAuth flow for the configured client and saves the resulting token to token_file
// a loopback server receives the redirect - openURL is called with the consent page URL
func Authorize(ctx context.Context, c *GoogleDriveSourceConfig, openURL func(string) error) (*oauth2.Token, error) {
	oauthConfig, err := c.OAuthConfig()
	if err != nil {
		return nil, err
	}
	tokenPath, err := homedir.Expand(typehelpers.SafeString(c.TokenFile))
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start loopback listener: %w", err)
	}
	oauthConfig.RedirectURL = fmt.Sprintf("http://%s/", listener.Addr().String())

	state := uuid.NewString()
	codes := make(chan string, 1)
	errs := make(chan error, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("state") != state:
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		case q.Get("error") != "":
			sendOnce(errs, fmt.Errorf("authorization failed: %s", q.Get("error")))
		default:
			sendOnce(codes, q.Get("code"))
		}
		_, _ = fmt.Fprintln(w, "Authorization complete, you may close this window.")
	})}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sendOnce(errs, err)
		}
	}()
	defer server.Close()

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	slog.Info("waiting for authorization", "redirect", oauthConfig.RedirectURL)
	if err := openURL(authURL); err != nil {
		return nil, err
	}

	var code string
	select {
	case code = <-codes:
	case err := <-errs:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	token, err := oauthConfig.Exchange(context.WithValue(ctx, oauth2.HTTPClient, sharedHTTPClient), code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := SaveToken(tokenPath, token); err != nil {
		return nil, err
	}
	return token, nil
}

// sendOnce sends v unless the (buffered) channel is already full
func sendOnce[T any](c chan T, v T) {
	select {
	case c <- v:
	default:
	}
}
