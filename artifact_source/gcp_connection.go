package artifact_source

import (
	"context"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

// GcpConnection holds the google credential settings shared by the google drive and storage bucket sources
type GcpConnection struct {
	// Credentials is a path to, or the contents of, a service account or authorized user JSON file
	Credentials  *string `hcl:"credentials"`
	QuotaProject *string `hcl:"quota_project"`
	// Impersonate is the email of a service account to impersonate
	Impersonate *string `hcl:"impersonate"`
}

func (c *GcpConnection) Validate() error {
	if c.Credentials != nil && *c.Credentials == "" {
		return fmt.Errorf("credentials must not be empty if set")
	}
	return nil
}

func (c *GcpConnection) quotaProject() string {
	if c.QuotaProject != nil {
		return *c.QuotaProject
	}
	return os.Getenv("GOOGLE_CLOUD_QUOTA_PROJECT")
}

// GetClientOptions returns the google API client options for this connection, requesting the given scopes
func (c *GcpConnection) GetClientOptions(ctx context.Context, scopes ...string) ([]option.ClientOption, error) {
	var opts []option.ClientOption

	// credentials
	if c.Credentials != nil {
		contents, err := pathOrContents(*c.Credentials)
		if err != nil {
			return opts, fmt.Errorf("error reading credentials file: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON([]byte(contents)))
	}

	// quota project
	if qp := c.quotaProject(); qp != "" {
		opts = append(opts, option.WithQuotaProject(qp))
	}

	// impersonation of service account
	if c.Impersonate != nil {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: *c.Impersonate,
			Scopes:          scopes,
		})
		if err != nil {
			return opts, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	}

	if len(scopes) > 0 {
		opts = append(opts, option.WithScopes(scopes...))
	}
	return opts, nil
}

// pathOrContents returns the contents of the file at the given path (which may start with ~),
// or the input itself if it is not a path to an existing file
func pathOrContents(in string) (string, error) {
	if len(in) == 0 {
		return "", nil
	}

	filePath := in
	if filePath[0] == '~' {
		var err error
		filePath, err = homedir.Expand(filePath)
		if err != nil {
			return filePath, err
		}
	}

	if _, err := os.Stat(filePath); err == nil {
		contents, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(contents), nil
	}

	if len(filePath) > 1 && (filePath[0] == '/' || filePath[0] == '\\') {
		return "", fmt.Errorf("%s: no such file or dir", filePath)
	}

	return in, nil
}
