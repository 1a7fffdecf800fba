package artifact_source

import (
	"fmt"
)

const GoogleDriveSourceIdentifier = "google_drive"

// GoogleDriveSourceConfig is the configuration for a [GoogleDriveSource]
//
// Credentials are taken from (in order of precedence):
//   - impersonate: a service account to impersonate using the application default credentials
//   - credentials: a service account or authorized user JSON file (path or contents)
//   - client_secrets and token_file: an OAuth desktop client and the token saved by `energy-import auth`
//   - the application default credentials
type GoogleDriveSourceConfig struct {
	Credentials   *string  `hcl:"credentials"`
	ClientSecrets *string  `hcl:"client_secrets"`
	TokenFile     *string  `hcl:"token_file"`
	QuotaProject  *string  `hcl:"quota_project"`
	Impersonate   *string  `hcl:"impersonate"`
	Extensions    []string `hcl:"extensions,optional"`
}

func (c *GoogleDriveSourceConfig) Identifier() string {
	return GoogleDriveSourceIdentifier
}

func (c *GoogleDriveSourceConfig) Validate() error {
	if (c.ClientSecrets == nil) != (c.TokenFile == nil) {
		return fmt.Errorf("client_secrets and token_file must be set together")
	}
	if c.Credentials != nil && c.ClientSecrets != nil {
		return fmt.Errorf("only one of credentials and client_secrets may be set")
	}
	if err := validateExtensions(c.Extensions); err != nil {
		return err
	}
	return c.connection().Validate()
}

func (c *GoogleDriveSourceConfig) connection() *GcpConnection {
	return &GcpConnection{
		Credentials:  c.Credentials,
		QuotaProject: c.QuotaProject,
		Impersonate:  c.Impersonate,
	}
}
