package artifact_source

import (
	"errors"
)

const GcpStorageBucketSourceIdentifier = "gcp_storage_bucket"

// GcpStorageBucketSourceConfig is the configuration for [GcpStorageBucketSource]
type GcpStorageBucketSourceConfig struct {
	Bucket string `hcl:"bucket"`
	// Prefix is the key prefix treated as the root of the hierarchy
	Prefix       *string  `hcl:"prefix"`
	Extensions   []string `hcl:"extensions,optional"`
	Credentials  *string  `hcl:"credentials"`
	QuotaProject *string  `hcl:"quota_project"`
	Impersonate  *string  `hcl:"impersonate"`
}

func (c *GcpStorageBucketSourceConfig) Identifier() string {
	return GcpStorageBucketSourceIdentifier
}

func (c *GcpStorageBucketSourceConfig) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket is required")
	}
	if err := validateExtensions(c.Extensions); err != nil {
		return err
	}
	return c.connection().Validate()
}

func (c *GcpStorageBucketSourceConfig) connection() *GcpConnection {
	return &GcpConnection{
		Credentials:  c.Credentials,
		QuotaProject: c.QuotaProject,
		Impersonate:  c.Impersonate,
	}
}
