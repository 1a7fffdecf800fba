package artifact_source

import (
	"errors"
)

const AwsS3BucketSourceIdentifier = "aws_s3_bucket"

// AwsS3BucketSourceConfig is the configuration for an [AwsS3BucketSource]
type AwsS3BucketSourceConfig struct {
	Bucket string `hcl:"bucket"`
	// Prefix is the key prefix treated as the root of the hierarchy
	Prefix     *string  `hcl:"prefix"`
	Extensions []string `hcl:"extensions,optional"`

	Region           *string `hcl:"region"`
	Profile          *string `hcl:"profile"`
	AccessKey        *string `hcl:"access_key"`
	SecretKey        *string `hcl:"secret_key"`
	SessionToken     *string `hcl:"session_token"`
	EndpointUrl      *string `hcl:"endpoint_url"`
	S3ForcePathStyle *bool   `hcl:"s3_force_path_style"`
}

func (c *AwsS3BucketSourceConfig) Identifier() string {
	return AwsS3BucketSourceIdentifier
}

func (c *AwsS3BucketSourceConfig) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket is required")
	}
	if err := validateExtensions(c.Extensions); err != nil {
		return err
	}
	return c.connection().Validate()
}

func (c *AwsS3BucketSourceConfig) connection() *AwsConnection {
	return &AwsConnection{
		Region:           c.Region,
		Profile:          c.Profile,
		AccessKey:        c.AccessKey,
		SecretKey:        c.SecretKey,
		SessionToken:     c.SessionToken,
		EndpointUrl:      c.EndpointUrl,
		S3ForcePathStyle: c.S3ForcePathStyle,
	}
}
