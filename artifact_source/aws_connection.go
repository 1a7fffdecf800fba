package artifact_source

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

const defaultBucketRegion = "us-east-1"

// AwsConnection holds the AWS credential and endpoint settings of the S3 bucket source
type AwsConnection struct {
	Region       *string `hcl:"region"`
	Profile      *string `hcl:"profile"`
	AccessKey    *string `hcl:"access_key"`
	SecretKey    *string `hcl:"secret_key"`
	SessionToken *string `hcl:"session_token"`
	// EndpointUrl overrides the S3 endpoint, e.g. for MinIO
	EndpointUrl      *string `hcl:"endpoint_url"`
	S3ForcePathStyle *bool   `hcl:"s3_force_path_style"`
}

func (c *AwsConnection) Validate() error {
	if c.AccessKey != nil && c.SecretKey == nil {
		return fmt.Errorf("access_key set without secret_key")
	}

	if c.AccessKey == nil && c.SecretKey != nil {
		return fmt.Errorf("secret_key set without access_key")
	}

	if c.SessionToken != nil && c.AccessKey == nil {
		return fmt.Errorf("session_token set without access_key")
	}

	return nil
}

func (c *AwsConnection) GetClientConfiguration(ctx context.Context) (*aws.Config, error) {
	var configOptions []func(*config.LoadOptions) error

	// profile
	if c.Profile != nil {
		configOptions = append(configOptions, config.WithSharedConfigProfile(aws.ToString(c.Profile)))
	}

	// access keys
	if c.AccessKey != nil && c.SecretKey != nil {
		provider := credentials.NewStaticCredentialsProvider(aws.ToString(c.AccessKey), aws.ToString(c.SecretKey), aws.ToString(c.SessionToken))
		configOptions = append(configOptions, config.WithCredentialsProvider(provider))
	}

	if c.Region != nil {
		configOptions = append(configOptions, config.WithRegion(*c.Region))
	}

	// shared http client, no retries
	configOptions = append(configOptions,
		config.WithHTTPClient(sharedAwsHTTPClient),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)

	cfg, err := config.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	// if no region from config or environment, apply the default
	if cfg.Region == "" {
		cfg.Region = defaultBucketRegion
	}
	return &cfg, nil
}

// endpointUrl returns the configured endpoint, falling back to AWS_ENDPOINT_URL
func (c *AwsConnection) endpointUrl() string {
	if c.EndpointUrl != nil {
		return *c.EndpointUrl
	}
	return os.Getenv("AWS_ENDPOINT_URL")
}

// the AWS SDK has a "buildable" HTTP client which keeps the SDK default timeouts -
// only connection limits and the dialer are overridden
func initializeAwsHTTPClient() aws.HTTPClient {
	client := awshttp.NewBuildableClient()

	if httpTransportMaxConnsPerHost > 0 {
		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.MaxConnsPerHost = httpTransportMaxConnsPerHost
		})
	}

	if dial := cachingDialContext(client.GetDialer()); dial != nil {
		client = client.WithTransportOptions(func(tr *http.Transport) {
			tr.DialContext = dial
		})
	}
	return client
}

var sharedAwsHTTPClient = initializeAwsHTTPClient()
