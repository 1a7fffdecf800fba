package artifact_source

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/home-energy-audit/energy-import/types"
	typehelpers "github.com/turbot/go-kit/types"
)

// AwsS3BucketSource is a [Source] implementation that reads files from an S3 bucket
type AwsS3BucketSource struct {
	Config     *AwsS3BucketSourceConfig
	Extensions types.ExtensionFilter

	client     *s3.Client
	rootPrefix string
}

func NewAwsS3BucketSource(ctx context.Context, config *AwsS3BucketSourceConfig) (*AwsS3BucketSource, error) {
	conn := config.connection()
	cfg, err := conn.GetClientConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(*cfg, func(o *s3.Options) {
		if endpoint := conn.endpointUrl(); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		if conn.S3ForcePathStyle != nil {
			o.UsePathStyle = *conn.S3ForcePathStyle
		}
	})

	s := &AwsS3BucketSource{
		Config:     config,
		Extensions: types.NewExtensionFilter(config.Extensions),
		client:     client,
		rootPrefix: normalizePrefix(typehelpers.SafeString(config.Prefix)),
	}
	slog.Info("Initialized AwsS3BucketSource", "bucket", config.Bucket, "region", cfg.Region, "prefix", s.rootPrefix, "extensions", config.Extensions)
	return s, nil
}

func (s *AwsS3BucketSource) Identifier() string {
	return AwsS3BucketSourceIdentifier
}

func (s *AwsS3BucketSource) ListChildren(ctx context.Context, parentId string) ([]types.RemoteFile, error) {
	prefix := listPrefix(s.rootPrefix, parentId)

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(s.Config.Bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String(keyDelimiter),
	})

	var res []types.RemoteFile
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get page of S3 objects: %w", err)
		}
		for _, p := range output.CommonPrefixes {
			folder := aws.ToString(p.Prefix)
			res = append(res, types.RemoteFile{Id: folder, Name: nameFromKey(folder), IsFolder: true})
		}
		for _, object := range output.Contents {
			key := aws.ToString(object.Key)
			// folder placeholder object
			if key == prefix {
				continue
			}
			res = append(res, types.RemoteFile{Id: key, Name: nameFromKey(key)})
		}
	}
	return filterChildren(s.Extensions, res), nil
}

func (s *AwsS3BucketSource) GetContent(ctx context.Context, id string) (string, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Config.Bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get object %s: %w", id, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read object %s: %w", id, err)
	}
	return string(data), nil
}

func (s *AwsS3BucketSource) Close() error {
	return nil
}
