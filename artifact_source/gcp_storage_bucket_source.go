package artifact_source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/storage"
	"github.com/home-energy-audit/energy-import/types"
	typehelpers "github.com/turbot/go-kit/types"
	"google.golang.org/api/iterator"
)

// GcpStorageBucketSource is a [Source] implementation that reads files from a GCP Storage bucket
type GcpStorageBucketSource struct {
	Config     *GcpStorageBucketSourceConfig
	Extensions types.ExtensionFilter

	client     *storage.Client
	rootPrefix string
}

func NewGcpStorageBucketSource(ctx context.Context, config *GcpStorageBucketSourceConfig) (*GcpStorageBucketSource, error) {
	opts, err := config.connection().GetClientOptions(ctx, storage.ScopeReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed setting GCP Storage client config: %w", err)
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCP Storage client: %w", err)
	}

	s := &GcpStorageBucketSource{
		Config:     config,
		Extensions: types.NewExtensionFilter(config.Extensions),
		client:     client,
		rootPrefix: normalizePrefix(typehelpers.SafeString(config.Prefix)),
	}
	slog.Info("Initialized GcpStorageBucketSource", "bucket", config.Bucket, "prefix", s.rootPrefix, "extensions", config.Extensions)
	return s, nil
}

func (s *GcpStorageBucketSource) Identifier() string {
	return GcpStorageBucketSourceIdentifier
}

func (s *GcpStorageBucketSource) bucket() *storage.BucketHandle {
	// failed calls are surfaced, never retried
	return s.client.Bucket(s.Config.Bucket).Retryer(storage.WithPolicy(storage.RetryNever))
}

func (s *GcpStorageBucketSource) ListChildren(ctx context.Context, parentId string) ([]types.RemoteFile, error) {
	prefix := listPrefix(s.rootPrefix, parentId)
	query := &storage.Query{Prefix: prefix, Delimiter: keyDelimiter}
	if err := query.SetAttrSelection([]string{"Name"}); err != nil {
		return nil, err
	}

	var res []types.RemoteFile
	objectIterator := s.bucket().Objects(ctx, query)
	for {
		obj, err := objectIterator.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects in bucket %s: %w", s.Config.Bucket, err)
		}

		switch {
		case obj.Prefix != "":
			res = append(res, types.RemoteFile{Id: obj.Prefix, Name: nameFromKey(obj.Prefix), IsFolder: true})
		case obj.Name == prefix:
			// folder placeholder object
			continue
		default:
			res = append(res, types.RemoteFile{Id: obj.Name, Name: nameFromKey(obj.Name)})
		}
	}
	return filterChildren(s.Extensions, res), nil
}

func (s *GcpStorageBucketSource) GetContent(ctx context.Context, id string) (string, error) {
	reader, err := s.bucket().Object(id).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get object reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read object %s: %w", id, err)
	}
	return string(data), nil
}

func (s *GcpStorageBucketSource) Close() error {
	return s.client.Close()
}
