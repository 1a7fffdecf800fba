package artifact_source

import (
	"context"
	"fmt"

	"github.com/home-energy-audit/energy-import/parse"
	"golang.org/x/exp/maps"
)

// Factory is the global SourceFactory instance
var Factory = newFactory()

type sourceCtor func(ctx context.Context, configData *parse.ConfigData) (Source, error)

type SourceFactory struct {
	sources map[string]sourceCtor
}

func newFactory() SourceFactory {
	f := SourceFactory{sources: make(map[string]sourceCtor)}
	registerSource(f, func(ctx context.Context, c *GoogleDriveSourceConfig) (Source, error) {
		return NewGoogleDriveSource(ctx, c)
	})
	registerSource(f, func(ctx context.Context, c *GcpStorageBucketSourceConfig) (Source, error) {
		return NewGcpStorageBucketSource(ctx, c)
	})
	registerSource(f, func(ctx context.Context, c *AwsS3BucketSourceConfig) (Source, error) {
		return NewAwsS3BucketSource(ctx, c)
	})
	registerSource(f, func(_ context.Context, c *FileSystemSourceConfig) (Source, error) {
		return NewFileSystemSource(c)
	})
	return f
}

// registerSource registers a constructor keyed by the identifier of its config type
func registerSource[T parse.Config](f SourceFactory, ctor func(context.Context, T) (Source, error)) {
	id := parse.NewInstance[T]().Identifier()
	f.sources[id] = func(ctx context.Context, configData *parse.ConfigData) (Source, error) {
		config, err := parse.ParseConfig[T](configData)
		if err != nil {
			return nil, err
		}
		return ctor(ctx, config)
	}
}

// SourceTypes returns the registered source type names
func (f SourceFactory) SourceTypes() []string {
	return maps.Keys(f.sources)
}

// GetSource parses the source config block and instantiates the source it describes
// It will fail if the requested source type is not registered
func (f SourceFactory) GetSource(ctx context.Context, configData *parse.ConfigData) (Source, error) {
	ctor, ok := f.sources[configData.Id]
	if !ok {
		return nil, fmt.Errorf("source not registered: %s", configData.Id)
	}
	source, err := ctor(ctx, configData)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise %s source: %w", configData.Id, err)
	}
	return source, nil
}
