package artifact_source

import (
	"context"

	"github.com/home-energy-audit/energy-import/types"
)

// Source is a handle onto a hierarchical remote file store
// the root of the hierarchy always has the identifier constants.RootIdentifier
type Source interface {
	Identifier() string
	// ListChildren returns the immediate children of the node with the given identifier, excluding trashed items
	ListChildren(ctx context.Context, parentId string) ([]types.RemoteFile, error)
	// GetContent returns the full text content of the file with the given identifier
	GetContent(ctx context.Context, id string) (string, error)
	Close() error
}
