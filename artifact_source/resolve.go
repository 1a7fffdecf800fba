package artifact_source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/home-energy-audit/energy-import/constants"
)

// ErrNotFound is returned when a path segment has no matching child
var ErrNotFound = errors.New("not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IdentifierMap maps each resolved path segment name to its remote identifier
// it always contains the synthetic root entry
type IdentifierMap map[string]string

func NewIdentifierMap() IdentifierMap {
	return IdentifierMap{constants.RootIdentifier: constants.RootIdentifier}
}

func (m IdentifierMap) Lookup(name string) (string, bool) {
	id, ok := m[name]
	return id, ok
}

// ResolvePath walks the source hierarchy one level per segment and returns the identifier of the last segment
// if the last segment (or any segment before it) has no matching child, an error wrapping ErrNotFound is returned
func ResolvePath(ctx context.Context, source Source, segments []string) (string, error) {
	ids, lastMatched, err := resolve(ctx, source, segments)
	if err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return constants.RootIdentifier, nil
	}
	last := segments[len(segments)-1]
	if !lastMatched {
		return "", fmt.Errorf("%w: '%s' (path %s)", ErrNotFound, last, strings.Join(segments, "/"))
	}
	return ids[last], nil
}

// ResolvePathMap walks the source hierarchy one level per segment and returns the map of every segment
// which was resolved - segments with no match are absent from the map
// segments below a miss are not listed, so the walk makes at most one ListChildren call per segment
func ResolvePathMap(ctx context.Context, source Source, segments []string) (IdentifierMap, error) {
	ids, _, err := resolve(ctx, source, segments)
	return ids, err
}

// resolve lists the children of the previously resolved node once per segment, binding the first child
// whose name matches. Once a segment misses there is no parent to list, so all later segments stay unbound
// and are consumed without a ListChildren call - a path whose segment k misses makes k calls, not one per segment
func resolve(ctx context.Context, source Source, segments []string) (IdentifierMap, bool, error) {
	ids := NewIdentifierMap()
	parentId := constants.RootIdentifier
	matched := true

	for _, segment := range segments {
		if !matched {
			slog.Debug("skipping segment below unresolved parent", "segment", segment)
			continue
		}

		children, err := source.ListChildren(ctx, parentId)
		if err != nil {
			return nil, false, fmt.Errorf("failed to list children of '%s' in %s: %w", parentId, source.Identifier(), err)
		}

		matched = false
		for _, child := range children {
			if child.Name == segment {
				ids[segment] = child.Id
				parentId = child.Id
				matched = true
				break
			}
		}
		slog.Debug("resolved segment", "segment", segment, "matched", matched, "children", len(children))
	}
	return ids, matched, nil
}
