package artifact_source

import (
	"path"
	"strings"

	"github.com/home-energy-audit/energy-import/constants"
)

// Object stores have a flat key space - folders are emulated with '/' delimited key prefixes.
// The identifier of a folder is its key prefix (with a trailing '/'), the identifier of a file is its key.

const keyDelimiter = "/"

// normalizePrefix returns the configured root prefix with a single trailing delimiter, or "" for the bucket root
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, keyDelimiter)
	if prefix == "" {
		return ""
	}
	return prefix + keyDelimiter
}

// listPrefix returns the key prefix to list for the given parent identifier
func listPrefix(rootPrefix, parentId string) string {
	if parentId == constants.RootIdentifier {
		return rootPrefix
	}
	if !strings.HasSuffix(parentId, keyDelimiter) {
		return parentId + keyDelimiter
	}
	return parentId
}

// nameFromKey returns the display name of an object key or folder prefix
func nameFromKey(key string) string {
	return path.Base(strings.TrimSuffix(key, keyDelimiter))
}
