package types

import (
	"path/filepath"
	"strings"
)

// ExtensionFilter restricts which files a listing returns - folders are never filtered
type ExtensionFilter map[string]struct{}

func NewExtensionFilter(extensions []string) ExtensionFilter {
	filter := make(ExtensionFilter, len(extensions))
	for _, ext := range extensions {
		filter[strings.ToLower(ext)] = struct{}{}
	}
	return filter
}

// Allows returns whether the remote file should be included in a listing
func (l ExtensionFilter) Allows(f RemoteFile) bool {
	// empty filter means everything is valid
	if len(l) == 0 || f.IsFolder {
		return true
	}

	_, valid := l[strings.ToLower(filepath.Ext(f.Name))]
	return valid
}
