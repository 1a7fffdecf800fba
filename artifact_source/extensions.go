package artifact_source

import (
	"fmt"
	"strings"

	"github.com/home-energy-audit/energy-import/types"
)

// validateExtensions checks every extension is non-empty and starts with a '.'
func validateExtensions(extensions []string) error {
	var invalidExtensions []string
	for _, e := range extensions {
		if len(e) == 0 {
			invalidExtensions = append(invalidExtensions, "<empty>")
		} else if e[0] != '.' {
			invalidExtensions = append(invalidExtensions, e)
		}
	}
	if len(invalidExtensions) > 0 {
		return fmt.Errorf("invalid extensions: %s", strings.Join(invalidExtensions, ","))
	}
	return nil
}

func filterChildren(filter types.ExtensionFilter, children []types.RemoteFile) []types.RemoteFile {
	res := children[:0]
	for _, c := range children {
		if filter.Allows(c) {
			res = append(res, c)
		}
	}
	return res
}
