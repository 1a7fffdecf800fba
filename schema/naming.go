package schema

import (
	"fmt"
	"strings"
)

// ColumnNamer transforms a raw source field name into (part of) a column name
type ColumnNamer func(string) string

// NormalizeColumnName applies each namer in turn
func NormalizeColumnName(name string, namers ...ColumnNamer) string {
	for _, n := range namers {
		name = n(name)
	}
	return name
}

func Lower(name string) string {
	return strings.ToLower(name)
}

func TrimSpace(name string) string {
	return strings.TrimSpace(name)
}

// SpacesToUnderscores replaces every internal space with an underscore
func SpacesToUnderscores(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// StripParens removes parenthesis characters - an opening paren becomes an underscore
// so that e.g. `avg(temp)` becomes `avg_temp`
func StripParens(name string) string {
	return strings.NewReplacer("(", "_", ")", "").Replace(name)
}

// WithPrefix returns a namer which prefixes names with the source tag
func WithPrefix(tag string) ColumnNamer {
	return func(name string) string {
		if tag == "" {
			return name
		}
		return fmt.Sprintf("%s_%s", tag, name)
	}
}
