package schema

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
)

// ColumnTag represents the components of a `column:"..."` struct tag
type ColumnTag struct {
	Name string
	Type string
	Skip bool
}

var identifierRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// ParseColumnTag parses and validates a column tag string, e.g. `name=start,type=TIMESTAMPTZ`
func ParseColumnTag(tag string) (*ColumnTag, error) {
	ct := &ColumnTag{}

	// NOTE: if tag is "-" then skip the field
	if tag == "-" {
		ct.Skip = true
		return ct, nil
	}

	parts := strings.Split(tag, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)

		kv := strings.Split(part, "=")
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid column tag: %s - one of 'name' and 'type' must be set", tag)
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "name":
			ct.Name = value
		case "type":
			ct.Type = strings.ToUpper(value)
		default:
			return nil, fmt.Errorf("invalid column tag: %s, key '%s' not recognized", tag, key)
		}
	}

	return ct.validate()
}

func (t *ColumnTag) validate() (*ColumnTag, error) {
	if t.Name != "" && !identifierRegex.MatchString(t.Name) {
		return nil, fmt.Errorf("invalid column tag: 'name' must start with a letter and contain only letters, numbers and underscores")
	}

	if t.Type != "" && !IsValidType(t.Type) {
		keys := maps.Keys(validTypes)
		return nil, fmt.Errorf("invalid column tag: 'type' must be one of %v", keys)
	}
	return t, nil
}
