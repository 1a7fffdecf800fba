package schema

import "strings"

// DuckDB type names used for table columns
const (
	TypeVarchar     = "VARCHAR"
	TypeBigint      = "BIGINT"
	TypeDouble      = "DOUBLE"
	TypeBoolean     = "BOOLEAN"
	TypeTimestamp   = "TIMESTAMP"
	TypeTimestampTz = "TIMESTAMPTZ"
)

var validTypes = map[string]struct{}{
	TypeVarchar:     {},
	TypeBigint:      {},
	TypeDouble:      {},
	TypeBoolean:     {},
	TypeTimestamp:   {},
	TypeTimestampTz: {},
}

func IsValidType(t string) bool {
	_, ok := validTypes[strings.ToUpper(t)]
	return ok
}

// IsTimeType returns whether values of the column type are time.Time
func IsTimeType(t string) bool {
	return t == TypeTimestamp || t == TypeTimestampTz
}

// UnifyTypes returns the narrowest type able to hold values of both a and b
// integers widen to doubles, naive and zoned timestamps widen to zoned - anything else falls back to text
func UnifyTypes(a, b string) string {
	switch {
	case a == b:
		return a
	case a == "":
		return b
	case b == "":
		return a
	case isNumeric(a) && isNumeric(b):
		return TypeDouble
	case IsTimeType(a) && IsTimeType(b):
		return TypeTimestampTz
	default:
		return TypeVarchar
	}
}

func isNumeric(t string) bool {
	return t == TypeBigint || t == TypeDouble
}
