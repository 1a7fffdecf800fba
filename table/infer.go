package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/home-energy-audit/energy-import/schema"
)

// tokens which are read as a missing value, whatever the column type
var missingTokens = map[string]struct{}{
	"":        {},
	"#N/A":    {},
	"N/A":     {},
	"n/a":     {},
	"NA":      {},
	"<NA>":    {},
	"NaN":     {},
	"-NaN":    {},
	"nan":     {},
	"-nan":    {},
	"NULL":    {},
	"null":    {},
	"None":    {},
	"#NA":     {},
	"1.#QNAN": {},
}

func isMissing(s string) bool {
	_, ok := missingTokens[strings.TrimSpace(s)]
	return ok
}

func textValues(raw []string) []any {
	res := make([]any, len(raw))
	for i, s := range raw {
		if !isMissing(s) {
			res[i] = s
		}
	}
	return res
}

// inferValues picks the narrowest of BIGINT, DOUBLE, BOOLEAN and VARCHAR which holds every non-missing value
func inferValues(raw []string) (string, []any) {
	if values, ok := convertAll(raw, parseInt); ok {
		return schema.TypeBigint, values
	}
	if values, ok := convertAll(raw, parseFloat); ok {
		return schema.TypeDouble, values
	}
	if values, ok := convertAll(raw, parseBool); ok {
		return schema.TypeBoolean, values
	}
	return schema.TypeVarchar, textValues(raw)
}

// convertAll converts every non-missing value - it fails if any value does not convert or no value is present
func convertAll(raw []string, convert func(string) (any, bool)) ([]any, bool) {
	res := make([]any, len(raw))
	present := 0
	for i, s := range raw {
		if isMissing(s) {
			continue
		}
		v, ok := convert(strings.TrimSpace(s))
		if !ok {
			return nil, false
		}
		res[i] = v
		present++
	}
	return res, present > 0
}

func parseInt(s string) (any, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	return i, err == nil
}

func parseFloat(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func parseBool(s string) (any, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

type timestampLayout struct {
	layout string
	zoned  bool
}

// layouts tried, in order, when parsing timestamp columns
var timestampLayouts = []timestampLayout{
	{layout: time.RFC3339Nano, zoned: true},
	{layout: "2006-01-02 15:04:05Z07:00", zoned: true},
	{layout: "2006-01-02 15:04:05 MST", zoned: true},
	{layout: "2006-01-02 15:04:05"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02T15:04"},
	{layout: "01/02/2006 15:04:05"},
	{layout: "1/2/2006 15:04:05"},
	{layout: "01/02/2006 15:04"},
	{layout: "1/2/2006 15:04"},
	{layout: "2006-01-02"},
	{layout: "01/02/2006"},
}

// ParseTimestamp parses a timestamp in any of the known layouts
// values without zone information are interpreted in loc
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	for _, l := range timestampLayouts {
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, l.zoned, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognised timestamp '%s'", s)
}

func timestampValues(raw []string, loc *time.Location) (string, []any, error) {
	res := make([]any, len(raw))
	columnType := schema.TypeTimestamp
	if loc != time.UTC {
		columnType = schema.TypeTimestampTz
	}
	for i, s := range raw {
		if isMissing(s) {
			continue
		}
		t, zoned, err := ParseTimestamp(s, loc)
		if err != nil {
			return "", nil, fmt.Errorf("%w: row %d: %s", ErrMalformedRow, i+1, err.Error())
		}
		if zoned {
			columnType = schema.TypeTimestampTz
		}
		res[i] = t
	}
	return columnType, res, nil
}
