package constants

// source tags are used to prefix column names so that tables from different sources can be joined
// without column collisions
const (
	SourceTagNoaa  = "noaa"
	SourceTagSense = "sense"
	SourceTagNest  = "nest"
)

const (
	// MissingValueMarker is the literal written into accumulating rows for optional data which is absent
	// it is replaced by a real missing value (nil) when the table is finalized
	MissingValueMarker = "na"

	// ReferenceTimezone is the zone all thermostat timestamps are normalized into
	ReferenceTimezone = "America/Chicago"

	// RootIdentifier is the synthetic identifier of the root of every remote hierarchy
	RootIdentifier = "root"
)
