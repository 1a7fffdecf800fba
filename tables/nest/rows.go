package nest

import "time"

// CycleRow is one HVAC run cycle
type CycleRow struct {
	CycleStart time.Time  `column:"type=TIMESTAMPTZ"`
	CycleEnd   *time.Time `column:"type=TIMESTAMPTZ"`
	Heat1      *bool      `column:"name=heat1"`
	Cool1      *bool      `column:"name=cool1"`
	Fan        *bool
	Caption    string
	// Duration is in seconds
	Duration   *float64 `column:"name=cycle_duration"`
	IsComplete *bool    `column:"name=cycle_complete"`
}

// EventRow is one thermostat event - the set point columns hold the missing value marker
// while rows are accumulated if the event has no usable set point
type EventRow struct {
	EventTime     time.Time  `column:"type=TIMESTAMPTZ"`
	EventEnd      *time.Time `column:"type=TIMESTAMPTZ"`
	EventType     string
	SetPointType  string
	ScheduleType  string
	HeatingTarget any `column:"type=DOUBLE"`
	CoolingTarget any `column:"type=DOUBLE"`
	TouchedBy     string
	TouchedWhere  string
}

// columns which hold the missing value marker during accumulation
var (
	cycleMarkerColumns = []string{"nest_caption"}
	eventMarkerColumns = []string{
		"nest_set_point_type",
		"nest_schedule_type",
		"nest_heating_target",
		"nest_cooling_target",
		"nest_touched_by",
		"nest_touched_where",
	}
)
