package nest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/table"
	"golang.org/x/exp/maps"
)

// ErrMalformedSummary is returned when a summary document does not have the expected shape
var ErrMalformedSummary = errors.New("malformed summary")

// the summary document is keyed by day, e.g. "2022-01-02T00:00:00Z"
type daySummary struct {
	Cycles []cycle `json:"cycles"`
	Events []event `json:"events"`
}

type cycle struct {
	Caption *struct {
		PlainText *string `json:"plainText"`
	} `json:"caption"`
	StartTs    string  `json:"startTs"`
	EndTs      *string `json:"endTs"`
	Duration   *string `json:"duration"`
	IsComplete *bool   `json:"isComplete"`
	Heat1      *bool   `json:"heat1"`
	Cool1      *bool   `json:"cool1"`
	Fan        *bool   `json:"fan"`
}

type event struct {
	EventType string          `json:"eventType"`
	StartTs   string          `json:"startTs"`
	EndTs     *string         `json:"endTs"`
	SetPoint  json.RawMessage `json:"setPoint"`
}

type setPoint struct {
	SetPointType *string `json:"setPointType"`
	ScheduleType *string `json:"scheduleType"`
	Targets      struct {
		HeatingTarget *float64 `json:"heatingTarget"`
		CoolingTarget *float64 `json:"coolingTarget"`
	} `json:"targets"`
	TouchedBy    *string `json:"touchedBy"`
	TouchedWhere *string `json:"touchedWhere"`
}

// setPointColumns are the event columns derived from a set point
type setPointColumns struct {
	setPointType  string
	scheduleType  string
	heatingTarget any
	coolingTarget any
	touchedBy     string
	touchedWhere  string
}

// missingSetPoint fills every set point column with the missing value marker
var missingSetPoint = setPointColumns{
	setPointType:  constants.MissingValueMarker,
	scheduleType:  constants.MissingValueMarker,
	heatingTarget: constants.MissingValueMarker,
	coolingTarget: constants.MissingValueMarker,
	touchedBy:     constants.MissingValueMarker,
	touchedWhere:  constants.MissingValueMarker,
}

// lookupSetPoint decodes the optional set point of an event
// it returns nil if the set point is absent, null, not an object or lacks any of its type, schedule
// or touched fields - only the targets are optional
func lookupSetPoint(raw json.RawMessage) *setPointColumns {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var sp setPoint
	if err := json.Unmarshal(raw, &sp); err != nil {
		return nil
	}
	if sp.SetPointType == nil || sp.ScheduleType == nil || sp.TouchedBy == nil || sp.TouchedWhere == nil {
		return nil
	}
	res := &setPointColumns{
		setPointType: *sp.SetPointType,
		scheduleType: *sp.ScheduleType,
		touchedBy:    *sp.TouchedBy,
		touchedWhere: *sp.TouchedWhere,
	}
	// an absent target is a missing value, not a marker
	if sp.Targets.HeatingTarget != nil {
		res.heatingTarget = *sp.Targets.HeatingTarget
	}
	if sp.Targets.CoolingTarget != nil {
		res.coolingTarget = *sp.Targets.CoolingTarget
	}
	return res
}

// summaryParser accumulates the cycles and events of every summary document it is given
type summaryParser struct {
	loc    *time.Location
	cycles *table.Builder[CycleRow]
	events *table.Builder[EventRow]
}

func newSummaryParser(loc *time.Location) (*summaryParser, error) {
	cycles, err := table.NewBuilder[CycleRow](constants.SourceTagNest)
	if err != nil {
		return nil, err
	}
	events, err := table.NewBuilder[EventRow](constants.SourceTagNest)
	if err != nil {
		return nil, err
	}
	return &summaryParser{loc: loc, cycles: cycles, events: events}, nil
}

// add parses one summary document - days are processed in chronological order
func (p *summaryParser) add(content string) error {
	var days map[string]daySummary
	if err := json.Unmarshal([]byte(content), &days); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedSummary, err.Error())
	}

	keys := maps.Keys(days)
	sort.Strings(keys)

	for _, day := range keys {
		summary := days[day]
		for i, c := range summary.Cycles {
			row, err := p.cycleRow(c)
			if err != nil {
				return fmt.Errorf("%w: day %s cycle %d: %s", ErrMalformedSummary, day, i, err.Error())
			}
			p.cycles.Append(row)
		}
		for i, e := range summary.Events {
			row, err := p.eventRow(e)
			if err != nil {
				return fmt.Errorf("%w: day %s event %d: %s", ErrMalformedSummary, day, i, err.Error())
			}
			p.events.Append(row)
		}
	}
	return nil
}

func (p *summaryParser) cycleRow(c cycle) (CycleRow, error) {
	start, err := p.parseTime(c.StartTs)
	if err != nil {
		return CycleRow{}, err
	}
	end, err := p.parseOptionalTime(c.EndTs)
	if err != nil {
		return CycleRow{}, err
	}

	row := CycleRow{
		CycleStart: start,
		CycleEnd:   end,
		Heat1:      c.Heat1,
		Cool1:      c.Cool1,
		Fan:        c.Fan,
		Caption:    constants.MissingValueMarker,
		IsComplete: c.IsComplete,
	}
	if c.Caption != nil && c.Caption.PlainText != nil {
		row.Caption = *c.Caption.PlainText
	}
	if c.Duration != nil {
		d, err := time.ParseDuration(*c.Duration)
		if err != nil {
			return CycleRow{}, fmt.Errorf("invalid duration '%s'", *c.Duration)
		}
		seconds := d.Seconds()
		row.Duration = &seconds
	}
	return row, nil
}

func (p *summaryParser) eventRow(e event) (EventRow, error) {
	start, err := p.parseTime(e.StartTs)
	if err != nil {
		return EventRow{}, err
	}
	end, err := p.parseOptionalTime(e.EndTs)
	if err != nil {
		return EventRow{}, err
	}

	sp := lookupSetPoint(e.SetPoint)
	if sp == nil {
		sp = &missingSetPoint
	}

	return EventRow{
		EventTime:     start,
		EventEnd:      end,
		EventType:     e.EventType,
		SetPointType:  sp.setPointType,
		ScheduleType:  sp.scheduleType,
		HeatingTarget: sp.heatingTarget,
		CoolingTarget: sp.coolingTarget,
		TouchedBy:     sp.touchedBy,
		TouchedWhere:  sp.touchedWhere,
	}, nil
}

// parseTime parses an RFC 3339 timestamp and converts it to the reference timezone
func (p *summaryParser) parseTime(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp '%s'", s)
	}
	return t.In(p.loc), nil
}

func (p *summaryParser) parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := p.parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// finalize converts the accumulated rows into tables, replacing the missing value markers
func (p *summaryParser) finalize() (cycles, events *table.Table, err error) {
	cycles, err = p.cycles.Finalize(table.WithMissingMarker(constants.MissingValueMarker, cycleMarkerColumns...))
	if err != nil {
		return nil, nil, err
	}
	events, err = p.events.Finalize(table.WithMissingMarker(constants.MissingValueMarker, eventMarkerColumns...))
	if err != nil {
		return nil, nil, err
	}
	return cycles, events, nil
}
