package nest

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/schema"
	"github.com/home-energy-audit/energy-import/table"
	"github.com/home-energy-audit/energy-import/tables"
)

// Result holds the three thermostat tables
type Result struct {
	Sensors *table.Table
	Cycles  *table.Table
	Events  *table.Table
}

type monthFiles struct {
	month     month
	sensorsId string
	summaryId string
}

// Extract locates the sensor and summary files of every configured month, then retrieves and parses them
// a month with either file missing fails the whole extraction
func Extract(ctx context.Context, source artifact_source.Source, config *Config) (*Result, error) {
	loc, err := time.LoadLocation(constants.ReferenceTimezone)
	if err != nil {
		return nil, err
	}

	var files []monthFiles
	for _, m := range config.months() {
		folder := tables.FilePath(config.Path, m.folder())
		sensorsId, err := artifact_source.ResolvePath(ctx, source, tables.FilePath(folder, m.sensorsFile()))
		if err != nil {
			return nil, fmt.Errorf("month %s: %w", m, err)
		}
		summaryId, err := artifact_source.ResolvePath(ctx, source, tables.FilePath(folder, m.summaryFile()))
		if err != nil {
			return nil, fmt.Errorf("month %s: %w", m, err)
		}
		files = append(files, monthFiles{month: m, sensorsId: sensorsId, summaryId: summaryId})
	}

	parser, err := newSummaryParser(loc)
	if err != nil {
		return nil, err
	}

	var monthlySensors []*table.Table
	for _, f := range files {
		content, err := source.GetContent(ctx, f.sensorsId)
		if err != nil {
			return nil, fmt.Errorf("failed to get content of %s: %w", f.month.sensorsFile(), err)
		}
		sensors, err := table.ReadCsv(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.month.sensorsFile(), err)
		}
		monthlySensors = append(monthlySensors, sensors)

		content, err = source.GetContent(ctx, f.summaryId)
		if err != nil {
			return nil, fmt.Errorf("failed to get content of %s: %w", f.month.summaryFile(), err)
		}
		if err := parser.add(content); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.month.summaryFile(), err)
		}
	}

	cycles, events, err := parser.finalize()
	if err != nil {
		return nil, err
	}
	res := &Result{
		Sensors: CombineSensors(monthlySensors...),
		Cycles:  cycles,
		Events:  events,
	}
	slog.Info("extracted thermostat data", "months", len(files), "sensor_rows", res.Sensors.NumRows(), "cycles", res.Cycles.NumRows(), "events", res.Events.NumRows())
	return res, nil
}

// CombineSensors concatenates the monthly sensor tables in the order given and normalizes the column names
func CombineSensors(monthly ...*table.Table) *table.Table {
	res := table.Concat(monthly...)
	res.RenameColumns(schema.StripParens, schema.SpacesToUnderscores, schema.Lower, schema.WithPrefix(constants.SourceTagNest))
	return res
}

// ParseSummary flattens a single summary document into cycle and event tables
func ParseSummary(content string, loc *time.Location) (cycles, events *table.Table, err error) {
	parser, err := newSummaryParser(loc)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.add(content); err != nil {
		return nil, nil, err
	}
	return parser.finalize()
}

func (r *Result) Output() *tables.Output {
	o := &tables.Output{}
	o.AddTable(constants.SourceTagNest+"_sensors", r.Sensors)
	o.AddTable(constants.SourceTagNest+"_cycles", r.Cycles)
	o.AddTable(constants.SourceTagNest+"_events", r.Events)
	return o
}

// Extractor is the [tables.Extractor] for the Nest thermostat export
type Extractor struct {
	config *Config
}

func NewExtractor(config *Config) *Extractor {
	return &Extractor{config: config}
}

func (e *Extractor) Identifier() string {
	return constants.SourceTagNest
}

func (e *Extractor) Extract(ctx context.Context, source artifact_source.Source) (*tables.Output, error) {
	res, err := Extract(ctx, source, e.config)
	if err != nil {
		return nil, err
	}
	return res.Output(), nil
}
