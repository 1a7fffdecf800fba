package sense

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

// the export starts with a banner line - the header is the second line
const headerRow = 1

// Extract locates and retrieves the power usage export and parses it into a table
func Extract(ctx context.Context, source artifact_source.Source, config *Config) (*table.Table, error) {
	loc, err := config.Location()
	if err != nil {
		return nil, err
	}

	id, err := artifact_source.ResolvePath(ctx, source, tables.FilePath(config.Path, config.File))
	if err != nil {
		return nil, err
	}
	content, err := source.GetContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content of %s: %w", id, err)
	}

	tbl, err := Parse(content, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", config.File, err)
	}
	slog.Info("extracted power usage data", "rows", tbl.NumRows(), "columns", tbl.NumColumns())
	return tbl, nil
}

// Parse reads the export, parsing the first column as a timestamp in loc
func Parse(content string, loc *time.Location) (*table.Table, error) {
	tbl, err := table.ReadCsv(content,
		table.WithCsvHeaderRow(headerRow),
		table.WithCsvTimestampColumns(0),
		table.WithCsvLocation(loc))
	if err != nil {
		return nil, err
	}
	tbl.RenameColumns(schema.Lower, schema.SpacesToUnderscores, schema.WithPrefix(constants.SourceTagSense))
	return tbl, nil
}

// Extractor is the [tables.Extractor] for the Sense power usage export
type Extractor struct {
	config *Config
}

func NewExtractor(config *Config) *Extractor {
	return &Extractor{config: config}
}

func (e *Extractor) Identifier() string {
	return constants.SourceTagSense
}

func (e *Extractor) Extract(ctx context.Context, source artifact_source.Source) (*tables.Output, error) {
	tbl, err := Extract(ctx, source, e.config)
	if err != nil {
		return nil, err
	}
	o := &tables.Output{}
	o.AddTable(constants.SourceTagSense, tbl)
	return o, nil
}
