package noaa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/schema"
	"github.com/home-energy-audit/energy-import/table"
	"github.com/home-energy-audit/energy-import/tables"
)

// ErrMalformedHeader is returned when the header file has no field names on its second line
var ErrMalformedHeader = errors.New("malformed header")

// the leading columns are station and date codes - they must keep leading zeros
const textColumnCount = 8

var spaceRun = regexp.MustCompile(` +`)

// Result is the weather table together with the unmodified readme text
type Result struct {
	Data   *table.Table
	Readme string
}

// Extract locates the data, header and readme files, retrieves them and parses the data into a table
func Extract(ctx context.Context, source artifact_source.Source, config *Config) (*Result, error) {
	var ids []string
	for _, file := range []string{config.DataFile, config.HeaderFile, config.ReadmeFile} {
		id, err := artifact_source.ResolvePath(ctx, source, tables.FilePath(config.Path, file))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	var contents []string
	for _, id := range ids {
		content, err := source.GetContent(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get content of %s: %w", id, err)
		}
		contents = append(contents, content)
	}
	data, header, readme := contents[0], contents[1], contents[2]

	names, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}
	tbl, err := ParseData(data, names)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", config.DataFile, err)
	}

	slog.Info("extracted weather data", "rows", tbl.NumRows(), "columns", tbl.NumColumns())
	return &Result{Data: tbl, Readme: readme}, nil
}

// ParseHeader returns the column names defined on the second line of the header file,
// lower cased and prefixed with the source tag
func ParseHeader(content string) ([]string, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected field names on line 2, header has %d line(s)", ErrMalformedHeader, len(lines))
	}
	fields := strings.Fields(lines[1])
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: line 2 is empty", ErrMalformedHeader)
	}

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = schema.NormalizeColumnName(f, schema.Lower, schema.WithPrefix(constants.SourceTagNoaa))
	}
	return names, nil
}

// ParseData parses the space aligned data file - every run of spaces separates two fields
func ParseData(content string, names []string) (*table.Table, error) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = spaceRun.ReplaceAllString(strings.TrimSpace(line), ",")
	}

	textColumns := make([]int, 0, textColumnCount)
	for i := 0; i < textColumnCount && i < len(names); i++ {
		textColumns = append(textColumns, i)
	}

	return table.ReadCsv(strings.Join(lines, "\n"),
		table.WithCsvColumnNames(names...),
		table.WithCsvTextColumns(textColumns...))
}

func (r *Result) Output() *tables.Output {
	o := &tables.Output{}
	o.AddTable(constants.SourceTagNoaa, r.Data)
	o.AddText(constants.SourceTagNoaa+"_readme", r.Readme)
	return o
}

// Extractor is the [tables.Extractor] for the NOAA weather data
type Extractor struct {
	config *Config
}

func NewExtractor(config *Config) *Extractor {
	return &Extractor{config: config}
}

func (e *Extractor) Identifier() string {
	return constants.SourceTagNoaa
}

func (e *Extractor) Extract(ctx context.Context, source artifact_source.Source) (*tables.Output, error) {
	res, err := Extract(ctx, source, e.config)
	if err != nil {
		return nil, err
	}
	return res.Output(), nil
}
