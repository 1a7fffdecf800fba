package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/home-energy-audit/energy-import/schema"
)

// opts

type CsvOpts func(*CsvTableConfig)

func WithCsvDelimiter(delimiter rune) CsvOpts {
	return func(c *CsvTableConfig) {
		c.Delimiter = delimiter
	}
}

// WithCsvHeaderRow sets the (zero based) index of the header record - any records before it are skipped
func WithCsvHeaderRow(row int) CsvOpts {
	return func(c *CsvTableConfig) {
		c.HeaderRow = row
	}
}

// WithCsvColumnNames supplies the column names - the content is then assumed to have no header row
func WithCsvColumnNames(names ...string) CsvOpts {
	return func(c *CsvTableConfig) {
		c.ColumnNames = names
	}
}

// WithCsvTextColumns forces the columns at the given indexes to VARCHAR, bypassing numeric inference
func WithCsvTextColumns(indexes ...int) CsvOpts {
	return func(c *CsvTableConfig) {
		for _, i := range indexes {
			c.TextColumns[i] = struct{}{}
		}
	}
}

// WithCsvTimestampColumns parses the columns at the given indexes as timestamps
func WithCsvTimestampColumns(indexes ...int) CsvOpts {
	return func(c *CsvTableConfig) {
		for _, i := range indexes {
			c.TimestampColumns[i] = struct{}{}
		}
	}
}

// WithCsvLocation sets the location used for timestamps which carry no zone
func WithCsvLocation(loc *time.Location) CsvOpts {
	return func(c *CsvTableConfig) {
		c.Location = loc
	}
}

type CsvTableConfig struct {
	Delimiter        rune
	HeaderRow        int
	ColumnNames      []string
	TextColumns      map[int]struct{}
	TimestampColumns map[int]struct{}
	Location         *time.Location
}

// ReadCsv parses delimited text into a table, inferring a type for every column which is not
// explicitly forced to text or timestamp
func ReadCsv(content string, opts ...CsvOpts) (*Table, error) {
	config := &CsvTableConfig{
		Delimiter:        ',',
		HeaderRow:        0,
		TextColumns:      make(map[int]struct{}),
		TimestampColumns: make(map[int]struct{}),
		Location:         time.UTC,
	}
	for _, opt := range opts {
		opt(config)
	}

	records, err := readRecords(content, config.Delimiter)
	if err != nil {
		return nil, err
	}

	// resolve the header
	names := config.ColumnNames
	if names == nil {
		if len(records) <= config.HeaderRow {
			return nil, fmt.Errorf("%w: expected header at record %d, content has %d records", ErrMissingHeader, config.HeaderRow+1, len(records))
		}
		names = records[config.HeaderRow]
		records = records[config.HeaderRow+1:]
	}

	// transpose into raw string columns, padding short records with missing values
	rawColumns := make([][]string, len(names))
	for rowIdx, record := range records {
		if len(record) > len(names) {
			return nil, fmt.Errorf("%w: data row %d has %d fields, expected at most %d", ErrMalformedRow, rowIdx+1, len(record), len(names))
		}
		for i := range names {
			value := ""
			if i < len(record) {
				value = record[i]
			}
			rawColumns[i] = append(rawColumns[i], value)
		}
	}

	res := &Table{Schema: &schema.RowSchema{}, Rows: make([]Row, len(records))}
	for i := range res.Rows {
		res.Rows[i] = make(Row, len(names))
	}

	for colIdx, name := range names {
		var columnType string
		var values []any

		_, isText := config.TextColumns[colIdx]
		_, isTimestamp := config.TimestampColumns[colIdx]
		switch {
		case isText:
			columnType, values = schema.TypeVarchar, textValues(rawColumns[colIdx])
		case isTimestamp:
			columnType, values, err = timestampValues(rawColumns[colIdx], config.Location)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", name, err)
			}
		default:
			columnType, values = inferValues(rawColumns[colIdx])
		}

		res.Schema.Columns = append(res.Schema.Columns, &schema.ColumnSchema{
			SourceName: name,
			ColumnName: name,
			Type:       columnType,
		})
		for rowIdx, v := range values {
			res.Rows[rowIdx][colIdx] = v
		}
	}

	return res, nil
}

func readRecords(content string, delimiter rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = delimiter
	// row length is validated against the header, not the first record
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedRow, err.Error())
		}
		records = append(records, record)
	}
	return records, nil
}
