package tables

import (
	"context"

	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/table"
)

// Extractor retrieves the raw files of one data source and transforms them into tables
type Extractor interface {
	// Identifier returns the source tag, e.g. "noaa"
	Identifier() string
	Extract(ctx context.Context, source artifact_source.Source) (*Output, error)
}

// NamedTable is an extracted table together with the name it is persisted under
type NamedTable struct {
	Name  string
	Table *table.Table
}

// NamedText is extracted free text together with the name it is persisted under
type NamedText struct {
	Name string
	Text string
}

// Output is everything extracted from one data source, in the order it should be persisted
type Output struct {
	Tables []NamedTable
	Texts  []NamedText
}

func (o *Output) AddTable(name string, t *table.Table) {
	o.Tables = append(o.Tables, NamedTable{Name: name, Table: t})
}

func (o *Output) AddText(name, text string) {
	o.Texts = append(o.Texts, NamedText{Name: name, Text: text})
}
