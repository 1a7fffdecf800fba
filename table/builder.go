package table

import (
	"fmt"

	"github.com/home-energy-audit/energy-import/schema"
)

// Builder accumulates typed rows while a source is traversed, and converts them into a table once
// traversal is complete. The row type R must be a struct - its exported fields define the columns
// (see schema.SchemaFromStruct)
type Builder[R any] struct {
	schema *schema.RowSchema
	rows   []R
}

func NewBuilder[R any](prefix string) (*Builder[R], error) {
	var empty R
	s, err := schema.SchemaFromStruct(prefix, empty)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema for %T: %w", empty, err)
	}
	return &Builder[R]{schema: s}, nil
}

func (b *Builder[R]) Append(row R) {
	b.rows = append(b.rows, row)
}

func (b *Builder[R]) Len() int {
	return len(b.rows)
}

func (b *Builder[R]) Schema() *schema.RowSchema {
	return b.schema
}

type finalizeConfig struct {
	markers []missingMarker
}

type missingMarker struct {
	marker  any
	columns []string
}

type FinalizeOpt func(*finalizeConfig)

// WithMissingMarker replaces every occurrence of marker in the given columns (all columns if none) with a missing value
func WithMissingMarker(marker any, columns ...string) FinalizeOpt {
	return func(c *finalizeConfig) {
		c.markers = append(c.markers, missingMarker{marker: marker, columns: columns})
	}
}

// Finalize converts the accumulated rows into a table
func (b *Builder[R]) Finalize(opts ...FinalizeOpt) (*Table, error) {
	config := &finalizeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	res := &Table{Schema: b.schema.Copy(), Rows: make([]Row, 0, len(b.rows))}
	for i, r := range b.rows {
		if err := res.AppendRow(schema.ValuesFromStruct(r)...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	for _, m := range config.markers {
		res.ReplaceValue(m.marker, nil, m.columns...)
	}
	return res, nil
}
