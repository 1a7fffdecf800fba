package table

import (
	"fmt"

	"github.com/home-energy-audit/energy-import/schema"
)

// Row is a single table row - cells are nil (missing), string, int64, float64, bool or time.Time
type Row []any

// Table is an in-memory, column-typed table
type Table struct {
	Schema *schema.RowSchema
	Rows   []Row
}

func New(columns ...*schema.ColumnSchema) *Table {
	return &Table{Schema: schema.NewRowSchema(columns...)}
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) NumColumns() int {
	return len(t.Schema.Columns)
}

func (t *Table) ColumnNames() []string {
	return t.Schema.ColumnNames()
}

// ColumnIndex returns the index of the named column, or -1
func (t *Table) ColumnIndex(name string) int {
	return t.Schema.ColumnIndex(name)
}

// ColumnType returns the type of the named column, or an empty string if there is no such column
func (t *Table) ColumnType(name string) string {
	if idx := t.ColumnIndex(name); idx >= 0 {
		return t.Schema.Columns[idx].Type
	}
	return ""
}

// Column returns all values of the named column
func (t *Table) Column(name string) ([]any, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column named %s", name)
	}
	res := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		res[i] = row[idx]
	}
	return res, nil
}

// Value returns a single cell
func (t *Table) Value(rowIdx int, column string) (any, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("no column named %s", column)
	}
	if rowIdx < 0 || rowIdx >= len(t.Rows) {
		return nil, fmt.Errorf("row %d out of range (%d rows)", rowIdx, len(t.Rows))
	}
	return t.Rows[rowIdx][idx], nil
}

// AppendRow adds a row - the number of values must match the number of columns
func (t *Table) AppendRow(values ...any) error {
	if len(values) != t.NumColumns() {
		return fmt.Errorf("%w: expected %d values, got %d", ErrMalformedRow, t.NumColumns(), len(values))
	}
	t.Rows = append(t.Rows, values)
	return nil
}

// RenameColumns applies the namers to every column name - the source name is left untouched
func (t *Table) RenameColumns(namers ...schema.ColumnNamer) {
	for _, c := range t.Schema.Columns {
		c.ColumnName = schema.NormalizeColumnName(c.ColumnName, namers...)
	}
}

// ReplaceValue replaces every cell equal to old with replacement, in the given columns (all columns if none given)
// it returns the number of cells replaced
func (t *Table) ReplaceValue(old, replacement any, columns ...string) int {
	indexes := t.columnIndexes(columns)

	count := 0
	for _, row := range t.Rows {
		for _, idx := range indexes {
			if row[idx] == old {
				row[idx] = replacement
				count++
			}
		}
	}
	return count
}

func (t *Table) columnIndexes(columns []string) []int {
	if len(columns) == 0 {
		res := make([]int, t.NumColumns())
		for i := range res {
			res[i] = i
		}
		return res
	}
	var res []int
	for _, c := range columns {
		if idx := t.ColumnIndex(c); idx >= 0 {
			res = append(res, idx)
		}
	}
	return res
}
