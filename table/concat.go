package table

import "github.com/home-energy-audit/energy-import/schema"

// Concat stacks tables vertically, preserving table order then row order
// the result has the union of all columns in order of first appearance - rows from a table lacking
// a column get a missing value, and a column whose type differs between tables is widened (see schema.UnifyTypes)
// a column which is entirely missing in one table does not contribute its inferred type
func Concat(tables ...*Table) *Table {
	res := &Table{Schema: &schema.RowSchema{}}

	// build the unified schema
	for _, t := range tables {
		for colIdx, c := range t.Schema.Columns {
			columnType := c.Type
			if t.allMissing(colIdx) {
				columnType = ""
			}
			if idx := res.ColumnIndex(c.ColumnName); idx >= 0 {
				existing := res.Schema.Columns[idx]
				existing.Type = schema.UnifyTypes(existing.Type, columnType)
				continue
			}
			cc := *c
			cc.Type = columnType
			res.Schema.Columns = append(res.Schema.Columns, &cc)
		}
	}
	for _, c := range res.Schema.Columns {
		if c.Type == "" {
			c.Type = schema.TypeVarchar
		}
	}

	for _, t := range tables {
		// map result column index to source column index
		sourceIdx := make([]int, res.NumColumns())
		for i, c := range res.Schema.Columns {
			sourceIdx[i] = t.ColumnIndex(c.ColumnName)
		}
		for _, row := range t.Rows {
			newRow := make(Row, res.NumColumns())
			for i, c := range res.Schema.Columns {
				if sourceIdx[i] < 0 {
					continue
				}
				newRow[i] = convertValue(row[sourceIdx[i]], c.Type)
			}
			res.Rows = append(res.Rows, newRow)
		}
	}
	return res
}

func (t *Table) allMissing(colIdx int) bool {
	for _, row := range t.Rows {
		if row[colIdx] != nil {
			return false
		}
	}
	return true
}

// convertValue converts a cell to the (possibly widened) column type
func convertValue(v any, columnType string) any {
	if v == nil {
		return nil
	}
	switch columnType {
	case schema.TypeDouble:
		if i, ok := v.(int64); ok {
			return float64(i)
		}
	case schema.TypeVarchar:
		if _, ok := v.(string); !ok {
			return FormatValue(v)
		}
	}
	return v
}
