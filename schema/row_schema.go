package schema

// RowSchema is the ordered set of columns of a table
type RowSchema struct {
	Columns []*ColumnSchema `json:"columns"`
}

func NewRowSchema(columns ...*ColumnSchema) *RowSchema {
	return &RowSchema{Columns: columns}
}

func (r *RowSchema) AsMap() map[string]*ColumnSchema {
	var res = make(map[string]*ColumnSchema, len(r.Columns))
	for _, c := range r.Columns {
		res[c.ColumnName] = c
	}
	return res
}

func (r *RowSchema) ColumnNames() []string {
	res := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		res[i] = c.ColumnName
	}
	return res
}

// ColumnIndex returns the index of the named column, or -1
func (r *RowSchema) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c.ColumnName == name {
			return i
		}
	}
	return -1
}

// Copy returns a deep copy, so that renaming columns of one table never affects another
func (r *RowSchema) Copy() *RowSchema {
	res := &RowSchema{Columns: make([]*ColumnSchema, len(r.Columns))}
	for i, c := range r.Columns {
		cc := *c
		res.Columns[i] = &cc
	}
	return res
}
