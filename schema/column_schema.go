package schema

// ColumnSchema describes a single table column
type ColumnSchema struct {
	// SourceName is the name of the field in the raw source data (e.g. the CSV header or the Go struct field)
	SourceName string `json:"-"`
	ColumnName string `json:"name,omitempty"`
	// DuckDB type for the column
	Type string `json:"type"`
}

func NewColumnSchema(name, columnType string) *ColumnSchema {
	return &ColumnSchema{
		SourceName: name,
		ColumnName: name,
		Type:       columnType,
	}
}
