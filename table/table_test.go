package table

import (
	"testing"

	"github.com/home-energy-audit/energy-import/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	tbl := New(
		schema.NewColumnSchema("Outdoor Temp (F)", schema.TypeVarchar),
		schema.NewColumnSchema("Mode", schema.TypeVarchar),
	)
	require.NoError(t, tbl.AppendRow("na", "heat"))
	require.NoError(t, tbl.AppendRow("71", "na"))
	return tbl
}

func TestTable_AppendRow_WrongArity(t *testing.T) {
	tbl := newTestTable(t)
	err := tbl.AppendRow("only one")
	assert.ErrorIs(t, err, ErrMalformedRow)
	assert.Equal(t, 2, tbl.NumRows())
}

func TestTable_RenameColumns(t *testing.T) {
	tbl := newTestTable(t)
	tbl.RenameColumns(schema.StripParens, schema.SpacesToUnderscores, schema.Lower, schema.WithPrefix("nest"))

	assert.Equal(t, []string{"nest_outdoor_temp__f", "nest_mode"}, tbl.ColumnNames())
	// source names are unchanged
	assert.Equal(t, "Outdoor Temp (F)", tbl.Schema.Columns[0].SourceName)
}

func TestTable_ReplaceValue(t *testing.T) {
	tests := []struct {
		name      string
		columns   []string
		wantCount int
		wantRows  []Row
	}{
		{
			name:      "all columns",
			wantCount: 2,
			wantRows:  []Row{{nil, "heat"}, {"71", nil}},
		},
		{
			name:      "single column",
			columns:   []string{"Mode"},
			wantCount: 1,
			wantRows:  []Row{{"na", "heat"}, {"71", nil}},
		},
		{
			name:      "unknown column",
			columns:   []string{"missing"},
			wantCount: 0,
			wantRows:  []Row{{"na", "heat"}, {"71", "na"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newTestTable(t)
			assert.Equal(t, tt.wantCount, tbl.ReplaceValue("na", nil, tt.columns...))
			assert.Equal(t, tt.wantRows, tbl.Rows)
		})
	}
}

func TestTable_Accessors(t *testing.T) {
	tbl := newTestTable(t)

	assert.Equal(t, 1, tbl.ColumnIndex("Mode"))
	assert.Equal(t, -1, tbl.ColumnIndex("nope"))
	assert.Equal(t, "", tbl.ColumnType("nope"))

	_, err := tbl.Column("nope")
	assert.Error(t, err)
	_, err = tbl.Value(5, "Mode")
	assert.Error(t, err)
}
