package table

import (
	"testing"
	"time"

	"github.com/home-energy-audit/energy-import/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCsv_InfersTypes(t *testing.T) {
	content := "name,count,ratio,flag,empty\na,1,1.5,true,\nb,2,2,false,\nc,,3.25,TRUE,\n"

	tbl, err := ReadCsv(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "count", "ratio", "flag", "empty"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.NumRows())

	tests := []struct {
		column   string
		wantType string
		want     []any
	}{
		{column: "name", wantType: schema.TypeVarchar, want: []any{"a", "b", "c"}},
		{column: "count", wantType: schema.TypeBigint, want: []any{int64(1), int64(2), nil}},
		{column: "ratio", wantType: schema.TypeDouble, want: []any{1.5, 2.0, 3.25}},
		{column: "flag", wantType: schema.TypeBoolean, want: []any{true, false, true}},
		{column: "empty", wantType: schema.TypeVarchar, want: []any{nil, nil, nil}},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tbl.ColumnType(tt.column))
			got, err := tbl.Column(tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCsv_TextColumnsKeepLeadingZeros(t *testing.T) {
	content := "id,value\n00123,7\n00456,8\n"

	tbl, err := ReadCsv(content, WithCsvTextColumns(0))
	require.NoError(t, err)

	ids, err := tbl.Column("id")
	require.NoError(t, err)
	assert.Equal(t, []any{"00123", "00456"}, ids)
	assert.Equal(t, schema.TypeVarchar, tbl.ColumnType("id"))
	assert.Equal(t, schema.TypeBigint, tbl.ColumnType("value"))
}

func TestReadCsv_HeaderRowAndTimestamps(t *testing.T) {
	content := "Sense export generated 2024-08-01\n" +
		"DateTime,Total Usage (kWh),Device\n" +
		"2024-01-01 00:00:00,1.25,Fridge\n" +
		"2024-01-01 01:00:00,0.75,Fridge\n"

	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	tbl, err := ReadCsv(content, WithCsvHeaderRow(1), WithCsvTimestampColumns(0), WithCsvLocation(chicago))
	require.NoError(t, err)

	assert.Equal(t, []string{"DateTime", "Total Usage (kWh)", "Device"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, schema.TypeTimestampTz, tbl.ColumnType("DateTime"))

	first, err := tbl.Value(0, "DateTime")
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, chicago).Equal(first.(time.Time)))

	usage, err := tbl.Value(1, "Total Usage (kWh)")
	require.NoError(t, err)
	assert.Equal(t, 0.75, usage)
}

func TestReadCsv_NaiveTimestampsInUTC(t *testing.T) {
	tbl, err := ReadCsv("ts\n2024-03-01 12:30:00\n", WithCsvTimestampColumns(0))
	require.NoError(t, err)

	assert.Equal(t, schema.TypeTimestamp, tbl.ColumnType("ts"))
	v, err := tbl.Value(0, "ts")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), v)
}

func TestReadCsv_ColumnNames(t *testing.T) {
	tbl, err := ReadCsv("1;2\n3;4\n", WithCsvDelimiter(';'), WithCsvColumnNames("a", "b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.NumRows())
}

func TestReadCsv_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    []CsvOpts
		wantErr error
	}{
		{
			name:    "empty content",
			content: "",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "header row beyond content",
			content: "only one line\n",
			opts:    []CsvOpts{WithCsvHeaderRow(1)},
			wantErr: ErrMissingHeader,
		},
		{
			name:    "too many fields",
			content: "a,b\n1,2,3\n",
			wantErr: ErrMalformedRow,
		},
		{
			name:    "bad timestamp",
			content: "ts\nyesterday\n",
			opts:    []CsvOpts{WithCsvTimestampColumns(0)},
			wantErr: ErrMalformedRow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCsv(tt.content, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadCsv_ShortRowsPadded(t *testing.T) {
	tbl, err := ReadCsv("a,b,c\n1,2\n")
	require.NoError(t, err)

	v, err := tbl.Value(0, "c")
	require.NoError(t, err)
	assert.Nil(t, v)
}
