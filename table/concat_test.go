package table

import (
	"testing"

	"github.com/home-energy-audit/energy-import/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	jan, err := ReadCsv("month,temp\njan,30\njan,31\n")
	require.NoError(t, err)
	feb, err := ReadCsv("month,temp,humidity\nfeb,40.5,20\n")
	require.NoError(t, err)
	mar, err := ReadCsv("month,temp\nmar,n/a\n")
	require.NoError(t, err)

	res := Concat(jan, feb, mar)

	assert.Equal(t, jan.NumRows()+feb.NumRows()+mar.NumRows(), res.NumRows())
	assert.Equal(t, []string{"month", "temp", "humidity"}, res.ColumnNames())

	months, err := res.Column("month")
	require.NoError(t, err)
	assert.Equal(t, []any{"jan", "jan", "feb", "mar"}, months)

	// BIGINT and DOUBLE widen to DOUBLE, the all-missing column from march does not force text
	assert.Equal(t, schema.TypeDouble, res.ColumnType("temp"))
	temps, err := res.Column("temp")
	require.NoError(t, err)
	assert.Equal(t, []any{30.0, 31.0, 40.5, nil}, temps)

	humidity, err := res.Column("humidity")
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, int64(20), nil}, humidity)
}

func TestConcat_NumericWidening(t *testing.T) {
	a, err := ReadCsv("v\n1\n")
	require.NoError(t, err)
	b, err := ReadCsv("v\n2.5\n")
	require.NoError(t, err)

	res := Concat(a, b)
	assert.Equal(t, schema.TypeDouble, res.ColumnType("v"))
	v, err := res.Column("v")
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.5}, v)
}

func TestConcat_DoesNotAliasInputSchema(t *testing.T) {
	a, err := ReadCsv("v\n1\n")
	require.NoError(t, err)
	b, err := ReadCsv("v\nx\n")
	require.NoError(t, err)

	Concat(a, b)
	assert.Equal(t, schema.TypeBigint, a.ColumnType("v"))
}

func TestConcat_MixedTypesFallBackToText(t *testing.T) {
	a, err := ReadCsv("v\n1\n")
	require.NoError(t, err)
	b, err := ReadCsv("v\nx\n")
	require.NoError(t, err)

	res := Concat(a, b)
	assert.Equal(t, schema.TypeVarchar, res.ColumnType("v"))
	v, err := res.Column("v")
	require.NoError(t, err)
	assert.Equal(t, []any{"1", "x"}, v)
}

func TestConcat_AllMissingColumn(t *testing.T) {
	a, err := ReadCsv("v\n\"\"\n")
	require.NoError(t, err)

	res := Concat(a)
	assert.Equal(t, schema.TypeVarchar, res.ColumnType("v"))
}

func TestConcat_Empty(t *testing.T) {
	res := Concat()
	assert.Equal(t, 0, res.NumRows())
	assert.Equal(t, 0, res.NumColumns())
}
