package noaa

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "1    2       3      4    5 6 7 8 9\n" +
	"WBANNO UTC_DATE UTC_TIME LST_DATE LST_TIME CRX_VN LONGITUDE LATITUDE T_CALC\n"

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name:    "second line",
			content: "1 2 3\n  WBANNO   UTC_DATE T_CALC \r\n",
			want:    []string{"noaa_wbanno", "noaa_utc_date", "noaa_t_calc"},
		},
		{
			name:    "single line",
			content: "WBANNO UTC_DATE",
			wantErr: true,
		},
		{
			name:    "empty second line",
			content: "1 2\n   \n",
			wantErr: true,
		},
		{
			name:    "empty",
			content: "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHeader(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseData(t *testing.T) {
	names, err := ParseHeader(testHeader)
	require.NoError(t, err)

	data := "00123 20220101 0100 20211231 1900    2.623   -92.89   46.11  -12.5\n" +
		"00123 20220101 0200 20211231 2000    2.623   -92.89   46.11  -13.0\n"

	tbl, err := ParseData(data, names)
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, names, tbl.ColumnNames())

	// the first 8 columns are text, even where numeric
	for i, c := range tbl.Schema.Columns {
		if i < textColumnCount {
			assert.Equal(t, schema.TypeVarchar, c.Type, c.ColumnName)
		}
	}
	assert.Equal(t, schema.TypeDouble, tbl.ColumnType("noaa_t_calc"))

	wbanno, err := tbl.Value(0, "noaa_wbanno")
	require.NoError(t, err)
	assert.Equal(t, "00123", wbanno)

	tCalc, err := tbl.Column("noaa_t_calc")
	require.NoError(t, err)
	assert.Equal(t, []any{-12.5, -13.0}, tCalc)
}

func TestParseData_ShortRow(t *testing.T) {
	header := "ids\nWBANNO UTC_DATE UTC_TIME LST_DATE LST_TIME CRX_VN LONGITUDE LATITUDE T_CALC\n"
	names, err := ParseHeader(header)
	require.NoError(t, err)

	tbl, err := ParseData("2022010100 MN_Sandstone_6_W 01 X\n", names)
	require.NoError(t, err)

	assert.Equal(t, 1, tbl.NumRows())
	assert.Equal(t, "noaa_wbanno", tbl.ColumnNames()[0])
	v, err := tbl.Value(0, "noaa_wbanno")
	require.NoError(t, err)
	assert.Equal(t, "2022010100", v)
	v, err = tbl.Value(0, "noaa_t_calc")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseData_TooManyFields(t *testing.T) {
	_, err := ParseData("a b c\n", []string{"noaa_x", "noaa_y"})
	assert.Error(t, err)
}

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for p, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return dir
}

func newSource(t *testing.T, dir string) artifact_source.Source {
	s, err := artifact_source.NewFileSystemSource(&artifact_source.FileSystemSourceConfig{BaseDir: dir})
	require.NoError(t, err)
	return s
}

func TestExtract(t *testing.T) {
	config := DefaultConfig()
	folder := "Data/home_energy_audit/noaa_weather_data_2022/"
	dir := writeFiles(t, map[string]string{
		folder + config.DataFile:   "00123 20220101 0100 20211231 1900    2.623   -92.89   46.11  -12.5\n",
		folder + config.HeaderFile: testHeader,
		folder + config.ReadmeFile: "README\n  spacing is kept  \n",
	})

	res, err := Extract(context.Background(), newSource(t, dir), config)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Data.NumRows())
	assert.Equal(t, "README\n  spacing is kept  \n", res.Readme)

	out := res.Output()
	require.Len(t, out.Tables, 1)
	assert.Equal(t, "noaa", out.Tables[0].Name)
	require.Len(t, out.Texts, 1)
	assert.Equal(t, "noaa_readme", out.Texts[0].Name)
}

func TestExtract_MissingFile(t *testing.T) {
	config := DefaultConfig()
	folder := "Data/home_energy_audit/noaa_weather_data_2022/"
	dir := writeFiles(t, map[string]string{
		folder + config.DataFile:   "00123 20220101\n",
		folder + config.ReadmeFile: "README",
	})

	_, err := NewExtractor(config).Extract(context.Background(), newSource(t, dir))
	assert.True(t, artifact_source.IsNotFound(err))
}

func TestExtract_MalformedHeader(t *testing.T) {
	config := DefaultConfig()
	folder := "Data/home_energy_audit/noaa_weather_data_2022/"
	dir := writeFiles(t, map[string]string{
		folder + config.DataFile:   "00123 20220101\n",
		folder + config.HeaderFile: "only one line",
		folder + config.ReadmeFile: "README",
	})

	_, err := Extract(context.Background(), newSource(t, dir), config)
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Path = []string{"Data", ""}
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.HeaderFile = ""
	assert.Error(t, c.Validate())
}
