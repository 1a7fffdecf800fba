package noaa

import (
	"errors"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/tables"
)

// Config locates the weather files - all three live in the same folder
type Config struct {
	Path       []string `hcl:"path,optional"`
	DataFile   string   `hcl:"data_file,optional"`
	HeaderFile string   `hcl:"header_file,optional"`
	ReadmeFile string   `hcl:"readme_file,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Path:       []string{"Data", "home_energy_audit", "noaa_weather_data_2022"},
		DataFile:   "CRNH0203-2022-MN_Sandstone_6_W.txt",
		HeaderFile: "headers.txt",
		ReadmeFile: "readme.txt",
	}
}

func (c *Config) Identifier() string {
	return constants.SourceTagNoaa
}

func (c *Config) Validate() error {
	if c.DataFile == "" || c.HeaderFile == "" || c.ReadmeFile == "" {
		return errors.New("data_file, header_file and readme_file must not be empty")
	}
	return tables.ValidatePath(c.Path)
}
