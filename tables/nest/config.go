package nest

import (
	"fmt"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/tables"
)

// Config locates the monthly thermostat exports. The export is laid out as <path>/<MM>/<YYYY>-<MM>-sensors.csv
// and <path>/<MM>/<YYYY>-<MM>-summary.json, and every month from first_month to last_month must be present
type Config struct {
	Path       []string `hcl:"path,optional"`
	Year       int      `hcl:"year,optional"`
	FirstMonth int      `hcl:"first_month,optional"`
	LastMonth  int      `hcl:"last_month,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Path:       []string{"Data", "home_energy_audit", "nest_thermostat_data_2022", "Nest", "thermostats", "09AA01AC481614FL", "2022"},
		Year:       2022,
		FirstMonth: 1,
		LastMonth:  7,
	}
}

func (c *Config) Identifier() string {
	return constants.SourceTagNest
}

func (c *Config) Validate() error {
	if c.Year < 1 {
		return fmt.Errorf("year must be positive")
	}
	if c.FirstMonth < 1 || c.LastMonth > 12 || c.FirstMonth > c.LastMonth {
		return fmt.Errorf("invalid month range %d-%d: months must be 1-12 and first_month must not be after last_month", c.FirstMonth, c.LastMonth)
	}
	return tables.ValidatePath(c.Path)
}

// month is one monthly export
type month struct {
	year  int
	month int
}

func (c *Config) months() []month {
	var res []month
	for m := c.FirstMonth; m <= c.LastMonth; m++ {
		res = append(res, month{year: c.Year, month: m})
	}
	return res
}

func (m month) folder() string {
	return fmt.Sprintf("%02d", m.month)
}

func (m month) sensorsFile() string {
	return fmt.Sprintf("%d-%02d-sensors.csv", m.year, m.month)
}

func (m month) summaryFile() string {
	return fmt.Sprintf("%d-%02d-summary.json", m.year, m.month)
}

func (m month) String() string {
	return fmt.Sprintf("%d-%02d", m.year, m.month)
}
