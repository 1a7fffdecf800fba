package sense

import (
	"errors"
	"fmt"
	"time"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/tables"
)

type Config struct {
	Path []string `hcl:"path,optional"`
	File string   `hcl:"file,optional"`
	// Timezone the export timestamps were written in - the export carries no zone information
	Timezone string `hcl:"timezone,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		Path:     []string{"Data", "home_energy_audit", "sense_energy_data_2022"},
		File:     "sense_energy_data_2022.csv",
		Timezone: "UTC",
	}
}

func (c *Config) Identifier() string {
	return constants.SourceTagSense
}

func (c *Config) Validate() error {
	if c.File == "" {
		return errors.New("file must not be empty")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", c.Timezone, err)
	}
	return tables.ValidatePath(c.Path)
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
