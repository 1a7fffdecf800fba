package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/parse"
	"github.com/home-energy-audit/energy-import/rate_limiter"
	"github.com/home-energy-audit/energy-import/tables/nest"
	"github.com/home-energy-audit/energy-import/tables/noaa"
	"github.com/home-energy-audit/energy-import/tables/sense"
	"github.com/home-energy-audit/energy-import/writer"
	"github.com/mitchellh/go-homedir"
	"github.com/turbot/pipe-fittings/error_helpers"
	"golang.org/x/time/rate"
)

const (
	blockSource    = "source"
	blockRateLimit = "rate_limit"
	blockNoaa      = "noaa"
	blockSense     = "sense"
	blockNest      = "nest"
	blockOutput    = "output"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockSource, LabelNames: []string{"type"}},
		{Type: blockRateLimit},
		{Type: blockNoaa},
		{Type: blockSense},
		{Type: blockNest},
		{Type: blockOutput},
	},
}

// Config is the parsed importer configuration
// the source block is left undecoded - it is decoded by the source factory for the block's type
type Config struct {
	Source    *parse.ConfigData
	RateLimit *RateLimit
	Noaa      *noaa.Config
	Sense     *sense.Config
	Nest      *nest.Config
	Output    *Output
}

type RateLimit struct {
	FillRate   float64 `hcl:"fill_rate"`
	BucketSize int64   `hcl:"bucket_size"`
}

type Output struct {
	Dir    string `hcl:"dir,optional"`
	Format string `hcl:"format,optional"`
}

func newConfig() *Config {
	return &Config{
		Noaa:  noaa.DefaultConfig(),
		Sense: sense.DefaultConfig(),
		Nest:  nest.DefaultConfig(),
		Output: &Output{
			Dir:    constants.DefaultOutputDir,
			Format: string(writer.FormatCsv),
		},
	}
}

// Load reads and validates the config file at path
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	hclBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(hclBytes, path)
}

// Parse parses config file contents - blocks which are not present keep their defaults
func Parse(hclBytes []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(hclBytes, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to parse config file", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, error_helpers.HclDiagsToError("failed to parse config file", diags)
	}

	c := newConfig()
	seen := make(map[string]hcl.Range)
	for _, block := range content.Blocks {
		if prev, ok := seen[block.Type]; ok {
			return nil, fmt.Errorf("%s: duplicate %s block, first defined at %s", block.DefRange, block.Type, prev)
		}
		seen[block.Type] = block.DefRange

		var target any
		switch block.Type {
		case blockSource:
			c.Source = parse.NewConfigData(block.Body, block.DefRange, block.Labels[0], blockSource)
			continue
		case blockRateLimit:
			c.RateLimit = &RateLimit{}
			target = c.RateLimit
		case blockNoaa:
			target = c.Noaa
		case blockSense:
			target = c.Sense
		case blockNest:
			target = c.Nest
		case blockOutput:
			target = c.Output
		}

		if diags := parse.DecodeBody(block.Body, target); diags.HasErrors() {
			return nil, error_helpers.HclDiagsToError(fmt.Sprintf("failed to decode %s block", block.Type), diags)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Source == nil {
		return fmt.Errorf("config must contain a source block")
	}
	if c.RateLimit != nil {
		if errs := c.RateLimitDefinition().Validate(); len(errs) > 0 {
			return fmt.Errorf("invalid rate_limit block: %s", errs[0])
		}
	}
	if err := c.Noaa.Validate(); err != nil {
		return fmt.Errorf("invalid noaa block: %w", err)
	}
	if err := c.Sense.Validate(); err != nil {
		return fmt.Errorf("invalid sense block: %w", err)
	}
	if err := c.Nest.Validate(); err != nil {
		return fmt.Errorf("invalid nest block: %w", err)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("invalid output block: dir must not be empty")
	}
	if _, err := writer.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("invalid output block: %w", err)
	}
	return nil
}

// RateLimitDefinition returns the limiter definition for the configured source, or nil if no rate_limit block was given
func (c *Config) RateLimitDefinition() *rate_limiter.Definition {
	if c.RateLimit == nil {
		return nil
	}
	var name string
	if c.Source != nil {
		name = c.Source.Id
	}
	return &rate_limiter.Definition{
		Name:       name,
		FillRate:   rate.Limit(c.RateLimit.FillRate),
		BucketSize: c.RateLimit.BucketSize,
	}
}
