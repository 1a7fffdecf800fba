package main

import (
	"fmt"

	"github.com/home-energy-audit/energy-import/config"
	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/tables"
	"github.com/home-energy-audit/energy-import/tables/nest"
	"github.com/home-energy-audit/energy-import/tables/noaa"
	"github.com/home-energy-audit/energy-import/tables/sense"
	"github.com/home-energy-audit/energy-import/writer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/go-kit/helpers"
)

const importAll = "all"

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "import [noaa|sense|nest|all]",
		Short:     "Extract the audit data sets and write them to the output directory",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{constants.SourceTagNoaa, constants.SourceTagSense, constants.SourceTagNest, importAll},
		RunE:      runImportCmd,
	}
}

func runImportCmd(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
		}
	}()

	which := importAll
	if len(args) == 1 {
		which = args[0]
	}

	r, err := newRun(cmd)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := outputWriter(r.config)
	if err != nil {
		return err
	}

	for _, e := range extractors(r.config) {
		if which != importAll && which != e.Identifier() {
			continue
		}
		output, err := e.Extract(r.ctx, r.source)
		if err != nil {
			return fmt.Errorf("failed to extract %s data: %w", e.Identifier(), err)
		}
		paths, err := w.WriteOutput(r.ctx, output)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	}
	return nil
}

// extractors returns the extractor for every data set, in output order
func extractors(c *config.Config) []tables.Extractor {
	return []tables.Extractor{
		noaa.NewExtractor(c.Noaa),
		sense.NewExtractor(c.Sense),
		nest.NewExtractor(c.Nest),
	}
}

// outputWriter builds the writer from the output block, with the --output-dir and --format flags taking precedence
func outputWriter(c *config.Config) (*writer.Writer, error) {
	dir := c.Output.Dir
	if v := viper.GetString(flagOutputDir); v != "" {
		dir = v
	}
	formatName := c.Output.Format
	if v := viper.GetString(flagFormat); v != "" {
		formatName = v
	}
	format, err := writer.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	return writer.NewWriter(dir, format)
}
