package main

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/home-energy-audit/energy-import/constants"
	"github.com/home-energy-audit/energy-import/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/pipe-fittings/cmdconfig"
	"github.com/turbot/pipe-fittings/error_helpers"
	"github.com/turbot/pipe-fittings/utils"
)

const (
	flagConfig    = "config"
	flagOutputDir = "output-dir"
	flagFormat    = "format"
	flagLogLevel  = "log-level"
)

var exitCode int

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "energy-import COMMAND [args]",
		Short:        "Import home energy audit data from remote storage into clean tables",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			error_helpers.FailOnError(err)
		},
	}

	utils.LogTime("cmd.root.InitCmd start")
	defer utils.LogTime("cmd.root.InitCmd end")

	cmdconfig.
		OnCmd(rootCmd)

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, constants.DefaultConfigFile, "Path of the HCL config file")
	flags.String(flagOutputDir, "", "Directory to write output files to (overrides the config file)")
	flags.String(flagFormat, "", "Output format, csv or jsonl (overrides the config file)")
	flags.String(flagLogLevel, "", "Log level: debug, info, warn, error or off")
	for _, name := range []string{flagConfig, flagOutputDir, flagFormat, flagLogLevel} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initGlobalConfig()
	}

	rootCmd.AddCommand(
		importCmd(),
		resolveCmd(),
		authCmd(),
	)

	return rootCmd
}

// initGlobalConfig loads .env, binds ENERGY_IMPORT_* env vars to the flags and installs the logger
func initGlobalConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	logging.Initialize(viper.GetString(flagLogLevel))
	return nil
}

func Execute() int {
	rootCmd := rootCommand()
	utils.LogTime("cmd.root.Execute start")
	defer utils.LogTime("cmd.root.Execute end")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		exitCode = -1
	}
	return exitCode
}
