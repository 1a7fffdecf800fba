package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/config"
	"github.com/home-energy-audit/energy-import/context_values"
	"github.com/home-energy-audit/energy-import/parse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/go-kit/helpers"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize access to Google Drive and save the token to token_file",
		Long: `Authorize access to Google Drive and save the token to token_file.

The google_drive source must set client_secrets and token_file. The consent page URL is printed;
once consent is given the token is saved and later runs refresh it as needed.`,
		Args: cobra.NoArgs,
		RunE: runAuthCmd,
	}
}

func runAuthCmd(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
		}
	}()

	ctx := context_values.WithExecutionId(cmd.Context(), uuid.NewString())

	c, err := config.Load(viper.GetString(flagConfig))
	if err != nil {
		return err
	}
	sourceConfig, err := parse.ParseConfig[*artifact_source.GoogleDriveSourceConfig](c.Source)
	if err != nil {
		return err
	}
	if sourceConfig.ClientSecrets == nil || sourceConfig.TokenFile == nil {
		return fmt.Errorf("the google_drive source must set client_secrets and token_file to authorize")
	}

	out := cmd.OutOrStdout()
	token, err := artifact_source.Authorize(ctx, sourceConfig, func(url string) error {
		_, err := fmt.Fprintf(out, "Open this URL in a browser to authorize access:\n\n%s\n\n", url)
		return err
	})
	if err != nil {
		return err
	}
	slog.Info("authorization complete", "expiry", token.Expiry)
	fmt.Fprintln(out, "Authorization complete.")
	return nil
}
