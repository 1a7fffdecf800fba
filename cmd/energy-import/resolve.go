package main

import (
	"fmt"

	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/go-kit/helpers"
)

const flagFull = "full"

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <segment>...",
		Short: "Resolve a path of names to a remote identifier",
		Long: `Resolve a path of names to a remote identifier.

With --full, every resolved segment is printed with its identifier; segments with no match are omitted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolveCmd,
	}
	cmd.Flags().Bool(flagFull, false, "Print the identifier of every resolved segment")
	_ = viper.BindPFlag(flagFull, cmd.Flags().Lookup(flagFull))
	return cmd
}

func runResolveCmd(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
		}
	}()

	r, err := newRun(cmd)
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	if !viper.GetBool(flagFull) {
		id, err := artifact_source.ResolvePath(r.ctx, r.source, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id)
		return nil
	}

	ids, err := artifact_source.ResolvePathMap(r.ctx, r.source, args)
	if err != nil {
		return err
	}
	// print in path order, root first
	fmt.Fprintf(out, "%s\t%s\n", constants.RootIdentifier, ids[constants.RootIdentifier])
	for _, segment := range args {
		if id, ok := ids.Lookup(segment); ok {
			fmt.Fprintf(out, "%s\t%s\n", segment, id)
		}
	}
	return nil
}
