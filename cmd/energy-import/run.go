package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/home-energy-audit/energy-import/artifact_source"
	"github.com/home-energy-audit/energy-import/config"
	"github.com/home-energy-audit/energy-import/context_values"
	"github.com/home-energy-audit/energy-import/rate_limiter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// run holds what every command needs: the execution context, the parsed config and the storage source
type run struct {
	ctx    context.Context
	config *config.Config
	source artifact_source.Source
}

func newRun(cmd *cobra.Command) (*run, error) {
	executionId := uuid.NewString()
	ctx := context_values.WithExecutionId(cmd.Context(), executionId)

	c, err := config.Load(viper.GetString(flagConfig))
	if err != nil {
		return nil, err
	}

	source, err := artifact_source.Factory.GetSource(ctx, c.Source)
	if err != nil {
		return nil, err
	}
	if def := c.RateLimitDefinition(); def != nil {
		limiter := rate_limiter.NewAPILimiter(def)
		slog.Debug("rate limiting source", "limiter", limiter.String())
		source = artifact_source.NewRateLimitedSource(source, limiter)
	}

	slog.Info("starting run", "command", cmd.Name(), "source", source.Identifier(), "execution_id", executionId)
	return &run{ctx: ctx, config: c, source: source}, nil
}

func (r *run) Close() {
	if err := r.source.Close(); err != nil {
		slog.Warn("failed to close source", "error", err)
	}
}
