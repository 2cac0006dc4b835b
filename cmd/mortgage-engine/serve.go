package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/mortgage-engine/internal/cache"
	"github.com/iwvelando/mortgage-engine/internal/engine"
	"github.com/iwvelando/mortgage-engine/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mortgage API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := a.conf.Server
			if address != "" {
				section.Address = address
			}
			cfg, err := server.NewConfig(section)
			if err != nil {
				return err
			}

			responses, err := cache.New(a.conf.Cache, a.logger)
			if err != nil {
				return err
			}
			if responses != nil {
				defer func() {
					if err := responses.Close(); err != nil {
						a.logger.Warn("failed to close response cache", zap.String("op", "main.serve"), zap.Error(err))
					}
				}()
			}

			handler := server.NewHandler(a.logger, server.Options{
				Engine:        engine.NewEngine(a.logger, a.conf.Engine.Parallel),
				Cache:         responses,
				MaxUploadSize: cfg.UploadSizeBytes(),
				RateLimit:     cfg.RateLimit,
				Version:       version,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx, a.logger, cfg, handler)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8000")
	return cmd
}
