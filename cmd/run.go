package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	metricsadapter "github.com/bnema/airella-bridge/internal/adapters/metrics"
	"github.com/bnema/airella-bridge/internal/config"
	"github.com/bnema/airella-bridge/internal/version"
	"github.com/spf13/cobra"
)

func newRunCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Forward station data every interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := s.loadValid(ctx)
			if err != nil {
				return err
			}

			app := wireApp(cfg, cmd.ErrOrStderr())
			if cfg.Metrics.Addr != "" {
				go serveStatus(ctx, cfg, app)
			}

			app.logger.Info("starting bridge",
				"version", version.Version,
				"stations", cfg.Stations,
				"interval", cfg.Interval.String(),
			)
			return app.bridge.Run(ctx)
		},
	}
}

func serveStatus(ctx context.Context, cfg config.Config, app *app) {
	if err := metricsadapter.Serve(ctx, cfg.Metrics.Addr, app.recorder, app.logger); err != nil {
		app.logger.Error("status server failed", "error", err)
	}
}

// loadValid loads the configuration and checks it is complete enough to run
// the bridge.
func (s *settings) loadValid(ctx context.Context) (config.Config, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
