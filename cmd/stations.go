package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/spf13/cobra"
)

func newStationsCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "stations",
		Short: "List the stations of the Airella account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			if err := cfg.ValidateSource(); err != nil {
				return err
			}

			// Discovery only happens without a configured station list.
			cfg.Stations = nil
			app := wireApp(cfg, cmd.ErrOrStderr())

			var stations []domain.StationID
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching account stations...", func(ctx context.Context) error {
				if err := app.bridge.Login(ctx); err != nil {
					return err
				}
				ids, err := app.bridge.Stations(ctx)
				stations = ids
				return err
			})
			if err != nil {
				return err
			}

			for _, id := range stations {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
