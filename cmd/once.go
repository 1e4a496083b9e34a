package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	statusadapter "github.com/bnema/airella-bridge/internal/adapters/render/status"
	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/spf13/cobra"
)

var errCycleFailed = errors.New("cycle finished with errors")

type outcomeOutput struct {
	Station   string     `json:"station"`
	Status    string     `json:"status"`
	Heartbeat *time.Time `json:"heartbeat,omitempty"`
	Error     string     `json:"error,omitempty"`
}

type cycleOutput struct {
	ID         string          `json:"id"`
	StartedAt  time.Time       `json:"startedAt"`
	FinishedAt time.Time       `json:"finishedAt"`
	AbortError string          `json:"abortError,omitempty"`
	Outcomes   []outcomeOutput `json:"outcomes"`
}

func newOnceCmd(s *settings) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Log in, run a single cycle and print what happened to each station",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := s.loadValid(ctx)
			if err != nil {
				return err
			}

			app := wireApp(cfg, cmd.ErrOrStderr())
			if err := app.bridge.Login(ctx); err != nil {
				return err
			}

			report := app.bridge.RunCycle(ctx)
			if err := writeCycleOutput(cmd, report, cfg.Interval, asJSON); err != nil {
				return err
			}

			if report.Aborted() {
				return fmt.Errorf("%w: %w", errCycleFailed, report.AbortErr)
			}
			if n := report.Errors(); n > 0 {
				return fmt.Errorf("%w: %d of %d stations failed", errCycleFailed, n, len(report.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the cycle report as JSON")

	return cmd
}

func writeCycleOutput(cmd *cobra.Command, report domain.CycleReport, interval time.Duration, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toCycleOutput(report))
	}

	rendered, err := statusadapter.Render(report, statusadapter.RenderOptions{Now: time.Now(), Interval: interval})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func toCycleOutput(report domain.CycleReport) cycleOutput {
	out := cycleOutput{
		ID:         report.ID,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Outcomes:   make([]outcomeOutput, 0, len(report.Outcomes)),
	}
	if report.AbortErr != nil {
		out.AbortError = report.AbortErr.Error()
	}

	for _, outcome := range report.Outcomes {
		entry := outcomeOutput{Station: string(outcome.Station), Status: string(outcome.Status)}
		if !outcome.Heartbeat.IsZero() {
			heartbeat := outcome.Heartbeat
			entry.Heartbeat = &heartbeat
		}
		if outcome.Err != nil {
			entry.Error = outcome.Err.Error()
		}
		out.Outcomes = append(out.Outcomes, entry)
	}

	return out
}
