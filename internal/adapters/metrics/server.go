package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type cycleSummary struct {
	ID         string         `json:"id"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Aborted    bool           `json:"aborted"`
	AbortError string         `json:"abortError,omitempty"`
	Stations   int            `json:"stations"`
	Outcomes   map[string]int `json:"outcomes"`
}

type healthResponse struct {
	Status    string        `json:"status"`
	LastCycle *cycleSummary `json:"lastCycle,omitempty"`
}

func NewRouter(recorder *Recorder) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", recorder.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler(recorder)).Methods(http.MethodGet)
	return r
}

func healthHandler(recorder *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response := healthResponse{Status: "starting"}
		if report, ok := recorder.LastCycle(); ok {
			response.Status = "ok"
			if report.Aborted() || report.Errors() > 0 {
				response.Status = "degraded"
			}
			response.LastCycle = summarize(report)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}
}

func summarize(report domain.CycleReport) *cycleSummary {
	summary := &cycleSummary{
		ID:         report.ID,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Aborted:    report.Aborted(),
		Stations:   len(report.Outcomes),
		Outcomes:   map[string]int{},
	}
	if report.AbortErr != nil {
		summary.AbortError = report.AbortErr.Error()
	}
	for _, outcome := range report.Outcomes {
		summary.Outcomes[string(outcome.Status)]++
	}
	return summary
}

// Serve runs the status server on addr until ctx is done.
func Serve(ctx context.Context, addr string, recorder *Recorder, logger *slog.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	server := &http.Server{
		Handler:           NewRouter(recorder),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()
	logger.Info("status server listening", "addr", listener.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown status server: %w", err)
	}
	return nil
}
