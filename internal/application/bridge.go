package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
	"github.com/google/uuid"
)

const DefaultInterval = 5 * time.Minute

type Options struct {
	// Stations is the fixed station set. When empty, stations are discovered
	// from the account every cycle.
	Stations []domain.StationID
	Interval time.Duration
	Label    string
	Ledger   *domain.HeartbeatLedger
	Clock    ports.Clock
	Recorder ports.Recorder
	Logger   *slog.Logger
}

// Bridge drives the collect, validate, transform and deliver pipeline for
// every station, one station at a time.
type Bridge struct {
	session   *SessionManager
	collector *Collector
	validator *Validator
	delivery  *DeliveryClient
	ledger    *domain.HeartbeatLedger
	clock     ports.Clock
	recorder  ports.Recorder
	logger    *slog.Logger
	stations  []domain.StationID
	interval  time.Duration
	newID     func() string
}

func NewBridge(source ports.SourceAPI, sink ports.ReportSink, creds domain.Credentials, opts Options) *Bridge {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Recorder == nil {
		opts.Recorder = ports.NopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Ledger == nil {
		opts.Ledger = domain.NewHeartbeatLedger()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	session := NewSessionManager(source, creds)

	return &Bridge{
		session:   session,
		collector: NewCollector(source, session),
		validator: NewValidator(opts.Ledger),
		delivery:  NewDeliveryClient(sink, opts.Clock, opts.Label),
		ledger:    opts.Ledger,
		clock:     opts.Clock,
		recorder:  opts.Recorder,
		logger:    opts.Logger,
		stations:  append([]domain.StationID(nil), opts.Stations...),
		interval:  opts.Interval,
		newID:     uuid.NewString,
	}
}

// Run logs in and then runs a cycle every interval until ctx is done. Only a
// failed login is returned as an error.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.Login(ctx); err != nil {
		return err
	}

	for {
		b.RunCycle(ctx)

		b.logger.Info("next iteration scheduled", "in", b.interval.String())
		if err := b.clock.Sleep(ctx, b.interval); err != nil {
			b.logger.Info("bridge stopped", "reason", err.Error())
			return nil
		}
	}
}

func (b *Bridge) Login(ctx context.Context) error {
	if err := b.session.Login(ctx); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	b.logger.Info("logged in to source api")
	return nil
}

// Stations returns the station set of the next cycle.
func (b *Bridge) Stations(ctx context.Context) ([]domain.StationID, error) {
	if len(b.stations) > 0 {
		return append([]domain.StationID(nil), b.stations...), nil
	}
	return b.collector.ListAccountStations(ctx)
}

// RunCycle refreshes the session and processes every station once. A refresh
// or discovery failure aborts the cycle before any station is touched.
func (b *Bridge) RunCycle(ctx context.Context) domain.CycleReport {
	report := domain.CycleReport{ID: b.newID(), StartedAt: b.clock.Now()}
	logger := b.logger.With("cycle", report.ID)

	if err := b.session.Refresh(ctx); err != nil {
		logger.Error("refresh access token failed, skipping cycle", "error", err)
		report.AbortErr = err
		return b.finishCycle(logger, report)
	}

	stations, err := b.Stations(ctx)
	if err != nil {
		logger.Error("resolve stations failed, skipping cycle", "error", err)
		report.AbortErr = err
		return b.finishCycle(logger, report)
	}

	for _, id := range stations {
		if ctx.Err() != nil {
			logger.Warn("cycle interrupted", "error", ctx.Err())
			break
		}

		logger.Debug("getting station data", "station", id)
		outcome := b.processStation(ctx, id)
		report.Outcomes = append(report.Outcomes, outcome)
		b.recorder.RecordStation(outcome)
		logOutcome(logger, outcome)
	}

	return b.finishCycle(logger, report)
}

func (b *Bridge) processStation(ctx context.Context, id domain.StationID) domain.StationOutcome {
	snapshot, err := b.collector.CollectStation(ctx, id)
	if err != nil {
		return domain.StationOutcome{Station: id, Status: domain.OutcomeFetchFailed, Err: err}
	}

	if err := b.validator.Validate(id, snapshot); err != nil {
		return domain.StationOutcome{Station: id, Status: domain.OutcomeRejected, Err: err}
	}
	heartbeat, _ := b.ledger.Last(id)

	// The ledger is already advanced here: a failed delivery consumes the
	// reading.
	report := domain.NewDeviceReport(id, snapshot)
	if err := b.delivery.Deliver(ctx, id, report); err != nil {
		return domain.StationOutcome{Station: id, Status: domain.OutcomeDeliveryFailed, Err: err, Heartbeat: heartbeat}
	}

	return domain.StationOutcome{Station: id, Status: domain.OutcomeDelivered, Heartbeat: heartbeat}
}

func (b *Bridge) finishCycle(logger *slog.Logger, report domain.CycleReport) domain.CycleReport {
	report.FinishedAt = b.clock.Now()
	b.recorder.RecordCycle(report, b.ledger.Len())

	if !report.Aborted() {
		logger.Info("cycle finished",
			"stations", len(report.Outcomes),
			"delivered", report.Count(domain.OutcomeDelivered),
			"rejected", report.Count(domain.OutcomeRejected),
			"errors", report.Errors(),
			"duration", report.Duration().String(),
		)
	}
	return report
}

func logOutcome(logger *slog.Logger, outcome domain.StationOutcome) {
	station := slog.String("station", string(outcome.Station))

	switch outcome.Status {
	case domain.OutcomeDelivered:
		logger.Info("sent station data", station, "heartbeat", outcome.Heartbeat)
	case domain.OutcomeRejected:
		var rejected *domain.RejectedError
		if errors.As(outcome.Err, &rejected) {
			logger.Warn("station skipped", station, "reason", string(rejected.Reason), "field", rejected.Field)
			return
		}
		logger.Warn("station skipped", station, "error", outcome.Err)
	case domain.OutcomeFetchFailed:
		logger.Error("fetch station data failed", station, "error", outcome.Err)
	case domain.OutcomeDeliveryFailed:
		logger.Error("deliver station data failed", station, "error", outcome.Err, "heartbeat", outcome.Heartbeat)
	default:
		logger.Error("unknown station outcome", station, "status", string(outcome.Status))
	}
}

// Ledger exposes the heartbeat ledger for inspection.
func (b *Bridge) Ledger() *domain.HeartbeatLedger {
	return b.ledger
}
