package metrics

import (
	"net/http"
	"sync"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airella_bridge"

// Recorder exports cycle and station outcomes as Prometheus metrics and keeps
// the last finished cycle for the health endpoint.
type Recorder struct {
	registry *prometheus.Registry

	cyclesTotal    prometheus.Counter
	cycleAborts    prometheus.Counter
	stationResults *prometheus.CounterVec
	cycleDuration  prometheus.Histogram
	ledgerSize     prometheus.Gauge
	lastCycle      prometheus.Gauge

	mu   sync.RWMutex
	last *domain.CycleReport
}

var _ ports.Recorder = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		cyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_total",
			Help:      "Total bridge cycles started.",
		}),
		cycleAborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_aborts_total",
			Help:      "Cycles skipped because the session refresh or station discovery failed.",
		}),
		stationResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "station_outcomes_total",
			Help:      "Station outcomes by station and status.",
		}, []string{"station", "status"}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cycle_duration_seconds",
			Help:      "Histogram of cycle durations.",
			Buckets:   prometheus.DefBuckets,
		}),
		ledgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heartbeat_ledger_stations",
			Help:      "Stations with an accepted heartbeat.",
		}),
		lastCycle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_cycle_timestamp_seconds",
			Help:      "Unix time the last cycle finished.",
		}),
	}

	r.registry.MustRegister(
		r.cyclesTotal,
		r.cycleAborts,
		r.stationResults,
		r.cycleDuration,
		r.ledgerSize,
		r.lastCycle,
	)

	return r
}

func (r *Recorder) RecordStation(outcome domain.StationOutcome) {
	if r == nil {
		return
	}
	r.stationResults.WithLabelValues(string(outcome.Station), string(outcome.Status)).Inc()
}

func (r *Recorder) RecordCycle(report domain.CycleReport, ledgerSize int) {
	if r == nil {
		return
	}

	r.cyclesTotal.Inc()
	if report.Aborted() {
		r.cycleAborts.Inc()
	}
	r.cycleDuration.Observe(report.Duration().Seconds())
	r.ledgerSize.Set(float64(ledgerSize))
	r.lastCycle.Set(float64(report.FinishedAt.Unix()))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = &report
}

// LastCycle returns the most recently finished cycle, if any.
func (r *Recorder) LastCycle() (domain.CycleReport, bool) {
	if r == nil {
		return domain.CycleReport{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == nil {
		return domain.CycleReport{}, false
	}
	return *r.last, true
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
