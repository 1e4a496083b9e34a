package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
)

var errTransport = errors.New("connection reset by peer")

// fakeSource serves one station snapshot per heartbeat value; every station
// reports complete data unless configured otherwise.
type fakeSource struct {
	mu sync.Mutex

	loginErr    error
	refreshErrs []error
	listErr     error
	account     []domain.StationID

	heartbeats map[domain.StationID]string
	missing    map[domain.StationID]domain.Metric
	fetchErr   map[domain.StationID]error

	logins       int
	refreshCalls int
	listCalls    int
	tokensSeen   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		heartbeats: map[domain.StationID]string{},
		missing:    map[domain.StationID]domain.Metric{},
		fetchErr:   map[domain.StationID]error{},
	}
}

func (f *fakeSource) Login(_ context.Context, creds domain.Credentials) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logins++
	if f.loginErr != nil {
		return domain.Session{}, f.loginErr
	}
	return domain.Session{AccessToken: "access-0", RefreshToken: `{"token":"refresh"}`}, nil
}

func (f *fakeSource) Refresh(_ context.Context, refreshToken string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := f.refreshCalls
	f.refreshCalls++
	if call < len(f.refreshErrs) && f.refreshErrs[call] != nil {
		return "", f.refreshErrs[call]
	}
	return "access-" + string(rune('1'+call)), nil
}

func (f *fakeSource) ListStations(_ context.Context, accessToken string) ([]domain.StationID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listCalls++
	f.tokensSeen = append(f.tokensSeen, accessToken)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.account, nil
}

func (f *fakeSource) GetStation(_ context.Context, accessToken string, id domain.StationID) (domain.StationInfo, error) {
	if err := f.check(accessToken, id); err != nil {
		return domain.StationInfo{}, err
	}

	info := domain.StationInfo{ID: id}
	if f.missing[id] != domain.Metric(domain.FieldAddress) {
		info.Address = &domain.Address{Country: "PL", City: "Krakow", Street: "Mickiewicza", Number: "30"}
	}
	if f.missing[id] != domain.Metric(domain.FieldLocation) {
		info.Location = &domain.Location{Latitude: 50.0647, Longitude: 19.945}
	}
	return info, nil
}

func (f *fakeSource) LatestSensorValue(_ context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error) {
	return f.reading(accessToken, id, metric)
}

func (f *fakeSource) LatestStatisticValue(_ context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error) {
	return f.reading(accessToken, id, metric)
}

func (f *fakeSource) reading(accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error) {
	if err := f.check(accessToken, id); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.missing[id] == metric {
		return nil, nil
	}
	heartbeat, ok := f.heartbeats[id]
	if !ok {
		heartbeat = "2026-02-14T12:00:00Z"
	}

	var value any = 1.5
	if metric == domain.MetricHeaterState {
		value = "ON"
	}
	return &domain.Reading{Timestamp: heartbeat, Value: value}, nil
}

func (f *fakeSource) check(accessToken string, id domain.StationID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokensSeen = append(f.tokensSeen, accessToken)
	return f.fetchErr[id]
}

func (f *fakeSource) setHeartbeat(id domain.StationID, heartbeat string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heartbeats[id] = heartbeat
}

type fakeSink struct {
	mu        sync.Mutex
	errs      map[domain.StationID]error
	envelopes []ports.Envelope
	stations  []domain.StationID
}

func newFakeSink() *fakeSink {
	return &fakeSink{errs: map[domain.StationID]error{}}
}

func (s *fakeSink) Submit(_ context.Context, envelope ports.Envelope) error {
	var report domain.DeviceReport
	if err := json.Unmarshal([]byte(envelope.Data), &report); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stations = append(s.stations, report.StationID)
	if err := s.errs[report.StationID]; err != nil {
		return err
	}
	s.envelopes = append(s.envelopes, envelope)
	return nil
}

func (s *fakeSink) attempts() []domain.StationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StationID(nil), s.stations...)
}

// fakeClock never blocks. After maxSleeps sleeps it reports cancellation so
// Run returns.
type fakeClock struct {
	now       time.Time
	sleeps    []time.Duration
	maxSleeps int
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	if len(c.sleeps) >= c.maxSleeps {
		return context.Canceled
	}
	return nil
}

type recordingRecorder struct {
	outcomes []domain.StationOutcome
	cycles   []domain.CycleReport
	ledger   []int
}

func (r *recordingRecorder) RecordStation(outcome domain.StationOutcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingRecorder) RecordCycle(report domain.CycleReport, ledgerSize int) {
	r.cycles = append(r.cycles, report)
	r.ledger = append(r.ledger, ledgerSize)
}

func completeSnapshot(heartbeat string) domain.Snapshot {
	snapshot := domain.NewSnapshot()
	for _, metric := range append(append([]domain.Metric{}, domain.SensorMetrics...), domain.StatisticMetrics...) {
		snapshot.Readings[metric] = &domain.Reading{Timestamp: heartbeat, Value: 1.0}
	}
	snapshot.Address = &domain.Address{Country: "PL", City: "Krakow", Street: "Mickiewicza", Number: "30"}
	snapshot.Location = &domain.Location{Latitude: 50.0647, Longitude: 19.945}
	return snapshot
}
