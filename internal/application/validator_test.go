package application

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRejected(t *testing.T, err error, reason domain.RejectionReason) *domain.RejectedError {
	t.Helper()

	require.ErrorIs(t, err, domain.ErrRejected)
	var rejected *domain.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, reason, rejected.Reason)
	return rejected
}

func TestValidatorAcceptsFirstSnapshotAsBaseline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		heartbeat string
	}{
		{name: "recent", heartbeat: "2026-02-14T12:00:00Z"},
		{name: "ancient", heartbeat: "1999-01-01T00:00:00Z"},
		{name: "naive local", heartbeat: "2026-02-14T12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := domain.NewHeartbeatLedger()
			validator := NewValidator(ledger)

			require.NoError(t, validator.Validate("S1", completeSnapshot(tt.heartbeat)))

			want, err := domain.ParseTimestamp(tt.heartbeat)
			require.NoError(t, err)
			got, ok := ledger.Last("S1")
			require.True(t, ok)
			assert.True(t, want.Equal(got))
		})
	}
}

func TestValidatorRejectsHeartbeatThatDidNotAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		next string
	}{
		{name: "same text", next: "2026-02-14T12:00:00Z"},
		{name: "same instant other offset", next: "2026-02-14T13:00:00+01:00"},
		{name: "same instant compact offset", next: "2026-02-14T14:00:00+0200"},
		{name: "earlier", next: "2026-02-14T11:59:59Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := domain.NewHeartbeatLedger()
			validator := NewValidator(ledger)
			require.NoError(t, validator.Validate("S1", completeSnapshot("2026-02-14T12:00:00Z")))

			err := validator.Validate("S1", completeSnapshot(tt.next))
			requireRejected(t, err, domain.ReasonStale)

			last, _ := ledger.Last("S1")
			assert.True(t, time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC).Equal(last))
		})
	}
}

func TestValidatorAcceptsAdvancingHeartbeatAcrossOffsets(t *testing.T) {
	t.Parallel()

	ledger := domain.NewHeartbeatLedger()
	validator := NewValidator(ledger)

	require.NoError(t, validator.Validate("S1", completeSnapshot("2026-02-14T12:00:00Z")))
	require.NoError(t, validator.Validate("S1", completeSnapshot("2026-02-14T13:05:00+01:00")))

	last, _ := ledger.Last("S1")
	assert.True(t, time.Date(2026, 2, 14, 12, 5, 0, 0, time.UTC).Equal(last))
}

func TestValidatorLedgerIsPerStation(t *testing.T) {
	t.Parallel()

	validator := NewValidator(domain.NewHeartbeatLedger())

	require.NoError(t, validator.Validate("S1", completeSnapshot("2026-02-14T12:00:00Z")))
	require.NoError(t, validator.Validate("S2", completeSnapshot("2026-02-14T12:00:00Z")))
}

func TestValidatorRejectsAbsentHeartbeat(t *testing.T) {
	t.Parallel()

	ledger := domain.NewHeartbeatLedger()
	validator := NewValidator(ledger)

	snapshot := completeSnapshot("2026-02-14T12:00:00Z")
	snapshot.Readings[domain.MetricHeartbeat] = nil

	requireRejected(t, validator.Validate("S1", snapshot), domain.ReasonNotReporting)
	assert.Equal(t, 0, ledger.Len())
}

func TestValidatorRejectsUnparseableHeartbeat(t *testing.T) {
	t.Parallel()

	validator := NewValidator(domain.NewHeartbeatLedger())

	snapshot := completeSnapshot("2026-02-14T12:00:00Z")
	snapshot.Readings[domain.MetricHeartbeat] = &domain.Reading{Timestamp: "not a time", Value: 1.0}

	requireRejected(t, validator.Validate("S1", snapshot), domain.ReasonNotReporting)
}

func TestValidatorRejectsEachMissingFieldByName(t *testing.T) {
	t.Parallel()

	for _, field := range domain.SnapshotFields {
		if field == string(domain.MetricHeartbeat) {
			continue
		}

		t.Run(field, func(t *testing.T) {
			ledger := domain.NewHeartbeatLedger()
			validator := NewValidator(ledger)

			snapshot := completeSnapshot("2026-02-14T12:00:00Z")
			switch field {
			case domain.FieldAddress:
				snapshot.Address = nil
			case domain.FieldLocation:
				snapshot.Location = nil
			default:
				delete(snapshot.Readings, domain.Metric(field))
			}

			rejected := requireRejected(t, validator.Validate("S1", snapshot), domain.ReasonIncomplete)
			assert.Equal(t, field, rejected.Field)
			assert.ErrorContains(t, rejected, "incomplete data: "+field)
			assert.Equal(t, 0, ledger.Len(), "rejection must not touch the ledger")
		})
	}
}

func TestValidatorRejectedIncompleteSnapshotDoesNotConsumeHeartbeat(t *testing.T) {
	t.Parallel()

	validator := NewValidator(domain.NewHeartbeatLedger())

	incomplete := completeSnapshot("2026-02-14T12:00:00Z")
	incomplete.Location = nil
	requireRejected(t, validator.Validate("S1", incomplete), domain.ReasonIncomplete)

	require.NoError(t, validator.Validate("S1", completeSnapshot("2026-02-14T12:00:00Z")))
}
