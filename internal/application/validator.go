package application

import "github.com/bnema/airella-bridge/internal/domain"

// Validator accepts a snapshot only when the station is alive, its heartbeat
// moved past the last accepted one and no field is missing. Acceptance
// advances the ledger; rejection leaves it untouched.
type Validator struct {
	ledger *domain.HeartbeatLedger
}

func NewValidator(ledger *domain.HeartbeatLedger) *Validator {
	return &Validator{ledger: ledger}
}

func (v *Validator) Validate(id domain.StationID, snapshot domain.Snapshot) error {
	heartbeat, ok := snapshot.Reading(domain.MetricHeartbeat)
	if !ok {
		return &domain.RejectedError{Station: id, Reason: domain.ReasonNotReporting}
	}
	beat, err := heartbeat.Time()
	if err != nil {
		return &domain.RejectedError{Station: id, Reason: domain.ReasonNotReporting}
	}

	if last, seen := v.ledger.Last(id); seen && !beat.After(last) {
		return &domain.RejectedError{Station: id, Reason: domain.ReasonStale}
	}

	if field, missing := snapshot.FirstMissing(); missing {
		return &domain.RejectedError{Station: id, Reason: domain.ReasonIncomplete, Field: field}
	}

	v.ledger.Advance(id, beat)
	return nil
}
