package domain

import "time"

type OutcomeStatus string

const (
	OutcomeDelivered      OutcomeStatus = "delivered"
	OutcomeFetchFailed    OutcomeStatus = "fetch_failed"
	OutcomeRejected       OutcomeStatus = "rejected"
	OutcomeDeliveryFailed OutcomeStatus = "delivery_failed"
)

// StationOutcome is the result of one station's pass through the pipeline.
// Heartbeat is set once the snapshot was accepted.
type StationOutcome struct {
	Station   StationID
	Status    OutcomeStatus
	Err       error
	Heartbeat time.Time
}

func (o StationOutcome) OK() bool {
	return o.Status == OutcomeDelivered
}

type CycleReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	// AbortErr is set when the cycle stopped before processing stations.
	AbortErr error
	Outcomes []StationOutcome
}

func (r CycleReport) Aborted() bool {
	return r.AbortErr != nil
}

func (r CycleReport) Count(status OutcomeStatus) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

func (r CycleReport) Failed() int {
	return len(r.Outcomes) - r.Count(OutcomeDelivered)
}

// Errors counts stations that failed to fetch or deliver. Rejections are not
// errors.
func (r CycleReport) Errors() int {
	return r.Count(OutcomeFetchFailed) + r.Count(OutcomeDeliveryFailed)
}

func (r CycleReport) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
