package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuth      = errors.New("authentication failed")
	ErrNoSession = errors.New("no active session")
	ErrFetch     = errors.New("fetch station data")
	ErrRejected  = errors.New("station snapshot rejected")
	ErrDelivery  = errors.New("deliver station report")
)

type RejectionReason string

const (
	ReasonNotReporting RejectionReason = "station not reporting"
	ReasonStale        RejectionReason = "stale station"
	ReasonIncomplete   RejectionReason = "incomplete data"
)

// RejectedError describes why a snapshot failed validation. Field is only set
// for ReasonIncomplete.
type RejectedError struct {
	Station StationID
	Reason  RejectionReason
	Field   string
}

func (e *RejectedError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("station %s: %s: %s", e.Station, e.Reason, e.Field)
	}
	return fmt.Sprintf("station %s: %s", e.Station, e.Reason)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
