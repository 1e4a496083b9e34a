package ports

import (
	"context"
	"time"
)

// Envelope is a single submission to the destination API. Data carries the
// serialized device report.
type Envelope struct {
	Label     string
	Timestamp time.Time
	Data      string
}

type ReportSink interface {
	Submit(ctx context.Context, envelope Envelope) error
}
