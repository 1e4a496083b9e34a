package ports

import "github.com/bnema/airella-bridge/internal/domain"

type Recorder interface {
	RecordStation(outcome domain.StationOutcome)
	RecordCycle(report domain.CycleReport, ledgerSize int)
}

type NopRecorder struct{}

func (NopRecorder) RecordStation(domain.StationOutcome) {}

func (NopRecorder) RecordCycle(domain.CycleReport, int) {}
