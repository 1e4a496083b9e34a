package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
)

const DefaultReportLabel = "Airella Quality Sensor"

type DeliveryClient struct {
	sink  ports.ReportSink
	clock ports.Clock
	label string
}

func NewDeliveryClient(sink ports.ReportSink, clock ports.Clock, label string) *DeliveryClient {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if label == "" {
		label = DefaultReportLabel
	}

	return &DeliveryClient{sink: sink, clock: clock, label: label}
}

func (d *DeliveryClient) Deliver(ctx context.Context, id domain.StationID, report domain.DeviceReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("station %s: %w: encode report: %w", id, domain.ErrDelivery, err)
	}

	envelope := ports.Envelope{
		Label:     d.label,
		Timestamp: d.clock.Now().Truncate(time.Second),
		Data:      string(data),
	}
	if err := d.sink.Submit(ctx, envelope); err != nil {
		if errors.Is(err, domain.ErrDelivery) {
			return fmt.Errorf("station %s: %w", id, err)
		}
		return fmt.Errorf("station %s: %w: %w", id, domain.ErrDelivery, err)
	}

	return nil
}
