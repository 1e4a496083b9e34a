package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports"
)

type accessTokenSource interface {
	AccessToken() string
}

// Collector reads the latest value of every required metric for a station.
type Collector struct {
	source ports.SourceAPI
	tokens accessTokenSource
}

func NewCollector(source ports.SourceAPI, tokens accessTokenSource) *Collector {
	return &Collector{source: source, tokens: tokens}
}

// CollectStation stops at the first failed read; the station is skipped as a
// whole.
func (c *Collector) CollectStation(ctx context.Context, id domain.StationID) (domain.Snapshot, error) {
	token := c.tokens.AccessToken()
	snapshot := domain.NewSnapshot()

	for _, metric := range domain.SensorMetrics {
		reading, err := c.source.LatestSensorValue(ctx, token, id, metric)
		if err != nil {
			return domain.Snapshot{}, asFetchError(id, "sensor "+string(metric), err)
		}
		snapshot.Readings[metric] = reading
	}

	info, err := c.source.GetStation(ctx, token, id)
	if err != nil {
		return domain.Snapshot{}, asFetchError(id, "station metadata", err)
	}
	snapshot.Address = info.Address
	snapshot.Location = info.Location

	for _, metric := range domain.StatisticMetrics {
		reading, err := c.source.LatestStatisticValue(ctx, token, id, metric)
		if err != nil {
			return domain.Snapshot{}, asFetchError(id, "statistic "+string(metric), err)
		}
		snapshot.Readings[metric] = reading
	}

	return snapshot, nil
}

func (c *Collector) ListAccountStations(ctx context.Context) ([]domain.StationID, error) {
	ids, err := c.source.ListStations(ctx, c.tokens.AccessToken())
	if err != nil {
		if errors.Is(err, domain.ErrFetch) {
			return nil, fmt.Errorf("list account stations: %w", err)
		}
		return nil, fmt.Errorf("list account stations: %w: %w", domain.ErrFetch, err)
	}
	return ids, nil
}

func asFetchError(id domain.StationID, what string, err error) error {
	if errors.Is(err, domain.ErrFetch) {
		return fmt.Errorf("station %s: %s: %w", id, what, err)
	}
	return fmt.Errorf("station %s: %s: %w: %w", id, what, domain.ErrFetch, err)
}
