package ports

import (
	"context"

	"github.com/bnema/airella-bridge/internal/domain"
)

// SourceAPI is the telemetry API stations are read from. Every call except
// Login and Refresh is authorized with the given access token.
type SourceAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.Session, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ListStations(ctx context.Context, accessToken string) ([]domain.StationID, error)
	GetStation(ctx context.Context, accessToken string, id domain.StationID) (domain.StationInfo, error)
	LatestSensorValue(ctx context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error)
	LatestStatisticValue(ctx context.Context, accessToken string, id domain.StationID, metric domain.Metric) (*domain.Reading, error)
}
