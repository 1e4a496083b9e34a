package application

import (
	"context"
	"testing"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/bnema/airella-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

func TestCollectorCollectsEveryField(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	source.setHeartbeat("S1", "2026-02-14T12:30:00+01:00")
	collector := NewCollector(source, staticToken("access-7"))

	snapshot, err := collector.CollectStation(context.Background(), "S1")
	require.NoError(t, err)

	_, missing := snapshot.FirstMissing()
	assert.False(t, missing)
	for _, field := range domain.SnapshotFields {
		assert.True(t, snapshot.Has(field), field)
	}
	heartbeat, ok := snapshot.Reading(domain.MetricHeartbeat)
	require.True(t, ok)
	assert.Equal(t, "2026-02-14T12:30:00+01:00", heartbeat.Timestamp)
	assert.Equal(t, "ON", snapshot.Value(domain.MetricHeaterState))
	assert.Equal(t, "Krakow", snapshot.Address.City)

	for _, token := range source.tokensSeen {
		assert.Equal(t, "access-7", token)
	}
}

func TestCollectorKeepsAbsentReadingsAbsent(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	source.missing["S1"] = domain.MetricPM10
	collector := NewCollector(source, staticToken("access-1"))

	snapshot, err := collector.CollectStation(context.Background(), "S1")
	require.NoError(t, err)

	field, missing := snapshot.FirstMissing()
	require.True(t, missing)
	assert.Equal(t, string(domain.MetricPM10), field)
}

func TestCollectorFailsWholeStationOnFirstError(t *testing.T) {
	t.Parallel()

	source := mocks.NewMockSourceAPI(t)
	collector := NewCollector(source, staticToken("access-1"))

	source.EXPECT().LatestSensorValue(mockAnyContext(), "access-1", domain.StationID("S1"), domain.MetricPM1).
		Return(&domain.Reading{Timestamp: "2026-02-14T12:00:00Z", Value: 3.0}, nil).Once()
	source.EXPECT().LatestSensorValue(mockAnyContext(), "access-1", domain.StationID("S1"), domain.MetricPM25).
		Return(nil, errTransport).Once()

	snapshot, err := collector.CollectStation(context.Background(), "S1")
	require.ErrorIs(t, err, domain.ErrFetch)
	require.ErrorIs(t, err, errTransport)
	assert.ErrorContains(t, err, "station S1: sensor pm2_5")
	assert.Nil(t, snapshot.Readings)
}

func TestCollectorMetadataFailureIsFetchError(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	source.fetchErr["S1"] = errTransport
	collector := NewCollector(source, staticToken("access-1"))

	_, err := collector.CollectStation(context.Background(), "S1")
	require.ErrorIs(t, err, domain.ErrFetch)
}

func TestCollectorListAccountStations(t *testing.T) {
	t.Parallel()

	source := newFakeSource()
	source.account = []domain.StationID{"S1", "S2"}
	collector := NewCollector(source, staticToken("access-1"))

	ids, err := collector.ListAccountStations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.StationID{"S1", "S2"}, ids)
	assert.Equal(t, []string{"access-1"}, source.tokensSeen)

	source.listErr = errTransport
	_, err = collector.ListAccountStations(context.Background())
	require.ErrorIs(t, err, domain.ErrFetch)
	require.ErrorIs(t, err, errTransport)
}
