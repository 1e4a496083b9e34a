package domain

import (
	"fmt"
	"time"
)

type Metric string

const (
	MetricPM1         Metric = "pm1"
	MetricPM25        Metric = "pm2_5"
	MetricPM10        Metric = "pm10"
	MetricTemperature Metric = "temperature"
	MetricHumidity    Metric = "humidity"
	MetricPressure    Metric = "pressure"

	MetricBusVoltage     Metric = "busVoltage"
	MetricHeaterTemp     Metric = "heaterTemp"
	MetricHeaterHum      Metric = "heaterHum"
	MetricHeaterPower    Metric = "heaterPower"
	MetricHeaterState    Metric = "heaterState"
	MetricHeaterDewPoint Metric = "heaterDewPoint"
	MetricHeartbeat      Metric = "heartbeat"
	MetricCurrent        Metric = "current"
)

const (
	FieldAddress  = "address"
	FieldLocation = "location"
)

// SensorMetrics are read from the station sensor series.
var SensorMetrics = []Metric{
	MetricPM1,
	MetricPM25,
	MetricPM10,
	MetricTemperature,
	MetricHumidity,
	MetricPressure,
}

// StatisticMetrics are read from the station statistic series.
var StatisticMetrics = []Metric{
	MetricBusVoltage,
	MetricHeaterTemp,
	MetricHeaterHum,
	MetricHeaterPower,
	MetricHeaterState,
	MetricHeaterDewPoint,
	MetricHeartbeat,
	MetricCurrent,
}

// SnapshotFields lists every required snapshot field in reporting order.
var SnapshotFields = []string{
	string(MetricPM1),
	string(MetricPM25),
	string(MetricPM10),
	string(MetricTemperature),
	string(MetricHumidity),
	string(MetricPressure),
	FieldAddress,
	FieldLocation,
	string(MetricBusVoltage),
	string(MetricHeaterTemp),
	string(MetricHeaterHum),
	string(MetricHeaterPower),
	string(MetricHeaterState),
	string(MetricHeaterDewPoint),
	string(MetricHeartbeat),
	string(MetricCurrent),
}

// Reading is the most recent value of one series. Value keeps the JSON type the
// source used (float64, string or bool).
type Reading struct {
	Timestamp string
	Value     any
}

func (r Reading) Time() (time.Time, error) {
	return ParseTimestamp(r.Timestamp)
}

func (r Reading) String() string {
	if s, ok := r.Value.(string); ok {
		return s
	}
	return fmt.Sprint(r.Value)
}

// Snapshot is one cycle's collected view of a station. A missing map entry or
// nil reading means the series was empty.
type Snapshot struct {
	Readings map[Metric]*Reading
	Address  *Address
	Location *Location
}

func NewSnapshot() Snapshot {
	return Snapshot{Readings: make(map[Metric]*Reading, len(SensorMetrics)+len(StatisticMetrics))}
}

func (s Snapshot) Reading(metric Metric) (Reading, bool) {
	r, ok := s.Readings[metric]
	if !ok || r == nil {
		return Reading{}, false
	}
	return *r, true
}

func (s Snapshot) Value(metric Metric) any {
	r, _ := s.Reading(metric)
	return r.Value
}

func (s Snapshot) Has(field string) bool {
	switch field {
	case FieldAddress:
		return s.Address != nil
	case FieldLocation:
		return s.Location != nil
	default:
		_, ok := s.Reading(Metric(field))
		return ok
	}
}

// FirstMissing returns the first absent field in SnapshotFields order.
func (s Snapshot) FirstMissing() (string, bool) {
	for _, field := range SnapshotFields {
		if !s.Has(field) {
			return field, true
		}
	}
	return "", false
}
