package domain

func completeSnapshot(heartbeat string) Snapshot {
	snapshot := NewSnapshot()
	values := map[Metric]any{
		MetricPM1:            4.0,
		MetricPM25:           7.5,
		MetricPM10:           12.25,
		MetricTemperature:    21.3,
		MetricHumidity:       45.0,
		MetricPressure:       1013.2,
		MetricBusVoltage:     5.02,
		MetricHeaterTemp:     18.4,
		MetricHeaterHum:      40.1,
		MetricHeaterPower:    35.0,
		MetricHeaterState:    "ON",
		MetricHeaterDewPoint: 8.6,
		MetricHeartbeat:      1.0,
		MetricCurrent:        0.12,
	}
	for metric, value := range values {
		snapshot.Readings[metric] = &Reading{Timestamp: heartbeat, Value: value}
	}
	snapshot.Address = &Address{Country: "PL", City: "Krakow", Street: "Mickiewicza", Number: "30"}
	snapshot.Location = &Location{Latitude: 50.0647, Longitude: 19.945}

	return snapshot
}
