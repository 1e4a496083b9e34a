package domain

import "fmt"

// Hardware constants reported for the virtual sensor module. The destination
// expects them even though the source has no equivalent.
const (
	RTCModel             = "DS3231"
	GPSModel             = "ORG1510-R01"
	ParticleSensorModel  = "PMS7003"
	EnvSensorModel       = "BME280"
	HeaterStateOn        = "ON"
	defaultWatchdogValue = 0
)

type DeviceReport struct {
	StationID StationID     `json:"stationId"`
	LocName   string        `json:"locName"`
	Sensors   ReportSensors `json:"sensors"`
}

type ReportSensors struct {
	MainSensorModule SensorModule `json:"mainSensorModule"`
}

type SensorModule struct {
	Meta       ModuleMeta `json:"meta"`
	SensorData SensorData `json:"sensorData"`
}

type ModuleMeta struct {
	SoftwareWatchdog SoftwareWatchdog `json:"softwareWatchdog"`
	ControlRegister  int              `json:"controlRegister"`
	I2CInhibit       bool             `json:"i2cInhibit"`
	RTC              RTC              `json:"rtc"`
	OfflineFeatures  OfflineFeatures  `json:"offlineFeatures"`
}

type SoftwareWatchdog struct {
	Active bool `json:"active"`
	Value  int  `json:"value"`
}

type RTC struct {
	Present       bool         `json:"present"`
	DataValid     bool         `json:"dataValid"`
	ModulePresent bool         `json:"modulePresent"`
	Model         string       `json:"model"`
	Timestamp     RTCTimestamp `json:"timestamp"`
}

type RTCTimestamp struct {
	ISO string `json:"iso"`
}

type OfflineFeatures struct {
	OfflineMode bool `json:"offlineMode"`
	RegBlock    int  `json:"regBlock"`
}

type SensorData struct {
	Power          PowerReading          `json:"power"`
	GPS            GPSReading            `json:"gps"`
	Heater         HeaterReading         `json:"heater"`
	ParticleSensor ParticleSensorReading `json:"particleConcentrationSensor"`
	EnvSensor      EnvSensorReading      `json:"envSensor"`
}

type PowerReading struct {
	SBCPowerOn    bool `json:"sbcPowerOn"`
	Reg5VOn       bool `json:"reg5VOn"`
	SupplyVoltage any  `json:"supplyVoltage"`
}

type GPSReading struct {
	Model     string `json:"model"`
	PowerOn   bool   `json:"powerOn"`
	DataValid bool   `json:"dataValid"`
	Latitude  any    `json:"latitude"`
	Longitude any    `json:"longitude"`
}

type HeaterReading struct {
	PowerOn    bool `json:"powerOn"`
	PowerLevel any  `json:"powerLevel"`
	TempRead   any  `json:"tempRead"`
}

type ParticleSensorReading struct {
	Model              string                `json:"model"`
	PowerOn            bool                  `json:"powerOn"`
	AverageCurrentDraw any                   `json:"averageCurrentDraw"`
	Concentration      ParticleConcentration `json:"concentration"`
}

type ParticleConcentration struct {
	AtmoPressAverage PMValues `json:"atmoPressAverage"`
}

type PMValues struct {
	PM1  any `json:"pm1"`
	PM25 any `json:"pm2_5"`
	PM10 any `json:"pm10"`
}

type EnvSensorReading struct {
	Model            string `json:"model"`
	DataValid        bool   `json:"dataValid"`
	DewPoint         any    `json:"dewPoint"`
	RelativeHumidity any    `json:"relativeHumidity"`
	Temperature      any    `json:"temperature"`
	Pressure         any    `json:"pressure"`
}

// LocationName formats an address as "country, city, street number".
func LocationName(addr Address) string {
	return fmt.Sprintf("%s, %s, %s %s", addr.Country, addr.City, addr.Street, addr.Number)
}

// NewDeviceReport maps a validated snapshot onto the destination schema. It
// never fails: fields absent from the snapshot map to zero values.
func NewDeviceReport(id StationID, snapshot Snapshot) DeviceReport {
	var address Address
	if snapshot.Address != nil {
		address = *snapshot.Address
	}
	var location Location
	if snapshot.Location != nil {
		location = *snapshot.Location
	}
	heartbeat, _ := snapshot.Reading(MetricHeartbeat)
	heaterState, hasHeaterState := snapshot.Reading(MetricHeaterState)

	return DeviceReport{
		StationID: id,
		LocName:   LocationName(address),
		Sensors: ReportSensors{
			MainSensorModule: SensorModule{
				Meta: ModuleMeta{
					SoftwareWatchdog: SoftwareWatchdog{Active: true, Value: defaultWatchdogValue},
					RTC: RTC{
						DataValid:     true,
						ModulePresent: true,
						Model:         RTCModel,
						Timestamp:     RTCTimestamp{ISO: heartbeat.Timestamp},
					},
				},
				SensorData: SensorData{
					Power: PowerReading{
						SupplyVoltage: snapshot.Value(MetricBusVoltage),
					},
					GPS: GPSReading{
						Model:     GPSModel,
						Latitude:  location.Latitude,
						Longitude: location.Longitude,
					},
					Heater: HeaterReading{
						PowerOn:    hasHeaterState && heaterState.Value == HeaterStateOn,
						PowerLevel: snapshot.Value(MetricHeaterPower),
						TempRead:   snapshot.Value(MetricHeaterTemp),
					},
					ParticleSensor: ParticleSensorReading{
						Model:              ParticleSensorModel,
						PowerOn:            true,
						AverageCurrentDraw: snapshot.Value(MetricCurrent),
						Concentration: ParticleConcentration{
							AtmoPressAverage: PMValues{
								PM1:  snapshot.Value(MetricPM1),
								PM25: snapshot.Value(MetricPM25),
								PM10: snapshot.Value(MetricPM10),
							},
						},
					},
					EnvSensor: EnvSensorReading{
						Model:            EnvSensorModel,
						DewPoint:         snapshot.Value(MetricHeaterDewPoint),
						RelativeHumidity: snapshot.Value(MetricHumidity),
						Temperature:      snapshot.Value(MetricTemperature),
						Pressure:         snapshot.Value(MetricPressure),
					},
				},
			},
		},
	}
}
