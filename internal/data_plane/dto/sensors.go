package dto

import "sensorhub-server/internal/shared_kernel/domain"

// SensorsInfo is the document a device returns for a poll of its full sensor
// set, keyed by sensor type ("ds18b20", "bme280", ...).
type SensorsInfo map[string]SensorTypeInfo

type SensorTypeInfo struct {
	// Error is nonzero when the whole sensor type is unavailable on the
	// device (e.g. bus failure); individual readings are then meaningless.
	Error   int                      `json:"error"`
	Sensors map[string]SensorReading `json:"sensors"`
}

type SensorReading struct {
	Error       int      `json:"error"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
}

func (r SensorReading) ToDomain() domain.SensorReading {
	return domain.SensorReading{
		Error:       r.Error,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Pressure:    r.Pressure,
	}
}

// Lookup resolves one sensor's reading inside the document. The second
// return is false when the type is missing, the type reports an error, or
// the address is not present under that type.
func (info SensorsInfo) Lookup(kind domain.SensorKind, address string) (SensorReading, bool) {
	typeInfo, ok := info[string(kind)]
	if !ok {
		return SensorReading{}, false
	}
	if typeInfo.Error != 0 {
		return SensorReading{}, false
	}
	reading, ok := typeInfo.Sensors[address]
	if !ok {
		return SensorReading{}, false
	}
	return reading, true
}
