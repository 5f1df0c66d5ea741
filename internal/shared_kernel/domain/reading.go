package domain

import "sensorhub-server/internal/infra/utils"

// ReadingField names one numeric field of a SensorReading. Which fields are
// populated depends on the sensor kind (a ds18b20 only reports temperature).
type ReadingField string

const (
	FieldTemperature ReadingField = "temperature"
	FieldHumidity    ReadingField = "humidity"
	FieldPressure    ReadingField = "pressure"
)

var AllReadingFields = []ReadingField{FieldTemperature, FieldHumidity, FieldPressure}

// SensorReading is a point-in-time measurement. When Error is nonzero all
// numeric fields are nil.
type SensorReading struct {
	Error       int      `json:"error"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Pressure    *float64 `json:"pressure"`
}

// ErroredReading is the placeholder recorded for a sensor that could not be
// read, and the initial state of every tracked sensor.
func ErroredReading() SensorReading {
	return SensorReading{Error: 1}
}

func (r SensorReading) Field(field ReadingField) *float64 {
	switch field {
	case FieldTemperature:
		return r.Temperature
	case FieldHumidity:
		return r.Humidity
	case FieldPressure:
		return r.Pressure
	default:
		return nil
	}
}

func (r *SensorReading) SetField(field ReadingField, value *float64) {
	switch field {
	case FieldTemperature:
		r.Temperature = value
	case FieldHumidity:
		r.Humidity = value
	case FieldPressure:
		r.Pressure = value
	}
}

// Sample is one persisted reading addressed by its timestamp.
type Sample struct {
	SensorReading
	Timestamp utils.Time `json:"timestamp"`
}
