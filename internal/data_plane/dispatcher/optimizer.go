package dispatcher

import (
	"math"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

// OptimizedSample is one run-length segment: an error flag, the rounded
// field values, and how many consecutive raw samples it covers.
type OptimizedSample struct {
	Error       int      `json:"error"`
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Pressure    *float64 `json:"pressure,omitempty"`
	Count       int      `json:"count"`
}

// OptimizedSeries is the compacted form of a sample window, bracketed
// by the first and last raw timestamps.
type OptimizedSeries struct {
	StartingTimestamp utils.Time        `json:"starting_timestamp"`
	ClosingTimestamp  utils.Time        `json:"closing_timestamp"`
	Data              []OptimizedSample `json:"data"`
}

// OptimizeSamples run-length encodes an ordered sample window. Values
// are rounded to the nearest integer and consecutive samples merge into
// one segment until the error flag or any selected field changes. Only
// the selected fields are carried into the output, so sensor types emit
// just their relevant fields.
func OptimizeSamples(samples []domain.Sample, fields []domain.ReadingField) (OptimizedSeries, error) {
	if len(samples) == 0 {
		return OptimizedSeries{}, ErrEmptySampleSet
	}
	if len(fields) == 0 {
		fields = domain.AllReadingFields
	}

	data := make([]OptimizedSample, 0, len(samples))
	for _, sample := range samples {
		rounded := roundFields(sample.SensorReading, fields)
		if len(data) > 0 && !segmentChanged(rounded, data[len(data)-1], fields) {
			data[len(data)-1].Count++
			continue
		}
		data = append(data, newSegment(rounded, fields))
	}

	return OptimizedSeries{
		StartingTimestamp: samples[0].Timestamp,
		ClosingTimestamp:  samples[len(samples)-1].Timestamp,
		Data:              data,
	}, nil
}

func roundFields(reading domain.SensorReading, fields []domain.ReadingField) domain.SensorReading {
	for _, field := range fields {
		value := reading.Field(field)
		if value == nil {
			continue
		}
		rounded := math.Round(*value)
		reading.SetField(field, &rounded)
	}
	return reading
}

func segmentChanged(reading domain.SensorReading, segment OptimizedSample, fields []domain.ReadingField) bool {
	if reading.Error != segment.Error {
		return true
	}
	for _, field := range fields {
		if !equalValue(reading.Field(field), segmentField(segment, field)) {
			return true
		}
	}
	return false
}

func newSegment(reading domain.SensorReading, fields []domain.ReadingField) OptimizedSample {
	segment := OptimizedSample{Error: reading.Error, Count: 1}
	for _, field := range fields {
		value := reading.Field(field)
		if value == nil {
			continue
		}
		copied := *value
		switch field {
		case domain.FieldTemperature:
			segment.Temperature = &copied
		case domain.FieldHumidity:
			segment.Humidity = &copied
		case domain.FieldPressure:
			segment.Pressure = &copied
		}
	}
	return segment
}

func segmentField(segment OptimizedSample, field domain.ReadingField) *float64 {
	switch field {
	case domain.FieldTemperature:
		return segment.Temperature
	case domain.FieldHumidity:
		return segment.Humidity
	case domain.FieldPressure:
		return segment.Pressure
	}
	return nil
}

func equalValue(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
