package internal

import (
	"sensorhub-server/internal/shared_kernel/domain"
)

type RemoteSensorFieldRequest struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Color    int     `json:"color"`
	Priority int     `json:"priority"`
	RangeMin float64 `json:"range_min"`
	RangeMax float64 `json:"range_max"`
}

type RemoteSensorRequest struct {
	SensorID          string                     `json:"sensor_id"`
	PollingIntervalMS int64                      `json:"polling_interval_ms"`
	MaxSampleAgeMS    int64                      `json:"max_sample_age_ms"`
	Fields            []RemoteSensorFieldRequest `json:"fields"`
}

func (r RemoteSensorRequest) DomainFields() []domain.RemoteSensorField {
	fields := make([]domain.RemoteSensorField, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = domain.RemoteSensorField{
			Name:     domain.ReadingField(f.Name),
			Label:    f.Label,
			Color:    f.Color,
			Priority: f.Priority,
			RangeMin: f.RangeMin,
			RangeMax: f.RangeMax,
		}
	}
	return fields
}

type RemoteSensorResponse struct {
	ID                string                     `json:"id"`
	DeviceID          string                     `json:"device_id"`
	SensorID          string                     `json:"sensor_id"`
	SensorName        string                     `json:"sensor_name,omitempty"`
	SensorKind        string                     `json:"sensor_kind,omitempty"`
	PollingIntervalMS int64                      `json:"polling_interval_ms"`
	MaxSampleAgeMS    int64                      `json:"max_sample_age_ms"`
	Fields            []RemoteSensorFieldRequest `json:"fields"`
}

func FromRemoteSensor(remoteSensor domain.RemoteSensor) RemoteSensorResponse {
	fields := make([]RemoteSensorFieldRequest, len(remoteSensor.Fields))
	for i, f := range remoteSensor.Fields {
		fields[i] = RemoteSensorFieldRequest{
			Name:     string(f.Name),
			Label:    f.Label,
			Color:    f.Color,
			Priority: f.Priority,
			RangeMin: f.RangeMin,
			RangeMax: f.RangeMax,
		}
	}
	return RemoteSensorResponse{
		ID:                remoteSensor.ID.String(),
		DeviceID:          remoteSensor.DeviceID.String(),
		SensorID:          remoteSensor.SensorID.String(),
		PollingIntervalMS: remoteSensor.PollingInterval.Milliseconds(),
		MaxSampleAgeMS:    remoteSensor.MaxSampleAge.Milliseconds(),
		Fields:            fields,
	}
}
