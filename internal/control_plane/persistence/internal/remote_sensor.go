package internal

import (
	"encoding/json"
	"fmt"
	"time"

	"sensorhub-server/internal/shared_kernel/domain"
)

type RemoteSensor struct {
	ID                string `json:"id" gorm:"primaryKey"`
	DeviceID          string `json:"device_id" gorm:"index"`
	SensorID          string `json:"sensor_id" gorm:"index"`
	PollingIntervalMS int64  `json:"polling_interval_ms" gorm:"column:polling_interval_ms"`
	MaxSampleAgeMS    int64  `json:"max_sample_age_ms" gorm:"column:max_sample_age_ms"`
	// Fields is the display layout serialized as JSON; it is opaque to
	// queries and only round-trips through the domain type.
	Fields    string    `json:"fields"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RemoteSensor) TableName() string {
	return "remote_sensors"
}

type remoteSensorField struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Color    int     `json:"color"`
	Priority int     `json:"priority"`
	RangeMin float64 `json:"range_min"`
	RangeMax float64 `json:"range_max"`
}

func (rs RemoteSensor) ToDomain() (domain.RemoteSensor, error) {
	var rawFields []remoteSensorField
	if rs.Fields != "" {
		if err := json.Unmarshal([]byte(rs.Fields), &rawFields); err != nil {
			return domain.RemoteSensor{}, fmt.Errorf("decoding fields: %w", err)
		}
	}

	fields := make([]domain.RemoteSensorField, len(rawFields))
	for i, f := range rawFields {
		fields[i] = domain.RemoteSensorField{
			Name:     domain.ReadingField(f.Name),
			Label:    f.Label,
			Color:    f.Color,
			Priority: f.Priority,
			RangeMin: f.RangeMin,
			RangeMax: f.RangeMax,
		}
	}

	return domain.RemoteSensor{
		ID:              domain.ID(rs.ID),
		PollingInterval: time.Duration(rs.PollingIntervalMS) * time.Millisecond,
		MaxSampleAge:    time.Duration(rs.MaxSampleAgeMS) * time.Millisecond,
		DeviceID:        domain.ID(rs.DeviceID),
		SensorID:        domain.ID(rs.SensorID),
		Fields:          fields,
	}, nil
}

func FromRemoteSensor(value domain.RemoteSensor) (RemoteSensor, error) {
	rawFields := make([]remoteSensorField, len(value.Fields))
	for i, f := range value.Fields {
		rawFields[i] = remoteSensorField{
			Name:     string(f.Name),
			Label:    f.Label,
			Color:    f.Color,
			Priority: f.Priority,
			RangeMin: f.RangeMin,
			RangeMax: f.RangeMax,
		}
	}

	encoded, err := json.Marshal(rawFields)
	if err != nil {
		return RemoteSensor{}, fmt.Errorf("encoding fields: %w", err)
	}

	return RemoteSensor{
		ID:                value.ID.String(),
		DeviceID:          value.DeviceID.String(),
		SensorID:          value.SensorID.String(),
		PollingIntervalMS: value.PollingInterval.Milliseconds(),
		MaxSampleAgeMS:    value.MaxSampleAge.Milliseconds(),
		Fields:            string(encoded),
	}, nil
}
