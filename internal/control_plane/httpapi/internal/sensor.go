package internal

import (
	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

type SensorRegisterRequest struct {
	Name              string `json:"name"`
	Kind              string `json:"kind"`
	Address           string `json:"address"`
	RetentionWindowMS int64  `json:"retention_window_ms"`
}

type SensorUpdateRequest struct {
	Name              *string `json:"name,omitempty"`
	Kind              *string `json:"kind,omitempty"`
	Address           *string `json:"address,omitempty"`
	RetentionWindowMS *int64  `json:"retention_window_ms,omitempty"`
}

type SensorResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Kind              string     `json:"kind"`
	Address           string     `json:"address"`
	RetentionWindowMS int64      `json:"retention_window_ms"`
	DeviceID          string     `json:"device_id"`
	RegisteredAt      utils.Time `json:"registered_at"`
}

func FromSensor(sensor domain.Sensor) SensorResponse {
	return SensorResponse{
		ID:                sensor.ID.String(),
		Name:              sensor.Name,
		Kind:              string(sensor.Kind),
		Address:           sensor.Address,
		RetentionWindowMS: sensor.RetentionWindow.Milliseconds(),
		DeviceID:          sensor.DeviceID.String(),
		RegisteredAt:      sensor.RegisteredAt,
	}
}

type SensorDataResponse struct {
	DeviceOnline bool                            `json:"device_online"`
	Data         map[string]domain.SensorReading `json:"data"`
}

type SampleHistoryResponse struct {
	Samples []domain.Sample `json:"samples"`
}
