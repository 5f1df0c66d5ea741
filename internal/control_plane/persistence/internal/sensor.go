package internal

import (
	"time"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

type Sensor struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Kind              string    `json:"kind"`
	Address           string    `json:"address"`
	RetentionWindowMS int64     `json:"retention_window_ms" gorm:"column:retention_window_ms"`
	DeviceID          string    `json:"device_id" gorm:"index"`
	RegisteredAt      time.Time `json:"registered_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Sensor) TableName() string {
	return "sensors"
}

func (s Sensor) ToDomain() domain.Sensor {
	return domain.Sensor{
		ID:              domain.ID(s.ID),
		Name:            s.Name,
		Kind:            domain.SensorKind(s.Kind),
		Address:         s.Address,
		RetentionWindow: time.Duration(s.RetentionWindowMS) * time.Millisecond,
		DeviceID:        domain.ID(s.DeviceID),
		RegisteredAt:    utils.Time{Time: s.RegisteredAt},
	}
}

func FromSensor(value domain.Sensor) Sensor {
	return Sensor{
		ID:                value.ID.String(),
		Name:              value.Name,
		Kind:              string(value.Kind),
		Address:           value.Address,
		RetentionWindowMS: value.RetentionWindow.Milliseconds(),
		DeviceID:          value.DeviceID.String(),
		RegisteredAt:      value.RegisteredAt.Time,
	}
}
