package internal

import (
	"time"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

type Device struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Address string `json:"address" gorm:"uniqueIndex"`
	AuthKey string `json:"auth_key"`
	// Durations are stored as milliseconds so rows stay readable in psql.
	PollingIntervalMS int64     `json:"polling_interval_ms" gorm:"column:polling_interval_ms"`
	ChipID            string    `json:"chip_id" gorm:"column:chip_id"`
	ChipModel         int       `json:"chip_model"`
	ChipRevision      int       `json:"chip_revision"`
	RegisteredAt      time.Time `json:"registered_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}

func (d Device) ToDomain() domain.Device {
	return domain.Device{
		ID:              domain.ID(d.ID),
		Name:            d.Name,
		Address:         d.Address,
		AuthKey:         d.AuthKey,
		PollingInterval: time.Duration(d.PollingIntervalMS) * time.Millisecond,
		ChipID:          d.ChipID,
		ChipModel:       d.ChipModel,
		ChipRevision:    d.ChipRevision,
		RegisteredAt:    utils.Time{Time: d.RegisteredAt},
	}
}

func FromDevice(value domain.Device) Device {
	return Device{
		ID:                value.ID.String(),
		Name:              value.Name,
		Address:           value.Address,
		AuthKey:           value.AuthKey,
		PollingIntervalMS: value.PollingInterval.Milliseconds(),
		ChipID:            value.ChipID,
		ChipModel:         value.ChipModel,
		ChipRevision:      value.ChipRevision,
		RegisteredAt:      value.RegisteredAt.Time,
	}
}
