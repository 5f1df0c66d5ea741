package domain

import (
	"time"

	"sensorhub-server/internal/infra/utils"
)

type SensorKind string

const (
	SensorKindDS18B20 SensorKind = "ds18b20"
	SensorKindBME280  SensorKind = "bme280"
)

type Sensor struct {
	ID   ID
	Name string
	Kind SensorKind
	// Address is the device-local bus address, e.g. a ds18b20 ROM code.
	Address string
	// RetentionWindow bounds how old the oldest persisted sample may be.
	RetentionWindow time.Duration
	DeviceID        ID
	RegisteredAt    utils.Time
}

func NewSensorBuilder() *sensorBuilder {
	return &sensorBuilder{}
}

type sensorBuilder struct {
	actions []sensorHandler
}

type sensorHandler func(s *Sensor) error

func (b *sensorBuilder) WithName(value string) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.Name = value
		return nil
	})
	return b
}

func (b *sensorBuilder) WithKind(value SensorKind) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.Kind = value
		return nil
	})
	return b
}

func (b *sensorBuilder) WithAddress(value string) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.Address = value
		return nil
	})
	return b
}

func (b *sensorBuilder) WithRetentionWindow(value time.Duration) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.RetentionWindow = value
		return nil
	})
	return b
}

func (b *sensorBuilder) WithDevice(value Device) *sensorBuilder {
	b.actions = append(b.actions, func(s *Sensor) error {
		s.DeviceID = value.ID
		return nil
	})
	return b
}

func (b *sensorBuilder) Build() (Sensor, error) {
	result := Sensor{
		ID:           ID(utils.GenerateUUID()),
		RegisteredAt: utils.Time{Time: time.Now()},
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Sensor{}, err
		}
	}
	return result, nil
}
