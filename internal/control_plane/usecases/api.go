package usecases

import (
	"context"
	"time"

	"sensorhub-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/control_plane/usecases/api.go -package=usecases

type RegisterDeviceCommand struct {
	Name            string
	Address         string
	PollingInterval time.Duration
}

type DeviceUpdateCommand struct {
	Name            *string
	Address         *string
	PollingInterval *time.Duration
}

type DeviceService interface {
	RegisterDevice(context.Context, RegisterDeviceCommand) (domain.Device, error)
	UnregisterDevice(context.Context, domain.ID) error
	GetDevice(context.Context, domain.ID) (domain.Device, error)
	AllDevices(context.Context, Pagination) ([]domain.Device, int, error)
	UpdateDevice(context.Context, domain.ID, DeviceUpdateCommand) (domain.Device, error)
	RestartDevice(context.Context, domain.ID) error
}

type RegisterSensorCommand struct {
	DeviceID        domain.ID
	Name            string
	Kind            domain.SensorKind
	Address         string
	RetentionWindow time.Duration
}

type SensorUpdateCommand struct {
	Name            *string
	Kind            *domain.SensorKind
	Address         *string
	RetentionWindow *time.Duration
}

type SensorService interface {
	RegisterSensor(context.Context, RegisterSensorCommand) (domain.Sensor, error)
	UnregisterSensor(context.Context, domain.ID) (domain.Sensor, error)
	GetSensor(context.Context, domain.ID) (domain.Sensor, error)
	SensorsByDevice(context.Context, domain.ID) ([]domain.Sensor, error)
	UpdateSensor(context.Context, domain.ID, SensorUpdateCommand) (domain.Sensor, error)
}

type RemoteSensorCommand struct {
	DeviceID        domain.ID
	SensorID        domain.ID
	PollingInterval time.Duration
	MaxSampleAge    time.Duration
	Fields          []domain.RemoteSensorField
}

type RemoteSensorService interface {
	Create(context.Context, RemoteSensorCommand) (domain.RemoteSensor, error)
	Get(context.Context, domain.ID) (domain.RemoteSensor, error)
	FindByDevice(context.Context, domain.ID) ([]domain.RemoteSensor, error)
	Update(context.Context, domain.ID, RemoteSensorCommand) (domain.RemoteSensor, error)
	Delete(context.Context, domain.ID) error
}
