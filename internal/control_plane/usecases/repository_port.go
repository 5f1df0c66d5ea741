package usecases

import (
	"context"
	"errors"

	"sensorhub-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/control_plane/usecases/repository_port_mock.go -package=usecases -mock_names=DeviceRepository=MockDeviceRepository,SensorRepository=MockSensorRepository,RemoteSensorRepository=MockRemoteSensorRepository

var (
	ErrDeviceNotFound       = errors.New("device not found")
	ErrDeviceDuplicated     = errors.New("device already exists")
	ErrSensorNotFound       = errors.New("sensor not found")
	ErrSensorDuplicated     = errors.New("sensor already exists")
	ErrRemoteSensorNotFound = errors.New("remote sensor not found")
	// ErrSampleAgeExceedsRetention rejects a subscription asking for more
	// history than the source sensor keeps.
	ErrSampleAgeExceedsRetention = errors.New("max sample age exceeds sensor retention window")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type DeviceRepository interface {
	Create(context.Context, domain.Device) error
	Update(context.Context, domain.Device) error
	Delete(context.Context, domain.ID) error
	Get(context.Context, domain.ID) (domain.Device, error)
	FindByAddress(context.Context, string) (domain.Device, error)
	FindAll(context.Context, Pagination) ([]domain.Device, int, error)
}

type SensorRepository interface {
	Create(context.Context, domain.Sensor) error
	Update(context.Context, domain.Sensor) error
	Delete(context.Context, domain.ID) error
	Get(context.Context, domain.ID) (domain.Sensor, error)
	FindByDevice(context.Context, domain.ID) ([]domain.Sensor, error)
}

type RemoteSensorRepository interface {
	Create(context.Context, domain.RemoteSensor) error
	Update(context.Context, domain.RemoteSensor) error
	Delete(context.Context, domain.ID) error
	Get(context.Context, domain.ID) (domain.RemoteSensor, error)
	FindByDevice(context.Context, domain.ID) ([]domain.RemoteSensor, error)
}
