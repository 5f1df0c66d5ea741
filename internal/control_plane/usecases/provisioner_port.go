package usecases

import (
	"context"
	"errors"

	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=provisioner_port.go -destination=../../../test/unit/doubles/control_plane/usecases/provisioner_port_mock.go -package=usecases -mock_names=DeviceProvisioner=MockDeviceProvisioner

var (
	ErrDeviceAlreadyRegistered = errors.New("device already registered")
	ErrRegistrationRejected    = errors.New("device rejected registration")
	ErrRestartFailed           = errors.New("device restart failed")
	ErrSensorUnavailable       = errors.New("sensor unavailable on device")
	ErrSensorListUnavailable   = errors.New("could not retrieve sensor list")
)

// DeviceProvisioner talks to a device's management endpoints during
// registration and sensor verification.
type DeviceProvisioner interface {
	RegistrationInfo(ctx context.Context, address string) (dto.RegistrationInfo, error)
	Register(ctx context.Context, address, authKey string) error
	Unregister(ctx context.Context, address, authKey string) error
	ChipInfo(ctx context.Context, address, authKey string) (dto.ChipInfo, error)
	Restart(ctx context.Context, address, authKey string) error
}

// SensorProbe fetches a device's live sensor document, used to verify a
// sensor physically exists before it is cataloged.
type SensorProbe interface {
	FetchSensorsInfo(ctx context.Context, device domain.Device) (dto.SensorsInfo, error)
}
