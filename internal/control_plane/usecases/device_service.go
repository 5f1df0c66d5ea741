package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

var (
	errUnknown = errors.New("unknown error")
)

func NewDeviceService(
	repository DeviceRepository,
	sensorRepository SensorRepository,
	provisioner DeviceProvisioner,
) *SimpleDeviceService {
	return &SimpleDeviceService{
		repository:       repository,
		sensorRepository: sensorRepository,
		provisioner:      provisioner,
	}
}

var _ DeviceService = &SimpleDeviceService{}

type SimpleDeviceService struct {
	repository       DeviceRepository
	sensorRepository SensorRepository
	provisioner      DeviceProvisioner
}

// RegisterDevice performs the on-device handshake before the device is
// cataloged: probe registration state, install a fresh auth key, read
// the chip identity. Any failure after the key is installed unregisters
// the device so it is not left holding a key the catalog never saw.
func (s *SimpleDeviceService) RegisterDevice(ctx context.Context, cmd RegisterDeviceCommand) (domain.Device, error) {
	info, err := s.provisioner.RegistrationInfo(ctx, cmd.Address)
	if err != nil {
		slog.Error("probing device registration", slog.String("address", cmd.Address), slog.Any("error", err))
		return domain.Device{}, fmt.Errorf("probing device: %w", err)
	}

	if info.IsRegistered {
		slog.Warn("device already registered", slog.String("address", cmd.Address))
		return domain.Device{}, ErrDeviceAlreadyRegistered
	}

	authKey := utils.GenerateKey(info.AuthKeyLen)

	if err := s.provisioner.Register(ctx, cmd.Address, authKey); err != nil {
		slog.Error("registering device", slog.String("address", cmd.Address), slog.Any("error", err))
		return domain.Device{}, fmt.Errorf("%w: %w", ErrRegistrationRejected, err)
	}

	device, err := s.completeRegistration(ctx, cmd, authKey)
	if err != nil {
		slog.Error("postregistration failed, unregistering",
			slog.String("address", cmd.Address),
			slog.Any("error", err))
		if unregErr := s.provisioner.Unregister(ctx, cmd.Address, authKey); unregErr != nil {
			slog.Error("rollback unregister failed",
				slog.String("address", cmd.Address),
				slog.Any("error", unregErr))
		}
		return domain.Device{}, err
	}

	slog.Info("device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("name", device.Name))
	return device, nil
}

func (s *SimpleDeviceService) completeRegistration(ctx context.Context, cmd RegisterDeviceCommand, authKey string) (domain.Device, error) {
	chip, err := s.provisioner.ChipInfo(ctx, cmd.Address, authKey)
	if err != nil {
		return domain.Device{}, fmt.Errorf("reading chip info: %w", err)
	}

	device, err := domain.NewDeviceBuilder().
		WithName(cmd.Name).
		WithAddress(cmd.Address).
		WithAuthKey(authKey).
		WithPollingInterval(cmd.PollingInterval).
		WithChipInfo(chip.ChipID, chip.Model, chip.Revision).
		Build()
	if err != nil {
		return domain.Device{}, fmt.Errorf("building device: %w", err)
	}

	if err := s.repository.Create(ctx, device); err != nil {
		return domain.Device{}, fmt.Errorf("persisting device: %w", err)
	}

	return device, nil
}

// UnregisterDevice removes the device from the catalog and wipes its
// auth key. A device that no longer answers is still removed.
func (s *SimpleDeviceService) UnregisterDevice(ctx context.Context, id domain.ID) error {
	device, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrDeviceNotFound) {
		return ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device", slog.Any("error", err))
		return errUnknown
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting device", slog.Any("error", err))
		return errUnknown
	}

	if err := s.provisioner.Unregister(ctx, device.Address, device.AuthKey); err != nil {
		slog.Warn("unregistering device on the wire",
			slog.String("device_id", id.String()),
			slog.Any("error", err))
	}

	return nil
}

func (s *SimpleDeviceService) GetDevice(ctx context.Context, id domain.ID) (domain.Device, error) {
	device, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrDeviceNotFound) {
		return domain.Device{}, ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device", slog.Any("error", err))
		return domain.Device{}, errUnknown
	}

	sensors, err := s.sensorRepository.FindByDevice(ctx, id)
	if err != nil {
		slog.Error("getting device sensors", slog.Any("error", err))
		return domain.Device{}, errUnknown
	}
	device.Sensors = sensors

	return device, nil
}

func (s *SimpleDeviceService) AllDevices(ctx context.Context, pagination Pagination) ([]domain.Device, int, error) {
	devices, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("getting all devices", slog.Any("error", err))
		return nil, 0, errUnknown
	}

	return devices, total, nil
}

// RestartDevice asks a cataloged device to reboot over its management
// endpoint. The catalog entry is untouched.
func (s *SimpleDeviceService) RestartDevice(ctx context.Context, id domain.ID) error {
	device, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrDeviceNotFound) {
		return ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device for restart", slog.Any("error", err))
		return errUnknown
	}

	if err := s.provisioner.Restart(ctx, device.Address, device.AuthKey); err != nil {
		slog.Warn("restarting device",
			slog.String("device_id", id.String()),
			slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrRestartFailed, err)
	}

	slog.Info("device restart requested", slog.String("device_id", id.String()))
	return nil
}

func (s *SimpleDeviceService) UpdateDevice(ctx context.Context, id domain.ID, cmd DeviceUpdateCommand) (domain.Device, error) {
	device, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrDeviceNotFound) {
		return domain.Device{}, ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device for update", slog.Any("error", err))
		return domain.Device{}, errUnknown
	}

	if cmd.Name != nil {
		device.UpdateName(*cmd.Name)
	}
	if cmd.Address != nil {
		device.UpdateAddress(*cmd.Address)
	}
	if cmd.PollingInterval != nil {
		device.UpdatePollingInterval(*cmd.PollingInterval)
	}

	if err := s.repository.Update(ctx, device); err != nil {
		slog.Error("updating device", slog.Any("error", err))
		return domain.Device{}, errUnknown
	}

	slog.Info("device updated", slog.String("device_id", id.String()))
	return device, nil
}
