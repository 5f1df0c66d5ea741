package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sensorhub-server/internal/shared_kernel/domain"
)

func NewSensorService(
	repository SensorRepository,
	deviceRepository DeviceRepository,
	probe SensorProbe,
) *SimpleSensorService {
	return &SimpleSensorService{
		repository:       repository,
		deviceRepository: deviceRepository,
		probe:            probe,
	}
}

var _ SensorService = &SimpleSensorService{}

type SimpleSensorService struct {
	repository       SensorRepository
	deviceRepository DeviceRepository
	probe            SensorProbe
}

// RegisterSensor verifies the sensor physically answers on the device
// before cataloging it. A sensor of the same kind and address may only
// be registered once per device.
func (s *SimpleSensorService) RegisterSensor(ctx context.Context, cmd RegisterSensorCommand) (domain.Sensor, error) {
	device, err := s.deviceRepository.Get(ctx, cmd.DeviceID)
	if errors.Is(err, ErrDeviceNotFound) {
		return domain.Sensor{}, ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	existing, err := s.repository.FindByDevice(ctx, cmd.DeviceID)
	if err != nil {
		slog.Error("listing device sensors", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}
	for _, sensor := range existing {
		if sensor.Kind == cmd.Kind && sensor.Address == cmd.Address {
			return domain.Sensor{}, ErrSensorDuplicated
		}
	}

	if err := s.verifyOnDevice(ctx, device, cmd.Kind, cmd.Address); err != nil {
		return domain.Sensor{}, err
	}

	sensor, err := domain.NewSensorBuilder().
		WithName(cmd.Name).
		WithKind(cmd.Kind).
		WithAddress(cmd.Address).
		WithRetentionWindow(cmd.RetentionWindow).
		WithDevice(device).
		Build()
	if err != nil {
		slog.Error("building sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	if err := s.repository.Create(ctx, sensor); err != nil {
		slog.Error("persisting sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	slog.Info("sensor registered",
		slog.String("sensor_id", sensor.ID.String()),
		slog.String("device_id", device.ID.String()))
	return sensor, nil
}

// verifyOnDevice checks the sensor document for the kind and address
// being registered. The sensor must be present and its type healthy.
func (s *SimpleSensorService) verifyOnDevice(ctx context.Context, device domain.Device, kind domain.SensorKind, address string) error {
	info, err := s.probe.FetchSensorsInfo(ctx, device)
	if err != nil {
		slog.Warn("fetching sensor list",
			slog.String("device_id", device.ID.String()),
			slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrSensorListUnavailable, err)
	}

	if _, found := info.Lookup(kind, address); !found {
		return ErrSensorUnavailable
	}
	return nil
}

// UnregisterSensor removes the sensor from the catalog and returns its
// last cataloged state so callers can purge dependent resources.
func (s *SimpleSensorService) UnregisterSensor(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	sensor, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		return domain.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		slog.Error("getting sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	slog.Info("sensor unregistered", slog.String("sensor_id", id.String()))
	return sensor, nil
}

func (s *SimpleSensorService) GetSensor(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	sensor, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		return domain.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		slog.Error("getting sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	return sensor, nil
}

func (s *SimpleSensorService) SensorsByDevice(ctx context.Context, deviceID domain.ID) ([]domain.Sensor, error) {
	sensors, err := s.repository.FindByDevice(ctx, deviceID)
	if err != nil {
		slog.Error("listing device sensors", slog.Any("error", err))
		return nil, errUnknown
	}

	return sensors, nil
}

func (s *SimpleSensorService) UpdateSensor(ctx context.Context, id domain.ID, cmd SensorUpdateCommand) (domain.Sensor, error) {
	sensor, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		return domain.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		slog.Error("getting sensor for update", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	if cmd.Name != nil {
		sensor.Name = *cmd.Name
	}
	if cmd.Kind != nil {
		sensor.Kind = *cmd.Kind
	}
	if cmd.Address != nil {
		sensor.Address = *cmd.Address
	}
	if cmd.RetentionWindow != nil {
		sensor.RetentionWindow = *cmd.RetentionWindow
	}

	if cmd.Kind != nil || cmd.Address != nil {
		device, err := s.deviceRepository.Get(ctx, sensor.DeviceID)
		if err != nil {
			slog.Error("getting device for sensor update", slog.Any("error", err))
			return domain.Sensor{}, errUnknown
		}
		if err := s.verifyOnDevice(ctx, device, sensor.Kind, sensor.Address); err != nil {
			return domain.Sensor{}, err
		}
	}

	if err := s.repository.Update(ctx, sensor); err != nil {
		slog.Error("updating sensor", slog.Any("error", err))
		return domain.Sensor{}, errUnknown
	}

	slog.Info("sensor updated", slog.String("sensor_id", id.String()))
	return sensor, nil
}
