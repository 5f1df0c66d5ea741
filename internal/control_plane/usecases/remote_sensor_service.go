package usecases

import (
	"context"
	"errors"
	"log/slog"

	"sensorhub-server/internal/shared_kernel/domain"
)

func NewRemoteSensorService(
	repository RemoteSensorRepository,
	deviceRepository DeviceRepository,
	sensorRepository SensorRepository,
) *SimpleRemoteSensorService {
	return &SimpleRemoteSensorService{
		repository:       repository,
		deviceRepository: deviceRepository,
		sensorRepository: sensorRepository,
	}
}

var _ RemoteSensorService = &SimpleRemoteSensorService{}

type SimpleRemoteSensorService struct {
	repository       RemoteSensorRepository
	deviceRepository DeviceRepository
	sensorRepository SensorRepository
}

// Create subscribes a consuming device to another device's sensor stream.
// Both ends of the subscription must already exist in the catalog.
func (s *SimpleRemoteSensorService) Create(ctx context.Context, cmd RemoteSensorCommand) (domain.RemoteSensor, error) {
	device, sensor, err := s.resolveEndpoints(ctx, cmd)
	if err != nil {
		return domain.RemoteSensor{}, err
	}

	remoteSensor, err := domain.NewRemoteSensorBuilder().
		WithDevice(device).
		WithSensor(sensor).
		WithPollingInterval(cmd.PollingInterval).
		WithMaxSampleAge(cmd.MaxSampleAge).
		WithFields(cmd.Fields).
		Build()
	if err != nil {
		slog.Error("building remote sensor", slog.Any("error", err))
		return domain.RemoteSensor{}, errUnknown
	}

	if err := s.repository.Create(ctx, remoteSensor); err != nil {
		slog.Error("persisting remote sensor", slog.Any("error", err))
		return domain.RemoteSensor{}, errUnknown
	}

	slog.Info("remote sensor created",
		slog.String("remote_sensor_id", remoteSensor.ID.String()),
		slog.String("device_id", device.ID.String()),
		slog.String("sensor_id", sensor.ID.String()))
	return remoteSensor, nil
}

func (s *SimpleRemoteSensorService) resolveEndpoints(ctx context.Context, cmd RemoteSensorCommand) (domain.Device, domain.Sensor, error) {
	device, err := s.deviceRepository.Get(ctx, cmd.DeviceID)
	if errors.Is(err, ErrDeviceNotFound) {
		return domain.Device{}, domain.Sensor{}, ErrDeviceNotFound
	}
	if err != nil {
		slog.Error("getting device", slog.Any("error", err))
		return domain.Device{}, domain.Sensor{}, errUnknown
	}

	sensor, err := s.sensorRepository.Get(ctx, cmd.SensorID)
	if errors.Is(err, ErrSensorNotFound) {
		return domain.Device{}, domain.Sensor{}, ErrSensorNotFound
	}
	if err != nil {
		slog.Error("getting sensor", slog.Any("error", err))
		return domain.Device{}, domain.Sensor{}, errUnknown
	}

	if cmd.MaxSampleAge > sensor.RetentionWindow {
		return domain.Device{}, domain.Sensor{}, ErrSampleAgeExceedsRetention
	}

	return device, sensor, nil
}

func (s *SimpleRemoteSensorService) Get(ctx context.Context, id domain.ID) (domain.RemoteSensor, error) {
	remoteSensor, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrRemoteSensorNotFound) {
		return domain.RemoteSensor{}, ErrRemoteSensorNotFound
	}
	if err != nil {
		slog.Error("getting remote sensor", slog.Any("error", err))
		return domain.RemoteSensor{}, errUnknown
	}

	return remoteSensor, nil
}

func (s *SimpleRemoteSensorService) FindByDevice(ctx context.Context, deviceID domain.ID) ([]domain.RemoteSensor, error) {
	remoteSensors, err := s.repository.FindByDevice(ctx, deviceID)
	if err != nil {
		slog.Error("listing device remote sensors", slog.Any("error", err))
		return nil, errUnknown
	}

	return remoteSensors, nil
}

// Update replaces the subscription's tuning and field layout. Rebinding to
// a different device or sensor is allowed and re-validated.
func (s *SimpleRemoteSensorService) Update(ctx context.Context, id domain.ID, cmd RemoteSensorCommand) (domain.RemoteSensor, error) {
	remoteSensor, err := s.repository.Get(ctx, id)
	if errors.Is(err, ErrRemoteSensorNotFound) {
		return domain.RemoteSensor{}, ErrRemoteSensorNotFound
	}
	if err != nil {
		slog.Error("getting remote sensor for update", slog.Any("error", err))
		return domain.RemoteSensor{}, errUnknown
	}

	device, sensor, err := s.resolveEndpoints(ctx, cmd)
	if err != nil {
		return domain.RemoteSensor{}, err
	}

	remoteSensor.DeviceID = device.ID
	remoteSensor.SensorID = sensor.ID
	remoteSensor.PollingInterval = cmd.PollingInterval
	remoteSensor.MaxSampleAge = cmd.MaxSampleAge
	remoteSensor.Fields = cmd.Fields

	if err := s.repository.Update(ctx, remoteSensor); err != nil {
		slog.Error("updating remote sensor", slog.Any("error", err))
		return domain.RemoteSensor{}, errUnknown
	}

	slog.Info("remote sensor updated", slog.String("remote_sensor_id", id.String()))
	return remoteSensor, nil
}

func (s *SimpleRemoteSensorService) Delete(ctx context.Context, id domain.ID) error {
	if _, err := s.repository.Get(ctx, id); err != nil {
		if errors.Is(err, ErrRemoteSensorNotFound) {
			return ErrRemoteSensorNotFound
		}
		slog.Error("getting remote sensor for delete", slog.Any("error", err))
		return errUnknown
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting remote sensor", slog.Any("error", err))
		return errUnknown
	}

	slog.Info("remote sensor deleted", slog.String("remote_sensor_id", id.String()))
	return nil
}
