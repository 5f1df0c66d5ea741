package persistence

import (
	"context"
	"errors"
	"fmt"

	"sensorhub-server/internal/control_plane/persistence/internal"
	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/infra/sql"
	"sensorhub-server/internal/shared_kernel/domain"
)

// NewDeviceCatalog builds the dispatcher's read view of the device roster.
// Devices come back with their sensors attached so a worker can be seeded
// in one round trip.
func NewDeviceCatalog(orm sql.ORM) (*SimpleDeviceCatalog, error) {
	err := orm.AutoMigrate(&internal.Device{}, &internal.Sensor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDeviceCatalog{
		orm: orm,
	}, nil
}

var _ dispatcher.DeviceCatalog = (*SimpleDeviceCatalog)(nil)

type SimpleDeviceCatalog struct {
	orm sql.ORM
}

func (s *SimpleDeviceCatalog) ListDevices(ctx context.Context) ([]domain.Device, error) {
	var deviceEntities []internal.Device
	err := s.orm.
		WithContext(ctx).
		Order("registered_at").
		Find(&deviceEntities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	var sensorEntities []internal.Sensor
	err = s.orm.
		WithContext(ctx).
		Order("registered_at").
		Find(&sensorEntities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	sensorsByDevice := make(map[string][]domain.Sensor)
	for _, entity := range sensorEntities {
		sensorsByDevice[entity.DeviceID] = append(sensorsByDevice[entity.DeviceID], entity.ToDomain())
	}

	result := make([]domain.Device, len(deviceEntities))
	for i, entity := range deviceEntities {
		device := entity.ToDomain()
		device.Sensors = sensorsByDevice[entity.ID]
		result[i] = device
	}

	return result, nil
}

func (s *SimpleDeviceCatalog) GetDevice(ctx context.Context, id domain.ID) (domain.Device, error) {
	var entity internal.Device
	err := s.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Device{}, dispatcher.ErrDeviceNotFound
	}
	if err != nil {
		return domain.Device{}, fmt.Errorf("database query: %w", err)
	}

	var sensorEntities []internal.Sensor
	err = s.orm.
		WithContext(ctx).
		Where("device_id = ?", entity.ID).
		Order("registered_at").
		Find(&sensorEntities).
		Error()
	if err != nil {
		return domain.Device{}, fmt.Errorf("database query: %w", err)
	}

	device := entity.ToDomain()
	device.Sensors = make([]domain.Sensor, len(sensorEntities))
	for i, sensorEntity := range sensorEntities {
		device.Sensors[i] = sensorEntity.ToDomain()
	}

	return device, nil
}
