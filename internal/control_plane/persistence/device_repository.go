package persistence

import (
	"context"
	"errors"
	"fmt"

	"sensorhub-server/internal/control_plane/persistence/internal"
	"sensorhub-server/internal/control_plane/usecases"
	"sensorhub-server/internal/infra/sql"
	"sensorhub-server/internal/shared_kernel/domain"
)

func NewDeviceRepository(orm sql.ORM) (*SimpleDeviceRepository, error) {
	err := orm.AutoMigrate(&internal.Device{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDeviceRepository{
		orm: orm,
	}, nil
}

var _ usecases.DeviceRepository = (*SimpleDeviceRepository)(nil)

type SimpleDeviceRepository struct {
	orm sql.ORM
}

func (s *SimpleDeviceRepository) Create(ctx context.Context, device domain.Device) error {
	_, err := s.FindByAddress(ctx, device.Address)
	if err != nil && !errors.Is(err, usecases.ErrDeviceNotFound) {
		return fmt.Errorf("getting device: %w", err)
	}
	if err == nil {
		return usecases.ErrDeviceDuplicated
	}

	entity := internal.FromDevice(device)
	err = s.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (s *SimpleDeviceRepository) Update(ctx context.Context, device domain.Device) error {
	if _, err := s.Get(ctx, device.ID); err != nil {
		return err
	}

	entity := internal.FromDevice(device)
	err := s.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (s *SimpleDeviceRepository) Delete(ctx context.Context, id domain.ID) error {
	err := s.orm.
		WithContext(ctx).
		Delete(&internal.Device{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (s *SimpleDeviceRepository) Get(ctx context.Context, id domain.ID) (domain.Device, error) {
	var entity internal.Device
	err := s.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Device{}, usecases.ErrDeviceNotFound
	}
	if err != nil {
		return domain.Device{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (s *SimpleDeviceRepository) FindByAddress(ctx context.Context, address string) (domain.Device, error) {
	var entity internal.Device
	err := s.orm.
		WithContext(ctx).
		Where("address = ?", address).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Device{}, usecases.ErrDeviceNotFound
	}
	if err != nil {
		return domain.Device{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (s *SimpleDeviceRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.Device, int, error) {
	var total int64
	err := s.orm.
		WithContext(ctx).
		Model(&internal.Device{}).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Device
	err = s.orm.
		WithContext(ctx).
		Order("registered_at").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Device, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
