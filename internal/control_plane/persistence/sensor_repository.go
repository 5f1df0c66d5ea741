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

func NewSensorRepository(orm sql.ORM) (*SimpleSensorRepository, error) {
	err := orm.AutoMigrate(&internal.Sensor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSensorRepository{
		orm: orm,
	}, nil
}

var _ usecases.SensorRepository = (*SimpleSensorRepository)(nil)

type SimpleSensorRepository struct {
	orm sql.ORM
}

func (s *SimpleSensorRepository) Create(ctx context.Context, sensor domain.Sensor) error {
	entity := internal.FromSensor(sensor)
	err := s.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (s *SimpleSensorRepository) Update(ctx context.Context, sensor domain.Sensor) error {
	if _, err := s.Get(ctx, sensor.ID); err != nil {
		return err
	}

	entity := internal.FromSensor(sensor)
	err := s.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (s *SimpleSensorRepository) Delete(ctx context.Context, id domain.ID) error {
	err := s.orm.
		WithContext(ctx).
		Delete(&internal.Sensor{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (s *SimpleSensorRepository) Get(ctx context.Context, id domain.ID) (domain.Sensor, error) {
	var entity internal.Sensor
	err := s.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Sensor{}, usecases.ErrSensorNotFound
	}
	if err != nil {
		return domain.Sensor{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (s *SimpleSensorRepository) FindByDevice(ctx context.Context, deviceID domain.ID) ([]domain.Sensor, error) {
	var entities []internal.Sensor
	err := s.orm.
		WithContext(ctx).
		Where("device_id = ?", deviceID.String()).
		Order("registered_at").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Sensor, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
