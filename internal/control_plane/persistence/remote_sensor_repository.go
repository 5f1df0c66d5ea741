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

func NewRemoteSensorRepository(orm sql.ORM) (*SimpleRemoteSensorRepository, error) {
	err := orm.AutoMigrate(&internal.RemoteSensor{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRemoteSensorRepository{
		orm: orm,
	}, nil
}

var _ usecases.RemoteSensorRepository = (*SimpleRemoteSensorRepository)(nil)

type SimpleRemoteSensorRepository struct {
	orm sql.ORM
}

func (s *SimpleRemoteSensorRepository) Create(ctx context.Context, remoteSensor domain.RemoteSensor) error {
	entity, err := internal.FromRemoteSensor(remoteSensor)
	if err != nil {
		return err
	}

	err = s.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (s *SimpleRemoteSensorRepository) Update(ctx context.Context, remoteSensor domain.RemoteSensor) error {
	if _, err := s.Get(ctx, remoteSensor.ID); err != nil {
		return err
	}

	entity, err := internal.FromRemoteSensor(remoteSensor)
	if err != nil {
		return err
	}

	err = s.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (s *SimpleRemoteSensorRepository) Delete(ctx context.Context, id domain.ID) error {
	err := s.orm.
		WithContext(ctx).
		Delete(&internal.RemoteSensor{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	return nil
}

func (s *SimpleRemoteSensorRepository) Get(ctx context.Context, id domain.ID) (domain.RemoteSensor, error) {
	var entity internal.RemoteSensor
	err := s.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.RemoteSensor{}, usecases.ErrRemoteSensorNotFound
	}
	if err != nil {
		return domain.RemoteSensor{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

func (s *SimpleRemoteSensorRepository) FindByDevice(ctx context.Context, deviceID domain.ID) ([]domain.RemoteSensor, error) {
	var entities []internal.RemoteSensor
	err := s.orm.
		WithContext(ctx).
		Where("device_id = ?", deviceID.String()).
		Order("created_at").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.RemoteSensor, len(entities))
	for i, entity := range entities {
		remoteSensor, err := entity.ToDomain()
		if err != nil {
			return nil, err
		}
		result[i] = remoteSensor
	}

	return result, nil
}
