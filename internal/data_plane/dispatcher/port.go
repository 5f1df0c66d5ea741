package dispatcher

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/data_plane/dispatcher/port_mock.go -package=dispatcher -mock_names=DeviceClient=MockDeviceClient,SampleStore=MockSampleStore,DeviceCatalog=MockDeviceCatalog

import (
	"context"
	"errors"
	"time"

	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/shared_kernel/domain"
)

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrSensorNotFound   = errors.New("sensor not found")
	ErrSensorDuplicated = errors.New("sensor already tracked")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrEmptySampleSet   = errors.New("cannot optimize empty sample set")
)

// DeviceClient performs a single remote poll of a device's full sensor set.
type DeviceClient interface {
	FetchSensorsInfo(ctx context.Context, device domain.Device) (dto.SensorsInfo, error)
}

// SampleStore is the time-series buffer shared across all workers. Sample
// sets are keyed by sensor ID and ordered by timestamp; no two workers
// ever write the same sensor's key.
type SampleStore interface {
	Append(ctx context.Context, sensorID string, ts time.Time, reading domain.SensorReading) error
	PruneOlderThan(ctx context.Context, sensorID string, cutoff time.Time) error
	RangeSince(ctx context.Context, sensorID string, since, until time.Time) ([]domain.Sample, error)
	DeleteAll(ctx context.Context, sensorIDs ...string) error
}

// DeviceCatalog exposes the persistent device roster the dispatcher keeps
// its worker pool consistent with.
type DeviceCatalog interface {
	ListDevices(ctx context.Context) ([]domain.Device, error)
	GetDevice(ctx context.Context, id domain.ID) (domain.Device, error)
}
