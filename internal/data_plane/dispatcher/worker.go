package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"sensorhub-server/internal/data_plane/dto"
	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

const (
	DefaultPollRetryCount = 3

	TopicSensorSamples async.BrokerTopicName = "sensor_samples"

	_metricKeyPolls = "device_polls"
)

// SampleMessage is published on TopicSensorSamples for every persisted
// sample so live consumers see data without touching the store.
type SampleMessage struct {
	DeviceID domain.ID
	SensorID domain.ID
	Sample   domain.Sample
}

// SensorState pairs a tracked sensor with its most recent reading. The
// reading defaults to an error state until the first successful poll.
type SensorState struct {
	Sensor domain.Sensor
	Data   domain.SensorReading
}

// Worker owns one device's polling loop. All mutation of the sensor
// roster goes through its methods; the polling goroutine is the only
// writer of sample data for the device's sensors.
type Worker struct {
	device     domain.Device
	client     DeviceClient
	store      SampleStore
	broker     async.InternalBroker
	retryCount int

	mu      sync.RWMutex
	sensors map[domain.ID]*SensorState

	online   atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once

	metricCounters map[string]metric.Float64Counter
}

type WorkerOption func(*Worker)

func WithRetryCount(count int) WorkerOption {
	return func(w *Worker) {
		if count > 0 {
			w.retryCount = count
		}
	}
}

var _ async.Worker = &Worker{}

func NewWorker(
	device domain.Device,
	client DeviceClient,
	store SampleStore,
	broker async.InternalBroker,
	opts ...WorkerOption,
) *Worker {
	worker := &Worker{
		device:         device,
		client:         client,
		store:          store,
		broker:         broker,
		retryCount:     DefaultPollRetryCount,
		sensors:        make(map[domain.ID]*SensorState),
		stopCh:         make(chan struct{}),
		metricCounters: make(map[string]metric.Float64Counter),
	}

	for _, sensor := range device.Sensors {
		worker.sensors[sensor.ID] = &SensorState{
			Sensor: sensor,
			Data:   domain.ErroredReading(),
		}
	}

	for _, opt := range opts {
		opt(worker)
	}

	return worker
}

func (w *Worker) Device() domain.Device {
	return w.device
}

func (w *Worker) Online() bool {
	return w.online.Load()
}

// Run polls immediately, then on every tick of the device's polling
// interval. Polls run inline in this goroutine, so a slow poll makes
// the ticker drop ticks rather than overlap two polls of the same
// device.
func (w *Worker) Run(ctx context.Context, done func()) {
	defer done()
	w.setupOtelCounters()
	slog.Debug("worker started",
		slog.String("device_id", w.device.ID.String()),
		slog.Duration("polling_interval", w.device.PollingInterval))

	ticker := time.NewTicker(w.device.PollingInterval)
	defer ticker.Stop()

	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker cancelled", slog.String("device_id", w.device.ID.String()))
			return
		case <-w.stopCh:
			slog.Debug("worker stopped", slog.String("device_id", w.device.ID.String()))
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// Shutdown cancels future polls. Safe to call multiple times.
func (w *Worker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
}

func (w *Worker) setupOtelCounters() {
	meter := otel.Meter("sensorhub_server")
	pollCounter, _ := meter.Float64Counter(
		fmt.Sprintf("%s.%s", "sensorhub_server", "device_polls"),
		metric.WithDescription("sensorhub_server device poll counter"),
	)
	w.metricCounters[_metricKeyPolls] = pollCounter
}

func (w *Worker) poll(ctx context.Context) {
	now := utils.Time{Time: time.Now().UTC()}

	info, err := w.fetchWithRetries(ctx)
	if err != nil {
		w.online.Store(false)
		w.recordPoll(ctx, "offline")
		slog.Warn("device unreachable",
			slog.String("device_id", w.device.ID.String()),
			slog.Any("error", err))
		for _, state := range w.snapshot() {
			w.applyReading(ctx, state.Sensor, domain.ErroredReading(), now)
		}
		return
	}

	w.online.Store(true)
	w.recordPoll(ctx, "online")

	for _, state := range w.snapshot() {
		reading, found := info.Lookup(state.Sensor.Kind, state.Sensor.Address)
		if !found {
			w.applyReading(ctx, state.Sensor, domain.ErroredReading(), now)
			continue
		}
		w.applyReading(ctx, state.Sensor, reading.ToDomain(), now)
	}
}

// fetchWithRetries re-attempts the poll immediately on failure, up to
// the configured retry count.
func (w *Worker) fetchWithRetries(ctx context.Context) (dto.SensorsInfo, error) {
	var lastErr error
	for attempt := 1; attempt <= w.retryCount; attempt++ {
		info, err := w.client.FetchSensorsInfo(ctx, w.device)
		if err == nil {
			return info, nil
		}
		lastErr = err
		slog.Debug("poll attempt failed",
			slog.String("device_id", w.device.ID.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
	}
	return nil, fmt.Errorf("polling device after %d attempts: %w", w.retryCount, lastErr)
}

func (w *Worker) snapshot() []SensorState {
	w.mu.RLock()
	defer w.mu.RUnlock()

	states := make([]SensorState, 0, len(w.sensors))
	for _, state := range w.sensors {
		states = append(states, *state)
	}
	return states
}

// applyReading records the reading as the sensor's current data and
// persists it as a sample. Persistence is best effort.
func (w *Worker) applyReading(ctx context.Context, sensor domain.Sensor, reading domain.SensorReading, ts utils.Time) {
	w.mu.Lock()
	state, ok := w.sensors[sensor.ID]
	if ok {
		state.Data = reading
	}
	w.mu.Unlock()
	if !ok {
		// removed mid-poll
		return
	}

	w.persistSample(ctx, sensor, reading, ts)
	w.publishSample(ctx, sensor, reading, ts)
}

func (w *Worker) persistSample(ctx context.Context, sensor domain.Sensor, reading domain.SensorReading, ts utils.Time) {
	sensorID := sensor.ID.String()
	if err := w.store.Append(ctx, sensorID, ts.Time, reading); err != nil {
		slog.Error("appending sample",
			slog.String("sensor_id", sensorID),
			slog.Any("error", err))
		return
	}

	cutoff := ts.Add(-sensor.RetentionWindow)
	if err := w.store.PruneOlderThan(ctx, sensorID, cutoff); err != nil {
		slog.Error("pruning samples",
			slog.String("sensor_id", sensorID),
			slog.Any("error", err))
	}
}

func (w *Worker) publishSample(ctx context.Context, sensor domain.Sensor, reading domain.SensorReading, ts utils.Time) {
	msg := async.BrokerMessage{
		Event: "sample_collected",
		Value: SampleMessage{
			DeviceID: w.device.ID,
			SensorID: sensor.ID,
			Sample:   domain.Sample{SensorReading: reading, Timestamp: ts},
		},
	}
	err := w.broker.Publish(ctx, TopicSensorSamples, msg)
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing sample",
			slog.String("sensor_id", sensor.ID.String()),
			slog.Any("error", err))
	}
}

func (w *Worker) recordPoll(ctx context.Context, result string) {
	counter, ok := w.metricCounters[_metricKeyPolls]
	if !ok {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("device_name", w.device.Name),
		attribute.String("result", result),
	))
}

// AddSensor starts tracking a sensor with a default error reading. The
// next poll includes it.
func (w *Worker) AddSensor(sensor domain.Sensor) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.sensors[sensor.ID]; ok {
		return ErrSensorDuplicated
	}
	w.sensors[sensor.ID] = &SensorState{
		Sensor: sensor,
		Data:   domain.ErroredReading(),
	}
	return nil
}

// UpdateSensor replaces the metadata of an already tracked sensor,
// keeping its current reading.
func (w *Worker) UpdateSensor(sensor domain.Sensor) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.sensors[sensor.ID]
	if !ok {
		return ErrSensorNotFound
	}
	state.Sensor = sensor
	return nil
}

// RemoveSensor stops tracking a sensor. The in-memory removal always
// takes effect; a sample history purge failure is returned afterwards.
func (w *Worker) RemoveSensor(ctx context.Context, sensorID domain.ID, removeSampleHistory bool) error {
	w.mu.Lock()
	_, ok := w.sensors[sensorID]
	if !ok {
		w.mu.Unlock()
		return ErrSensorNotFound
	}
	delete(w.sensors, sensorID)
	w.mu.Unlock()

	if !removeSampleHistory {
		return nil
	}
	if err := w.store.DeleteAll(ctx, sensorID.String()); err != nil {
		return fmt.Errorf("purging sample history: %w", err)
	}
	return nil
}

// FindSensor returns a copy of the tracked state. It never touches the
// store.
func (w *Worker) FindSensor(sensorID domain.ID) (SensorState, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state, ok := w.sensors[sensorID]
	if !ok {
		return SensorState{}, ErrSensorNotFound
	}
	return *state, nil
}

// SensorsData returns a snapshot of every tracked sensor's state.
func (w *Worker) SensorsData() []SensorState {
	return w.snapshot()
}

// GetSamples prunes expired samples for the sensor and returns those no
// older than maxAge, ascending by timestamp.
func (w *Worker) GetSamples(ctx context.Context, sensorID domain.ID, maxAge time.Duration) ([]domain.Sample, error) {
	state, err := w.FindSensor(sensorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	key := sensorID.String()
	if err := w.store.PruneOlderThan(ctx, key, now.Add(-state.Sensor.RetentionWindow)); err != nil {
		return nil, fmt.Errorf("pruning samples: %w", err)
	}

	samples, err := w.store.RangeSince(ctx, key, now.Add(-maxAge), now)
	if err != nil {
		return nil, fmt.Errorf("ranging samples: %w", err)
	}
	return samples, nil
}
