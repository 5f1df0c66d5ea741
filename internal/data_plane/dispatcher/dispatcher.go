package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sensorhub-server/internal/infra/async"
	"sensorhub-server/internal/shared_kernel/domain"
)

// Dispatcher owns the pool of live workers and keeps it consistent with
// the device catalog. Lifecycle operations for the same device are
// serialized; operations for different devices proceed concurrently.
type Dispatcher struct {
	catalog DeviceCatalog
	client  DeviceClient
	store   SampleStore
	broker  async.InternalBroker

	retryCount int

	workers     sync.Map // domain.ID -> *Worker
	deviceLocks sync.Map // domain.ID -> *sync.Mutex
	workerWG    sync.WaitGroup

	mu  sync.RWMutex
	ctx context.Context
}

type Option func(*Dispatcher)

func WithPollRetryCount(count int) Option {
	return func(d *Dispatcher) {
		if count > 0 {
			d.retryCount = count
		}
	}
}

var _ async.Worker = &Dispatcher{}

func NewDispatcher(
	catalog DeviceCatalog,
	client DeviceClient,
	store SampleStore,
	broker async.InternalBroker,
	opts ...Option,
) *Dispatcher {
	dispatcher := &Dispatcher{
		catalog:    catalog,
		client:     client,
		store:      store,
		broker:     broker,
		retryCount: DefaultPollRetryCount,
	}

	for _, opt := range opts {
		opt(dispatcher)
	}

	return dispatcher
}

// Run loads a worker for every cataloged device and keeps the pool
// alive until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context, done func()) {
	defer done()

	d.mu.Lock()
	d.ctx = ctx
	d.mu.Unlock()

	if err := d.LoadWorkers(ctx); err != nil {
		slog.Error("loading workers", slog.Any("error", err))
	}

	<-ctx.Done()
	slog.Info("dispatcher cancelled")
	d.Close()
	d.workerWG.Wait()
}

func (d *Dispatcher) Shutdown() {
	d.Close()
}

func (d *Dispatcher) runCtx() context.Context {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.ctx != nil {
		return d.ctx
	}
	return context.Background()
}

// LoadWorkers starts a worker per cataloged device. A catalog fetch
// failure aborts the load; a single device failing to start is skipped
// and logged so the rest of the fleet keeps polling.
func (d *Dispatcher) LoadWorkers(ctx context.Context) error {
	devices, err := d.catalog.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("listing devices: %w", err)
	}

	for _, device := range devices {
		if err := d.startWorker(device); err != nil {
			slog.Error("starting worker, skipping device",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err))
			continue
		}
	}

	slog.Info("workers loaded", slog.Int("count", len(devices)))
	return nil
}

func (d *Dispatcher) startWorker(device domain.Device) error {
	lock := d.lockFor(device.ID)
	lock.Lock()
	defer lock.Unlock()

	return d.startWorkerLocked(device)
}

// startWorkerLocked swaps a fresh worker into the pool, stopping any
// instance it displaces. Callers must hold the device's lifecycle lock.
func (d *Dispatcher) startWorkerLocked(device domain.Device) error {
	if device.PollingInterval <= 0 {
		return fmt.Errorf("invalid polling interval %s", device.PollingInterval)
	}

	worker := NewWorker(device, d.client, d.store, d.broker, WithRetryCount(d.retryCount))
	if previous, loaded := d.workers.Swap(device.ID, worker); loaded {
		previous.(*Worker).Shutdown()
	}

	d.workerWG.Add(1)
	go worker.Run(d.runCtx(), d.workerWG.Done)
	return nil
}

// FindWorker returns the live worker for a device.
func (d *Dispatcher) FindWorker(deviceID domain.ID) (*Worker, error) {
	value, ok := d.workers.Load(deviceID)
	if !ok {
		return nil, ErrWorkerNotFound
	}
	return value.(*Worker), nil
}

// ReloadWorker re-reads the device from the catalog and replaces its
// worker with a fresh one. Sample history is untouched. It also starts
// a worker for a device that has none yet, which is how freshly
// registered devices enter the pool.
func (d *Dispatcher) ReloadWorker(ctx context.Context, deviceID domain.ID) error {
	lock := d.lockFor(deviceID)
	lock.Lock()
	defer lock.Unlock()

	device, err := d.catalog.GetDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, ErrDeviceNotFound) {
			return ErrDeviceNotFound
		}
		return fmt.Errorf("fetching device: %w", err)
	}

	if err := d.startWorkerLocked(device); err != nil {
		return fmt.Errorf("starting worker: %w", err)
	}

	slog.Info("worker reloaded", slog.String("device_id", deviceID.String()))
	return nil
}

// RemoveWorker stops and discards the device's worker. With
// removeSampleHistory set, every tracked sensor's samples are deleted
// as well.
func (d *Dispatcher) RemoveWorker(ctx context.Context, deviceID domain.ID, removeSampleHistory bool) error {
	lock := d.lockFor(deviceID)
	lock.Lock()
	defer lock.Unlock()

	value, ok := d.workers.LoadAndDelete(deviceID)
	if !ok {
		return ErrWorkerNotFound
	}
	worker := value.(*Worker)
	worker.Shutdown()

	if !removeSampleHistory {
		return nil
	}

	states := worker.SensorsData()
	sensorIDs := make([]string, 0, len(states))
	for _, state := range states {
		sensorIDs = append(sensorIDs, state.Sensor.ID.String())
	}
	if len(sensorIDs) == 0 {
		return nil
	}
	if err := d.store.DeleteAll(ctx, sensorIDs...); err != nil {
		return fmt.Errorf("purging sample history: %w", err)
	}
	return nil
}

// Workers returns a snapshot of the live worker pool.
func (d *Dispatcher) Workers() []*Worker {
	var workers []*Worker
	d.workers.Range(func(key, value any) bool {
		workers = append(workers, value.(*Worker))
		return true
	})
	return workers
}

// Close stops every worker. Used at process shutdown.
func (d *Dispatcher) Close() {
	d.workers.Range(func(key, value any) bool {
		value.(*Worker).Shutdown()
		return true
	})
}

func (d *Dispatcher) lockFor(deviceID domain.ID) *sync.Mutex {
	value, _ := d.deviceLocks.LoadOrStore(deviceID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// WaitSettled blocks until every worker goroutine has exited or the
// timeout elapses. Intended for shutdown paths and tests.
func (d *Dispatcher) WaitSettled(timeout time.Duration) bool {
	settled := make(chan struct{})
	go func() {
		d.workerWG.Wait()
		close(settled)
	}()

	select {
	case <-settled:
		return true
	case <-time.After(timeout):
		return false
	}
}
