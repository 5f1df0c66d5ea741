package httpapi_test

import (
	"context"

	"sensorhub-server/internal/data_plane/dispatcher"
	"sensorhub-server/internal/shared_kernel/domain"
)

// stubWorkerPool records the pool mutations a controller triggers and
// optionally delegates FindWorker to a live dispatcher.
type stubWorkerPool struct {
	dispatcher *dispatcher.Dispatcher

	reloaded       []domain.ID
	removed        []domain.ID
	removedHistory []bool
}

func (s *stubWorkerPool) FindWorker(deviceID domain.ID) (*dispatcher.Worker, error) {
	if s.dispatcher == nil {
		return nil, dispatcher.ErrWorkerNotFound
	}
	return s.dispatcher.FindWorker(deviceID)
}

func (s *stubWorkerPool) ReloadWorker(_ context.Context, deviceID domain.ID) error {
	s.reloaded = append(s.reloaded, deviceID)
	return nil
}

func (s *stubWorkerPool) RemoveWorker(_ context.Context, deviceID domain.ID, removeSampleHistory bool) error {
	s.removed = append(s.removed, deviceID)
	s.removedHistory = append(s.removedHistory, removeSampleHistory)
	return nil
}
