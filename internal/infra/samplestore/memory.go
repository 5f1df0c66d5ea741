package samplestore

import (
	"context"
	"slices"
	"sync"
	"time"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"
)

// MemoryStore is an in-process sample store used in the local environment
// and in tests. Samples are kept per sensor in timestamp order.
type MemoryStore struct {
	mu      sync.RWMutex
	samples map[string][]domain.Sample
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		samples: make(map[string][]domain.Sample),
	}
}

func (s *MemoryStore) Append(ctx context.Context, sensorID string, ts time.Time, reading domain.SensorReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample := domain.Sample{
		SensorReading: reading,
		Timestamp:     utils.Time{Time: ts},
	}
	entries := s.samples[sensorID]
	index := len(entries)
	for index > 0 && entries[index-1].Timestamp.After(ts) {
		index--
	}
	s.samples[sensorID] = slices.Insert(entries, index, sample)
	return nil
}

func (s *MemoryStore) PruneOlderThan(ctx context.Context, sensorID string, cutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.samples[sensorID]
	kept := entries[:0]
	for _, sample := range entries {
		if !sample.Timestamp.Before(cutoff) {
			kept = append(kept, sample)
		}
	}
	s.samples[sensorID] = kept
	return nil
}

func (s *MemoryStore) RangeSince(ctx context.Context, sensorID string, since, until time.Time) ([]domain.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Sample, 0)
	for _, sample := range s.samples[sensorID] {
		if sample.Timestamp.Before(since) || sample.Timestamp.After(until) {
			continue
		}
		result = append(result, sample)
	}
	return result, nil
}

func (s *MemoryStore) DeleteAll(ctx context.Context, sensorIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sensorIDs {
		delete(s.samples, id)
	}
	return nil
}
