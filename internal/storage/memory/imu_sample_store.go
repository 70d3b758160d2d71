package memory

import (
	"context"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// IMUSampleStore is an in-memory implementation of storage.IMUSampleStore.
type IMUSampleStore struct {
	mu   sync.RWMutex
	data map[string]*domain.IMUSample // keyed by (recording_id, ts)
}

// NewIMUSampleStore creates a new in-memory IMU sample store.
func NewIMUSampleStore() *IMUSampleStore {
	return &IMUSampleStore{
		data: make(map[string]*domain.IMUSample),
	}
}

// Compile-time interface check.
var _ storage.IMUSampleStore = (*IMUSampleStore)(nil)

// InsertBulk adds multiple samples atomically. Fails entire batch on duplicate.
func (s *IMUSampleStore) InsertBulk(_ context.Context, samples []*domain.IMUSample) error {
	if len(samples) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(samples))

	for _, sample := range samples {
		if sample == nil || sample.RecordingID == "" {
			return storage.ErrInvalidInput
		}
		key := sampleKey(sample.RecordingID, sample.Ts)

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, sample := range samples {
		key := sampleKey(sample.RecordingID, sample.Ts)
		sampleCopy := *sample
		s.data[key] = &sampleCopy
	}

	return nil
}

// GetByRecordingID retrieves all samples for a recording, ordered by timestamp ASC.
func (s *IMUSampleStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.IMUSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.IMUSample
	for _, sample := range s.data {
		if sample.RecordingID == recordingID {
			sampleCopy := *sample
			result = append(result, &sampleCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Ts < result[j].Ts
	})

	return result, nil
}

// GetByTimeRange retrieves samples for a recording within [start, end] (inclusive).
func (s *IMUSampleStore) GetByTimeRange(_ context.Context, recordingID string, start, end int64) ([]*domain.IMUSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.IMUSample
	for _, sample := range s.data {
		if sample.RecordingID == recordingID && sample.Ts >= start && sample.Ts <= end {
			sampleCopy := *sample
			result = append(result, &sampleCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Ts < result[j].Ts
	})

	return result, nil
}
