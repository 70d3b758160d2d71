package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// GazeSampleStore is an in-memory implementation of storage.GazeSampleStore.
type GazeSampleStore struct {
	mu   sync.RWMutex
	data map[string]*domain.GazeSample // keyed by (recording_id, ts)
}

// NewGazeSampleStore creates a new in-memory gaze sample store.
func NewGazeSampleStore() *GazeSampleStore {
	return &GazeSampleStore{
		data: make(map[string]*domain.GazeSample),
	}
}

// Compile-time interface check.
var _ storage.GazeSampleStore = (*GazeSampleStore)(nil)

// sampleKey generates a unique key for one sample row.
func sampleKey(recordingID string, ts int64) string {
	return fmt.Sprintf("%s|%d", recordingID, ts)
}

// InsertBulk adds multiple samples atomically. Fails entire batch on duplicate.
func (s *GazeSampleStore) InsertBulk(_ context.Context, samples []*domain.GazeSample) error {
	if len(samples) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Track keys in this batch to detect intra-batch duplicates
	batchKeys := make(map[string]struct{}, len(samples))

	// First pass: check for duplicates (existing + intra-batch)
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

	// Second pass: insert all
	for _, sample := range samples {
		key := sampleKey(sample.RecordingID, sample.Ts)
		sampleCopy := *sample
		s.data[key] = &sampleCopy
	}

	return nil
}

// GetByRecordingID retrieves all samples for a recording, ordered by timestamp ASC.
func (s *GazeSampleStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.GazeSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.GazeSample
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
func (s *GazeSampleStore) GetByTimeRange(_ context.Context, recordingID string, start, end int64) ([]*domain.GazeSample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.GazeSample
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
