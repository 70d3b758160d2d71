package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// FixationStore is an in-memory implementation of storage.FixationStore.
type FixationStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Fixation // keyed by (recording_id, fixation_id)
}

// NewFixationStore creates a new in-memory fixation store.
func NewFixationStore() *FixationStore {
	return &FixationStore{
		data: make(map[string]*domain.Fixation),
	}
}

// Compile-time interface check.
var _ storage.FixationStore = (*FixationStore)(nil)

// eventKey generates a unique key for an event row.
func eventKey(recordingID string, id int64) string {
	return fmt.Sprintf("%s|%d", recordingID, id)
}

// InsertBulk adds multiple fixations atomically. Fails entire batch on duplicate.
func (s *FixationStore) InsertBulk(_ context.Context, fixations []*domain.Fixation) error {
	if len(fixations) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(fixations))

	for _, f := range fixations {
		if f == nil || f.RecordingID == "" {
			return storage.ErrInvalidInput
		}
		key := eventKey(f.RecordingID, f.FixationID)

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, f := range fixations {
		key := eventKey(f.RecordingID, f.FixationID)
		fixationCopy := *f
		s.data[key] = &fixationCopy
	}

	return nil
}

// GetByRecordingID retrieves all fixations for a recording, ordered by start timestamp ASC.
func (s *FixationStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.Fixation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Fixation
	for _, f := range s.data {
		if f.RecordingID == recordingID {
			fixationCopy := *f
			result = append(result, &fixationCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTs < result[j].StartTs
	})

	return result, nil
}

// GetByTimeRange retrieves fixations starting within [start, end] (inclusive).
func (s *FixationStore) GetByTimeRange(_ context.Context, recordingID string, start, end int64) ([]*domain.Fixation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Fixation
	for _, f := range s.data {
		if f.RecordingID == recordingID && f.StartTs >= start && f.StartTs <= end {
			fixationCopy := *f
			result = append(result, &fixationCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTs < result[j].StartTs
	})

	return result, nil
}
