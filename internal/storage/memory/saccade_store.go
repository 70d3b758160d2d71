package memory

import (
	"context"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// SaccadeStore is an in-memory implementation of storage.SaccadeStore.
type SaccadeStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Saccade // keyed by (recording_id, saccade_id)
}

// NewSaccadeStore creates a new in-memory saccade store.
func NewSaccadeStore() *SaccadeStore {
	return &SaccadeStore{
		data: make(map[string]*domain.Saccade),
	}
}

// Compile-time interface check.
var _ storage.SaccadeStore = (*SaccadeStore)(nil)

// InsertBulk adds multiple saccades atomically. Fails entire batch on duplicate.
func (s *SaccadeStore) InsertBulk(_ context.Context, saccades []*domain.Saccade) error {
	if len(saccades) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(saccades))

	for _, sac := range saccades {
		if sac == nil || sac.RecordingID == "" {
			return storage.ErrInvalidInput
		}
		key := eventKey(sac.RecordingID, sac.SaccadeID)

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, sac := range saccades {
		key := eventKey(sac.RecordingID, sac.SaccadeID)
		saccadeCopy := *sac
		s.data[key] = &saccadeCopy
	}

	return nil
}

// GetByRecordingID retrieves all saccades for a recording, ordered by end timestamp ASC.
func (s *SaccadeStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.Saccade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Saccade
	for _, sac := range s.data {
		if sac.RecordingID == recordingID {
			saccadeCopy := *sac
			result = append(result, &saccadeCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].EndTs < result[j].EndTs
	})

	return result, nil
}
