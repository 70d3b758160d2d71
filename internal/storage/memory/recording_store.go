package memory

import (
	"context"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// RecordingStore is an in-memory implementation of storage.RecordingStore.
type RecordingStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Recording // keyed by recording_id
}

// NewRecordingStore creates a new in-memory recording store.
func NewRecordingStore() *RecordingStore {
	return &RecordingStore{
		data: make(map[string]*domain.Recording),
	}
}

// Compile-time interface check.
var _ storage.RecordingStore = (*RecordingStore)(nil)

// Insert adds a new recording. Returns ErrDuplicateKey if recording_id exists.
func (s *RecordingStore) Insert(_ context.Context, r *domain.Recording) error {
	if r == nil || r.RecordingID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[r.RecordingID]; exists {
		return storage.ErrDuplicateKey
	}

	recordingCopy := *r
	s.data[r.RecordingID] = &recordingCopy
	return nil
}

// GetByID retrieves a recording by its ID. Returns ErrNotFound if not exists.
func (s *RecordingStore) GetByID(_ context.Context, recordingID string) (*domain.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.data[recordingID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	recordingCopy := *r
	return &recordingCopy, nil
}

// List retrieves all recordings, ordered by start timestamp ASC.
func (s *RecordingStore) List(_ context.Context) ([]*domain.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Recording
	for _, r := range s.data {
		recordingCopy := *r
		result = append(result, &recordingCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTs != result[j].StartTs {
			return result[i].StartTs < result[j].StartTs
		}
		return result[i].RecordingID < result[j].RecordingID
	})

	return result, nil
}
