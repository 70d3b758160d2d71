package memory

import (
	"context"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// BlinkStore is an in-memory implementation of storage.BlinkStore.
type BlinkStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Blink // keyed by (recording_id, blink_id)
}

// NewBlinkStore creates a new in-memory blink store.
func NewBlinkStore() *BlinkStore {
	return &BlinkStore{
		data: make(map[string]*domain.Blink),
	}
}

// Compile-time interface check.
var _ storage.BlinkStore = (*BlinkStore)(nil)

// InsertBulk adds multiple blinks atomically. Fails entire batch on duplicate.
func (s *BlinkStore) InsertBulk(_ context.Context, blinks []*domain.Blink) error {
	if len(blinks) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(blinks))

	for _, b := range blinks {
		if b == nil || b.RecordingID == "" {
			return storage.ErrInvalidInput
		}
		key := eventKey(b.RecordingID, b.BlinkID)

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, b := range blinks {
		key := eventKey(b.RecordingID, b.BlinkID)
		blinkCopy := *b
		s.data[key] = &blinkCopy
	}

	return nil
}

// GetByRecordingID retrieves all blinks for a recording, ordered by start timestamp ASC.
func (s *BlinkStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.Blink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Blink
	for _, b := range s.data {
		if b.RecordingID == recordingID {
			blinkCopy := *b
			result = append(result, &blinkCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTs < result[j].StartTs
	})

	return result, nil
}
