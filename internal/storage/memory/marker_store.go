package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// MarkerStore is an in-memory implementation of storage.MarkerStore.
type MarkerStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Marker // keyed by (recording_id, ts, name)
}

// NewMarkerStore creates a new in-memory marker store.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{
		data: make(map[string]*domain.Marker),
	}
}

// Compile-time interface check.
var _ storage.MarkerStore = (*MarkerStore)(nil)

// markerKey generates a unique key for a marker row.
func markerKey(recordingID string, ts int64, name string) string {
	return fmt.Sprintf("%s|%d|%s", recordingID, ts, name)
}

// InsertBulk adds multiple markers atomically. Fails entire batch on duplicate.
func (s *MarkerStore) InsertBulk(_ context.Context, markers []*domain.Marker) error {
	if len(markers) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batchKeys := make(map[string]struct{}, len(markers))

	for _, m := range markers {
		if m == nil || m.RecordingID == "" {
			return storage.ErrInvalidInput
		}
		key := markerKey(m.RecordingID, m.Ts, m.Name)

		if _, exists := s.data[key]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := batchKeys[key]; exists {
			return storage.ErrDuplicateKey
		}
		batchKeys[key] = struct{}{}
	}

	for _, m := range markers {
		key := markerKey(m.RecordingID, m.Ts, m.Name)
		markerCopy := *m
		s.data[key] = &markerCopy
	}

	return nil
}

// GetByRecordingID retrieves all markers for a recording, ordered by timestamp ASC.
func (s *MarkerStore) GetByRecordingID(_ context.Context, recordingID string) ([]*domain.Marker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Marker
	for _, m := range s.data {
		if m.RecordingID == recordingID {
			markerCopy := *m
			result = append(result, &markerCopy)
		}
	}

	sortMarkers(result)
	return result, nil
}

// GetByTimeRange retrieves markers within [start, end] (inclusive).
func (s *MarkerStore) GetByTimeRange(_ context.Context, recordingID string, start, end int64) ([]*domain.Marker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Marker
	for _, m := range s.data {
		if m.RecordingID == recordingID && m.Ts >= start && m.Ts <= end {
			markerCopy := *m
			result = append(result, &markerCopy)
		}
	}

	sortMarkers(result)
	return result, nil
}

func sortMarkers(markers []*domain.Marker) {
	sort.Slice(markers, func(i, j int) bool {
		if markers[i].Ts != markers[j].Ts {
			return markers[i].Ts < markers[j].Ts
		}
		return markers[i].Name < markers[j].Name
	})
}
