package postgres

import (
	"context"
	"fmt"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// RecordingStore implements storage.RecordingStore using PostgreSQL.
type RecordingStore struct {
	pool *Pool
}

// NewRecordingStore creates a new RecordingStore.
func NewRecordingStore(pool *Pool) *RecordingStore {
	return &RecordingStore{pool: pool}
}

// Compile-time interface check.
var _ storage.RecordingStore = (*RecordingStore)(nil)

// Insert adds a new recording. Returns ErrDuplicateKey if recording_id exists.
func (s *RecordingStore) Insert(ctx context.Context, r *domain.Recording) error {
	query := `
		INSERT INTO recordings (recording_id, wearer, device, start_ts)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.pool.Exec(ctx, query, r.RecordingID, r.Wearer, r.Device, r.StartTs)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert recording: %w", err)
	}
	return nil
}

// GetByID retrieves a recording by its ID. Returns ErrNotFound if not exists.
func (s *RecordingStore) GetByID(ctx context.Context, recordingID string) (*domain.Recording, error) {
	query := `
		SELECT recording_id, wearer, device, start_ts, created_at
		FROM recordings
		WHERE recording_id = $1
	`

	var r domain.Recording
	err := s.pool.QueryRow(ctx, query, recordingID).Scan(
		&r.RecordingID, &r.Wearer, &r.Device, &r.StartTs, &r.CreatedAt,
	)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get recording by id: %w", err)
	}
	return &r, nil
}

// List retrieves all recordings, ordered by start timestamp ASC.
func (s *RecordingStore) List(ctx context.Context) ([]*domain.Recording, error) {
	query := `
		SELECT recording_id, wearer, device, start_ts, created_at
		FROM recordings
		ORDER BY start_ts ASC, recording_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	defer rows.Close()

	var recordings []*domain.Recording
	for rows.Next() {
		var r domain.Recording
		err := rows.Scan(&r.RecordingID, &r.Wearer, &r.Device, &r.StartTs, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan recording row: %w", err)
		}
		recordings = append(recordings, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recording rows: %w", err)
	}

	return recordings, nil
}
