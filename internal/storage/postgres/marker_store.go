package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// MarkerStore implements storage.MarkerStore using PostgreSQL.
type MarkerStore struct {
	pool *Pool
}

// NewMarkerStore creates a new MarkerStore.
func NewMarkerStore(pool *Pool) *MarkerStore {
	return &MarkerStore{pool: pool}
}

// Compile-time interface check.
var _ storage.MarkerStore = (*MarkerStore)(nil)

// InsertBulk adds multiple markers atomically. Fails entire batch on any duplicate.
func (s *MarkerStore) InsertBulk(ctx context.Context, markers []*domain.Marker) error {
	if len(markers) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO markers (recording_id, ts, name, type)
		VALUES ($1, $2, $3, $4)
	`

	for _, m := range markers {
		_, err := tx.Exec(ctx, query, m.RecordingID, m.Ts, m.Name, m.Type)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert marker in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByRecordingID retrieves all markers for a recording, ordered by timestamp ASC.
func (s *MarkerStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Marker, error) {
	query := `
		SELECT recording_id, ts, name, type
		FROM markers
		WHERE recording_id = $1
		ORDER BY ts ASC, name ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("get markers by recording id: %w", err)
	}
	defer rows.Close()

	return scanMarkers(rows)
}

// GetByTimeRange retrieves markers within [start, end] (inclusive).
func (s *MarkerStore) GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.Marker, error) {
	query := `
		SELECT recording_id, ts, name, type
		FROM markers
		WHERE recording_id = $1 AND ts >= $2 AND ts <= $3
		ORDER BY ts ASC, name ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("get markers by time range: %w", err)
	}
	defer rows.Close()

	return scanMarkers(rows)
}

// scanMarkers scans multiple rows into a slice of Marker.
func scanMarkers(rows pgx.Rows) ([]*domain.Marker, error) {
	var markers []*domain.Marker

	for rows.Next() {
		var m domain.Marker

		err := rows.Scan(&m.RecordingID, &m.Ts, &m.Name, &m.Type)
		if err != nil {
			return nil, fmt.Errorf("scan marker row: %w", err)
		}

		markers = append(markers, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate marker rows: %w", err)
	}

	return markers, nil
}
