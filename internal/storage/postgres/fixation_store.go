package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// FixationStore implements storage.FixationStore using PostgreSQL.
type FixationStore struct {
	pool *Pool
}

// NewFixationStore creates a new FixationStore.
func NewFixationStore(pool *Pool) *FixationStore {
	return &FixationStore{pool: pool}
}

// Compile-time interface check.
var _ storage.FixationStore = (*FixationStore)(nil)

// InsertBulk adds multiple fixations atomically. Fails entire batch on any duplicate.
func (s *FixationStore) InsertBulk(ctx context.Context, fixations []*domain.Fixation) error {
	if len(fixations) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO fixations (
			recording_id, fixation_id, start_ts, end_ts, duration_ms,
			x, y, azimuth, elevation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, f := range fixations {
		_, err := tx.Exec(ctx, query,
			f.RecordingID,
			f.FixationID,
			f.StartTs,
			f.EndTs,
			f.DurationMs,
			f.X,
			f.Y,
			f.Azimuth,
			f.Elevation,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert fixation in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByRecordingID retrieves all fixations for a recording, ordered by start timestamp ASC.
func (s *FixationStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Fixation, error) {
	query := `
		SELECT recording_id, fixation_id, start_ts, end_ts, duration_ms, x, y, azimuth, elevation
		FROM fixations
		WHERE recording_id = $1
		ORDER BY start_ts ASC, fixation_id ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("get fixations by recording id: %w", err)
	}
	defer rows.Close()

	return scanFixations(rows)
}

// GetByTimeRange retrieves fixations starting within [start, end] (inclusive).
func (s *FixationStore) GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.Fixation, error) {
	query := `
		SELECT recording_id, fixation_id, start_ts, end_ts, duration_ms, x, y, azimuth, elevation
		FROM fixations
		WHERE recording_id = $1 AND start_ts >= $2 AND start_ts <= $3
		ORDER BY start_ts ASC, fixation_id ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("get fixations by time range: %w", err)
	}
	defer rows.Close()

	return scanFixations(rows)
}

// scanFixations scans multiple rows into a slice of Fixation.
func scanFixations(rows pgx.Rows) ([]*domain.Fixation, error) {
	var fixations []*domain.Fixation

	for rows.Next() {
		var f domain.Fixation

		err := rows.Scan(
			&f.RecordingID,
			&f.FixationID,
			&f.StartTs,
			&f.EndTs,
			&f.DurationMs,
			&f.X,
			&f.Y,
			&f.Azimuth,
			&f.Elevation,
		)
		if err != nil {
			return nil, fmt.Errorf("scan fixation row: %w", err)
		}

		fixations = append(fixations, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixation rows: %w", err)
	}

	return fixations, nil
}
