package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// BlinkStore implements storage.BlinkStore using PostgreSQL.
type BlinkStore struct {
	pool *Pool
}

// NewBlinkStore creates a new BlinkStore.
func NewBlinkStore(pool *Pool) *BlinkStore {
	return &BlinkStore{pool: pool}
}

// Compile-time interface check.
var _ storage.BlinkStore = (*BlinkStore)(nil)

// InsertBulk adds multiple blinks atomically. Fails entire batch on any duplicate.
func (s *BlinkStore) InsertBulk(ctx context.Context, blinks []*domain.Blink) error {
	if len(blinks) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO blinks (recording_id, blink_id, start_ts, end_ts, duration_ms)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, b := range blinks {
		_, err := tx.Exec(ctx, query, b.RecordingID, b.BlinkID, b.StartTs, b.EndTs, b.DurationMs)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert blink in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByRecordingID retrieves all blinks for a recording, ordered by start timestamp ASC.
func (s *BlinkStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Blink, error) {
	query := `
		SELECT recording_id, blink_id, start_ts, end_ts, duration_ms
		FROM blinks
		WHERE recording_id = $1
		ORDER BY start_ts ASC, blink_id ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("get blinks by recording id: %w", err)
	}
	defer rows.Close()

	return scanBlinks(rows)
}

// scanBlinks scans multiple rows into a slice of Blink.
func scanBlinks(rows pgx.Rows) ([]*domain.Blink, error) {
	var blinks []*domain.Blink

	for rows.Next() {
		var b domain.Blink

		err := rows.Scan(&b.RecordingID, &b.BlinkID, &b.StartTs, &b.EndTs, &b.DurationMs)
		if err != nil {
			return nil, fmt.Errorf("scan blink row: %w", err)
		}

		blinks = append(blinks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blink rows: %w", err)
	}

	return blinks, nil
}
