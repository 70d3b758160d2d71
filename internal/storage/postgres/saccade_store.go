package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// SaccadeStore implements storage.SaccadeStore using PostgreSQL.
type SaccadeStore struct {
	pool *Pool
}

// NewSaccadeStore creates a new SaccadeStore.
func NewSaccadeStore(pool *Pool) *SaccadeStore {
	return &SaccadeStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SaccadeStore = (*SaccadeStore)(nil)

// InsertBulk adds multiple saccades atomically. Fails entire batch on any duplicate.
func (s *SaccadeStore) InsertBulk(ctx context.Context, saccades []*domain.Saccade) error {
	if len(saccades) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO saccades (
			recording_id, saccade_id, end_ts, duration_ms,
			amplitude_px, amplitude_deg, mean_velocity, peak_velocity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, sac := range saccades {
		_, err := tx.Exec(ctx, query,
			sac.RecordingID,
			sac.SaccadeID,
			sac.EndTs,
			sac.DurationMs,
			sac.AmplitudePx,
			sac.AmplitudeDeg,
			sac.MeanVelocity,
			sac.PeakVelocity,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert saccade in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByRecordingID retrieves all saccades for a recording, ordered by end timestamp ASC.
func (s *SaccadeStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Saccade, error) {
	query := `
		SELECT recording_id, saccade_id, end_ts, duration_ms,
			amplitude_px, amplitude_deg, mean_velocity, peak_velocity
		FROM saccades
		WHERE recording_id = $1
		ORDER BY end_ts ASC, saccade_id ASC
	`

	rows, err := s.pool.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("get saccades by recording id: %w", err)
	}
	defer rows.Close()

	return scanSaccades(rows)
}

// scanSaccades scans multiple rows into a slice of Saccade.
func scanSaccades(rows pgx.Rows) ([]*domain.Saccade, error) {
	var saccades []*domain.Saccade

	for rows.Next() {
		var sac domain.Saccade

		err := rows.Scan(
			&sac.RecordingID,
			&sac.SaccadeID,
			&sac.EndTs,
			&sac.DurationMs,
			&sac.AmplitudePx,
			&sac.AmplitudeDeg,
			&sac.MeanVelocity,
			&sac.PeakVelocity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan saccade row: %w", err)
		}

		saccades = append(saccades, &sac)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saccade rows: %w", err)
	}

	return saccades, nil
}
