package clickhouse

import (
	"context"
	"fmt"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// GazeSampleStore implements storage.GazeSampleStore using ClickHouse.
type GazeSampleStore struct {
	conn *Conn
}

// NewGazeSampleStore creates a new GazeSampleStore.
func NewGazeSampleStore(conn *Conn) *GazeSampleStore {
	return &GazeSampleStore{conn: conn}
}

// Compile-time interface check.
var _ storage.GazeSampleStore = (*GazeSampleStore)(nil)

// InsertBulk adds multiple samples. Fails entire batch on duplicate (recording_id, ts).
func (s *GazeSampleStore) InsertBulk(ctx context.Context, samples []*domain.GazeSample) error {
	if len(samples) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	type key struct {
		recordingID string
		ts          int64
	}
	seen := make(map[key]struct{})
	for _, sm := range samples {
		k := key{sm.RecordingID, sm.Ts}
		if _, exists := seen[k]; exists {
			return storage.ErrDuplicateKey
		}
		seen[k] = struct{}{}
	}

	// Check for duplicates against existing DB rows
	for _, sm := range samples {
		exists, err := s.exists(ctx, sm.RecordingID, sm.Ts)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO gaze_samples (
			recording_id, ts, x, y, worn, fixation_id, blink_id, azimuth, elevation
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, sm := range samples {
		err = batch.Append(
			sm.RecordingID, sm.Ts, sm.X, sm.Y, boolToUint8(sm.Worn),
			nullInt64Ptr(sm.FixationID), nullInt64Ptr(sm.BlinkID),
			sm.Azimuth, sm.Elevation,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByRecordingID retrieves all samples for a recording, ordered by timestamp ASC.
func (s *GazeSampleStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.GazeSample, error) {
	query := `
		SELECT recording_id, ts, x, y, worn, fixation_id, blink_id, azimuth, elevation
		FROM gaze_samples
		WHERE recording_id = ?
		ORDER BY ts ASC
	`

	rows, err := s.conn.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("query by recording id: %w", err)
	}
	defer rows.Close()

	return scanGazeSamples(rows)
}

// GetByTimeRange retrieves samples for a recording within [start, end] (inclusive).
func (s *GazeSampleStore) GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.GazeSample, error) {
	query := `
		SELECT recording_id, ts, x, y, worn, fixation_id, blink_id, azimuth, elevation
		FROM gaze_samples
		WHERE recording_id = ? AND ts >= ? AND ts <= ?
		ORDER BY ts ASC
	`

	rows, err := s.conn.Query(ctx, query, recordingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()

	return scanGazeSamples(rows)
}

// exists checks if a sample with the given key exists.
func (s *GazeSampleStore) exists(ctx context.Context, recordingID string, ts int64) (bool, error) {
	query := `
		SELECT count(*) FROM gaze_samples
		WHERE recording_id = ? AND ts = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, recordingID, ts).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// scanGazeSamples scans multiple rows.
func scanGazeSamples(rows chRows) ([]*domain.GazeSample, error) {
	var samples []*domain.GazeSample

	for rows.Next() {
		var sm domain.GazeSample
		var worn uint8
		var fixationID, blinkID *int64

		err := rows.Scan(
			&sm.RecordingID, &sm.Ts, &sm.X, &sm.Y, &worn,
			&fixationID, &blinkID, &sm.Azimuth, &sm.Elevation,
		)
		if err != nil {
			return nil, fmt.Errorf("scan gaze sample row: %w", err)
		}

		sm.Worn = worn != 0
		sm.FixationID = nullInt64FromPtr(fixationID)
		sm.BlinkID = nullInt64FromPtr(blinkID)
		samples = append(samples, &sm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gaze sample rows: %w", err)
	}

	return samples, nil
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func nullInt64Ptr(n domain.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullInt64FromPtr(p *int64) domain.NullInt64 {
	if p == nil {
		return domain.NullInt64{}
	}
	return domain.NullInt64Of(*p)
}
