package clickhouse

import (
	"context"
	"fmt"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/storage"
)

// IMUSampleStore implements storage.IMUSampleStore using ClickHouse.
type IMUSampleStore struct {
	conn *Conn
}

// NewIMUSampleStore creates a new IMUSampleStore.
func NewIMUSampleStore(conn *Conn) *IMUSampleStore {
	return &IMUSampleStore{conn: conn}
}

// Compile-time interface check.
var _ storage.IMUSampleStore = (*IMUSampleStore)(nil)

// InsertBulk adds multiple samples. Fails entire batch on duplicate (recording_id, ts).
func (s *IMUSampleStore) InsertBulk(ctx context.Context, samples []*domain.IMUSample) error {
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
		INSERT INTO imu_samples (
			recording_id, ts,
			gyro_x, gyro_y, gyro_z,
			accel_x, accel_y, accel_z,
			roll, pitch, yaw,
			quat_w, quat_x, quat_y, quat_z
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, sm := range samples {
		err = batch.Append(
			sm.RecordingID, sm.Ts,
			sm.GyroX, sm.GyroY, sm.GyroZ,
			sm.AccelX, sm.AccelY, sm.AccelZ,
			sm.Roll, sm.Pitch, sm.Yaw,
			sm.QuatW, sm.QuatX, sm.QuatY, sm.QuatZ,
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
func (s *IMUSampleStore) GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.IMUSample, error) {
	query := `
		SELECT recording_id, ts,
			gyro_x, gyro_y, gyro_z,
			accel_x, accel_y, accel_z,
			roll, pitch, yaw,
			quat_w, quat_x, quat_y, quat_z
		FROM imu_samples
		WHERE recording_id = ?
		ORDER BY ts ASC
	`

	rows, err := s.conn.Query(ctx, query, recordingID)
	if err != nil {
		return nil, fmt.Errorf("query by recording id: %w", err)
	}
	defer rows.Close()

	return scanIMUSamples(rows)
}

// GetByTimeRange retrieves samples for a recording within [start, end] (inclusive).
func (s *IMUSampleStore) GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.IMUSample, error) {
	query := `
		SELECT recording_id, ts,
			gyro_x, gyro_y, gyro_z,
			accel_x, accel_y, accel_z,
			roll, pitch, yaw,
			quat_w, quat_x, quat_y, quat_z
		FROM imu_samples
		WHERE recording_id = ? AND ts >= ? AND ts <= ?
		ORDER BY ts ASC
	`

	rows, err := s.conn.Query(ctx, query, recordingID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()

	return scanIMUSamples(rows)
}

// exists checks if a sample with the given key exists.
func (s *IMUSampleStore) exists(ctx context.Context, recordingID string, ts int64) (bool, error) {
	query := `
		SELECT count(*) FROM imu_samples
		WHERE recording_id = ? AND ts = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, recordingID, ts).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Rows interface for scanning
type chRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanIMUSamples scans multiple rows.
func scanIMUSamples(rows chRows) ([]*domain.IMUSample, error) {
	var samples []*domain.IMUSample

	for rows.Next() {
		var sm domain.IMUSample

		err := rows.Scan(
			&sm.RecordingID, &sm.Ts,
			&sm.GyroX, &sm.GyroY, &sm.GyroZ,
			&sm.AccelX, &sm.AccelY, &sm.AccelZ,
			&sm.Roll, &sm.Pitch, &sm.Yaw,
			&sm.QuatW, &sm.QuatX, &sm.QuatY, &sm.QuatZ,
		)
		if err != nil {
			return nil, fmt.Errorf("scan imu sample row: %w", err)
		}

		samples = append(samples, &sm)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate imu sample rows: %w", err)
	}

	return samples, nil
}
