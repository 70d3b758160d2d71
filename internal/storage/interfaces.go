package storage

import (
	"context"

	"eye-stream-lab/internal/domain"
)

// RecordingStore provides access to recordings storage.
type RecordingStore interface {
	// Insert adds a new recording. Returns ErrDuplicateKey if recording_id exists.
	Insert(ctx context.Context, r *domain.Recording) error

	// GetByID retrieves a recording by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, recordingID string) (*domain.Recording, error)

	// List retrieves all recordings, ordered by start timestamp ASC.
	List(ctx context.Context) ([]*domain.Recording, error)
}

// GazeSampleStore provides access to the gaze sample archive.
type GazeSampleStore interface {
	// InsertBulk adds multiple samples atomically. Fails entire batch on
	// duplicate (recording_id, ts).
	InsertBulk(ctx context.Context, samples []*domain.GazeSample) error

	// GetByRecordingID retrieves all samples for a recording, ordered by timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.GazeSample, error)

	// GetByTimeRange retrieves samples for a recording within [start, end] (inclusive).
	GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.GazeSample, error)
}

// IMUSampleStore provides access to the IMU sample archive.
type IMUSampleStore interface {
	// InsertBulk adds multiple samples atomically. Fails entire batch on
	// duplicate (recording_id, ts).
	InsertBulk(ctx context.Context, samples []*domain.IMUSample) error

	// GetByRecordingID retrieves all samples for a recording, ordered by timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.IMUSample, error)

	// GetByTimeRange retrieves samples for a recording within [start, end] (inclusive).
	GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.IMUSample, error)
}

// FixationStore provides access to fixation events storage.
type FixationStore interface {
	// InsertBulk adds multiple fixations atomically. Fails entire batch on
	// duplicate (recording_id, fixation_id).
	InsertBulk(ctx context.Context, fixations []*domain.Fixation) error

	// GetByRecordingID retrieves all fixations for a recording, ordered by start timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Fixation, error)

	// GetByTimeRange retrieves fixations starting within [start, end] (inclusive).
	GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.Fixation, error)
}

// SaccadeStore provides access to saccade events storage.
type SaccadeStore interface {
	// InsertBulk adds multiple saccades atomically. Fails entire batch on
	// duplicate (recording_id, saccade_id).
	InsertBulk(ctx context.Context, saccades []*domain.Saccade) error

	// GetByRecordingID retrieves all saccades for a recording, ordered by end timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Saccade, error)
}

// BlinkStore provides access to blink events storage.
type BlinkStore interface {
	// InsertBulk adds multiple blinks atomically. Fails entire batch on
	// duplicate (recording_id, blink_id).
	InsertBulk(ctx context.Context, blinks []*domain.Blink) error

	// GetByRecordingID retrieves all blinks for a recording, ordered by start timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Blink, error)
}

// MarkerStore provides access to annotation marker storage.
type MarkerStore interface {
	// InsertBulk adds multiple markers atomically. Fails entire batch on
	// duplicate (recording_id, ts, name).
	InsertBulk(ctx context.Context, markers []*domain.Marker) error

	// GetByRecordingID retrieves all markers for a recording, ordered by timestamp ASC.
	GetByRecordingID(ctx context.Context, recordingID string) ([]*domain.Marker, error)

	// GetByTimeRange retrieves markers within [start, end] (inclusive).
	GetByTimeRange(ctx context.Context, recordingID string, start, end int64) ([]*domain.Marker, error)
}
