package reporting

import "time"

// Report summarizes one recording: stream attributes and event counts.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	RecordingID string
	Wearer      string
	Device      string
	StartTs     int64 // nanoseconds

	// Per-stream attributes (sorted by kind)
	Streams []StreamSummaryRow

	// Event counts
	Events EventSummary
}

// StreamSummaryRow represents one stream in the summary table.
type StreamSummaryRow struct {
	Kind          string
	SampleCount   int
	FirstTs       int64   // nanoseconds
	LastTs        int64   // nanoseconds
	Duration      float64 // seconds
	NominalRate   float64 // Hz, 0 if unknown
	EffectiveRate float64 // Hz, samples / duration
}

// EventSummary contains per-kind event counts and fixation statistics.
type EventSummary struct {
	Fixations int
	Saccades  int
	Blinks    int
	Markers   int

	MeanFixationMs float64 // 0 when no fixations
	MeanBlinkMs    float64 // 0 when no blinks
}
