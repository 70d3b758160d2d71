package domain

// Recording represents one eye-tracking recording session.
// Corresponds to the recordings table in PostgreSQL.
type Recording struct {
	RecordingID string // PRIMARY KEY, deterministic hash
	Wearer      string // wearer name or label
	Device      string // device serial or label
	StartTs     int64  // recording start, nanoseconds
	CreatedAt   int64  // record creation timestamp (ns)
}

// StreamInfo summarizes one persisted stream of a recording.
type StreamInfo struct {
	StreamID    string
	RecordingID string
	Kind        StreamKind
	NominalRate float64 // Hz, 0 when externally supplied
	FirstTs     int64   // nanoseconds
	LastTs      int64   // nanoseconds
	SampleCount int
}
