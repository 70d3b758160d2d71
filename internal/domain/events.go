package domain

// EventKind identifies a sparse event table variant.
type EventKind string

const (
	EventFixations EventKind = "fixations"
	EventSaccades  EventKind = "saccades"
	EventBlinks    EventKind = "blinks"
	EventMarkers   EventKind = "markers"
)

// Schema returns the static column schema for the event kind.
func (k EventKind) Schema() Schema {
	switch k {
	case EventFixations:
		return fixationSchema
	case EventSaccades:
		return saccadeSchema
	case EventBlinks:
		return blinkSchema
	case EventMarkers:
		return markerSchema
	default:
		return nil
	}
}

var fixationSchema = Schema{
	{Name: "fixation id", Type: ColumnInt64},
	{Name: "start timestamp [ns]", Type: ColumnInt64},
	{Name: "end timestamp [ns]", Type: ColumnInt64},
	{Name: "duration [ms]", Type: ColumnInt64},
	{Name: "fixation x [px]", Type: ColumnFloat64},
	{Name: "fixation y [px]", Type: ColumnFloat64},
	{Name: "azimuth [deg]", Type: ColumnFloat64},
	{Name: "elevation [deg]", Type: ColumnFloat64},
}

var saccadeSchema = Schema{
	{Name: "saccade id", Type: ColumnInt64},
	{Name: "end timestamp [ns]", Type: ColumnInt64},
	{Name: "duration [ms]", Type: ColumnInt64},
	{Name: "amplitude [px]", Type: ColumnFloat64},
	{Name: "amplitude [deg]", Type: ColumnFloat64},
	{Name: "mean velocity [px/s]", Type: ColumnFloat64},
	{Name: "peak velocity [px/s]", Type: ColumnFloat64},
}

var blinkSchema = Schema{
	{Name: "blink id", Type: ColumnInt64},
	{Name: "start timestamp [ns]", Type: ColumnInt64},
	{Name: "end timestamp [ns]", Type: ColumnInt64},
	{Name: "duration [ms]", Type: ColumnInt64},
}

var markerSchema = Schema{
	{Name: "timestamp [ns]", Type: ColumnInt64},
	{Name: "name", Type: ColumnString},
	{Name: "type", Type: ColumnString},
}

// Fixation is one detected fixation event.
type Fixation struct {
	RecordingID string
	FixationID  int64
	StartTs     int64 // nanoseconds
	EndTs       int64 // nanoseconds
	DurationMs  int64
	X           float64 // fixation x [px]
	Y           float64 // fixation y [px]
	Azimuth     float64 // [deg]
	Elevation   float64 // [deg]
}

// Saccade is one detected saccade event.
type Saccade struct {
	RecordingID   string
	SaccadeID     int64
	EndTs         int64 // nanoseconds
	DurationMs    int64
	AmplitudePx   float64
	AmplitudeDeg  float64
	MeanVelocity  float64 // [px/s]
	PeakVelocity  float64 // [px/s]
}

// Blink is one detected blink event.
type Blink struct {
	RecordingID string
	BlinkID     int64
	StartTs     int64 // nanoseconds
	EndTs       int64 // nanoseconds
	DurationMs  int64
}

// Marker is one annotation message attached to a recording.
type Marker struct {
	RecordingID string
	Ts          int64 // nanoseconds
	Name        string
	Type        string
}

// FixationsTable builds the typed tabular view of fixation events.
// Fixations must be pre-sorted by start timestamp ascending.
func FixationsTable(fixations []*Fixation) *Table {
	n := len(fixations)
	ids := make([]int64, n)
	starts := make([]int64, n)
	ends := make([]int64, n)
	durations := make([]int64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	azimuths := make([]float64, n)
	elevations := make([]float64, n)
	for i, f := range fixations {
		ids[i] = f.FixationID
		starts[i] = f.StartTs
		ends[i] = f.EndTs
		durations[i] = f.DurationMs
		xs[i] = f.X
		ys[i] = f.Y
		azimuths[i] = f.Azimuth
		elevations[i] = f.Elevation
	}
	return &Table{
		Timestamps: starts,
		Columns: []Column{
			{Name: "fixation id", Type: ColumnInt64, Ints: ids},
			{Name: "start timestamp [ns]", Type: ColumnInt64, Ints: append([]int64(nil), starts...)},
			{Name: "end timestamp [ns]", Type: ColumnInt64, Ints: ends},
			{Name: "duration [ms]", Type: ColumnInt64, Ints: durations},
			{Name: "fixation x [px]", Type: ColumnFloat64, Floats: xs},
			{Name: "fixation y [px]", Type: ColumnFloat64, Floats: ys},
			{Name: "azimuth [deg]", Type: ColumnFloat64, Floats: azimuths},
			{Name: "elevation [deg]", Type: ColumnFloat64, Floats: elevations},
		},
	}
}

// SaccadesTable builds the typed tabular view of saccade events.
// Saccades carry no start timestamp; the table is indexed by end timestamp.
// Saccades must be pre-sorted by end timestamp ascending.
func SaccadesTable(saccades []*Saccade) *Table {
	n := len(saccades)
	ids := make([]int64, n)
	ends := make([]int64, n)
	durations := make([]int64, n)
	ampPx := make([]float64, n)
	ampDeg := make([]float64, n)
	meanVel := make([]float64, n)
	peakVel := make([]float64, n)
	for i, s := range saccades {
		ids[i] = s.SaccadeID
		ends[i] = s.EndTs
		durations[i] = s.DurationMs
		ampPx[i] = s.AmplitudePx
		ampDeg[i] = s.AmplitudeDeg
		meanVel[i] = s.MeanVelocity
		peakVel[i] = s.PeakVelocity
	}
	return &Table{
		Timestamps: ends,
		Columns: []Column{
			{Name: "saccade id", Type: ColumnInt64, Ints: ids},
			{Name: "end timestamp [ns]", Type: ColumnInt64, Ints: append([]int64(nil), ends...)},
			{Name: "duration [ms]", Type: ColumnInt64, Ints: durations},
			{Name: "amplitude [px]", Type: ColumnFloat64, Floats: ampPx},
			{Name: "amplitude [deg]", Type: ColumnFloat64, Floats: ampDeg},
			{Name: "mean velocity [px/s]", Type: ColumnFloat64, Floats: meanVel},
			{Name: "peak velocity [px/s]", Type: ColumnFloat64, Floats: peakVel},
		},
	}
}

// BlinksTable builds the typed tabular view of blink events.
// Blinks must be pre-sorted by start timestamp ascending.
func BlinksTable(blinks []*Blink) *Table {
	n := len(blinks)
	ids := make([]int64, n)
	starts := make([]int64, n)
	ends := make([]int64, n)
	durations := make([]int64, n)
	for i, b := range blinks {
		ids[i] = b.BlinkID
		starts[i] = b.StartTs
		ends[i] = b.EndTs
		durations[i] = b.DurationMs
	}
	return &Table{
		Timestamps: starts,
		Columns: []Column{
			{Name: "blink id", Type: ColumnInt64, Ints: ids},
			{Name: "start timestamp [ns]", Type: ColumnInt64, Ints: append([]int64(nil), starts...)},
			{Name: "end timestamp [ns]", Type: ColumnInt64, Ints: ends},
			{Name: "duration [ms]", Type: ColumnInt64, Ints: durations},
		},
	}
}

// MarkersTable builds the typed tabular view of annotation markers.
// Markers must be pre-sorted by timestamp ascending.
func MarkersTable(markers []*Marker) *Table {
	n := len(markers)
	timestamps := make([]int64, n)
	names := make([]string, n)
	types := make([]string, n)
	for i, m := range markers {
		timestamps[i] = m.Ts
		names[i] = m.Name
		types[i] = m.Type
	}
	return &Table{
		Timestamps: timestamps,
		Columns: []Column{
			{Name: "timestamp [ns]", Type: ColumnInt64, Ints: append([]int64(nil), timestamps...)},
			{Name: "name", Type: ColumnString, Strings: names},
			{Name: "type", Type: ColumnString, Strings: types},
		},
	}
}
