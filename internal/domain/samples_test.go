package domain

import "testing"

func TestGazeTable_RoundTrip(t *testing.T) {
	in := []*GazeSample{
		{
			RecordingID: "rec-1", Ts: 100,
			X: 812.5, Y: 544.2, Worn: true,
			FixationID: NullInt64Of(3),
			Azimuth:    12.4, Elevation: -3.1,
		},
		{
			RecordingID: "rec-1", Ts: 200,
			X: 815.0, Y: 546.0, Worn: false,
			BlinkID: NullInt64Of(1),
		},
	}

	tbl := GazeTable(in)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	out, err := GazeSamples("rec-1", tbl)
	if err != nil {
		t.Fatalf("GazeSamples: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if *out[0] != *in[0] || *out[1] != *in[1] {
		t.Errorf("round trip altered samples:\n got %+v %+v\nwant %+v %+v",
			out[0], out[1], in[0], in[1])
	}
}

func TestGazeTable_MatchesGazeSchema(t *testing.T) {
	tbl := GazeTable([]*GazeSample{{RecordingID: "rec-1", Ts: 0}})
	for _, f := range StreamGaze.Schema() {
		col, ok := tbl.Column(f.Name)
		if !ok {
			t.Errorf("column %q missing from gaze table", f.Name)
			continue
		}
		if col.Type != f.Type {
			t.Errorf("column %q is %s, schema wants %s", f.Name, col.Type, f.Type)
		}
	}
}

func TestGazeSamples_MissingColumn(t *testing.T) {
	tbl := &Table{Timestamps: []int64{0}, Columns: []Column{
		{Name: "gaze x [px]", Type: ColumnFloat64, Floats: []float64{1}},
	}}
	if _, err := GazeSamples("rec-1", tbl); err == nil {
		t.Error("expected error for incomplete gaze table")
	}
}

func TestIMUTable_RoundTrip(t *testing.T) {
	in := []*IMUSample{
		{
			RecordingID: "rec-1", Ts: 100,
			GyroX: 0.1, GyroY: 0.2, GyroZ: 0.3,
			AccelX: 9.8, AccelY: 0.0, AccelZ: 0.1,
			Roll: 1, Pitch: 2, Yaw: 3,
			QuatW: 1, QuatX: 0, QuatY: 0, QuatZ: 0,
		},
	}

	tbl := IMUTable(in)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(tbl.Columns) != len(StreamIMU.Schema()) {
		t.Fatalf("column count = %d, want %d", len(tbl.Columns), len(StreamIMU.Schema()))
	}

	out, err := IMUSamples("rec-1", tbl)
	if err != nil {
		t.Fatalf("IMUSamples: %v", err)
	}
	if len(out) != 1 || *out[0] != *in[0] {
		t.Errorf("round trip altered sample: got %+v, want %+v", out[0], in[0])
	}
}

func TestFixationsTable(t *testing.T) {
	fixations := []*Fixation{
		{RecordingID: "rec-1", FixationID: 1, StartTs: 100, EndTs: 300, DurationMs: 200, X: 10, Y: 20},
		{RecordingID: "rec-1", FixationID: 2, StartTs: 500, EndTs: 600, DurationMs: 100, X: 30, Y: 40},
	}

	tbl := FixationsTable(fixations)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	// Timestamp index is the event start
	if tbl.Timestamps[0] != 100 || tbl.Timestamps[1] != 500 {
		t.Errorf("timestamps = %v, want [100 500]", tbl.Timestamps)
	}
	ids, _ := tbl.Column("fixation id")
	if ids.Ints[0] != 1 || ids.Ints[1] != 2 {
		t.Errorf("fixation ids = %v, want [1 2]", ids.Ints)
	}
	for _, f := range EventFixations.Schema() {
		if _, ok := tbl.Column(f.Name); !ok {
			t.Errorf("column %q missing from fixations table", f.Name)
		}
	}
}

func TestSaccadesTable_IndexedByEndTimestamp(t *testing.T) {
	saccades := []*Saccade{
		{RecordingID: "rec-1", SaccadeID: 1, EndTs: 300, DurationMs: 40, AmplitudePx: 120},
		{RecordingID: "rec-1", SaccadeID: 2, EndTs: 700, DurationMs: 35, AmplitudePx: 80},
	}

	tbl := SaccadesTable(saccades)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if tbl.Timestamps[0] != 300 || tbl.Timestamps[1] != 700 {
		t.Errorf("timestamps = %v, want [300 700]", tbl.Timestamps)
	}
	for _, f := range EventSaccades.Schema() {
		if _, ok := tbl.Column(f.Name); !ok {
			t.Errorf("column %q missing from saccades table", f.Name)
		}
	}
}

func TestMarkersTable(t *testing.T) {
	markers := []*Marker{
		{RecordingID: "rec-1", Ts: 100, Name: "task.start", Type: "interval"},
		{RecordingID: "rec-1", Ts: 900, Name: "task.end", Type: "interval"},
	}

	tbl := MarkersTable(markers)
	if err := tbl.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	names, _ := tbl.Column("name")
	if names.Strings[0] != "task.start" || names.Strings[1] != "task.end" {
		t.Errorf("names = %v", names.Strings)
	}
}

func TestStreamKind_NominalRate(t *testing.T) {
	cases := []struct {
		kind StreamKind
		want float64
	}{
		{StreamGaze, 200},
		{StreamEyeStates, 200},
		{StreamIMU, 110},
		{StreamCustom, 0},
	}
	for _, c := range cases {
		if got := c.kind.NominalRate(); got != c.want {
			t.Errorf("%s nominal rate = %v, want %v", c.kind, got, c.want)
		}
	}
}
