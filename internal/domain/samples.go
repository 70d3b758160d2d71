package domain

import "fmt"

// GazeSample is one gaze row as persisted in the sample archive.
type GazeSample struct {
	RecordingID string
	Ts          int64 // nanoseconds
	X           float64
	Y           float64
	Worn        bool
	FixationID  NullInt64
	BlinkID     NullInt64
	Azimuth     float64 // [deg]
	Elevation   float64 // [deg]
}

// IMUSample is one IMU row as persisted in the sample archive.
type IMUSample struct {
	RecordingID string
	Ts          int64 // nanoseconds
	GyroX       float64
	GyroY       float64
	GyroZ       float64
	AccelX      float64
	AccelY      float64
	AccelZ      float64
	Roll        float64
	Pitch       float64
	Yaw         float64
	QuatW       float64
	QuatX       float64
	QuatY       float64
	QuatZ       float64
}

// GazeTable builds the gaze stream table from archive samples.
// Samples must be pre-sorted by timestamp ascending.
func GazeTable(samples []*GazeSample) *Table {
	n := len(samples)
	timestamps := make([]int64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	worn := make([]bool, n)
	fixationIDs := make([]NullInt64, n)
	blinkIDs := make([]NullInt64, n)
	azimuths := make([]float64, n)
	elevations := make([]float64, n)
	for i, s := range samples {
		timestamps[i] = s.Ts
		xs[i] = s.X
		ys[i] = s.Y
		worn[i] = s.Worn
		fixationIDs[i] = s.FixationID
		blinkIDs[i] = s.BlinkID
		azimuths[i] = s.Azimuth
		elevations[i] = s.Elevation
	}
	return &Table{
		Timestamps: timestamps,
		Columns: []Column{
			{Name: "gaze x [px]", Type: ColumnFloat64, Floats: xs},
			{Name: "gaze y [px]", Type: ColumnFloat64, Floats: ys},
			{Name: "worn", Type: ColumnBool, Bools: worn},
			{Name: "fixation id", Type: ColumnNullableInt64, NullInts: fixationIDs},
			{Name: "blink id", Type: ColumnNullableInt64, NullInts: blinkIDs},
			{Name: "azimuth [deg]", Type: ColumnFloat64, Floats: azimuths},
			{Name: "elevation [deg]", Type: ColumnFloat64, Floats: elevations},
		},
	}
}

// GazeSamples converts a gaze stream table back to archive samples.
func GazeSamples(recordingID string, tbl *Table) ([]*GazeSample, error) {
	xs, err := floatColumn(tbl, "gaze x [px]")
	if err != nil {
		return nil, err
	}
	ys, err := floatColumn(tbl, "gaze y [px]")
	if err != nil {
		return nil, err
	}
	worn, err := boolColumn(tbl, "worn")
	if err != nil {
		return nil, err
	}
	fixationIDs, err := nullIntColumn(tbl, "fixation id")
	if err != nil {
		return nil, err
	}
	blinkIDs, err := nullIntColumn(tbl, "blink id")
	if err != nil {
		return nil, err
	}
	azimuths, err := floatColumn(tbl, "azimuth [deg]")
	if err != nil {
		return nil, err
	}
	elevations, err := floatColumn(tbl, "elevation [deg]")
	if err != nil {
		return nil, err
	}

	samples := make([]*GazeSample, tbl.Len())
	for i := range samples {
		samples[i] = &GazeSample{
			RecordingID: recordingID,
			Ts:          tbl.Timestamps[i],
			X:           xs[i],
			Y:           ys[i],
			Worn:        worn[i],
			FixationID:  fixationIDs[i],
			BlinkID:     blinkIDs[i],
			Azimuth:     azimuths[i],
			Elevation:   elevations[i],
		}
	}
	return samples, nil
}

// IMUTable builds the IMU stream table from archive samples.
// Samples must be pre-sorted by timestamp ascending.
func IMUTable(samples []*IMUSample) *Table {
	n := len(samples)
	timestamps := make([]int64, n)
	cols := make([][]float64, len(imuSchema))
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	for i, s := range samples {
		timestamps[i] = s.Ts
		values := []float64{
			s.GyroX, s.GyroY, s.GyroZ,
			s.AccelX, s.AccelY, s.AccelZ,
			s.Roll, s.Pitch, s.Yaw,
			s.QuatW, s.QuatX, s.QuatY, s.QuatZ,
		}
		for j, v := range values {
			cols[j][i] = v
		}
	}
	columns := make([]Column, len(imuSchema))
	for j, f := range imuSchema {
		columns[j] = Column{Name: f.Name, Type: ColumnFloat64, Floats: cols[j]}
	}
	return &Table{Timestamps: timestamps, Columns: columns}
}

// IMUSamples converts an IMU stream table back to archive samples.
func IMUSamples(recordingID string, tbl *Table) ([]*IMUSample, error) {
	cols := make([][]float64, len(imuSchema))
	for j, f := range imuSchema {
		vals, err := floatColumn(tbl, f.Name)
		if err != nil {
			return nil, err
		}
		cols[j] = vals
	}

	samples := make([]*IMUSample, tbl.Len())
	for i := range samples {
		samples[i] = &IMUSample{
			RecordingID: recordingID,
			Ts:          tbl.Timestamps[i],
			GyroX:       cols[0][i],
			GyroY:       cols[1][i],
			GyroZ:       cols[2][i],
			AccelX:      cols[3][i],
			AccelY:      cols[4][i],
			AccelZ:      cols[5][i],
			Roll:        cols[6][i],
			Pitch:       cols[7][i],
			Yaw:         cols[8][i],
			QuatW:       cols[9][i],
			QuatX:       cols[10][i],
			QuatY:       cols[11][i],
			QuatZ:       cols[12][i],
		}
	}
	return samples, nil
}

func floatColumn(tbl *Table, name string) ([]float64, error) {
	col, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q missing from table", name)
	}
	if col.Type != ColumnFloat64 {
		return nil, fmt.Errorf("column %q is %s, expected float64", name, col.Type)
	}
	return col.Floats, nil
}

func boolColumn(tbl *Table, name string) ([]bool, error) {
	col, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q missing from table", name)
	}
	if col.Type != ColumnBool {
		return nil, fmt.Errorf("column %q is %s, expected bool", name, col.Type)
	}
	return col.Bools, nil
}

func nullIntColumn(tbl *Table, name string) ([]NullInt64, error) {
	col, ok := tbl.Column(name)
	if !ok {
		return nil, fmt.Errorf("column %q missing from table", name)
	}
	if col.Type != ColumnNullableInt64 {
		return nil, fmt.Errorf("column %q is %s, expected nullable_int64", name, col.Type)
	}
	return col.NullInts, nil
}
