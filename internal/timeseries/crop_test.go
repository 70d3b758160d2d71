package timeseries

import (
	"errors"
	"testing"

	"eye-stream-lab/internal/domain"
)

// testTable builds a small gaze-like table with the given timestamps and
// one float column holding values.
func testTable(timestamps []int64, values []float64) *domain.Table {
	return &domain.Table{
		Timestamps: timestamps,
		Columns: []domain.Column{
			{Name: "gaze x [px]", Type: domain.ColumnFloat64, Floats: values},
		},
	}
}

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestCrop_ClosedInterval(t *testing.T) {
	tbl := testTable([]int64{0, 10, 20}, []float64{1.0, 3.0, 5.0})

	out, err := Crop(tbl, Interval{Min: i64(5), Max: i64(15)})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if out.Len() != 1 || out.Timestamps[0] != 10 {
		t.Errorf("expected timestamps [10], got %v", out.Timestamps)
	}
}

func TestCrop_SubsetInOriginalOrder(t *testing.T) {
	tbl := testTable([]int64{100, 200, 300, 400, 500}, []float64{1, 2, 3, 4, 5})

	out, err := Crop(tbl, Interval{Min: i64(200), Max: i64(400)})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	want := []int64{200, 300, 400}
	if len(out.Timestamps) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(out.Timestamps))
	}
	for i, ts := range want {
		if out.Timestamps[i] != ts {
			t.Errorf("row %d: expected ts %d, got %d", i, ts, out.Timestamps[i])
		}
	}

	col, _ := out.Column("gaze x [px]")
	if col.Floats[0] != 2 || col.Floats[2] != 4 {
		t.Errorf("column values not aligned with cropped rows: %v", col.Floats)
	}
}

func TestCrop_BothBoundsUnsetIsIdentity(t *testing.T) {
	tbl := testTable([]int64{0, 10, 20}, []float64{1.0, 3.0, 5.0})

	out, err := Crop(tbl, Interval{})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if out.Len() != tbl.Len() {
		t.Fatalf("expected %d rows, got %d", tbl.Len(), out.Len())
	}
	for i := range tbl.Timestamps {
		if out.Timestamps[i] != tbl.Timestamps[i] {
			t.Errorf("row %d: expected ts %d, got %d", i, tbl.Timestamps[i], out.Timestamps[i])
		}
	}
}

func TestCrop_InclusiveBounds(t *testing.T) {
	tbl := testTable([]int64{0, 10, 20}, []float64{1.0, 3.0, 5.0})

	out, err := Crop(tbl, Interval{Min: i64(0), Max: i64(20)})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if out.Len() != 3 {
		t.Errorf("closed interval must include both endpoints, got %d rows", out.Len())
	}
}

func TestCrop_EmptyResult(t *testing.T) {
	tbl := testTable([]int64{0, 10, 20}, []float64{1.0, 3.0, 5.0})

	_, err := Crop(tbl, Interval{Min: i64(100), Max: i64(200)})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("expected ErrEmptyResult, got %v", err)
	}
}

func TestCrop_InvalidRange(t *testing.T) {
	tbl := testTable([]int64{0, 10, 20}, []float64{1.0, 3.0, 5.0})

	_, err := Crop(tbl, Interval{Min: i64(15), Max: i64(5)})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestCrop_EmptyTable(t *testing.T) {
	tbl := &domain.Table{}

	_, err := Crop(tbl, Interval{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRelativeInterval_EquivalentToAbsolute(t *testing.T) {
	// crop(by time, tmin=0, tmax=duration) == crop(by timestamp, first..last)
	first := int64(1700000000000000000)
	tbl := testTable(
		[]int64{first, first + 5_000_000_000, first + 10_000_000_000},
		[]float64{1, 2, 3},
	)
	duration := 10.0 // seconds

	byTime, err := Crop(tbl, RelativeInterval(first, f64(0), f64(duration)))
	if err != nil {
		t.Fatalf("relative crop failed: %v", err)
	}
	byTs, err := Crop(tbl, Interval{Min: i64(first), Max: i64(tbl.LastTs())})
	if err != nil {
		t.Fatalf("absolute crop failed: %v", err)
	}

	if byTime.Len() != byTs.Len() {
		t.Fatalf("relative and absolute crops differ: %d vs %d rows", byTime.Len(), byTs.Len())
	}
	for i := range byTime.Timestamps {
		if byTime.Timestamps[i] != byTs.Timestamps[i] {
			t.Errorf("row %d: relative %d vs absolute %d", i, byTime.Timestamps[i], byTs.Timestamps[i])
		}
	}
}

func TestRelativeInterval_RoundsToNanoseconds(t *testing.T) {
	iv := RelativeInterval(1000, f64(0.5), nil)
	if iv.Min == nil || *iv.Min != 1000+500_000_000 {
		t.Errorf("expected min 500000000 ns past first, got %v", iv.Min)
	}
	if iv.Max != nil {
		t.Errorf("expected unset max to stay nil, got %v", iv.Max)
	}
}
