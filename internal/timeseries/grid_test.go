package timeseries

import (
	"errors"
	"testing"
)

func TestGrid_FirstElementAndFixedStep(t *testing.T) {
	first := int64(1700000000000000000)
	last := first + 1_000_000_000 // one second
	rate := 200.0                 // 5 ms step

	grid, err := Grid(first, last, rate)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if grid[0] != first {
		t.Errorf("first grid element must equal first timestamp: expected %d, got %d", first, grid[0])
	}

	step := int64(5_000_000)
	for i := 1; i < len(grid); i++ {
		if grid[i]-grid[i-1] != step {
			t.Errorf("delta at %d: expected %d, got %d", i, step, grid[i]-grid[i-1])
		}
	}

	if grid[len(grid)-1] >= last {
		t.Errorf("grid must stop before last timestamp %d, got %d", last, grid[len(grid)-1])
	}
	if len(grid) != 200 {
		t.Errorf("expected 200 points over one second at 200 Hz, got %d", len(grid))
	}
}

func TestGrid_TruncatesPartialInterval(t *testing.T) {
	// Span is not an exact multiple of the step: the final partial
	// interval is dropped, never rounded up.
	grid, err := Grid(0, 23, 1e9/10) // step 10 ns, span 23 ns
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	want := []int64{0, 10, 20}
	if len(grid) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(grid))
	}
	for i, w := range want {
		if grid[i] != w {
			t.Errorf("point %d: expected %d, got %d", i, w, grid[i])
		}
	}
}

func TestGrid_StepRounding(t *testing.T) {
	// 110 Hz: 1e9/110 = 9090909.09..., rounds to 9090909 ns.
	grid, err := Grid(0, 100_000_000, 110)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if grid[1]-grid[0] != 9090909 {
		t.Errorf("expected rounded step 9090909, got %d", grid[1]-grid[0])
	}
}

func TestGrid_MissingNominalRate(t *testing.T) {
	_, err := Grid(0, 1000, 0)
	if !errors.Is(err, ErrMissingNominalRate) {
		t.Errorf("expected ErrMissingNominalRate, got %v", err)
	}
}

func TestGrid_DegenerateSpan(t *testing.T) {
	_, err := Grid(1000, 1000, 200)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty span, got %v", err)
	}
}
