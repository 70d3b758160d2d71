package timeseries

import (
	"fmt"
	"math"
)

// Grid generates the default resampling grid for a stream: an evenly
// spaced sequence of timestamps starting exactly at firstTs with step
// round(1e9 / nominalRate), extending up to but not including lastTs.
// A final partial interval is truncated, not rounded up.
//
// Returns ErrMissingNominalRate when nominalRate is not positive.
func Grid(firstTs, lastTs int64, nominalRate float64) ([]int64, error) {
	if nominalRate <= 0 {
		return nil, ErrMissingNominalRate
	}
	step := int64(math.Round(1e9 / nominalRate))
	if step <= 0 {
		return nil, fmt.Errorf("%w: nominal rate %g yields zero step", ErrInvalidInput, nominalRate)
	}
	if lastTs <= firstTs {
		return nil, fmt.Errorf("%w: last timestamp %d not after first %d", ErrInvalidInput, lastTs, firstTs)
	}

	grid := make([]int64, 0, (lastTs-firstTs)/step+1)
	for ts := firstTs; ts < lastTs; ts += step {
		grid = append(grid, ts)
	}
	return grid, nil
}
