package timeseries

import (
	"fmt"
	"math"
	"sort"

	"eye-stream-lab/internal/domain"
)

// Interval selects a closed timestamp range [Min, Max] in absolute
// nanoseconds. A nil bound extends to the corresponding data bound.
type Interval struct {
	Min *int64
	Max *int64
}

// RelativeInterval converts relative bounds in seconds since firstTs into
// an absolute Interval: firstTs + round(t * 1e9). Nil bounds stay nil.
func RelativeInterval(firstTs int64, tmin, tmax *float64) Interval {
	var iv Interval
	if tmin != nil {
		ts := firstTs + int64(math.Round(*tmin*1e9))
		iv.Min = &ts
	}
	if tmax != nil {
		ts := firstTs + int64(math.Round(*tmax*1e9))
		iv.Max = &ts
	}
	return iv
}

// Crop returns the sub-table of rows whose timestamp lies in the closed
// interval, preserving row order. The table must be non-empty and sorted
// by timestamp.
//
// Returns ErrInvalidRange if the resolved interval has min > max, and
// ErrEmptyResult if no rows fall inside it.
func Crop(tbl *domain.Table, iv Interval) (*domain.Table, error) {
	if tbl.Len() == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrInvalidInput)
	}

	tmin := tbl.FirstTs()
	if iv.Min != nil {
		tmin = *iv.Min
	}
	tmax := tbl.LastTs()
	if iv.Max != nil {
		tmax = *iv.Max
	}

	if tmin > tmax {
		return nil, fmt.Errorf("%w: %d > %d", ErrInvalidRange, tmin, tmax)
	}

	ts := tbl.Timestamps
	lo := sort.Search(len(ts), func(i int) bool { return ts[i] >= tmin })
	hi := sort.Search(len(ts), func(i int) bool { return ts[i] > tmax })
	if lo >= hi {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyResult, tmin, tmax)
	}

	return tbl.Slice(lo, hi), nil
}
