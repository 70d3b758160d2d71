// Package stream wraps a timestamped table with derived recording
// attributes and exposes crop/resample as copying or mutating operations.
package stream

import (
	"fmt"

	"eye-stream-lab/internal/domain"
	"eye-stream-lab/internal/timeseries"
)

// Stream owns one timestamped table plus scalar attributes derived from
// it. Attributes are recomputed whenever the owned table is replaced,
// never left stale.
type Stream struct {
	Kind        domain.StreamKind
	NominalRate float64 // Hz, 0 when externally supplied

	table *domain.Table

	// Derived attributes, valid for the current table.
	FirstTs       int64     // nanoseconds
	LastTs        int64     // nanoseconds
	Times         []float64 // seconds since FirstTs, one per row
	Duration      float64   // seconds
	EffectiveRate float64   // rows / duration
}

// New constructs a stream of the given kind around tbl. Device stream
// kinds are schema-coerced and pick up their nominal sampling rate;
// use NewCustom for externally supplied data.
func New(kind domain.StreamKind, tbl *domain.Table) (*Stream, error) {
	if kind != domain.StreamCustom {
		coerced, err := domain.Coerce(tbl, kind.Schema())
		if err != nil {
			return nil, fmt.Errorf("coerce %s table: %w", kind, err)
		}
		tbl = coerced
	}

	s := &Stream{Kind: kind, NominalRate: kind.NominalRate()}
	if err := s.setTable(tbl); err != nil {
		return nil, err
	}
	return s, nil
}

// NewCustom constructs a stream from caller-supplied data. No schema is
// enforced and no nominal rate is configured, which disables the
// automatic resampling grid.
func NewCustom(tbl *domain.Table) (*Stream, error) {
	return New(domain.StreamCustom, tbl)
}

// Table returns the owned table.
func (s *Stream) Table() *domain.Table {
	return s.table
}

// Timestamps returns the owned table's timestamp index.
func (s *Stream) Timestamps() []int64 {
	return s.table.Timestamps
}

// setTable validates tbl, replaces the owned table and recomputes the
// derived attributes. Replacement and recomputation happen together, or
// not at all.
func (s *Stream) setTable(tbl *domain.Table) error {
	if tbl.Len() == 0 {
		return fmt.Errorf("%w: stream table must be non-empty", timeseries.ErrInvalidInput)
	}
	if err := tbl.Validate(); err != nil {
		return fmt.Errorf("%w: %v", timeseries.ErrInvalidInput, err)
	}

	s.table = tbl
	s.refresh()
	return nil
}

// refresh recomputes the derived attributes from the owned table.
func (s *Stream) refresh() {
	s.FirstTs = s.table.FirstTs()
	s.LastTs = s.table.LastTs()

	s.Times = make([]float64, s.table.Len())
	for i, ts := range s.table.Timestamps {
		s.Times[i] = float64(ts-s.FirstTs) / 1e9
	}
	s.Duration = s.Times[len(s.Times)-1]
	if s.Duration > 0 {
		s.EffectiveRate = float64(s.table.Len()) / s.Duration
	} else {
		s.EffectiveRate = 0
	}
}

// CropByTimestamp restricts the stream to the closed interval
// [tmin, tmax] in absolute nanoseconds. Nil bounds extend to the data
// bounds. When inplace, the owned table is replaced and derived
// attributes recomputed; the resulting table is always returned.
func (s *Stream) CropByTimestamp(tmin, tmax *int64, inplace bool) (*domain.Table, error) {
	out, err := timeseries.Crop(s.table, timeseries.Interval{Min: tmin, Max: tmax})
	if err != nil {
		return nil, err
	}
	if inplace {
		if err := s.setTable(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CropByTime restricts the stream to the closed interval [tmin, tmax] in
// seconds since the first timestamp. Nil bounds extend to the data
// bounds; mutate semantics match CropByTimestamp.
func (s *Stream) CropByTime(tmin, tmax *float64, inplace bool) (*domain.Table, error) {
	out, err := timeseries.Crop(s.table, timeseries.RelativeInterval(s.FirstTs, tmin, tmax))
	if err != nil {
		return nil, err
	}
	if inplace {
		if err := s.setTable(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Resample evaluates the stream at newTs. When newTs is nil, the target
// grid is generated from the nominal sampling rate: evenly spaced from
// the first timestamp up to (not including) the last. Returns
// ErrMissingNominalRate for streams without a configured rate.
func (s *Stream) Resample(newTs []int64, floatPolicy, otherPolicy timeseries.Policy, inplace bool) (*domain.Table, error) {
	if newTs == nil {
		grid, err := timeseries.Grid(s.FirstTs, s.LastTs, s.NominalRate)
		if err != nil {
			return nil, err
		}
		newTs = grid
	}

	out, err := timeseries.Interpolate(newTs, s.table, floatPolicy, otherPolicy)
	if err != nil {
		return nil, err
	}
	if inplace {
		if err := s.setTable(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}
