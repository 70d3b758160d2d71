package timeseries

import (
	"fmt"
	"sort"

	"eye-stream-lab/internal/domain"
)

// Policy selects how a column value is evaluated at a target timestamp
// between two bracketing samples.
type Policy int

const (
	// PolicyLinear interpolates linearly between the bracketing samples.
	// Only valid for float columns.
	PolicyLinear Policy = iota

	// PolicyNearest picks the bracketing sample whose timestamp is closest
	// to the target. Ties resolve to the earlier sample.
	PolicyNearest

	// PolicyPrevious picks the bracketing sample at or before the target.
	PolicyPrevious

	// PolicyNext picks the bracketing sample at or after the target.
	PolicyNext
)

// String returns the lowercase name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyLinear:
		return "linear"
	case PolicyNearest:
		return "nearest"
	case PolicyPrevious:
		return "previous"
	case PolicyNext:
		return "next"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// bracket holds the two source row indices around a target timestamp and
// the target itself. lower == upper marks an exact hit.
type bracket struct {
	ts    int64
	lower int
	upper int
}

// Interpolate evaluates the table at newTs and returns the resulting
// table with one interpolated value per original column per target.
//
// Float columns use floatPolicy; all other column types use otherPolicy,
// which must be a selecting policy (nearest, previous or next).
//
// Returns ErrInsufficientData if the table has fewer than two rows,
// ErrOutOfRange if any target lies outside the table's timestamp bounds,
// and ErrInvalidInput if newTs is not strictly increasing or a policy is
// not applicable.
func Interpolate(newTs []int64, tbl *domain.Table, floatPolicy, otherPolicy Policy) (*domain.Table, error) {
	if tbl.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d rows", ErrInsufficientData, tbl.Len())
	}
	if len(newTs) == 0 {
		return nil, fmt.Errorf("%w: no target timestamps", ErrInvalidInput)
	}
	for i := 1; i < len(newTs); i++ {
		if newTs[i] <= newTs[i-1] {
			return nil, fmt.Errorf("%w: target timestamps not strictly increasing at index %d", ErrInvalidInput, i)
		}
	}
	if floatPolicy < PolicyLinear || floatPolicy > PolicyNext {
		return nil, fmt.Errorf("%w: unknown float policy %d", ErrInvalidInput, int(floatPolicy))
	}
	if otherPolicy < PolicyNearest || otherPolicy > PolicyNext {
		return nil, fmt.Errorf("%w: policy %s not applicable to non-float columns", ErrInvalidInput, otherPolicy)
	}

	first, last := tbl.FirstTs(), tbl.LastTs()
	if newTs[0] < first || newTs[len(newTs)-1] > last {
		return nil, fmt.Errorf("%w: targets [%d, %d] outside source [%d, %d]",
			ErrOutOfRange, newTs[0], newTs[len(newTs)-1], first, last)
	}

	brackets := computeBrackets(newTs, tbl.Timestamps)

	out := &domain.Table{
		Timestamps: append([]int64(nil), newTs...),
		Columns:    make([]domain.Column, len(tbl.Columns)),
	}
	for i := range tbl.Columns {
		col := &tbl.Columns[i]
		policy := otherPolicy
		if col.Type == domain.ColumnFloat64 {
			policy = floatPolicy
		}
		out.Columns[i] = interpolateColumn(col, tbl.Timestamps, brackets, policy)
	}
	return out, nil
}

// computeBrackets finds, for each target, the source rows immediately at or
// around it. Targets are already validated to lie within the source bounds.
func computeBrackets(newTs, srcTs []int64) []bracket {
	brackets := make([]bracket, len(newTs))
	for i, t := range newTs {
		j := sort.Search(len(srcTs), func(k int) bool { return srcTs[k] >= t })
		if srcTs[j] == t {
			brackets[i] = bracket{ts: t, lower: j, upper: j}
		} else {
			brackets[i] = bracket{ts: t, lower: j - 1, upper: j}
		}
	}
	return brackets
}

// pick resolves a selecting policy to one of the bracketing indices.
func (b bracket) pick(srcTs []int64, policy Policy) int {
	if b.lower == b.upper {
		return b.lower
	}
	switch policy {
	case PolicyPrevious:
		return b.lower
	case PolicyNext:
		return b.upper
	default: // PolicyNearest, ties resolve to the earlier sample
		if b.ts-srcTs[b.lower] <= srcTs[b.upper]-b.ts {
			return b.lower
		}
		return b.upper
	}
}

func interpolateColumn(col *domain.Column, srcTs []int64, brackets []bracket, policy Policy) domain.Column {
	out := domain.Column{Name: col.Name, Type: col.Type}

	if col.Type == domain.ColumnFloat64 && policy == PolicyLinear {
		out.Floats = make([]float64, len(brackets))
		for i, b := range brackets {
			if b.lower == b.upper {
				out.Floats[i] = col.Floats[b.lower]
				continue
			}
			t0, t1 := srcTs[b.lower], srcTs[b.upper]
			v0, v1 := col.Floats[b.lower], col.Floats[b.upper]
			out.Floats[i] = v0 + (v1-v0)*float64(b.ts-t0)/float64(t1-t0)
		}
		return out
	}

	rows := make([]int, len(brackets))
	for i, b := range brackets {
		rows[i] = b.pick(srcTs, policy)
	}
	return col.Select(rows)
}
