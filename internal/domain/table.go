package domain

import "fmt"

// Table is a timestamped tabular view: rows keyed by a strictly increasing
// int64 timestamp (nanoseconds since an arbitrary epoch), each row holding
// a fixed set of named typed columns.
type Table struct {
	Timestamps []int64
	Columns    []Column
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Timestamps)
}

// FirstTs returns the first timestamp. The table must be non-empty.
func (t *Table) FirstTs() int64 {
	return t.Timestamps[0]
}

// LastTs returns the last timestamp. The table must be non-empty.
func (t *Table) LastTs() int64 {
	return t.Timestamps[len(t.Timestamps)-1]
}

// Column returns the column with the given name, or false if absent.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Validate checks structural invariants: timestamps strictly increasing
// (implies unique) and every column as long as the timestamp index.
func (t *Table) Validate() error {
	for i := 1; i < len(t.Timestamps); i++ {
		if t.Timestamps[i] <= t.Timestamps[i-1] {
			return fmt.Errorf("timestamps not strictly increasing at row %d: %d after %d",
				i, t.Timestamps[i], t.Timestamps[i-1])
		}
	}
	for i := range t.Columns {
		if got := t.Columns[i].Len(); got != len(t.Timestamps) {
			return fmt.Errorf("column %q has %d values, expected %d",
				t.Columns[i].Name, got, len(t.Timestamps))
		}
	}
	return nil
}

// Select returns a new table holding the rows at the given indices,
// in the given order.
func (t *Table) Select(rows []int) *Table {
	out := &Table{
		Timestamps: make([]int64, len(rows)),
		Columns:    make([]Column, len(t.Columns)),
	}
	for i, r := range rows {
		out.Timestamps[i] = t.Timestamps[r]
	}
	for i := range t.Columns {
		out.Columns[i] = t.Columns[i].Select(rows)
	}
	return out
}

// Slice returns a new table holding rows [lo, hi).
func (t *Table) Slice(lo, hi int) *Table {
	out := &Table{
		Timestamps: append([]int64(nil), t.Timestamps[lo:hi]...),
		Columns:    make([]Column, len(t.Columns)),
	}
	rows := make([]int, 0, hi-lo)
	for r := lo; r < hi; r++ {
		rows = append(rows, r)
	}
	for i := range t.Columns {
		out.Columns[i] = t.Columns[i].Select(rows)
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Timestamps: append([]int64(nil), t.Timestamps...),
		Columns:    make([]Column, len(t.Columns)),
	}
	for i := range t.Columns {
		out.Columns[i] = t.Columns[i].Clone()
	}
	return out
}
