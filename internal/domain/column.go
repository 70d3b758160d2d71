package domain

import "fmt"

// ColumnType identifies the value type carried by a column.
type ColumnType int

const (
	ColumnFloat64 ColumnType = iota
	ColumnInt64
	ColumnBool
	ColumnString
	ColumnNullableInt64
)

// String returns the lowercase name of the column type.
func (t ColumnType) String() string {
	switch t {
	case ColumnFloat64:
		return "float64"
	case ColumnInt64:
		return "int64"
	case ColumnBool:
		return "bool"
	case ColumnString:
		return "string"
	case ColumnNullableInt64:
		return "nullable_int64"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// NullInt64 is a nullable integer value. Used for columns such as
// "fixation id" where samples outside a fixation carry no value.
type NullInt64 struct {
	Int64 int64
	Valid bool
}

// NullInt64Of wraps a present value.
func NullInt64Of(v int64) NullInt64 {
	return NullInt64{Int64: v, Valid: true}
}

// Column is a single named, typed column of a Table. Exactly one of the
// value slices is populated, selected by Type.
type Column struct {
	Name string
	Type ColumnType

	Floats   []float64
	Ints     []int64
	Bools    []bool
	Strings  []string
	NullInts []NullInt64
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	switch c.Type {
	case ColumnFloat64:
		return len(c.Floats)
	case ColumnInt64:
		return len(c.Ints)
	case ColumnBool:
		return len(c.Bools)
	case ColumnString:
		return len(c.Strings)
	case ColumnNullableInt64:
		return len(c.NullInts)
	default:
		return 0
	}
}

// Select returns a new column holding the values at the given row indices,
// in the given order.
func (c *Column) Select(rows []int) Column {
	out := Column{Name: c.Name, Type: c.Type}
	switch c.Type {
	case ColumnFloat64:
		out.Floats = make([]float64, len(rows))
		for i, r := range rows {
			out.Floats[i] = c.Floats[r]
		}
	case ColumnInt64:
		out.Ints = make([]int64, len(rows))
		for i, r := range rows {
			out.Ints[i] = c.Ints[r]
		}
	case ColumnBool:
		out.Bools = make([]bool, len(rows))
		for i, r := range rows {
			out.Bools[i] = c.Bools[r]
		}
	case ColumnString:
		out.Strings = make([]string, len(rows))
		for i, r := range rows {
			out.Strings[i] = c.Strings[r]
		}
	case ColumnNullableInt64:
		out.NullInts = make([]NullInt64, len(rows))
		for i, r := range rows {
			out.NullInts[i] = c.NullInts[r]
		}
	}
	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() Column {
	out := Column{Name: c.Name, Type: c.Type}
	switch c.Type {
	case ColumnFloat64:
		out.Floats = append([]float64(nil), c.Floats...)
	case ColumnInt64:
		out.Ints = append([]int64(nil), c.Ints...)
	case ColumnBool:
		out.Bools = append([]bool(nil), c.Bools...)
	case ColumnString:
		out.Strings = append([]string(nil), c.Strings...)
	case ColumnNullableInt64:
		out.NullInts = append([]NullInt64(nil), c.NullInts...)
	}
	return out
}
