package domain

import "testing"

func twoColumnTable() *Table {
	return &Table{
		Timestamps: []int64{0, 10, 20, 30},
		Columns: []Column{
			{Name: "value", Type: ColumnFloat64, Floats: []float64{1, 2, 3, 4}},
			{Name: "label", Type: ColumnString, Strings: []string{"a", "b", "c", "d"}},
		},
	}
}

func TestTable_Validate(t *testing.T) {
	tbl := twoColumnTable()
	if err := tbl.Validate(); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}
}

func TestTable_Validate_NonIncreasingTimestamps(t *testing.T) {
	tbl := twoColumnTable()
	tbl.Timestamps[2] = 10 // duplicate of row 1
	if err := tbl.Validate(); err == nil {
		t.Error("expected error for duplicate timestamp")
	}

	tbl = twoColumnTable()
	tbl.Timestamps[1] = -5 // decreasing
	if err := tbl.Validate(); err == nil {
		t.Error("expected error for decreasing timestamp")
	}
}

func TestTable_Validate_ColumnLengthMismatch(t *testing.T) {
	tbl := twoColumnTable()
	tbl.Columns[0].Floats = tbl.Columns[0].Floats[:3]
	if err := tbl.Validate(); err == nil {
		t.Error("expected error for short column")
	}
}

func TestTable_Select(t *testing.T) {
	tbl := twoColumnTable()
	out := tbl.Select([]int{1, 3})

	if out.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", out.Len())
	}
	if out.Timestamps[0] != 10 || out.Timestamps[1] != 30 {
		t.Errorf("timestamps = %v, want [10 30]", out.Timestamps)
	}
	col, _ := out.Column("label")
	if col.Strings[0] != "b" || col.Strings[1] != "d" {
		t.Errorf("labels = %v, want [b d]", col.Strings)
	}
}

func TestTable_Slice(t *testing.T) {
	tbl := twoColumnTable()
	out := tbl.Slice(1, 3)

	if out.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", out.Len())
	}
	if out.FirstTs() != 10 || out.LastTs() != 20 {
		t.Errorf("bounds = [%d, %d], want [10, 20]", out.FirstTs(), out.LastTs())
	}

	// Slices are copies; mutating the source must not leak through
	tbl.Timestamps[1] = 999
	tbl.Columns[0].Floats[1] = 999
	if out.Timestamps[0] != 10 {
		t.Error("slice shares timestamp storage with source")
	}
	col, _ := out.Column("value")
	if col.Floats[0] != 2 {
		t.Error("slice shares column storage with source")
	}
}

func TestTable_Clone_Independent(t *testing.T) {
	tbl := twoColumnTable()
	cp := tbl.Clone()

	tbl.Timestamps[0] = 999
	tbl.Columns[0].Floats[0] = 999

	if cp.Timestamps[0] != 0 {
		t.Error("clone shares timestamp storage")
	}
	col, _ := cp.Column("value")
	if col.Floats[0] != 1 {
		t.Error("clone shares column storage")
	}
}

func TestTable_Column_Missing(t *testing.T) {
	tbl := twoColumnTable()
	if _, ok := tbl.Column("nope"); ok {
		t.Error("expected missing column lookup to report false")
	}
}

func TestCoerce(t *testing.T) {
	tbl := &Table{
		Timestamps: []int64{0, 10},
		Columns: []Column{
			{Name: "x", Type: ColumnInt64, Ints: []int64{3, 7}},
			{Name: "worn", Type: ColumnInt64, Ints: []int64{1, 0}},
			{Name: "fixation id", Type: ColumnInt64, Ints: []int64{12, 13}},
			{Name: "extra", Type: ColumnString, Strings: []string{"p", "q"}},
		},
	}
	schema := Schema{
		{Name: "x", Type: ColumnFloat64},
		{Name: "worn", Type: ColumnBool},
		{Name: "fixation id", Type: ColumnNullableInt64},
	}

	out, err := Coerce(tbl, schema)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}

	x, _ := out.Column("x")
	if x.Type != ColumnFloat64 || x.Floats[1] != 7 {
		t.Errorf("x not coerced to float64: %+v", x)
	}
	worn, _ := out.Column("worn")
	if worn.Type != ColumnBool || !worn.Bools[0] || worn.Bools[1] {
		t.Errorf("worn not coerced to bool: %+v", worn)
	}
	fid, _ := out.Column("fixation id")
	if fid.Type != ColumnNullableInt64 || !fid.NullInts[0].Valid || fid.NullInts[0].Int64 != 12 {
		t.Errorf("fixation id not coerced: %+v", fid)
	}

	// Columns outside the schema pass through untouched
	extra, _ := out.Column("extra")
	if extra.Type != ColumnString || extra.Strings[0] != "p" {
		t.Errorf("extra column modified: %+v", extra)
	}

	// Source table unchanged
	orig, _ := tbl.Column("x")
	if orig.Type != ColumnInt64 {
		t.Error("Coerce mutated its input")
	}
}

func TestCoerce_MissingColumn(t *testing.T) {
	tbl := &Table{Timestamps: []int64{0}, Columns: []Column{
		{Name: "x", Type: ColumnFloat64, Floats: []float64{1}},
	}}
	_, err := Coerce(tbl, Schema{{Name: "y", Type: ColumnFloat64}})
	if err == nil {
		t.Error("expected error for missing schema column")
	}
}

func TestCoerce_InvalidBoolValue(t *testing.T) {
	tbl := &Table{Timestamps: []int64{0}, Columns: []Column{
		{Name: "worn", Type: ColumnInt64, Ints: []int64{2}},
	}}
	_, err := Coerce(tbl, Schema{{Name: "worn", Type: ColumnBool}})
	if err == nil {
		t.Error("expected error for non-boolean int value")
	}
}

func TestCoerce_DisallowedConversion(t *testing.T) {
	tbl := &Table{Timestamps: []int64{0}, Columns: []Column{
		{Name: "label", Type: ColumnString, Strings: []string{"a"}},
	}}
	_, err := Coerce(tbl, Schema{{Name: "label", Type: ColumnFloat64}})
	if err == nil {
		t.Error("expected error for string to float64 conversion")
	}
}
