package domain

import "fmt"

// SchemaField declares the expected type for one named column.
type SchemaField struct {
	Name string
	Type ColumnType
}

// Schema is an ordered column-name to column-type declaration for a
// stream or event variant.
type Schema []SchemaField

// Field returns the declared field with the given name, or false if absent.
func (s Schema) Field(name string) (SchemaField, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return SchemaField{}, false
}

// Coerce returns a copy of tbl with schema-declared columns converted to
// their declared types. Columns not named by the schema pass through
// unchanged. A declared column that is missing, or that cannot be
// converted, is an error.
//
// Allowed conversions: identity, int64 to float64, int64 to bool (0/1),
// and int64 to nullable int64.
func Coerce(tbl *Table, schema Schema) (*Table, error) {
	out := tbl.Clone()
	for _, f := range schema {
		col, ok := out.Column(f.Name)
		if !ok {
			return nil, fmt.Errorf("schema column %q missing from table", f.Name)
		}
		coerced, err := coerceColumn(col, f.Type)
		if err != nil {
			return nil, fmt.Errorf("coerce column %q: %w", f.Name, err)
		}
		*col = coerced
	}
	return out, nil
}

func coerceColumn(col *Column, want ColumnType) (Column, error) {
	if col.Type == want {
		return col.Clone(), nil
	}

	if col.Type != ColumnInt64 {
		return Column{}, fmt.Errorf("cannot convert %s to %s", col.Type, want)
	}

	out := Column{Name: col.Name, Type: want}
	switch want {
	case ColumnFloat64:
		out.Floats = make([]float64, len(col.Ints))
		for i, v := range col.Ints {
			out.Floats[i] = float64(v)
		}
	case ColumnBool:
		out.Bools = make([]bool, len(col.Ints))
		for i, v := range col.Ints {
			if v != 0 && v != 1 {
				return Column{}, fmt.Errorf("value %d at row %d is not a bool", v, i)
			}
			out.Bools[i] = v == 1
		}
	case ColumnNullableInt64:
		out.NullInts = make([]NullInt64, len(col.Ints))
		for i, v := range col.Ints {
			out.NullInts[i] = NullInt64Of(v)
		}
	default:
		return Column{}, fmt.Errorf("cannot convert %s to %s", col.Type, want)
	}
	return out, nil
}
