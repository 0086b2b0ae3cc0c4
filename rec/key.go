package rec

import (
	"cmp"
	"fmt"
	"strconv"
)

// Cast selects how a field's text is interpreted when a Key or Cond
// evaluates it.
type Cast int

const (
	// AsString compares the field text byte-wise. The zero value.
	AsString Cast = iota

	// AsInt parses the field as a base-10 integer.
	AsInt

	// AsFloat parses the field as a floating point number.
	AsFloat
)

// Part names one field of a key together with the cast applied to it.
type Part struct {
	Field int
	Cast  Cast
}

// F returns a string-compared key part for the given field.
func F(field int) Part { return Part{Field: field} }

// FInt returns an integer-compared key part for the given field.
func FInt(field int) Part { return Part{Field: field, Cast: AsInt} }

// FFloat returns a float-compared key part for the given field.
func FFloat(field int) Part { return Part{Field: field, Cast: AsFloat} }

// Key is an ordered list of key parts. Keys drive SortKey, UniqKey and
// UniqCountKey; records compare part by part, earlier parts being more
// significant.
type Key []Part

// Fields returns a Key of string-compared parts over the given fields.
func Fields(fields ...int) Key {
	k := make(Key, 0, len(fields))
	for _, f := range fields {
		k = append(k, F(f))
	}
	return k
}

// Value is one typed key component extracted from a record.
type Value struct {
	cast Cast
	s    string
	i    int64
	f    float64
}

// Compare orders v against o, which must come from the same key part.
// It follows the cmp.Compare convention.
func (v Value) Compare(o Value) int {
	switch v.cast {
	case AsInt:
		return cmp.Compare(v.i, o.i)
	case AsFloat:
		return cmp.Compare(v.f, o.f)
	default:
		return cmp.Compare(v.s, o.s)
	}
}

// String returns the original field text the value was built from.
func (v Value) String() string {
	return v.s
}

func castField(p Part, raw string) (Value, error) {
	v := Value{cast: p.Cast, s: raw}
	switch p.Cast {
	case AsInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field %d: %w", p.Field, err)
		}
		v.i = n
	case AsFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("field %d: %w", p.Field, err)
		}
		v.f = f
	}
	return v, nil
}

// Values extracts the key's typed components from r. It fails when a
// field is out of range or its text does not parse under the part's
// cast.
func (k Key) Values(r Record) ([]Value, error) {
	out := make([]Value, 0, len(k))
	for _, p := range k {
		raw, err := r.Field(p.Field)
		if err != nil {
			return nil, err
		}
		v, err := castField(p, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Strings extracts the raw field texts named by the key, without
// casting. It fails when a field is out of range.
func (k Key) Strings(r Record) ([]string, error) {
	out := make([]string, 0, len(k))
	for _, p := range k {
		raw, err := r.Field(p.Field)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

// CompareValues orders two key value lists lexicographically, earlier
// parts being more significant. Both lists must come from the same Key.
func CompareValues(a, b []Value) int {
	for i := range a {
		if i >= len(b) {
			return 1
		}
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}
