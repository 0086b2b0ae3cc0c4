package rec

import "slices"

// Op is a comparison operator applied by a Cond between a record field
// and a literal value.
type Op int

const (
	Eq Op = iota
	Ne
	Gt
	Gte
	Lt
	Lte

	// In matches when the raw field text equals any of the condition's
	// alternatives.
	In
)

// Cond is a condition on one field of a record, the filtering analogue
// of an awk pattern like $2 == "Silver". The field and the literal are
// both interpreted under the part's cast, so numeric comparisons order
// numerically.
//
// Build conditions with Is and IsIn.
type Cond struct {
	Part  Part
	Op    Op
	Value string
	Alts  []string
}

// Is returns a condition comparing the part's field against value.
//
//	rec.Is(rec.F(2), rec.Eq, "Silver")    // $3 == "Silver"
//	rec.Is(rec.FFloat(3), rec.Gt, "99.5") // $4 > 99.5, numerically
func Is(p Part, op Op, value string) Cond {
	return Cond{Part: p, Op: op, Value: value}
}

// IsIn returns a condition matching when the field equals one of alts.
func IsIn(field int, alts ...string) Cond {
	return Cond{Part: F(field), Op: In, Alts: alts}
}

// Match evaluates the condition against r. It fails when the field is
// out of range or when either side does not parse under the cast.
func (c Cond) Match(r Record) (bool, error) {
	raw, err := r.Field(c.Part.Field)
	if err != nil {
		return false, err
	}
	if c.Op == In {
		return slices.Contains(c.Alts, raw), nil
	}
	fv, err := castField(c.Part, raw)
	if err != nil {
		return false, err
	}
	lv, err := castField(c.Part, c.Value)
	if err != nil {
		return false, err
	}
	n := fv.Compare(lv)
	switch c.Op {
	case Eq:
		return n == 0, nil
	case Ne:
		return n != 0, nil
	case Gt:
		return n > 0, nil
	case Gte:
		return n >= 0, nil
	case Lt:
		return n < 0, nil
	default:
		return n <= 0, nil
	}
}
