package rec

import (
	"slices"
	"strings"

	"coreseq"
)

// Cut projects each record onto the named fields, in the given order,
// like the cut utility. A record missing one of the fields is dropped
// with a forwarded error.
func Cut(c coreseq.Chain[Record], fields ...int) coreseq.Chain[Record] {
	return coreseq.TryMap(c, func(r Record) (Record, error) {
		out := make(Record, 0, len(fields))
		for _, f := range fields {
			s, err := r.Field(f)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	})
}

// CutKey projects each record onto the key's fields, like Cut, while
// validating every field under its part's cast. A record whose field is
// missing or does not parse under the cast is dropped with a forwarded
// error. The projected fields keep their original text.
func CutKey(c coreseq.Chain[Record], key Key) coreseq.Chain[Record] {
	return coreseq.TryMap(c, func(r Record) (Record, error) {
		vs, err := key.Values(r)
		if err != nil {
			return nil, err
		}
		out := make(Record, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.String())
		}
		return out, nil
	})
}

// Where keeps the records matching cond. Records the condition cannot
// evaluate are dropped with a forwarded error.
func Where(c coreseq.Chain[Record], cond Cond) coreseq.Chain[Record] {
	return coreseq.TryFilter(c, cond.Match)
}

// SortKey sorts the records by the typed key, stably. The key of every
// record is evaluated once up front; records whose key fails to
// evaluate are dropped with a forwarded error rather than aborting the
// sort.
func SortKey(c coreseq.Chain[Record], key Key) coreseq.Chain[Record] {
	return sortByKey(c, key, false)
}

// SortKeyDesc is SortKey in descending order, like sort -r. The sort
// stays stable: records sharing a key keep their input order.
func SortKeyDesc(c coreseq.Chain[Record], key Key) coreseq.Chain[Record] {
	return sortByKey(c, key, true)
}

func sortByKey(c coreseq.Chain[Record], key Key, desc bool) coreseq.Chain[Record] {
	type keyed struct {
		rec Record
		key []Value
	}
	withKeys := coreseq.TryMap(c, func(r Record) (keyed, error) {
		vs, err := key.Values(r)
		if err != nil {
			return keyed{}, err
		}
		return keyed{rec: r, key: vs}, nil
	})
	sorted := coreseq.SortFunc(withKeys, func(a, b keyed) int {
		n := CompareValues(a.key, b.key)
		if desc {
			n = -n
		}
		return n
	})
	return coreseq.Map(sorted, func(k keyed) Record { return k.rec })
}

// SortRecords sorts by the full record, comparing fields left to right
// as strings. This is the no-key variant of SortKey, matching a plain
// `sort` over delimited lines.
func SortRecords(c coreseq.Chain[Record]) coreseq.Chain[Record] {
	return coreseq.SortFunc(c, func(a, b Record) int {
		return slices.Compare(a, b)
	})
}

// uniqKeySep joins key fields into a single comparable string. The unit
// separator cannot appear in sane field data.
const uniqKeySep = "\x1f"

// UniqKey emits the first record of every consecutive run sharing the
// same key fields, like uniq over selected fields. Sort by the same
// key first for global deduplication. Records missing a key field are
// dropped with a forwarded error.
func UniqKey(c coreseq.Chain[Record], key Key) coreseq.Chain[Record] {
	type keyed struct {
		rec    Record
		joined string
	}
	withKeys := coreseq.TryMap(c, func(r Record) (keyed, error) {
		ks, err := key.Strings(r)
		if err != nil {
			return keyed{}, err
		}
		return keyed{rec: r, joined: strings.Join(ks, uniqKeySep)}, nil
	})
	return coreseq.ReduceBy(withKeys,
		func(k keyed) string { return k.joined },
		func(first keyed) Record { return first.rec },
		func(acc *Record, item keyed) {})
}

// KeyCount pairs the key fields of a run with the number of records in
// it.
type KeyCount struct {
	Key   []string
	Count int
}

// UniqCountKey counts the records of every consecutive run sharing the
// same key fields, like uniq -c over selected fields. Sort by the same
// key first for global counts.
func UniqCountKey(c coreseq.Chain[Record], key Key) coreseq.Chain[KeyCount] {
	type keyed struct {
		fields []string
		joined string
	}
	withKeys := coreseq.TryMap(c, func(r Record) (keyed, error) {
		ks, err := key.Strings(r)
		if err != nil {
			return keyed{}, err
		}
		return keyed{fields: ks, joined: strings.Join(ks, uniqKeySep)}, nil
	})
	return coreseq.ReduceBy(withKeys,
		func(k keyed) string { return k.joined },
		func(first keyed) KeyCount { return KeyCount{Key: first.fields} },
		func(acc *KeyCount, item keyed) { acc.Count++ })
}
