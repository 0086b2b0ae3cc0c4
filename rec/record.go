// Package rec layers a delimited-record model on top of coreseq chains,
// covering the field-oriented Unix utilities: cut, field conditions for
// filtering, typed sort keys, and uniq over key fields. Records are
// slices of string fields, as produced by the CSV source; numeric
// comparisons cast fields at evaluation time.
package rec

import "fmt"

// Record is one delimited text record: an ordered list of string fields.
type Record []string

// Field returns the value of the i-th field. It fails when i is outside
// the record.
func (r Record) Field(i int) (string, error) {
	if i < 0 || i >= len(r) {
		return "", fmt.Errorf("field %d out of range for record with %d fields", i, len(r))
	}
	return r[i], nil
}

// Clone returns a copy of the record with its own backing array.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	copy(out, r)
	return out
}
