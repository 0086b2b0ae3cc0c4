package rec

import (
	"encoding/csv"
	"errors"
	"io"

	"coreseq"
)

// CSV reads delimited records from an io.Reader. By default the first
// row is treated as a header: it is skipped from the record stream but
// retained, accessible through Header once iteration has begun.
//
// Because an io.Reader cannot rewind, the record chain is single-use.
type CSV struct {
	r          io.Reader
	comma      rune
	headerRows int
	header     []Record
}

// CSVOption configures a CSV source.
type CSVOption func(*CSV)

// WithComma sets the field delimiter. The default is ','.
func WithComma(comma rune) CSVOption {
	return func(c *CSV) { c.comma = comma }
}

// WithHeaderRows sets how many leading rows are captured as header and
// excluded from the record stream. The default is 1; pass 0 for
// headerless input.
func WithHeaderRows(n int) CSVOption {
	return func(c *CSV) { c.headerRows = n }
}

// NewCSV returns a CSV source over r.
func NewCSV(r io.Reader, opts ...CSVOption) *CSV {
	c := &CSV{r: r, comma: ',', headerRows: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Header returns the captured header rows. It is empty until the record
// chain has been iterated past the header.
func (c *CSV) Header() []Record {
	return c.header
}

// Records returns the chain of data records. Rows that fail to parse
// are dropped with a forwarded error; parsing then continues with the
// next row. Records may have varying field counts.
func (c *CSV) Records() coreseq.Chain[Record] {
	return coreseq.Source(func(yield func(Record) bool, fail coreseq.FailFunc) {
		cr := csv.NewReader(c.r)
		cr.Comma = c.comma
		cr.FieldsPerRecord = -1

		for i := 0; i < c.headerRows; i++ {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				fail(nil, err)
				return
			}
			if len(c.header) < c.headerRows {
				c.header = append(c.header, Record(row))
			}
		}
		for {
			row, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				fail(nil, err)
				continue
			}
			if !yield(Record(row)) {
				return
			}
		}
	})
}

// ReadCSV is shorthand for NewCSV(r, opts...).Records() when the header
// rows are not needed afterwards.
func ReadCSV(r io.Reader, opts ...CSVOption) coreseq.Chain[Record] {
	return NewCSV(r, opts...).Records()
}
