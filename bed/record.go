package bed

import (
	"fmt"
	"strconv"
	"unsafe"
)

// Span is a half-open byte range [Start, End) into a record buffer.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Record represents one parsed BED line.
//
// All spans index the record's private buffer; a Record never references the
// working buffer of the Reader that produced it. Columns past Columns are
// absent and their spans are zero.
type Record struct {
	Chrom, ChromStart, ChromEnd Span

	Name, Score             Span
	ThickStart, ThickEnd    Span
	ItemRgb, BlockCount     Span
	BlockSizes, BlockStarts []Span

	// Strand is the position of the strand byte, or -1 when the column is absent.
	Strand int

	// Columns is the number of columns present in the source line.
	Columns int
	// Filled is the extent of the line content, terminator excluded.
	Filled Span

	// Line is the 1-based line number of the record in its stream.
	Line int
	// Offset is the stream offset of the first byte of the line and Length
	// the number of bytes the line takes in the stream, terminator included.
	Offset int64
	Length int

	// extents of the whole list columns
	sizesExtent, startsExtent Span

	buf []byte
}

// This function cannot be used to create strings that are expected to persist.
func unsafeString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// Bytes returns the bytes of s within the record buffer.
func (r *Record) Bytes(s Span) []byte {
	return r.buf[s.Start:s.End:s.End]
}

// Has reports whether column c is present.
func (r *Record) Has(c Column) bool {
	return c >= Chrom && int(c) <= r.Columns
}

// Field returns the raw bytes of column c, or nil if the column is absent.
// For list columns the whole column text is returned.
func (r *Record) Field(c Column) []byte {
	if !r.Has(c) {
		return nil
	}
	switch c {
	case Strand:
		return r.buf[r.Strand : r.Strand+1 : r.Strand+1]
	case BlockSizes, BlockStarts:
		return r.Bytes(r.listExtent(c))
	}
	return r.Bytes(*r.slot(c))
}

// List returns the element spans of a list column.
func (r *Record) List(c Column) []Span {
	switch c {
	case BlockSizes:
		return r.BlockSizes
	case BlockStarts:
		return r.BlockStarts
	}
	return nil
}

// StrandByte returns the strand byte and whether the column is present.
func (r *Record) StrandByte() (byte, bool) {
	if r.Strand < 0 || !r.Has(Strand) {
		return 0, false
	}
	return r.buf[r.Strand], true
}

// Chr returns the chromosome name of the record.
func (r *Record) Chr() string {
	return string(r.Bytes(r.Chrom))
}

// Start returns chromStart as an integer.
func (r *Record) Start() (int, error) {
	return r.Int(ChromStart)
}

// End returns chromEnd as an integer.
func (r *Record) End() (int, error) {
	return r.Int(ChromEnd)
}

// Int converts a present unsigned integer column to an int.
func (r *Record) Int(c Column) (int, error) {
	if !r.Has(c) || c.kind() != uintField {
		return 0, fmt.Errorf("bed: no integer column %s in line %d", c, r.Line)
	}
	return strconv.Atoi(unsafeString(r.Bytes(*r.slot(c))))
}

// Ints converts the elements of a list column to integers.
func (r *Record) Ints(c Column) ([]int, error) {
	list := r.List(c)
	out := make([]int, 0, len(list))
	for _, s := range list {
		v, err := strconv.Atoi(unsafeString(r.Bytes(s)))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// String returns the line content of the record.
func (r *Record) String() string {
	return string(r.Bytes(r.Filled))
}

// GoString returns a debug representation of the record.
func (r *Record) GoString() string {
	return fmt.Sprintf("bed.Record{line:%d columns:%d %q}", r.Line, r.Columns, r.String())
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	c.buf = append([]byte(nil), r.buf...)
	c.BlockSizes = append([]Span(nil), r.BlockSizes...)
	c.BlockStarts = append([]Span(nil), r.BlockStarts...)
	return &c
}

func (r *Record) slot(c Column) *Span {
	switch c {
	case Chrom:
		return &r.Chrom
	case ChromStart:
		return &r.ChromStart
	case ChromEnd:
		return &r.ChromEnd
	case Name:
		return &r.Name
	case Score:
		return &r.Score
	case ThickStart:
		return &r.ThickStart
	case ThickEnd:
		return &r.ThickEnd
	case ItemRgb:
		return &r.ItemRgb
	case BlockCount:
		return &r.BlockCount
	}
	return nil
}

func (r *Record) listExtent(c Column) Span {
	if c == BlockStarts {
		return r.startsExtent
	}
	return r.sizesExtent
}
