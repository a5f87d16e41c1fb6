// Package bed implements a streaming, resumable parser for BED interval files.
//
// A Reader recognizes BED3 to BED12 lines directly from an io.Reader. Field
// boundaries are tracked as offsets while a line is scanned and bytes are
// copied only once, when the line is complete, into a Record that owns them.
// Lines split across any number of reads parse exactly like lines read whole.
package bed

import (
	"errors"
	"io"

	"github.com/guigolab/bedscan/config"
	"github.com/hashicorp/go-multierror"
)

// Reader reads BED records from a byte stream.
type Reader struct {
	src   io.Reader
	c     *cursor
	index Index
	rec   *Record
}

// NewReader returns a Reader reading from r. idx may be nil when region
// lookups are not needed, and cfg may be nil to use config.Default.
func NewReader(r io.Reader, idx Index, cfg *config.Config) *Reader {
	if cfg == nil {
		cfg = config.Default()
	}
	br := &Reader{
		src:   r,
		c:     newCursor(r, cfg.BufferSize, cfg.SkipHeaders, cfg.AllowUnterminated),
		index: idx,
	}
	if cfg.ReuseRecord {
		br.rec = &Record{}
	}
	return br
}

// Read returns the next record, or io.EOF when the input is exhausted.
//
// By default every call returns a newly allocated Record. When the Reader
// was created with ReuseRecord the same Record is returned on every call
// and is overwritten by the next one; use Record.Clone to keep it.
//
// A malformed line yields a *ParseError; the following call resumes at the
// next line. Errors of the underlying reader are returned wrapped.
func (r *Reader) Read() (*Record, error) {
	rec := r.rec
	if rec == nil {
		rec = &Record{}
	}
	if err := r.c.next(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Line returns the number of line terminators read so far.
func (r *Reader) Line() int {
	return r.c.m.line
}

// Index returns the index attached to r, if any.
func (r *Reader) Index() Index {
	return r.index
}

// Lookup returns the records of the lines the index resolves for region.
func (r *Reader) Lookup(region Region) (*Lookup, error) {
	if r.index == nil {
		return nil, ErrNoIndex
	}
	lines, err := r.index.Query(region)
	if err != nil {
		var re *ResolveError
		if !errors.As(err, &re) {
			err = &ResolveError{Region: region, Err: err}
		}
		return nil, err
	}
	return &Lookup{lines: lines}, nil
}

// Close closes the source and the index when they are io.Closers.
func (r *Reader) Close() error {
	var result error
	if c, ok := r.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if c, ok := r.index.(io.Closer); ok {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
