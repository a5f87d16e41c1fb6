package bed

import (
	"io"

	"github.com/pkg/errors"
)

const (
	minBufferSize            = 16
	maxConsecutiveEmptyReads = 100
)

// cursor owns the working buffer of a Reader. Bytes before anchor belong
// to lines already handed out and may be discarded on refill; bytes from
// anchor to pos have been scanned, bytes from pos to end have not.
type cursor struct {
	src io.Reader
	buf []byte
	// stream offset of buf[0]
	base             int64
	anchor, pos, end int
	eof              bool
	err              error

	allowUnterminated bool
	m                 *machine
}

func newCursor(src io.Reader, size int, skipHeaders, allowUnterminated bool) *cursor {
	if size < minBufferSize {
		size = minBufferSize
	}
	return &cursor{
		src:               src,
		buf:               make([]byte, size),
		allowUnterminated: allowUnterminated,
		m:                 newMachine(skipHeaders),
	}
}

// next scans until the next record is complete and copies it into rec.
func (c *cursor) next(rec *Record) error {
	for {
		i, st := c.m.run(c.buf[:c.end], c.base, c.pos)
		c.pos = i
		switch st {
		case recordComplete:
			c.m.materialize(c.buf[:c.end], c.base, rec)
			c.advance()
			return nil
		case malformed:
			err := c.m.err
			c.m.resync(c.buf[i-1], c.base+int64(i-1))
			c.anchor = int(c.m.start - c.base)
			return err
		}
		c.anchor = int(c.m.start - c.base)
		if c.eof {
			return c.finish(rec)
		}
		if err := c.fill(); err != nil {
			return err
		}
	}
}

func (c *cursor) advance() {
	c.m.reset(c.m.next)
	c.anchor = int(c.m.next - c.base)
}

// finish handles the end of the source. A pending line is an incomplete
// record unless unterminated final lines are allowed.
func (c *cursor) finish(rec *Record) error {
	if !c.m.pending() {
		return io.EOF
	}
	end := c.base + int64(c.end)
	if !c.allowUnterminated {
		err := &ParseError{
			Line:   c.m.line + 1,
			Offset: end,
			Column: c.m.col,
			Msg:    "missing line terminator",
			Err:    ErrIncompleteRecord,
		}
		c.discard()
		return err
	}
	switch c.m.terminate(c.buf[:c.end], c.base) {
	case recordComplete:
		c.m.materialize(c.buf[:c.end], c.base, rec)
		c.advance()
		return nil
	case malformed:
		err := c.m.err
		c.discard()
		return err
	}
	c.discard()
	return io.EOF
}

// discard drops everything buffered.
func (c *cursor) discard() {
	c.m.reset(c.base + int64(c.end))
	c.anchor, c.pos = c.end, c.end
}

// fill slides the bytes from anchor to the front of the buffer, grows the
// buffer if it is still full, and reads more from the source.
func (c *cursor) fill() error {
	if c.err != nil {
		err := c.err
		c.err = nil
		return err
	}
	if c.anchor > 0 {
		copy(c.buf, c.buf[c.anchor:c.end])
		c.base += int64(c.anchor)
		c.end -= c.anchor
		c.pos -= c.anchor
		c.anchor = 0
	}
	if c.end == len(c.buf) {
		buf := make([]byte, 2*len(c.buf))
		copy(buf, c.buf[:c.end])
		c.buf = buf
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := c.src.Read(c.buf[c.end:])
		if n < 0 {
			panic("bed: source returned negative count from Read")
		}
		c.end += n
		if err == io.EOF {
			c.eof = true
			return nil
		}
		if err != nil {
			err = errors.Wrap(err, "bed: read source")
			if n > 0 {
				c.err = err
				return nil
			}
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}
