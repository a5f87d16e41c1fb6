package bed

import "bytes"

// span is a field range in absolute stream offsets. Spans only become
// record relative when a line is materialized, so sliding the working
// buffer never invalidates them.
type span struct {
	start, end int64
}

type phase uint8

const (
	lineStart phase = iota
	inField
	expectLF
	skipLine
)

type status uint8

const (
	scanning status = iota
	needMore
	recordComplete
	endOfInput
	malformed
)

var headerPrefixes = [][]byte{[]byte("track"), []byte("browser")}

// isHeader reports whether the first field of a line is a track or browser line keyword.
func isHeader(b []byte) bool {
	for _, p := range headerPrefixes {
		if bytes.HasPrefix(b, p) && (len(b) == len(p) || b[len(p)] == ' ') {
			return true
		}
	}
	return false
}

// machine assembles one line at a time from the bytes it is fed. All of its
// state is positional, so a line may be fed in any number of pieces.
type machine struct {
	skipHeaders bool

	phase phase
	// line counts recognized line feeds
	line int
	// start of the current line, end of its content and start of the next line
	start, end, next int64
	header           bool

	col     Column
	mark    int64
	columns int
	field   fieldScanner

	spans         [MaxColumns]span
	strand        int64
	sizes, starts []span

	err *ParseError
}

func newMachine(skipHeaders bool) *machine {
	m := &machine{skipHeaders: skipHeaders}
	m.reset(0)
	return m
}

func (m *machine) reset(start int64) {
	m.phase = lineStart
	m.start = start
	m.end = start
	m.next = start
	m.header = false
	m.col = Chrom
	m.mark = start
	m.columns = 0
	m.strand = -1
	m.sizes = m.sizes[:0]
	m.starts = m.starts[:0]
}

// pending reports whether bytes of an unfinished record have been consumed.
func (m *machine) pending() bool {
	return m.phase == inField || m.phase == expectLF
}

// run feeds buf[i:], where buf starts at stream offset base, until a record
// completes, a byte is rejected or the buffer is exhausted. It returns the
// index of the first byte not consumed.
func (m *machine) run(buf []byte, base int64, i int) (int, status) {
	for ; i < len(buf); i++ {
		if st := m.step(buf, base, buf[i], base+int64(i)); st != scanning {
			return i + 1, st
		}
	}
	return i, needMore
}

func (m *machine) step(buf []byte, base int64, c byte, off int64) status {
	switch m.phase {
	case skipLine:
		if c == '\n' {
			m.line++
			m.reset(off + 1)
		}
		return scanning
	case expectLF:
		return m.frame(c, off)
	case lineStart:
		if m.skipHeaders {
			switch c {
			case '#':
				m.header = true
				m.phase = skipLine
				return scanning
			case '\n', '\r':
				m.header = true
				return m.frame(c, off)
			}
		}
		m.phase = inField
		m.begin(Chrom, off)
	}
	switch m.field.step(c, off) {
	case fieldMore:
		return scanning
	case fieldBad:
		return m.fail(off, m.field.why)
	}
	return m.endField(buf, base, c, off)
}

func (m *machine) begin(col Column, off int64) {
	m.col = col
	m.mark = off
	var list *[]span
	switch col {
	case BlockSizes:
		list = &m.sizes
	case BlockStarts:
		list = &m.starts
	}
	m.field.reset(col.kind(), list)
}

// endField records the field just terminated by c and moves on to the next
// column on a tab, or to the line terminator otherwise.
func (m *machine) endField(buf []byte, base int64, c byte, off int64) status {
	if m.col == Chrom && m.skipHeaders && isHeader(buf[m.mark-base:off-base]) {
		m.header = true
		if c == '\t' {
			m.phase = skipLine
			return scanning
		}
		return m.frame(c, off)
	}
	m.spans[m.col-1] = span{m.mark, off}
	if m.col == Strand {
		m.strand = m.field.pos
	}
	m.columns++
	if c == '\t' {
		if m.col == BlockStarts {
			return m.fail(off, "too many columns")
		}
		m.begin(m.col+1, off+1)
		return scanning
	}
	if m.columns < MinColumns {
		return m.fail(off, "missing mandatory column")
	}
	return m.frame(c, off)
}

func (m *machine) fail(off int64, why string) status {
	m.err = &ParseError{
		Line:   m.line + 1,
		Offset: off,
		Column: m.col,
		Msg:    why,
		Err:    ErrMalformedField,
	}
	return malformed
}

// resync drops the rest of a malformed line; c is the rejected byte.
func (m *machine) resync(c byte, off int64) {
	if c == '\n' {
		m.line++
		m.reset(off + 1)
		return
	}
	m.reset(off + 1)
	m.phase = skipLine
}

// terminate ends the line at the end of buf as if a line feed followed it.
func (m *machine) terminate(buf []byte, base int64) status {
	off := base + int64(len(buf))
	var st status
	switch m.phase {
	case skipLine:
		return endOfInput
	case expectLF:
		st = m.frame('\n', off)
	default:
		st = m.step(buf, base, '\n', off)
	}
	switch st {
	case recordComplete:
		m.next = off
	case scanning:
		st = endOfInput
	}
	return st
}

// materialize copies the completed line into rec and re-bases every span
// from stream offsets to offsets into the record buffer.
func (m *machine) materialize(buf []byte, base int64, rec *Record) {
	lo, hi := int(m.start-base), int(m.end-base)
	rec.buf = append(rec.buf[:0], buf[lo:hi]...)
	rec.Filled = Span{0, hi - lo}
	rec.Columns = m.columns
	rec.Line = m.line
	rec.Offset = m.start
	rec.Length = int(m.next - m.start)
	for c := Chrom; c <= BlockCount; c++ {
		if s := rec.slot(c); s != nil {
			*s = m.rebase(c)
		}
	}
	rec.Strand = -1
	if rec.Has(Strand) {
		rec.Strand = int(m.strand - m.start)
	}
	rec.sizesExtent = m.rebase(BlockSizes)
	rec.startsExtent = m.rebase(BlockStarts)
	rec.BlockSizes = m.rebaseList(rec.BlockSizes[:0], m.sizes)
	rec.BlockStarts = m.rebaseList(rec.BlockStarts[:0], m.starts)
}

func (m *machine) rebase(c Column) Span {
	if int(c) > m.columns {
		return Span{}
	}
	s := m.spans[c-1]
	return Span{int(s.start - m.start), int(s.end - m.start)}
}

func (m *machine) rebaseList(dst []Span, src []span) []Span {
	for _, s := range src {
		dst = append(dst, Span{int(s.start - m.start), int(s.end - m.start)})
	}
	return dst
}
