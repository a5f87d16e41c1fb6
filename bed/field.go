package bed

type fieldKind uint8

const (
	// any run of printable bytes except tab, possibly empty
	textField fieldKind = iota
	// one or more decimal digits
	uintField
	// exactly one strand symbol, captured as a position
	enumField
	// (uint ',')* uint?
	listField
)

type fieldResult uint8

const (
	fieldMore fieldResult = iota
	fieldEnd
	fieldBad
)

func isTerminator(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r'
}

func isText(c byte) bool {
	return c >= ' ' && c != 0x7f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isStrand(c byte) bool {
	return c == '+' || c == '-' || c == '.' || c == '?'
}

// fieldScanner recognizes one field a byte at a time. It holds no reference
// to the bytes it has seen, so it survives buffer refills untouched.
type fieldScanner struct {
	kind fieldKind
	// n counts the digits of the current integer, or strand symbols seen.
	n int
	// pos is the strand position, elem the start of the current list element.
	pos, elem int64
	list      *[]span
	why       string
}

func (f *fieldScanner) reset(kind fieldKind, list *[]span) {
	f.kind = kind
	f.n = 0
	f.pos = -1
	f.list = list
	f.why = ""
}

// step feeds the byte c found at stream offset off. A terminator ends the
// field, a byte outside the field alphabet fails it.
func (f *fieldScanner) step(c byte, off int64) fieldResult {
	if isTerminator(c) {
		return f.finish(off)
	}
	switch f.kind {
	case textField:
		if !isText(c) {
			return f.fail("control byte in text field")
		}
	case uintField:
		if !isDigit(c) {
			return f.fail("non-digit in integer field")
		}
		f.n++
	case enumField:
		if f.n > 0 {
			return f.fail("strand is a single byte")
		}
		if !isStrand(c) {
			return f.fail("invalid strand symbol")
		}
		f.pos = off
		f.n++
	case listField:
		switch {
		case isDigit(c):
			if f.n == 0 {
				f.elem = off
			}
			f.n++
		case c == ',' && f.n > 0:
			*f.list = append(*f.list, span{f.elem, off})
			f.n = 0
		default:
			return f.fail("invalid byte in integer list")
		}
	}
	return fieldMore
}

func (f *fieldScanner) finish(off int64) fieldResult {
	switch f.kind {
	case uintField:
		if f.n == 0 {
			return f.fail("empty integer field")
		}
	case enumField:
		if f.n == 0 {
			return f.fail("empty strand field")
		}
	case listField:
		if f.n > 0 {
			*f.list = append(*f.list, span{f.elem, off})
			f.n = 0
		}
	}
	return fieldEnd
}

func (f *fieldScanner) fail(why string) fieldResult {
	f.why = why
	return fieldBad
}
