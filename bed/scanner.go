package bed

import (
	"io"

	"github.com/guigolab/bedscan/config"
)

// Scanner wraps a Reader for loop style iteration.
type Scanner struct {
	r   *Reader
	rec *Record
	err error
}

// NewScanner returns a new instance of a Scanner
func NewScanner(r io.Reader, cfg *config.Config) *Scanner {
	return &Scanner{
		r: NewReader(r, nil, cfg),
	}
}

// Next reads the next record and reports whether there is one.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.rec, s.err = s.r.Read()
	return s.err == nil
}

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Record returns the current record
func (s *Scanner) Record() *Record {
	return s.rec
}

// Line returns the number of lines read so far.
func (s *Scanner) Line() int {
	return s.r.Line()
}
