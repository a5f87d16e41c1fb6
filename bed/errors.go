package bed

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedField is wrapped by a ParseError when a byte violates the
	// grammar of the field being scanned.
	ErrMalformedField = errors.New("bed: malformed field")
	// ErrIncompleteRecord is wrapped by a ParseError when the input ends in
	// the middle of a line.
	ErrIncompleteRecord = errors.New("bed: incomplete final record")
	// ErrNoIndex is returned by Lookup on a Reader without an index.
	ErrNoIndex = errors.New("bed: reader has no index")
)

// A ParseError is returned for parsing errors.
// Line numbers are 1-based and Offset is the stream offset of the offending byte.
type ParseError struct {
	Line   int
	Offset int64
	Column Column
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("line %d, offset %d, column %s: %v", e.Line, e.Offset, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d, offset %d, column %s: %v: %s", e.Line, e.Offset, e.Column, e.Err, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolveError reports that an index could not resolve a region.
type ResolveError struct {
	Region Region
	Err    error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("bed: cannot resolve region %s: %v", e.Region, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
