package bed

import "io"

// Index resolves genomic regions to the lines that may hold overlapping records.
type Index interface {
	Query(region Region) (Lines, error)
}

// Lines yields complete lines resolved by an Index. Next returns io.EOF
// after the last line.
type Lines interface {
	Next() ([]byte, error)
	Close() error
}

// Lookup iterates over the records of an index query. It is lazy and can
// be consumed only once.
type Lookup struct {
	lines Lines
	err   error
}

// Read returns the next record of the lookup, or io.EOF after the last one.
func (l *Lookup) Read() (*Record, error) {
	if l.err != nil {
		return nil, l.err
	}
	line, err := l.lines.Next()
	if err != nil {
		l.err = err
		return nil, err
	}
	return ParseLine(line)
}

// Records reads all remaining records of the lookup.
func (l *Lookup) Records() ([]*Record, error) {
	var recs []*Record
	for {
		rec, err := l.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// Close releases the resources held by the index query.
func (l *Lookup) Close() error {
	if l.err == nil {
		l.err = io.EOF
	}
	return l.lines.Close()
}
