package bed

// ParseLine parses a single complete line. The line terminator is optional;
// any byte after it is an error. No header lines are recognized.
func ParseLine(line []byte) (*Record, error) {
	m := newMachine(false)
	i, st := m.run(line, 0, 0)
	switch st {
	case needMore:
		st = m.terminate(line, 0)
	case recordComplete:
		if i != len(line) {
			return nil, &ParseError{
				Line:   1,
				Offset: int64(i),
				Column: m.col,
				Msg:    "data after line terminator",
				Err:    ErrMalformedField,
			}
		}
	}
	if st == malformed {
		return nil, m.err
	}
	rec := &Record{}
	m.materialize(line, 0, rec)
	return rec, nil
}
