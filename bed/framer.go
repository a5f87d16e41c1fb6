package bed

// frame consumes the line terminator, an optional carriage return followed
// by a mandatory line feed. The line counter moves once per line feed.
func (m *machine) frame(c byte, off int64) status {
	switch {
	case c == '\r' && m.phase != expectLF:
		m.end = off
		m.phase = expectLF
		return scanning
	case c == '\n':
		if m.phase != expectLF {
			m.end = off
		}
		m.line++
		m.next = off + 1
		if m.header {
			m.reset(m.next)
			return scanning
		}
		return recordComplete
	}
	return m.fail(off, "expected line feed after carriage return")
}
