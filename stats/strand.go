package stats

import "github.com/guigolab/bedscan/bed"

// StrandStats represents strand statistics
type StrandStats struct {
	Total    uint64   `json:"total"`
	Plus     uint64   `json:"+"`
	Minus    uint64   `json:"-"`
	None     uint64   `json:"."`
	Unknown  uint64   `json:"?"`
	Missing  uint64   `json:"missing,omitempty"`
	Stranded fraction `json:"stranded"`
}

// Merge updates counts from a channel of Stats instances.
func (s *StrandStats) Merge(others chan Stats) {
	for other := range others {
		if other, ok := other.(*StrandStats); ok {
			s.Update(other)
		}
	}
}

// Update updates all counts from a Stats instance.
func (s *StrandStats) Update(other Stats) {
	if other, ok := other.(*StrandStats); ok {
		s.Total += other.Total
		s.Plus += other.Plus
		s.Minus += other.Minus
		s.None += other.None
		s.Unknown += other.Unknown
		s.Missing += other.Missing
		s.Finalize()
	}
}

// Finalize updates the fraction of stranded records.
func (s *StrandStats) Finalize() {
	s.Stranded = ratio(s.Plus+s.Minus, s.Total)
}

// Collect collects strand statistics from a bed.Record.
func (s *StrandStats) Collect(r *bed.Record) {
	s.Total++
	b, ok := r.StrandByte()
	if !ok {
		s.Missing++
		return
	}
	switch b {
	case '+':
		s.Plus++
	case '-':
		s.Minus++
	case '.':
		s.None++
	case '?':
		s.Unknown++
	}
}

// NewStrandStats creates a new instance of StrandStats
func NewStrandStats() *StrandStats {
	return &StrandStats{}
}
