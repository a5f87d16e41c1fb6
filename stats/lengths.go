package stats

import "github.com/guigolab/bedscan/bed"

// IntervalStats represents length statistics for a set of intervals
type IntervalStats struct {
	Count uint64   `json:"count"`
	Bases uint64   `json:"bases"`
	Empty uint64   `json:"empty,omitempty"`
	Min   int      `json:"min"`
	Max   int      `json:"max"`
	Mean  fraction `json:"mean"`
}

// LengthStats represents interval length statistics for continuous, split and total records.
type LengthStats struct {
	Total      IntervalStats `json:"total"`
	Continuous IntervalStats `json:"continuous"`
	Split      IntervalStats `json:"split"`
	Blocks     IntervalStats `json:"blocks"`
}

// Update updates all counts from a Stats instance.
func (s *LengthStats) Update(other Stats) {
	if other, ok := other.(*LengthStats); ok {
		s.Continuous.Update(other.Continuous)
		s.Split.Update(other.Split)
		s.Blocks.Update(other.Blocks)
		s.Finalize()
	}
}

// Merge update counts from a channel of Stats instances.
func (s *LengthStats) Merge(others chan Stats) {
	for other := range others {
		if other, ok := other.(*LengthStats); ok {
			s.Update(other)
		}
	}
}

// Finalize updates dependent counts of a LengthStats instance.
func (s *LengthStats) Finalize() {
	s.Total = IntervalStats{}
	s.Total.Update(s.Continuous)
	s.Total.Update(s.Split)
	s.Total.Finalize()
	s.Continuous.Finalize()
	s.Split.Finalize()
	s.Blocks.Finalize()
}

// Update updates all counts from another IntervalStats instance.
func (s *IntervalStats) Update(other IntervalStats) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	if other.Max > s.Max {
		s.Max = other.Max
	}
	s.Count += other.Count
	s.Bases += other.Bases
	s.Empty += other.Empty
}

// Finalize updates the mean length.
func (s *IntervalStats) Finalize() {
	s.Mean = ratio(s.Bases, s.Count)
}

func (s *IntervalStats) add(length int) {
	if s.Count == 0 || length < s.Min {
		s.Min = length
	}
	if length > s.Max {
		s.Max = length
	}
	if length == 0 {
		s.Empty++
	}
	s.Count++
	s.Bases += uint64(length)
}

// Collect collects interval length statistics from a bed.Record. Records
// ending before they start are ignored.
func (s *LengthStats) Collect(r *bed.Record) {
	start, err := r.Start()
	if err != nil {
		return
	}
	end, err := r.End()
	if err != nil || end < start {
		return
	}
	n := 0
	if r.Has(bed.BlockCount) {
		n, _ = r.Int(bed.BlockCount)
	}
	if n <= 1 {
		s.Continuous.add(end - start)
		return
	}
	s.Split.add(end - start)
	sizes, err := r.Ints(bed.BlockSizes)
	if err != nil {
		return
	}
	for _, size := range sizes {
		s.Blocks.add(size)
	}
}

// NewLengthStats create a new instance of LengthStats.
func NewLengthStats() *LengthStats {
	return &LengthStats{}
}
