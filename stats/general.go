package stats

import "github.com/guigolab/bedscan/bed"

// GeneralStats represents general record statistics
type GeneralStats struct {
	Records      uint64            `json:"records"`
	Columns      Histogram         `json:"columns"`
	Chromosomes  map[string]uint64 `json:"chromosomes"`
	Named        uint64            `json:"named,omitempty"`
	Thick        uint64            `json:"thick,omitempty"`
	Blocks       Histogram         `json:"blocks,omitempty"`
	Inconsistent uint64            `json:"inconsistent,omitempty"`
}

// Merge updates counts from a channel of Stats instances.
func (s *GeneralStats) Merge(others chan Stats) {
	for other := range others {
		if other, ok := other.(*GeneralStats); ok {
			s.Update(other)
		}
	}
}

// Update updates all counts from a Stats instance.
func (s *GeneralStats) Update(other Stats) {
	if other, ok := other.(*GeneralStats); ok {
		s.Records += other.Records
		s.Named += other.Named
		s.Thick += other.Thick
		s.Inconsistent += other.Inconsistent
		s.Columns.Update(other.Columns)
		s.Blocks.Update(other.Blocks)
		for chr, n := range other.Chromosomes {
			s.Chromosomes[chr] += n
		}
	}
}

// Finalize updates dependent counts of a Stats instance.
func (s *GeneralStats) Finalize() {
}

// Collect collects general statistics from a bed.Record.
//
// A record is inconsistent when chromEnd precedes chromStart, when the
// thick region falls outside the interval, or when blockCount does not match
// the number of block sizes and starts.
func (s *GeneralStats) Collect(r *bed.Record) {
	s.Records++
	s.Columns[r.Columns]++
	s.Chromosomes[string(r.Bytes(r.Chrom))]++
	if r.Has(bed.Name) && r.Name.Len() > 0 {
		s.Named++
	}
	start, err := r.Start()
	if err != nil {
		s.Inconsistent++
		return
	}
	end, err := r.End()
	if err != nil || end < start {
		s.Inconsistent++
		return
	}
	if r.Has(bed.ThickEnd) {
		ts, _ := r.Int(bed.ThickStart)
		te, _ := r.Int(bed.ThickEnd)
		if te > ts {
			s.Thick++
		}
		if ts < start || te > end || te < ts {
			s.Inconsistent++
			return
		}
	}
	if r.Has(bed.BlockCount) {
		n, _ := r.Int(bed.BlockCount)
		s.Blocks[n]++
		if (r.Has(bed.BlockSizes) && len(r.BlockSizes) != n) ||
			(r.Has(bed.BlockStarts) && len(r.BlockStarts) != n) {
			s.Inconsistent++
		}
	}
}

// NewGeneralStats creates a new instance of GeneralStats
func NewGeneralStats() *GeneralStats {
	return &GeneralStats{
		Columns:     make(Histogram),
		Chromosomes: make(map[string]uint64),
		Blocks:      make(Histogram),
	}
}
