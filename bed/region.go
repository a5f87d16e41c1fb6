package bed

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPosition is the largest coordinate an index query may address.
const MaxPosition = 1 << 29

// Region is a genomic interval in zero-based, half-open coordinates.
type Region struct {
	Chrom      string
	Start, End int
}

// NewRegion returns a new Region.
func NewRegion(chrom string, start, end int) Region {
	return Region{chrom, start, end}
}

func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// Empty reports whether r covers no base.
func (r Region) Empty() bool {
	return r.End <= r.Start
}

// Overlaps reports whether the interval [start, end) intersects r.
// A zero-length interval matches the base it precedes. Nothing overlaps an
// empty region.
func (r Region) Overlaps(start, end int) bool {
	if r.Empty() {
		return false
	}
	if end == start {
		end++
	}
	return start < r.End && end > r.Start
}

// ParseRegion parses "chrom", "chrom:start-" or "chrom:start-end".
// Thousands separators in coordinates are ignored.
func ParseRegion(s string) (Region, error) {
	chrom, coords, found := strings.Cut(s, ":")
	if chrom == "" {
		return Region{}, fmt.Errorf("bed: empty chromosome in region %q", s)
	}
	r := Region{Chrom: chrom, End: MaxPosition}
	if !found {
		return r, nil
	}
	coords = strings.ReplaceAll(coords, ",", "")
	beg, end, _ := strings.Cut(coords, "-")
	var err error
	if r.Start, err = strconv.Atoi(beg); err != nil {
		return Region{}, fmt.Errorf("bed: invalid start in region %q: %v", s, err)
	}
	if end != "" {
		if r.End, err = strconv.Atoi(end); err != nil {
			return Region{}, fmt.Errorf("bed: invalid end in region %q: %v", s, err)
		}
	}
	if r.Start < 0 || r.End <= r.Start {
		return Region{}, fmt.Errorf("bed: invalid interval in region %q", s)
	}
	return r, nil
}
