// Package stats collects summary statistics from BED records.
package stats

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/guigolab/bedscan/bed"
)

type fraction float64

func (m fraction) String() string {
	return fmt.Sprintf("%.6g", float64(m))
}

func (m fraction) MarshalJSON() ([]byte, error) {
	v, err := strconv.ParseFloat(m.String(), 64)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func ratio(a, b uint64) fraction {
	if b == 0 {
		return 0
	}
	return fraction(a) / fraction(b)
}

// Stats represents record statistics.
type Stats interface {
	Update(other Stats)
	Merge(others chan Stats)
	Collect(record *bed.Record)
	Finalize()
}

// Map is a map of Stats instances with string keys.
type Map map[string]Stats

// Merge merges instances of Map
func (sm Map) Merge(stats chan Map) {
	for s := range stats {
		for key, stat := range sm {
			if otherStat, ok := s[key]; ok {
				stat.Update(otherStat)
			}
		}
	}
}

// Add adds a new Stats object to sm
func (sm Map) Add(key string, s Stats) {
	sm[key] = s
}

// Collect collects statistics from record into every Stats of sm.
func (sm Map) Collect(record *bed.Record) {
	for _, s := range sm {
		s.Collect(record)
	}
}

// Finalize updates dependent counts of every Stats of sm.
func (sm Map) Finalize() {
	for _, s := range sm {
		s.Finalize()
	}
}

// NewMap creates an instance of a stats.Map
func NewMap(general, lengths, strand bool) Map {
	m := make(Map)
	if general {
		m.Add("general", NewGeneralStats())
	}
	if lengths {
		m.Add("lengths", NewLengthStats())
	}
	if strand {
		m.Add("strand", NewStrandStats())
	}
	return m
}
