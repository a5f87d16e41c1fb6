package stats

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/guigolab/bedscan/bed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lines = []string{
	"chr1\t100\t200\n",
	"chr1\t150\t150\tsite\t0\t.\n",
	"chr2\t0\t1000\ttx1\t500\t+\t100\t900\t0\t2\t100,200,\t0,800,\n",
	"chr2\t500\t700\ttx2\t0\t-\t500\t500\t0\t1\t200\t0\n",
	"chr3\t50\t10\tbad\n",
	"chr3\t0\t300\ttx3\t0\t?\t0\t300\t0\t3\t10,20\t0,290\n",
}

func collect(t *testing.T, sm Map, lines []string) {
	for _, l := range lines {
		rec, err := bed.ParseLine([]byte(l))
		require.NoError(t, err, l)
		sm.Collect(rec)
	}
}

func TestGeneralStats(t *testing.T) {
	s := NewGeneralStats()
	collect(t, Map{"general": s}, lines)
	assert.Equal(t, uint64(6), s.Records)
	assert.Equal(t, Histogram{3: 1, 6: 1, 12: 3, 4: 1}, s.Columns)
	assert.Equal(t, map[string]uint64{"chr1": 2, "chr2": 2, "chr3": 2}, s.Chromosomes)
	assert.Equal(t, uint64(5), s.Named)
	assert.Equal(t, uint64(2), s.Thick)
	assert.Equal(t, Histogram{2: 1, 1: 1, 3: 1}, s.Blocks)
	// end before start, and three blocks with two sizes
	assert.Equal(t, uint64(2), s.Inconsistent)
}

func TestLengthStats(t *testing.T) {
	s := NewLengthStats()
	collect(t, Map{"lengths": s}, lines)
	s.Finalize()
	assert.Equal(t, IntervalStats{Count: 3, Bases: 300, Empty: 1, Min: 0, Max: 200, Mean: 100}, s.Continuous)
	assert.Equal(t, IntervalStats{Count: 2, Bases: 1300, Min: 300, Max: 1000, Mean: 650}, s.Split)
	assert.Equal(t, IntervalStats{Count: 4, Bases: 330, Min: 10, Max: 200, Mean: 82.5}, s.Blocks)
	assert.Equal(t, uint64(5), s.Total.Count)
	assert.Equal(t, 1000, s.Total.Max)
}

func TestStrandStats(t *testing.T) {
	s := NewStrandStats()
	collect(t, Map{"strand": s}, lines)
	s.Finalize()
	assert.Equal(t, uint64(6), s.Total)
	assert.Equal(t, uint64(1), s.Plus)
	assert.Equal(t, uint64(1), s.Minus)
	assert.Equal(t, uint64(1), s.None)
	assert.Equal(t, uint64(1), s.Unknown)
	assert.Equal(t, uint64(2), s.Missing)
	assert.Equal(t, "0.333333", s.Stranded.String())
}

func TestMerge(t *testing.T) {
	whole := NewMap(true, true, true)
	collect(t, whole, lines)
	whole.Finalize()

	parts := make(chan Map, 2)
	first := NewMap(true, true, true)
	collect(t, first, lines[:3])
	second := NewMap(true, true, true)
	collect(t, second, lines[3:])
	parts <- second
	close(parts)
	first.Merge(parts)
	first.Finalize()

	for key := range whole {
		assert.Equal(t, whole[key], first[key], key)
	}
}

func TestStatsMerge(t *testing.T) {
	others := make(chan Stats, 2)
	a, b := NewStrandStats(), NewStrandStats()
	collect(t, Map{"strand": a}, lines[:2])
	collect(t, Map{"strand": b}, lines[2:])
	others <- b
	others <- NewGeneralStats()
	close(others)
	a.Merge(others)
	assert.Equal(t, uint64(6), a.Total)
}

func TestHistogramJSON(t *testing.T) {
	h := Histogram{12: 3, 3: 1, 6: 2}
	b, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"3":1,"6":2,"12":3}`, string(b))
	assert.Equal(t, `{"3":1,"6":2,"12":3}`, string(b))

	var other Histogram
	require.NoError(t, json.Unmarshal(b, &other))
	assert.Equal(t, h, other)
	assert.Equal(t, uint64(6), other.Total())
}

func TestSummaryMetrics(t *testing.T) {
	sm := NewMap(true, true, true)
	collect(t, sm, lines)
	sm.Finalize()

	var m SummaryMetrics
	require.NoError(t, m.Calculate(sm))
	out := &bytes.Buffer{}
	require.NoError(t, m.Output(out))
	assert.Equal(t, `FRACTION_NAMED	0.833333
FRACTION_STRANDED	0.333333
FRACTION_THICK	0.333333
FRACTION_SPLIT	0.333333
FRACTION_INCONSISTENT	0.333333
`, out.String())

	assert.Error(t, m.Calculate(NewMap(false, true, true)))
}
