package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	for i, c := range []struct {
		s        string
		expected Region
	}{
		{"chr1", Region{"chr1", 0, MaxPosition}},
		{"chr1:100-200", Region{"chr1", 100, 200}},
		{"chr1:1,000-2,000", Region{"chr1", 1000, 2000}},
		{"chrX:500-", Region{"chrX", 500, MaxPosition}},
	} {
		r, err := ParseRegion(c.s)
		require.NoError(t, err, "[%d]", i)
		if r != c.expected {
			t.Errorf("[%d] expected %v, got %v", i, c.expected, r)
		}
	}
	for _, s := range []string{"", ":1-2", "chr1:a-2", "chr1:1-b", "chr1:20-10", "chr1:10-10", "chr1:-5"} {
		_, err := ParseRegion(s)
		assert.Error(t, err, s)
	}
}

func TestRegionOverlaps(t *testing.T) {
	r := NewRegion("chr1", 100, 200)
	for i, c := range []struct {
		start, end int
		expected   bool
	}{
		{0, 100, false},
		{0, 101, true},
		{150, 160, true},
		{199, 300, true},
		{200, 300, false},
		{150, 150, true},
		{200, 200, false},
	} {
		if got := r.Overlaps(c.start, c.end); got != c.expected {
			t.Errorf("[%d] expected %v, got %v", i, c.expected, got)
		}
	}
	assert.Equal(t, "chr1:100-200", r.String())
	assert.False(t, r.Empty())

	empty := NewRegion("chr1", 10, 10)
	assert.True(t, empty.Empty())
	for _, iv := range [][2]int{{5, 15}, {10, 10}, {0, 100}} {
		assert.False(t, empty.Overlaps(iv[0], iv[1]), "%v", iv)
	}
}
