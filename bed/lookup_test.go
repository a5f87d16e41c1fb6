package bed

import (
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnknown = errors.New("unknown region")

type sliceLines struct {
	lines  []string
	closed bool
}

func (l *sliceLines) Next() ([]byte, error) {
	if len(l.lines) == 0 {
		return nil, io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return []byte(line), nil
}

func (l *sliceLines) Close() error {
	l.closed = true
	return nil
}

type mapIndex struct {
	lines   map[string][]string
	queries []*sliceLines
}

func (m *mapIndex) Query(region Region) (Lines, error) {
	lines, ok := m.lines[region.Chrom]
	if !ok {
		return nil, errUnknown
	}
	l := &sliceLines{lines: lines}
	m.queries = append(m.queries, l)
	return l, nil
}

type closingIndex struct {
	closer
	mapIndex
}

func TestLookup(t *testing.T) {
	idx := &mapIndex{lines: map[string][]string{
		"chr1": {"chr1\t10\t20\tgeneA\n", "chr1\t15\t30\tgeneB\t0\t-\n"},
		"chr2": {},
	}}
	r := NewReader(strings.NewReader(""), idx, nil)

	l, err := r.Lookup(NewRegion("chr1", 0, 100))
	require.NoError(t, err)
	recs, err := l.Records()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "geneA", field(recs[0], Name))
	assert.Equal(t, 6, recs[1].Columns)

	_, err = l.Read()
	assert.Equal(t, io.EOF, err)
	require.NoError(t, l.Close())
	assert.True(t, idx.queries[0].closed)

	l, err = r.Lookup(NewRegion("chr2", 0, 100))
	require.NoError(t, err)
	recs, err = l.Records()
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLookupErrors(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), nil, nil).Lookup(NewRegion("chr1", 0, 1))
	assert.Equal(t, ErrNoIndex, err)

	idx := &mapIndex{lines: map[string][]string{"chr1": {"chr1\tx\t1\n", "chr1\t1\t2\n"}}}
	r := NewReader(strings.NewReader(""), idx, nil)

	_, err = r.Lookup(NewRegion("chrZ", 0, 1))
	var rerr *ResolveError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "chrZ", rerr.Region.Chrom)
	assert.Equal(t, errUnknown, errors.Cause(rerr.Err))

	l, err := r.Lookup(NewRegion("chr1", 0, 10))
	require.NoError(t, err)
	_, err = l.Read()
	assert.True(t, errors.Is(err, ErrMalformedField))
	rec, err := l.Read()
	require.NoError(t, err)
	assert.Equal(t, "chr1", rec.Chr())

	require.NoError(t, l.Close())
	_, err = l.Read()
	assert.Equal(t, io.EOF, err)
}
