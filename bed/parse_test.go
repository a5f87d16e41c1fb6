package bed

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	for i, c := range []struct {
		line    string
		columns int
		content string
	}{
		{"chr1\t10\t20", 3, "chr1\t10\t20"},
		{"chr1\t10\t20\n", 3, "chr1\t10\t20"},
		{"chr1\t10\t20\r\n", 3, "chr1\t10\t20"},
		{"chr1\t10\t20\r", 3, "chr1\t10\t20"},
		{bed12, 12, bed12},
	} {
		rec, err := ParseLine([]byte(c.line))
		require.NoError(t, err, "[%d]", i)
		if rec.Columns != c.columns || rec.String() != c.content {
			t.Errorf("[%d] expected %d columns %q, got %d %q", i, c.columns, c.content, rec.Columns, rec.String())
		}
		assert.Equal(t, 1, rec.Line, "[%d]", i)
	}
}

func TestParseLineErrors(t *testing.T) {
	for i, line := range []string{
		"",
		"chr1\t10",
		"chr1\t10\t20\nchr2\t1\t2\n",
		"track name=x",
		bed12 + "\t",
	} {
		_, err := ParseLine([]byte(line))
		assert.True(t, errors.Is(err, ErrMalformedField), "[%d] %q: %v", i, line, err)
	}
}

func TestParseLineOwnsBuffer(t *testing.T) {
	line := []byte("chr1\t10\t20\n")
	rec, err := ParseLine(line)
	require.NoError(t, err)
	line[0] = 'X'
	assert.Equal(t, "chr1", rec.Chr())
}
