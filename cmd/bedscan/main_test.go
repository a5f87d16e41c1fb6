package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersion(t *testing.T) {
	for i, c := range []struct {
		version, commit, date string
		expected              string
	}{
		{"dev", "", "", "version: dev"},
		{"0.1.0", "abc123", "", "version: 0.1.0\ncommit: abc123"},
		{"0.1.0", "abc123", "2026-10-17", "version: 0.1.0\ncommit: abc123\nbuilt at: 2026-10-17"},
	} {
		v := buildVersion(c.version, c.commit, c.date)
		if v != c.expected {
			t.Errorf("[%d] expected %q, got %q", i, c.expected, v)
		}
	}
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bed")
	require.NoError(t, os.WriteFile(in, []byte("track name=x\nchr1\t10\t20\ta\t0\t+\nchr1\t30\t40\tb\t0\t-\n"), 0o644))

	out := filepath.Join(dir, "summary.tsv")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-i", in, "-o", out, "--skip-headers", "--summary", "-c", "2"})
	require.NoError(t, cmd.Execute())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "FRACTION_STRANDED\t1\n")

	out = filepath.Join(dir, "query.bed")
	cmd = newRootCmd()
	cmd.SetArgs([]string{"query", "-i", in, "-o", out, "chr1:35-100"})
	require.NoError(t, cmd.Execute())
	b, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t30\t40\tb\t0\t-\n", string(b))

	cmd = newRootCmd()
	cmd.SetArgs([]string{"query", "-i", in, "-o", out, "chr1:12-15", "chr2", "chr1:35-100"})
	require.NoError(t, cmd.Execute())
	b, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "chr1\t10\t20\ta\t0\t+\nchr1\t30\t40\tb\t0\t-\n", string(b))

	for _, region := range []string{"chr1:x-1", "chr1:10-10"} {
		cmd = newRootCmd()
		cmd.SetArgs([]string{"query", "-i", in, "-o", out, region})
		assert.Error(t, cmd.Execute(), region)
	}
}
