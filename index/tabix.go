// Package index resolves genomic regions to the BED lines overlapping them,
// either through a tabix index of a BGZF compressed file or through an
// in-memory R-tree built over a flat file.
package index

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/biogo/hts/bgzf"
	"github.com/biogo/hts/bgzf/index"
	"github.com/biogo/hts/tabix"
	"github.com/guigolab/bedscan/bed"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Tabix serves region queries from a BGZF compressed BED file and its
// tabix index. Only one query result may be read at a time.
type Tabix struct {
	f   *os.File
	bg  *bgzf.Reader
	idx *tabix.Index
}

// TabixPath returns the path of the tabix index of a BED file, and whether
// it exists.
func TabixPath(bedFile string) (string, bool) {
	p := bedFile + ".tbi"
	_, err := os.Stat(p)
	return p, err == nil
}

// OpenTabix opens a BGZF compressed BED file together with its .tbi index.
func OpenTabix(bedFile string, cpu int) (*Tabix, error) {
	p, ok := TabixPath(bedFile)
	if !ok {
		return nil, errors.Errorf("no tabix index for %s", bedFile)
	}
	log.Infof("Opening tabix index %s", p)
	idx, err := readTabix(p)
	if err != nil {
		return nil, errors.Wrapf(err, "read tabix index %s", p)
	}
	f, err := os.Open(bedFile)
	if err != nil {
		return nil, err
	}
	bg, err := bgzf.NewReader(f, cpu)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "open bgzf %s", bedFile)
	}
	return &Tabix{f, bg, idx}, nil
}

func readTabix(p string) (*tabix.Index, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	bg, err := bgzf.NewReader(f, 1)
	if err != nil {
		return nil, err
	}
	defer bg.Close()
	return tabix.ReadFrom(bg)
}

// Refs returns the reference names present in the index.
func (t *Tabix) Refs() []string {
	return t.idx.Names()
}

// Query returns the lines overlapping region. A reference missing from the
// index or an empty region yields no lines.
func (t *Tabix) Query(region bed.Region) (bed.Lines, error) {
	if region.Empty() {
		return &chunkLines{}, nil
	}
	chunks, err := t.idx.Chunks(region.Chrom, region.Start, region.End)
	switch {
	case err == index.ErrNoReference:
		return &chunkLines{}, nil
	case err != nil:
		return nil, err
	}
	if len(chunks) == 0 {
		return &chunkLines{}, nil
	}
	log.WithFields(log.Fields{
		"Region": region.String(),
		"Chunks": len(chunks),
	}).Debug("Resolved region")
	cr, err := index.NewChunkReader(t.bg, chunks)
	if err != nil {
		return nil, err
	}
	return newChunkLines(cr, region, byte(t.idx.MetaChar)), nil
}

// Close closes the compressed stream and the underlying file.
func (t *Tabix) Close() error {
	var result error
	if err := t.bg.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := t.f.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}

// chunkLines reads the lines of resolved chunks, keeping those that
// overlap the region. Chunks are coarse, so neighbouring lines show up too.
type chunkLines struct {
	r      *bufio.Reader
	c      io.Closer
	region bed.Region
	meta   byte
}

func newChunkLines(r io.ReadCloser, region bed.Region, meta byte) *chunkLines {
	return &chunkLines{
		r:      bufio.NewReader(r),
		c:      r,
		region: region,
		meta:   meta,
	}
}

func (c *chunkLines) Next() ([]byte, error) {
	if c.r == nil {
		return nil, io.EOF
	}
	for {
		line, err := c.r.ReadBytes('\n')
		if len(line) == 0 {
			if err == nil {
				err = io.EOF
			}
			return nil, err
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		if c.keep(line) {
			return line, nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
	}
}

// keep reports whether line overlaps the region. Lines whose position
// columns cannot be read are kept so the record parser reports them.
func (c *chunkLines) keep(line []byte) bool {
	if c.meta != 0 && line[0] == c.meta {
		return false
	}
	f := bytes.SplitN(bytes.TrimRight(line, "\r\n"), []byte{'\t'}, 4)
	if len(f) < 3 {
		return true
	}
	if string(f[0]) != c.region.Chrom {
		return false
	}
	start, err := strconv.Atoi(string(f[1]))
	if err != nil {
		return true
	}
	end, err := strconv.Atoi(string(f[2]))
	if err != nil {
		return true
	}
	return c.region.Overlaps(start, end)
}

func (c *chunkLines) Close() error {
	if c.c == nil {
		return nil
	}
	c.r = nil
	err := c.c.Close()
	c.c = nil
	return err
}
