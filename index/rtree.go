package index

import (
	"io"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/guigolab/bedscan/bed"
	"github.com/guigolab/bedscan/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type chunk struct {
	chr   string
	lines []rtreego.Spatial
}

type tree struct {
	chr  string
	tree *rtreego.Rtree
}

// RtreeMap is a map of pointers to Rtree with string keys.
type RtreeMap map[string]*rtreego.Rtree

// Get returns the Rtree for the specified chromosome, or nil if there is none.
func (t RtreeMap) Get(chr string) *rtreego.Rtree {
	v, ok := t[chr]
	if ok {
		return v
	}
	return nil
}

// Len returns the number of elements in the map.
func (t RtreeMap) Len() int {
	return len(t)
}

// line locates one BED line of the indexed file.
type line struct {
	location   *rtreego.Rect
	start, end int
	offset     int64
	length     int
}

// Bounds returns the location of the line. It is used within the Rtree.
func (l *line) Bounds() *rtreego.Rect {
	return l.location
}

func newRect(start, end int) (*rtreego.Rect, error) {
	size := end - start
	if size < 1 {
		size = 1
	}
	return rtreego.NewRect(rtreego.Point{float64(start)}, []float64{float64(size)})
}

// Tree is an in-memory index of a flat BED file. Every record is kept as the
// offset and length of its line, so a query reads back only the lines it
// resolved.
type Tree struct {
	trees RtreeMap
	r     io.ReaderAt
	lines int
}

// BuildTree reads the first size bytes of r once and indexes every record
// by chromosome. Header lines are skipped regardless of cfg.
func BuildTree(r io.ReaderAt, size int64, cfg *config.Config) (*Tree, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := *cfg
	c.ReuseRecord = true
	c.SkipHeaders = true
	br := bed.NewReader(io.NewSectionReader(r, 0, size), nil, &c)

	regions := make(map[string][]rtreego.Spatial)
	var order []string
	n := 0
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, err := rec.Start()
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
		end, err := rec.End()
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
		rect, err := newRect(start, end)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", rec.Line)
		}
		chr := rec.Chr()
		if _, ok := regions[chr]; !ok {
			order = append(order, chr)
		}
		regions[chr] = append(regions[chr], &line{rect, start, end, rec.Offset, rec.Length})
		n++
	}

	chunks := make(chan chunk)
	go func() {
		for _, chr := range order {
			chunks <- chunk{chr, regions[chr]}
		}
		close(chunks)
	}()

	return &Tree{
		trees: createIndex(chunks),
		r:     r,
		lines: n,
	}, nil
}

func createTree(trees chan<- *tree, c chunk, wg *sync.WaitGroup) {
	defer wg.Done()
	trees <- &tree{c.chr, rtreego.NewTree(1, 25, 50, c.lines...)}
}

func createIndex(chunks <-chan chunk) RtreeMap {
	trees := make(RtreeMap)
	treeChan := make(chan *tree)

	var wg sync.WaitGroup
	go func() {
		for c := range chunks {
			log.WithFields(log.Fields{
				"Reference": c.chr,
				"Lines":     len(c.lines),
			}).Debug("Building tree")
			wg.Add(1)
			go createTree(treeChan, c, &wg)
		}
		wg.Wait()
		close(treeChan)
	}()

	for t := range treeChan {
		trees[t.chr] = t.tree
	}
	return trees
}

// QueryIndex perform a SearchIntersect on the specified index given a start and end position.
func QueryIndex(index *rtreego.Rtree, begin, end int) []rtreego.Spatial {
	// Create the bounding box for the query:
	bb, err := newRect(begin, end)
	if err != nil {
		return nil
	}
	// Get a slice of the objects in rt that intersect bb:
	return index.SearchIntersect(bb)
}

// Len returns the number of indexed lines.
func (t *Tree) Len() int {
	return t.lines
}

// Refs returns the indexed chromosome names.
func (t *Tree) Refs() []string {
	refs := make([]string, 0, t.trees.Len())
	for chr := range t.trees {
		refs = append(refs, chr)
	}
	sort.Strings(refs)
	return refs
}

// Query returns, in file order, the lines whose records overlap region.
// A chromosome without records or an empty region yields no lines.
func (t *Tree) Query(region bed.Region) (bed.Lines, error) {
	rtree := t.trees.Get(region.Chrom)
	if rtree == nil || region.Empty() {
		return &extentLines{}, nil
	}
	var found []*line
	for _, s := range QueryIndex(rtree, region.Start, region.End) {
		if l, ok := s.(*line); ok && region.Overlaps(l.start, l.end) {
			found = append(found, l)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})
	return &extentLines{r: t.r, lines: found}, nil
}

// Close closes the indexed file when it is an io.Closer.
func (t *Tree) Close() error {
	if c, ok := t.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// extentLines reads resolved lines by offset and length.
type extentLines struct {
	r     io.ReaderAt
	lines []*line
}

func (e *extentLines) Next() ([]byte, error) {
	if len(e.lines) == 0 {
		return nil, io.EOF
	}
	l := e.lines[0]
	e.lines = e.lines[1:]
	buf := make([]byte, l.length)
	n, err := e.r.ReadAt(buf, l.offset)
	if n == len(buf) {
		return buf, nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return nil, errors.Wrapf(err, "read line at offset %d", l.offset)
}

func (e *extentLines) Close() error {
	e.lines = nil
	return nil
}
