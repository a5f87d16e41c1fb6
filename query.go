package bedscan

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/guigolab/bedscan/bed"
	"github.com/guigolab/bedscan/config"
	"github.com/guigolab/bedscan/index"
	"github.com/guigolab/bedscan/utils"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// OpenIndexed returns a Reader over input with an index attached. A tabix
// index next to input is used when present; otherwise input must be a plain
// file, indexed in memory.
func OpenIndexed(input string, cfg *config.Config) (*bed.Reader, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if _, ok := index.TabixPath(input); ok {
		idx, err := index.OpenTabix(input, utils.Max(cfg.Cpu, 1))
		if err != nil {
			return nil, err
		}
		src, err := utils.OpenInput(input)
		if err != nil {
			idx.Close()
			return nil, err
		}
		return logIndex(bed.NewReader(src, idx, cfg)), nil
	}
	if strings.HasSuffix(input, ".gz") {
		return nil, errors.Errorf("%s is compressed and has no tabix index", input)
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	log.Infof("Creating index for %s", input)
	start := time.Now()
	idx, err := index.BuildTree(f, fi.Size(), cfg)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "index %s", input)
	}
	log.WithField("Lines", idx.Len()).Infof("Index done in %v", time.Since(start))
	return logIndex(bed.NewReader(io.NewSectionReader(f, 0, fi.Size()), idx, cfg)), nil
}

type refLister interface {
	Refs() []string
}

func logIndex(br *bed.Reader) *bed.Reader {
	if idx, ok := br.Index().(refLister); ok {
		log.WithFields(log.Fields{
			"Index":      fmt.Sprintf("%T", idx),
			"References": len(idx.Refs()),
		}).Debug("Index ready")
	}
	return br
}

// Query writes the lines of input overlapping region to w and returns how
// many were written.
func Query(input string, region bed.Region, cfg *config.Config, w io.Writer) (n int, err error) {
	br, err := OpenIndexed(input, cfg)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := br.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()
	return WriteLookup(br, region, w)
}

// WriteLookup writes the lines br's index resolves for region to w and
// returns how many were written.
func WriteLookup(br *bed.Reader, region bed.Region, w io.Writer) (n int, err error) {
	l, err := br.Lookup(region)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}()
	logger := log.WithFields(log.Fields{
		"Region": region.String(),
	})
	logger.Debug("Querying")
	for {
		rec, err := l.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		if _, err := fmt.Fprintln(w, rec.String()); err != nil {
			return n, err
		}
		n++
	}
	logger.WithField("records", n).Debug("Done")
	return n, nil
}
