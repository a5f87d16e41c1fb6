// Package bedscan provides functions for computing statistics on BED files
// and for reading the records overlapping a genomic region.
package bedscan

import (
	"io"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guigolab/bedscan/bed"
	"github.com/guigolab/bedscan/config"
	"github.com/guigolab/bedscan/stats"
	"github.com/guigolab/bedscan/utils"
	multierror "github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetLevel(log.WarnLevel)
}

func worker(id int, in <-chan *bed.Record, out chan<- stats.Map, wg *sync.WaitGroup) {
	defer wg.Done()
	logger := log.WithFields(log.Fields{
		"worker": id,
	})
	logger.Debug("Starting")

	sm := stats.NewMap(true, true, true)
	n := 0
	for record := range in {
		sm.Collect(record)
		n++
	}
	logger.WithField("records", n).Debug("Done")

	out <- sm
}

// shard returns the worker a chromosome is assigned to.
func shard(chrom []byte, workers int) int {
	return int(xxhash.Sum64(chrom) % uint64(workers))
}

// read hands records over to the workers until the input ends, the record
// limit is reached or a read fails. Records of one chromosome always go to
// the same worker.
func read(br *bed.Reader, chans []chan *bed.Record, reads int) error {
	defer func() {
		for _, c := range chans {
			close(c)
		}
	}()
	for n := 0; reads < 0 || n < reads; n++ {
		record, err := br.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		chans[shard(record.Bytes(record.Chrom), len(chans))] <- record
	}
	return nil
}

func waitProcess(st chan stats.Map, wg *sync.WaitGroup) {
	wg.Wait()
	close(st)
}

// ProcessReader collects stats from the BED records of r. Reading stops at
// the first malformed line, and its error is returned.
func ProcessReader(r io.Reader, cfg *config.Config) (stats.Map, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	var wg sync.WaitGroup

	workers := utils.Max(cfg.Cpu, 1)
	chans := make([]chan *bed.Record, workers)
	st := make(chan stats.Map, workers)
	for i := range chans {
		chans[i] = make(chan *bed.Record, utils.Max(cfg.MaxBuf, 0))
		wg.Add(1)
		go worker(i+1, chans[i], st, &wg)
	}

	// records are handed over to other goroutines
	c := *cfg
	c.ReuseRecord = false
	err := read(bed.NewReader(r, nil, &c), chans, cfg.Reads)

	go waitProcess(st, &wg)

	sm := <-st
	sm.Merge(st)
	if err != nil {
		return nil, err
	}
	sm.Finalize()
	return sm, nil
}

// Process process the input BED file and collect record stats.
func Process(input string, cfg *config.Config) (sm stats.Map, err error) {
	start := time.Now()
	log.Infof("Collecting stats for %s", input)
	r, err := utils.OpenInput(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()
	sm, err = ProcessReader(r, cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Stats done in %v", time.Since(start))
	return sm, nil
}

// WriteOutput writes the JSON representation of st to output.
func WriteOutput(output string, st interface{}) error {
	out, err := utils.NewOutput(output)
	if err != nil {
		return err
	}
	if err := utils.OutputJSON(out, st); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
