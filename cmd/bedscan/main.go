package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/guigolab/bedscan"
	"github.com/guigolab/bedscan/bed"
	"github.com/guigolab/bedscan/config"
	"github.com/guigolab/bedscan/stats"
	"github.com/guigolab/bedscan/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	input, loglevel, output        string
	cpu, maxBuf, reads, bufferSize int
	allowUnterminated, skipHeaders bool
	summary                        bool
)

func setLogLevel() error {
	level, err := log.ParseLevel(loglevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func newConfig() *config.Config {
	cfg := config.NewConfig(cpu, maxBuf, reads)
	cfg.BufferSize = bufferSize
	cfg.AllowUnterminated = allowUnterminated
	cfg.SkipHeaders = skipHeaders
	return cfg
}

func run(cmd *cobra.Command, args []string) (err error) {
	if err = setLogLevel(); err != nil {
		return
	}
	logger := log.WithFields(log.Fields{
		"version":   version,
		"commit":    commit,
		"buildTime": date,
		"library":   bedscan.Version(),
	})
	logger.Infof("Running %s", cmd.Use)
	log.Infof("Using %v out of %v logical CPUs", cpu, runtime.NumCPU())
	allStats, err := bedscan.Process(input, newConfig())
	if err != nil {
		return
	}
	if !summary {
		return bedscan.WriteOutput(output, allStats)
	}

	var m stats.SummaryMetrics
	if err = m.Calculate(allStats); err != nil {
		return
	}
	w, err := utils.NewOutput(output)
	if err != nil {
		return
	}
	if err = m.Output(w); err != nil {
		w.Close()
		return
	}
	return w.Close()
}

func query(cmd *cobra.Command, args []string) (err error) {
	if err = setLogLevel(); err != nil {
		return
	}
	regions := make([]bed.Region, len(args))
	for i, arg := range args {
		if regions[i], err = bed.ParseRegion(arg); err != nil {
			return
		}
	}
	br, err := bedscan.OpenIndexed(input, newConfig())
	if err != nil {
		return
	}
	defer func() {
		if cerr := br.Close(); err == nil {
			err = cerr
		}
	}()
	w, err := utils.NewOutput(output)
	utils.Check(err)
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	for _, region := range regions {
		n, err := bedscan.WriteLookup(br, region, w)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"Region":  region.String(),
			"Records": n,
		}).Info("Query done")
	}
	return nil
}

func setBedscanFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&input, "input", "i", "", "input file (required)")
	c.PersistentFlags().StringVarP(&loglevel, "loglevel", "", "warn", "logging level")
	c.PersistentFlags().StringVarP(&output, "output", "o", "-", "output file")
	c.PersistentFlags().IntVarP(&cpu, "cpu", "c", runtime.NumCPU(), "number of cpus to be used")
	c.PersistentFlags().IntVarP(&maxBuf, "max-buf", "", 10000, "maximum number of buffered records per worker")
	c.PersistentFlags().IntVarP(&reads, "reads", "n", -1, "number of records to process")
	c.PersistentFlags().IntVarP(&bufferSize, "buffer-size", "", config.DefaultBufferSize, "initial size in bytes of the read buffer")
	c.PersistentFlags().BoolVarP(&allowUnterminated, "allow-unterminated", "", false, "accept a final line without line feed")
	c.PersistentFlags().BoolVarP(&skipHeaders, "skip-headers", "s", false, "skip comment, blank, track and browser lines")
	c.Flags().BoolVarP(&summary, "summary", "", false, "output summary metrics as tab separated values")
	c.MarkPersistentFlagRequired("input")

	c.SetVersionTemplate(`{{with .Name}}{{printf "== %s ==\n" .}}{{end}}{{printf "%s\n" .Version}}`)
}

func buildVersion(version, commit, date string) string {
	var result = fmt.Sprintf("version: %s", version)
	if commit != "" {
		result = fmt.Sprintf("%s\ncommit: %s", result, commit)
	}
	if date != "" {
		result = fmt.Sprintf("%s\nbuilt at: %s", result, date)
	}
	return result
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "bedscan",
		Short:   "BED file statistics",
		Long:    "bedscan - compute statistics on BED interval files",
		RunE:    run,
		Version: buildVersion(version, commit, date),
	}
	setBedscanFlags(rootCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "query region...",
		Short: "Print the records overlapping genomic regions",
		Long: `Print the records overlapping genomic regions given as chr, chr:start- or chr:start-end.
A tabix index (input.tbi) is used when present; otherwise a plain input is indexed in memory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: query,
	})
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Debug(err)
		os.Exit(1)
	}
}
