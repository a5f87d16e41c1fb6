package utils

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/shenwei356/xopen"
	log "github.com/sirupsen/logrus"
)

func Check(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func Max(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// OpenInput opens a plain or compressed input file. If the file name is '-' os.Stdin is read.
func OpenInput(input string) (*xopen.Reader, error) {
	return xopen.Ropen(input)
}

// OutputJSON writes the json representation of stats to an io.Writer
func OutputJSON(writer io.Writer, stats interface{}) error {
	b, err := json.MarshalIndent(stats, "", "\t")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = writer.Write(b)
	return err
}

// NewOutput return a new writer given an output file name. If the file name is '-' os.Stdout is used.
// Output is gzip compressed when the file name ends with .gz.
func NewOutput(output string) (*xopen.Writer, error) {
	return xopen.Wopen(output)
}
