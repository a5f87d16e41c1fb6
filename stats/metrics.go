package stats

import (
	"io"
	"text/template"

	"github.com/pkg/errors"
)

// Metrics defines an interface for a metric
type Metrics interface {
	Calculate(m Map) error
	Output(out io.Writer) error
}

// SummaryMetrics represents fractions of records with optional BED features
type SummaryMetrics struct {
	Named        fraction `json:"FRACTION_NAMED"`
	Stranded     fraction `json:"FRACTION_STRANDED"`
	Thick        fraction `json:"FRACTION_THICK"`
	Split        fraction `json:"FRACTION_SPLIT"`
	Inconsistent fraction `json:"FRACTION_INCONSISTENT"`
}

var summaryTemplate = template.Must(template.New("summary").Parse(`FRACTION_NAMED	{{.Named}}
FRACTION_STRANDED	{{.Stranded}}
FRACTION_THICK	{{.Thick}}
FRACTION_SPLIT	{{.Split}}
FRACTION_INCONSISTENT	{{.Inconsistent}}
`))

// Calculate compute metrics from general stats
func (m *SummaryMetrics) Calculate(sm Map) error {
	g, hasGeneral := sm["general"].(*GeneralStats)
	if !hasGeneral {
		return errors.New("stats: summary metrics need general stats")
	}
	m.Named = ratio(g.Named, g.Records)
	m.Thick = ratio(g.Thick, g.Records)
	m.Inconsistent = ratio(g.Inconsistent, g.Records)
	if s, ok := sm["strand"].(*StrandStats); ok {
		m.Stranded = ratio(s.Plus+s.Minus, g.Records)
	}
	if l, ok := sm["lengths"].(*LengthStats); ok {
		m.Split = ratio(l.Split.Count, g.Records)
	}
	return nil
}

// Output write metrics to out
func (m *SummaryMetrics) Output(out io.Writer) error {
	return summaryTemplate.Execute(out, m)
}
