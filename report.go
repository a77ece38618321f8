package pnt

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Report errors.
var (
	ErrUnsupportedReport = errors.New("unsupported report format")
	ErrInvalidTemplate   = errors.New("invalid report template")
)

// ReportFormat selects how [WriteReport] renders directives.
type ReportFormat string

const (
	ReportTable    ReportFormat = "table"
	ReportJSON     ReportFormat = "json"
	ReportJSONL    ReportFormat = "jsonl"
	ReportYAML     ReportFormat = "yaml"
	ReportCSV      ReportFormat = "csv"
	ReportTSV      ReportFormat = "tsv"
	ReportMarkdown ReportFormat = "markdown"
	ReportHTML     ReportFormat = "html"
	ReportPlain    ReportFormat = "plain"
)

const goTemplatePrefix = "go-template="

var reportFormats = []ReportFormat{
	ReportTable, ReportJSON, ReportJSONL, ReportYAML, ReportCSV,
	ReportTSV, ReportMarkdown, ReportHTML, ReportPlain,
}

// ReportFormats returns the static report format names. Go templates are
// not listed because they are parameterized.
func ReportFormats() []ReportFormat {
	out := make([]ReportFormat, len(reportFormats))
	copy(out, reportFormats)
	return out
}

// ReportTemplate returns a format that executes a text/template once per
// [ReportRow].
func ReportTemplate(tmpl string) ReportFormat {
	return ReportFormat(goTemplatePrefix + tmpl)
}

// ParseReportFormat parses a report format name, including
// go-template=<tmpl>.
func ParseReportFormat(s string) (ReportFormat, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return ReportFormat(s), nil
	}
	for _, f := range reportFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnsupportedReport, "%q", s)
}

// ReportRow is one directive as shown in a report.
type ReportRow struct {
	Offset    int    `json:"offset" yaml:"offset"`
	Directive string `json:"directive" yaml:"directive"`
	Canonical string `json:"canonical" yaml:"canonical"`
	Arg       int    `json:"arg" yaml:"arg"`
	Explicit  bool   `json:"explicit" yaml:"explicit"`
	Flags     string `json:"flags" yaml:"flags"`
	Width     string `json:"width" yaml:"width"`
	Precision string `json:"precision" yaml:"precision"`
	Verb      string `json:"verb" yaml:"verb"`
	Literal   string `json:"literal" yaml:"literal"`
}

// Rows converts directives of tmpl to report rows. Literal is the template
// text between the previous directive and this one. Arg is one-based.
func Rows(tmpl string, dirs []Directive) []ReportRow {
	rows := make([]ReportRow, len(dirs))
	prev := 0
	for i, d := range dirs {
		lit := ""
		if d.Offset >= prev && d.Offset <= len(tmpl) {
			lit = tmpl[prev:d.Offset]
		}
		prev = d.Offset + len(d.Text)
		rows[i] = ReportRow{
			Offset:    d.Offset,
			Directive: d.Text,
			Canonical: d.String(),
			Arg:       d.Position + 1,
			Explicit:  d.Explicit,
			Flags:     d.Flags.String(),
			Width:     boundString(d.Width),
			Precision: boundString(d.Precision),
			Verb:      string(d.Verb),
			Literal:   lit,
		}
	}
	return rows
}

func boundString(n int) string {
	switch n {
	case NoValue:
		return ""
	case ArgValue:
		return "*"
	}
	return strconv.Itoa(n)
}

// WriteReport renders the directives of tmpl to w.
func WriteReport(w io.Writer, f ReportFormat, tmpl string, dirs []Directive) error {
	rows := Rows(tmpl, dirs)
	if s, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
		return writeReportTemplate(w, s, rows)
	}
	switch f {
	case ReportTable:
		return writeReportTable(w, rows)
	case ReportJSON:
		return writeReportJSON(w, rows)
	case ReportJSONL:
		return writeReportJSONL(w, rows)
	case ReportYAML:
		return writeReportYAML(w, rows)
	case ReportCSV:
		return writeReportCSV(w, rows)
	case ReportTSV:
		return writeReportTSV(w, rows)
	case ReportMarkdown:
		return writeReportMarkdown(w, rows)
	case ReportHTML:
		return writeReportHTML(w, rows)
	case ReportPlain:
		return writeReportPlain(w, dirs)
	}
	return errors.Wrapf(ErrUnsupportedReport, "%q", string(f))
}

var reportHeader = []string{"OFFSET", "DIRECTIVE", "ARG", "FLAGS", "WIDTH", "PREC", "VERB", "LITERAL"}

// numericColumns are right aligned by the markdown and html reports.
var numericColumns = map[int]bool{0: true, 4: true, 5: true}

// cells returns the row as report cells. Quoted wraps the flags and the
// literal so spaces stay visible.
func (r ReportRow) cells(quoted bool) []string {
	arg := strconv.Itoa(r.Arg)
	if r.Explicit {
		arg += "$"
	}
	flags, lit := r.Flags, r.Literal
	if quoted {
		flags, lit = strconv.Quote(flags), strconv.Quote(lit)
	}
	return []string{
		strconv.Itoa(r.Offset),
		r.Directive,
		arg,
		flags,
		r.Width,
		r.Precision,
		r.Verb,
		lit,
	}
}
