package pnt

import (
	"fmt"
	"io"
	"text/template"

	"github.com/cockroachdb/errors"
)

// writeReportTemplate executes tmplStr once per row, each on its own line.
func writeReportTemplate(w io.Writer, tmplStr string, rows []ReportRow) error {
	tmpl, err := template.New("report").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return errors.Wrapf(ErrInvalidTemplate, "parse report template: %v", err)
	}
	for _, r := range rows {
		if err := tmpl.Execute(w, r); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
