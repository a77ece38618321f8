package pnt

import (
	"fmt"
	"io"
	"strings"
)

// writeReportTSV writes tab separated rows. Flags and literals are quoted
// since either may hold a tab.
func writeReportTSV(w io.Writer, rows []ReportRow) error {
	if _, err := fmt.Fprintln(w, strings.Join(reportHeader, "\t")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(r.cells(true), "\t")); err != nil {
			return err
		}
	}
	return nil
}
