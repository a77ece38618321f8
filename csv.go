package pnt

import (
	"encoding/csv"
	"io"
)

func writeReportCSV(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.cells(false)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
