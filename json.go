package pnt

import (
	"encoding/json"
	"io"
)

func writeReportJSON(w io.Writer, rows []ReportRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
