package pnt

import (
	"encoding/json"
	"io"
)

// writeReportJSONL writes one compact JSON object per directive.
func writeReportJSONL(w io.Writer, rows []ReportRow) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
