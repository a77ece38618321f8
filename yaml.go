package pnt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeReportYAML(w io.Writer, rows []ReportRow) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
