package pnt

import (
	"fmt"
	"io"
)

// writeReportPlain writes the canonical form of each directive, one per
// line.
func writeReportPlain(w io.Writer, dirs []Directive) error {
	for _, d := range dirs {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}
