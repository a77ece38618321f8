package pnt

import (
	"fmt"
	"html"
	"io"
)

func writeReportHTML(w io.Writer, rows []ReportRow) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for i, col := range reportHeader {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(i), html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range r.cells(false) {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(i), html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(col int) string {
	if numericColumns[col] {
		return ` style="text-align: right"`
	}
	return ""
}
