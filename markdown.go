package pnt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeReportMarkdown writes a GitHub flavored markdown table. Cells are
// wrapped in backticks so '%' and '|' survive rendering.
func writeReportMarkdown(w io.Writer, rows []ReportRow) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.cells(false)
		for j, c := range cells[i] {
			cells[i][j] = markdownCode(c)
		}
	}

	// Minimum 3 for the alignment markers.
	widths := make([]int, len(reportHeader))
	for i, h := range reportHeader {
		widths[i] = max(3, runewidth.StringWidth(h))
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	if err := writeMarkdownRow(w, reportHeader, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if numericColumns[i] {
			sep[i] = strings.Repeat("-", width-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, numericColumns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

// markdownCode renders s as inline code. Pipes are escaped because they
// end a cell even inside backticks.
func markdownCode(s string) string {
	if s == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
