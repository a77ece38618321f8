package pnt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// literalWidth caps the literal column of the table report.
const literalWidth = 24

func writeReportTable(w io.Writer, rows []ReportRow) error {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.cells(true)
		last := len(cells[i]) - 1
		cells[i][last] = runewidth.Truncate(cells[i][last], literalWidth, "...")
	}

	widths := make([]int, len(reportHeader))
	for i, h := range reportHeader {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	if err := drawLine(w, widths); err != nil {
		return err
	}
	if err := drawRow(w, reportHeader, widths); err != nil {
		return err
	}
	if err := drawLine(w, widths); err != nil {
		return err
	}
	for _, row := range cells {
		if err := drawRow(w, row, widths); err != nil {
			return err
		}
	}
	return drawLine(w, widths)
}

func drawLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawRow(w io.Writer, cells []string, widths []int) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cells[i], width))
		sb.WriteString(" |")
	}
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// alignCell pads s to width, on the left when right is set.
func alignCell(s string, width int, right bool) string {
	if right {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
