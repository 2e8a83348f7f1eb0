package plot

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table writes an aligned text table with a styled header row.
func Table(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	header := formatRow(headers, widths, rightAlign)
	if _, err := fmt.Fprintln(w, styled(headerStyle, header)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths, rightAlign)); err != nil {
			return err
		}
	}
	return nil
}

func formatRow(cells []string, widths []int, rightAlign map[int]bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(pad(cell, width, rightAlign[i]))
	}
	return b.String()
}

func pad(cell string, width int, right bool) string {
	gap := width - utf8.RuneCountInString(cell)
	if gap <= 0 {
		return cell
	}
	if right {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}
