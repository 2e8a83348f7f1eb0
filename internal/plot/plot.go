// Package plot renders histograms, density curves, and tables as terminal
// text for the report commands.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/abhisek/geoquiz/internal/stats"
)

// Series is one named curve of a density plot.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultWidth  = 80
	minPlotWidth  = 16
	defaultHeight = 10
	axisGutter    = 8 // room for the y-axis labels
)

// Width returns the terminal width, or a fallback when stdout is not a
// terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Densities renders the series as a braille line plot sharing one y scale,
// so curves stay comparable. NaN values (undefined densities) are skipped.
func Densities(w io.Writer, title string, series []Series, width, height int) error {
	series = dropEmpty(series)
	if len(series) == 0 {
		_, err := fmt.Fprintln(w, "No data to plot.")
		return err
	}
	if height <= 0 {
		height = defaultHeight
	}
	if width <= 0 {
		width = Width() - axisGutter
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	lo, hi := globalRange(series)
	if hi == lo {
		hi = lo + 1
	}

	grid := newBrailleGrid(width, height)
	for si, s := range series {
		prevX, prevY := -1, -1
		for i, v := range s.Values {
			if math.IsNaN(v) {
				prevX, prevY = -1, -1
				continue
			}
			x := 0
			if len(s.Values) > 1 {
				x = i * (2*width - 1) / (len(s.Values) - 1)
			}
			y := dotRow(v, lo, hi, 4*height)
			if prevX >= 0 {
				grid.line(prevX, prevY, x, y, si)
			} else {
				grid.set(x, y, si)
			}
			prevX, prevY = x, y
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, styled(titleStyle, title)); err != nil {
			return err
		}
	}
	labels := axisLabels(lo, hi, height)
	for y := 0; y < height; y++ {
		if _, err := fmt.Fprintf(w, "%*s %s\n", axisGutter-1, labels[y], grid.row(y)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, legend(series)); err != nil {
		return err
	}
	return nil
}

// Histogram renders counts as horizontal bars labeled with their bin
// ranges.
func Histogram(w io.Writer, title string, values []float64, bins, width int) error {
	counts, edges := stats.Histogram(values, bins)
	if counts == nil {
		_, err := fmt.Fprintln(w, "No data to plot.")
		return err
	}
	if width <= 0 {
		width = Width()
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	barRoom := width - 26
	if barRoom < 10 {
		barRoom = 10
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, styled(titleStyle, title)); err != nil {
			return err
		}
	}
	for i, c := range counts {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("█", c*barRoom/maxCount)
		}
		if c > 0 && bar == "" {
			bar = "▏"
		}
		_, err := fmt.Fprintf(w, "%7.2f..%-7.2f %5d %s\n", edges[i], edges[i+1], c, bar)
		if err != nil {
			return err
		}
	}
	return nil
}

func dropEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if hasFinite(s.Values) {
			out = append(out, s)
		}
	}
	return out
}

func hasFinite(values []float64) bool {
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func globalRange(series []Series) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}

// dotRow maps a value onto a braille dot row, row 0 at the top.
func dotRow(v, lo, hi float64, rows int) int {
	pos := (v - lo) / (hi - lo)
	row := int(math.Round((1 - pos) * float64(rows-1)))
	if row < 0 {
		row = 0
	}
	if row >= rows {
		row = rows - 1
	}
	return row
}

func axisLabels(lo, hi float64, height int) []string {
	labels := make([]string, height)
	if height == 0 {
		return labels
	}
	labels[0] = fmt.Sprintf("%.3g", hi)
	labels[height-1] = fmt.Sprintf("%.3g", lo)
	if height > 2 {
		labels[height/2] = fmt.Sprintf("%.3g", (lo+hi)/2)
	}
	return labels
}

func legend(series []Series) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		style := seriesStyles[i%len(seriesStyles)]
		parts = append(parts, styled(style, "⣿ "+s.Name))
	}
	return "Legend: " + strings.Join(parts, "  ")
}
