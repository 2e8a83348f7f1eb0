package plot

import "strings"

// brailleGrid accumulates dots on a 2x4-per-cell braille canvas. Each cell
// remembers the first series that drew into it for coloring.
type brailleGrid struct {
	width  int
	height int
	masks  []uint8
	owner  []int
}

func newBrailleGrid(width, height int) *brailleGrid {
	g := &brailleGrid{
		width:  width,
		height: height,
		masks:  make([]uint8, width*height),
		owner:  make([]int, width*height),
	}
	for i := range g.owner {
		g.owner[i] = -1
	}
	return g
}

// set lights the dot at braille coordinates (x in 0..2*width, y in
// 0..4*height) for the given series.
func (g *brailleGrid) set(x, y, series int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= g.width || cy >= g.height {
		return
	}
	idx := cy*g.width + cx
	g.masks[idx] |= dotMask(x%2, y%4)
	if g.owner[idx] == -1 {
		g.owner[idx] = series
	}
}

// line draws a braille line between two dot coordinates (Bresenham).
func (g *brailleGrid) line(x0, y0, x1, y1, series int) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.set(x0, y0, series)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				return
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// row renders one cell row, coloring each cell by its owning series.
func (g *brailleGrid) row(y int) string {
	var b strings.Builder
	for x := 0; x < g.width; x++ {
		idx := y*g.width + x
		mask := g.masks[idx]
		ch := string(rune(0x2800 + int(mask)))
		if mask != 0 && g.owner[idx] >= 0 {
			ch = styled(seriesStyles[g.owner[idx]%len(seriesStyles)], ch)
		}
		b.WriteString(ch)
	}
	return b.String()
}

// dotMask returns the braille dot bit for a position inside one cell.
func dotMask(x, y int) uint8 {
	masks := [4][2]uint8{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	return masks[y][x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
