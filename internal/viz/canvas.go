package viz

import (
	"strings"
)

// Braille cells hold a 2x4 dot grid:
//
//	1 4
//	2 5
//	3 6
//	7 8
const brailleBlank = 0x2800

var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille grid of Width x Height cells, addressed in dots
// (Width*2 by Height*4).
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBlank
		}
	}
}

// Set lights the dot at (x, y); out of range dots are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= dotBits[y%4][x%2]
}

// Plot lights the dot for integer world coordinates (wx, wy) within
// [-extent, extent] on both axes, with y growing upwards.
func (c *Canvas) Plot(wx, wy, extent int64) {
	if extent <= 0 {
		extent = 1
	}
	w, h := int64(c.Width*2-1), int64(c.Height*4-1)
	x := (wx + extent) * w / (2 * extent)
	y := h - (wy+extent)*h/(2*extent)
	c.Set(int(x), int(y))
}

// Mark draws a 2x2 dot block so bodies stand out from their trails.
func (c *Canvas) Mark(wx, wy, extent int64) {
	if extent <= 0 {
		extent = 1
	}
	w, h := int64(c.Width*2-1), int64(c.Height*4-1)
	x := int((wx + extent) * w / (2 * extent))
	y := int(h - (wy+extent)*h/(2*extent))
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
