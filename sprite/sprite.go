/*
Package sprite decodes sprite values into symmetric pixel grids and paints
them on a canvas.

A sprite value supplies one bit per pixel of the left half of a sprite,
least significant bit first, a row at a time from the top. The right half is
the left half mirrored so every sprite is symmetric about its vertical
centre line.
*/
package sprite

import (
	"image"
	"image/color"

	"github.com/bodgit/invaders/canvas"
)

// Grid is a decoded sprite indexed as grid[y][x].
type Grid [][]bool

// Decode returns the height by width*2 grid for value. Only the lowest
// width*height bits of value are used.
func Decode(value uint64, width, height int) Grid {
	g := make(Grid, height)

	pos := uint64(1)
	for y := range g {
		row := make([]bool, width<<1)
		for x := 0; x < width; x++ {
			row[x] = value&pos != 0
			pos <<= 1
		}
		for x := width; x < len(row); x++ {
			row[x] = row[len(row)-1-x]
		}
		g[y] = row
	}

	return g
}

// Width returns the number of pixels across, including the mirrored half.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int {
	return len(g)
}

// Render paints every set pixel of g on c as a scale by scale block of
// colour col, with the top-left corner of the grid at origin.
func (g Grid) Render(c canvas.Canvas, origin image.Point, scale int, col color.Color) {
	for y, row := range g {
		for x, set := range row {
			if set {
				paint(c, origin.X+x*scale, origin.Y+y*scale, scale, col)
			}
		}
	}
}

func paint(c canvas.Canvas, x0, y0, scale int, col color.Color) {
	for y := y0; y < y0+scale; y++ {
		for x := x0; x < x0+scale; x++ {
			c.Set(x, y, col)
		}
	}
}

// String returns the grid as text, '*' for set pixels.
func (g Grid) String() string {
	t := canvas.NewText(g.Width(), g.Height())
	g.Render(t, image.Point{}, 1, nil)
	return t.String()
}
