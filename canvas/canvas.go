/*
Package canvas implements the surfaces invaders are painted on.

Every canvas has a fixed size chosen up front and is written one cell at a
time through the Canvas interface. Text canvases paint a '*' glyph and ignore
colour, ANSI canvases paint a coloured '*' and Image canvases store the
colour in an RGBA raster. Writing outside of a canvas is a programming error
and panics.
*/
package canvas

import (
	"fmt"
	"image/color"
)

const (
	// Glyph is painted for every set cell of a text canvas.
	Glyph = '*'
	// Blank fills every unset cell of a text canvas.
	Blank = ' '
)

// Canvas is implemented by anything a sprite can be painted on.
type Canvas interface {
	Set(x, y int, c color.Color)
}

// Factory returns a canvas of w by h cells.
type Factory func(w, h int) Canvas

func checkBounds(x, y, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		panic(fmt.Sprintf("canvas: (%d, %d) outside of %d x %d canvas", x, y, w, h))
	}
}
