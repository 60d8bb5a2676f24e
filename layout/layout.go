/*
Package layout implements the geometry of a composite invader canvas.

A canvas is a grid of tiles, TilesWide across and TilesHigh down. Each tile
holds one sprite which is TileWidth*2 pixels wide (the generated left half
plus its mirror) and TileHeight pixels high, multiplied by Scale, and padded
by Border pixels on all four sides. The padding applies to the outer edge of
the canvas as well, so adjacent sprites are separated by 2*Border pixels and
the canvas edge by Border pixels.
*/
package layout

import (
	"errors"
	"fmt"
	"image"
)

const (
	// MaxBits is the largest number of bits a sprite value can use.
	// Sprite values range over [1, 2^bits] which must fit in an int64.
	MaxBits = 62

	// MaxCells is the largest canvas, in cells, a geometry may describe.
	MaxCells = 1 << 28

	// DefaultTileWidth is the default number of generated (un-mirrored)
	// pixels across a sprite.
	DefaultTileWidth = 4
	// DefaultTileHeight is the default number of pixels down a sprite.
	DefaultTileHeight = 8
)

var (
	// ErrInvalidGeometry is returned for dimensions, scales, tile counts
	// or borders outside of their allowed range.
	ErrInvalidGeometry = errors.New("layout: invalid geometry")
	// ErrTooManyBits is returned when a sprite needs more than MaxBits
	// bits.
	ErrTooManyBits = errors.New("layout: sprite does not fit in a 64-bit value")
	// ErrBudgetTooSmall is returned when a pixel budget can't hold a
	// single tile.
	ErrBudgetTooSmall = errors.New("layout: pixel budget too small for a single tile")
)

// Geometry describes the layout of a composite canvas.
type Geometry struct {
	TileWidth  int
	TileHeight int
	Scale      int
	TilesWide  int
	TilesHigh  int
	Border     int
}

func Default() Geometry {
	return Geometry{
		TileWidth:  DefaultTileWidth,
		TileHeight: DefaultTileHeight,
		Scale:      1,
		TilesWide:  1,
		TilesHigh:  1,
	}
}

// Validate checks every field is within range.
func (g Geometry) Validate() error {
	switch {
	case g.TileWidth < 1:
		return fmt.Errorf("%w: tile width %d is less than 1", ErrInvalidGeometry, g.TileWidth)
	case g.TileHeight < 1:
		return fmt.Errorf("%w: tile height %d is less than 1", ErrInvalidGeometry, g.TileHeight)
	case g.Scale < 1:
		return fmt.Errorf("%w: scale %d is less than 1", ErrInvalidGeometry, g.Scale)
	case g.TilesWide < 1:
		return fmt.Errorf("%w: %d tiles wide is less than 1", ErrInvalidGeometry, g.TilesWide)
	case g.TilesHigh < 1:
		return fmt.Errorf("%w: %d tiles high is less than 1", ErrInvalidGeometry, g.TilesHigh)
	case g.Border < 0:
		return fmt.Errorf("%w: border %d is negative", ErrInvalidGeometry, g.Border)
	}
	if err := CheckBits(g.TileWidth, g.TileHeight); err != nil {
		return err
	}
	return g.checkSize()
}

func tooBig(what string, a, b int) error {
	return fmt.Errorf("%w: %s of %d x %d exceeds %d cells", ErrInvalidGeometry, what, a, b, MaxCells)
}

// checkFootprint rejects a tile whose footprint can't be computed without
// overflowing. Divide rather than multiply throughout.
func (g Geometry) checkFootprint() error {
	switch {
	case g.Scale > MaxCells/(g.TileWidth<<1):
		return tooBig("sprite width", g.TileWidth<<1, g.Scale)
	case g.Scale > MaxCells/g.TileHeight:
		return tooBig("sprite height", g.TileHeight, g.Scale)
	case g.Border > MaxCells>>1:
		return tooBig("border", g.Border, 2)
	}
	return nil
}

func (g Geometry) checkSize() error {
	if err := g.checkFootprint(); err != nil {
		return err
	}
	f := g.Footprint()
	switch {
	case g.TilesWide > MaxCells/f.X:
		return tooBig("canvas width", g.TilesWide, f.X)
	case g.TilesHigh > MaxCells/f.Y:
		return tooBig("canvas height", g.TilesHigh, f.Y)
	}
	if size := g.Size(); size.X > MaxCells/size.Y {
		return tooBig("canvas", size.X, size.Y)
	}
	return nil
}

// CheckBits returns ErrTooManyBits if a width by height sprite can't be
// backed by a sprite value.
func CheckBits(width, height int) error {
	// Divide rather than multiply so huge dimensions can't overflow
	if width > 0 && height > MaxBits/width {
		return fmt.Errorf("%w: %d x %d needs more than %d bits", ErrTooManyBits, width, height, MaxBits)
	}
	return nil
}

func (g Geometry) Bits() int {
	return g.TileWidth * g.TileHeight
}

// MaxValue returns the largest sprite value, 2^Bits.
func (g Geometry) MaxValue() uint64 {
	return 1 << uint(g.Bits())
}

func (g Geometry) Len() int {
	return g.TilesWide * g.TilesHigh
}

// Sprite returns the scaled size of a sprite without its border.
func (g Geometry) Sprite() image.Point {
	return image.Pt(g.TileWidth*2*g.Scale, g.TileHeight*g.Scale)
}

// Footprint returns the size of a tile including its border.
func (g Geometry) Footprint() image.Point {
	return g.Sprite().Add(image.Pt(g.Border<<1, g.Border<<1))
}

// Size returns the size of the whole canvas.
func (g Geometry) Size() image.Point {
	f := g.Footprint()
	return image.Pt(g.TilesWide*f.X, g.TilesHigh*f.Y)
}

// Tile returns the footprint rectangle of the tile at col, row.
func (g Geometry) Tile(col, row int) image.Rectangle {
	f := g.Footprint()
	min := image.Pt(col*f.X, row*f.Y)
	return image.Rectangle{Min: min, Max: min.Add(f)}
}

// Origin returns the point where the sprite in the tile at col, row is
// painted from, inset from the tile by the border.
func (g Geometry) Origin(col, row int) image.Point {
	return g.Tile(col, row).Min.Add(image.Pt(g.Border, g.Border))
}

// Each calls fn with the column, row and sprite origin of every tile in
// row-major order.
func (g Geometry) Each(fn func(col, row int, origin image.Point)) {
	for row := 0; row < g.TilesHigh; row++ {
		for col := 0; col < g.TilesWide; col++ {
			fn(col, row, g.Origin(col, row))
		}
	}
}

// TilesFor returns the most tiles of size footprint that fit in pixels.
func TilesFor(pixels, footprint int) (int, error) {
	if footprint < 1 {
		return 0, fmt.Errorf("%w: footprint %d is less than 1", ErrInvalidGeometry, footprint)
	}
	n := pixels / footprint
	if n < 1 {
		return 0, fmt.Errorf("%w: %d pixels can't hold a %d pixel tile", ErrBudgetTooSmall, pixels, footprint)
	}
	return n, nil
}

// Fit returns a copy of g with TilesWide derived from width and TilesHigh
// derived from height. A zero budget leaves that axis untouched.
func Fit(g Geometry, width, height int) (Geometry, error) {
	if g.TileWidth < 1 || g.TileHeight < 1 || g.Scale < 1 || g.Border < 0 {
		return Geometry{}, g.Validate()
	}
	if err := CheckBits(g.TileWidth, g.TileHeight); err != nil {
		return Geometry{}, err
	}
	if err := g.checkFootprint(); err != nil {
		return Geometry{}, err
	}
	f := g.Footprint()
	if width != 0 {
		n, err := TilesFor(width, f.X)
		if err != nil {
			return Geometry{}, fmt.Errorf("width: %w", err)
		}
		g.TilesWide = n
	}
	if height != 0 {
		n, err := TilesFor(height, f.Y)
		if err != nil {
			return Geometry{}, fmt.Errorf("height: %w", err)
		}
		g.TilesHigh = n
	}
	return g, nil
}
