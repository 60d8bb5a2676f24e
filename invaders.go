/*
Package invaders is a library for generating symmetric "space invader"
sprites from random bit patterns.

Sprites are laid out in a grid of tiles described by a layout.Geometry and
painted on a text, ANSI or image canvas. Two random sources are used, one for
the sprite values and one for the colours; with the same sources and the
same geometry the output is always the same.
*/
package invaders

import (
	"errors"
	"image"
	"image/color"
	"io/ioutil"
	"log"

	"github.com/bodgit/invaders/canvas"
	"github.com/bodgit/invaders/layout"
	"github.com/bodgit/invaders/palette"
	"github.com/bodgit/invaders/sprite"
	"github.com/muesli/termenv"
)

var errEmptyPalette = errors.New("invaders: palette has no colors")

// ValueSource supplies sprite values. It is implemented by *rand.Rand.
type ValueSource interface {
	Int63n(n int64) int64
}

// ColorSource supplies colour choices. It is implemented by *rand.Rand.
type ColorSource interface {
	Intn(n int) int
}

type Generator struct {
	geometry layout.Geometry
	values   ValueSource
	colors   ColorSource
	palette  color.Palette
	logger   *log.Logger
}

type Option func(*Generator) error

// WithPalette sets the palette colours are picked from. The default is
// palette.Classic.
func WithPalette(p color.Palette) Option {
	return func(g *Generator) error {
		if len(p) == 0 {
			return errEmptyPalette
		}
		g.palette = p
		return nil
	}
}

func New(g layout.Geometry, values ValueSource, colors ColorSource, logger *log.Logger, options ...Option) (*Generator, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}

	gen := &Generator{
		geometry: g,
		values:   values,
		colors:   colors,
		palette:  palette.Classic,
		logger:   logger,
	}

	for _, o := range options {
		if err := o(gen); err != nil {
			return nil, err
		}
	}

	return gen, nil
}

func (g *Generator) value(verbose bool) uint64 {
	max := g.geometry.MaxValue()
	v := uint64(g.values.Int63n(int64(max))) + 1
	if verbose {
		g.logger.Printf("Invader %d of %d\n", v, max)
	}
	return v
}

// Generate paints every tile on c, which must be at least as big as the
// geometry. Each tile draws a sprite value and then a colour, in row-major
// order.
func (g *Generator) Generate(c canvas.Canvas) {
	verbose := g.geometry.Len() == 1

	g.geometry.Each(func(_, _ int, origin image.Point) {
		grid := sprite.Decode(g.value(verbose), g.geometry.TileWidth, g.geometry.TileHeight)
		grid.Render(c, origin, g.geometry.Scale, palette.Pick(g.palette, g.colors))
	})
}

// Canvas creates a canvas sized for the geometry with fn, paints it and
// returns it.
func (g *Generator) Canvas(fn canvas.Factory) canvas.Canvas {
	size := g.geometry.Size()
	c := fn(size.X, size.Y)
	g.Generate(c)
	return c
}

// Text returns the invaders as text.
func (g *Generator) Text() string {
	return g.Canvas(func(w, h int) canvas.Canvas {
		return canvas.NewText(w, h)
	}).(*canvas.Text).String()
}

// ANSI returns the invaders as text coloured for terminal profile p.
func (g *Generator) ANSI(p termenv.Profile) string {
	return g.Canvas(func(w, h int) canvas.Canvas {
		c := canvas.NewANSI(w, h)
		c.SetProfile(p)
		return c
	}).(*canvas.ANSI).String()
}

// Image returns the invaders as an image with a transparent background.
func (g *Generator) Image() *image.RGBA {
	return g.Canvas(func(w, h int) canvas.Canvas {
		return canvas.NewImage(w, h)
	}).(*canvas.Image).Image()
}
