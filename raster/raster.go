/*
Package raster post-processes and writes invader images as PNG.

An image can be blurred with a Gaussian filter, which softens the hard pixel
edges, and then optionally reduced to a fixed number of colours with a median
cut quantizer so the PNG is written with a palette rather than as 32-bit
RGBA.
*/
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
)

const (
	// DefaultBlur is the default Gaussian sigma.
	DefaultBlur = 1.0

	maxColors = 256
)

var (
	errNegativeBlur = errors.New("raster: blur must not be negative")
	errColors       = fmt.Errorf("raster: colors must be between 0 and %d", maxColors)
	errEmpty        = errors.New("raster: image is empty")
)

// Options controls post-processing before the PNG is written.
type Options struct {
	// Blur is the sigma of the Gaussian blur, 0 disables it.
	Blur float32
	// Colors is the size of the palette, 0 writes true colour.
	Colors int
}

// Validate checks the options are in range.
func (o Options) Validate() error {
	if o.Blur < 0 {
		return errNegativeBlur
	}
	if o.Colors < 0 || o.Colors > maxColors {
		return errColors
	}
	return nil
}

// Blur returns m blurred with a Gaussian filter of the given sigma. m is
// returned untouched if sigma is zero.
func Blur(m image.Image, sigma float32) image.Image {
	if sigma == 0 {
		return m
	}
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}

// Quantize returns m reduced to at most n colours.
func Quantize(m image.Image, n int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Process applies the blur and quantize steps of o to m.
func Process(m image.Image, o Options) (image.Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if m.Bounds().Empty() {
		return nil, errEmpty
	}

	m = Blur(m, o.Blur)
	if o.Colors > 0 {
		m = Quantize(m, o.Colors)
	}

	return m, nil
}

// Encode writes m to w as a PNG after processing it with o.
func Encode(w io.Writer, m image.Image, o Options) error {
	m, err := Process(m, o)
	if err != nil {
		return err
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm, ok := m.(*image.Paletted); ok && pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		m = &dup
	}

	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, m)
}

// Save writes m to file as a PNG after processing it with o.
func Save(file string, m image.Image, o Options) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, m, o)
}
