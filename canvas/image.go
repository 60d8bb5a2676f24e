package canvas

import (
	"image"
	"image/color"
)

// Image is a canvas backed by an RGBA raster with a transparent background.
type Image struct {
	m *image.RGBA
}

func NewImage(w, h int) *Image {
	return &Image{
		m: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

func (i *Image) Set(x, y int, c color.Color) {
	b := i.m.Bounds()
	checkBounds(x, y, b.Dx(), b.Dy())
	i.m.Set(x, y, c)
}

func (i *Image) Image() *image.RGBA {
	return i.m
}
