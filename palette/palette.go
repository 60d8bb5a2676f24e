/*
Package palette provides the colours invaders are painted with.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknown is returned by ByName for a palette that doesn't exist.
var ErrUnknown = errors.New("palette: unknown palette")

var classic = []string{
	"#ff0000", // red
	"#c0c0c0", // light gray
	"#ffafaf", // pink
	"#ffc800", // orange
	"#ffff00", // yellow
	"#00ff00", // green
	"#ff00ff", // magenta
	"#00ffff", // cyan
	"#0000ff", // blue
}

// Classic is the default palette of nine bright colours.
var Classic = fromHex(classic...)

const (
	rainbowSaturation = 0.85
	rainbowValue      = 1.0
	rainbowSize       = 12
)

var named = map[string]func() color.Palette{
	"classic": func() color.Palette { return Classic },
	"rainbow": func() color.Palette { return Rainbow(rainbowSize) },
}

func fromHex(hex ...string) color.Palette {
	p := make(color.Palette, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		p[i] = toRGBA(c)
	}
	return p
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// Rainbow returns n colours with evenly spaced hues.
func Rainbow(n int) color.Palette {
	p := make(color.Palette, n)
	for i := range p {
		p[i] = toRGBA(colorful.Hsv(360*float64(i)/float64(n), rainbowSaturation, rainbowValue))
	}
	return p
}

// ByName returns the named palette.
func ByName(name string) (color.Palette, error) {
	fn, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(named))
	for k := range named {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type Intn interface {
	Intn(n int) int
}

func Pick(p color.Palette, r Intn) color.Color {
	return p[r.Intn(len(p))]
}
