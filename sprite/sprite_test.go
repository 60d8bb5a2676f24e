package sprite

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/bodgit/invaders/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	T = true
	F = false
)

func TestDecode(t *testing.T) {
	tests := []struct {
		width, height int
		value         uint64
		want          Grid
	}{
		{1, 1, 0b1, Grid{{T, T}}},
		{2, 1, 0b10, Grid{{F, T, T, F}}},
		{2, 2, 0b0110, Grid{{F, T, T, F}, {T, F, F, T}}},
		{2, 3, 0b100110, Grid{{F, T, T, F}, {T, F, F, T}, {F, T, T, F}}},
		{3, 1, 0b001, Grid{{T, F, F, F, F, T}}},
		// 2^(w*h) has no bits inside the grid
		{2, 2, 0b10000, Grid{{F, F, F, F}, {F, F, F, F}}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.value, tt.width, tt.height))
	}
}

func TestDecodeMirror(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for w := 1; w <= 8; w++ {
		for h := 1; h <= 62/w && h <= 8; h++ {
			for i := 0; i < 50; i++ {
				v := uint64(r.Int63n(int64(1)<<uint(w*h))) + 1
				g := Decode(v, w, h)
				require.Equal(t, h, g.Height())
				require.Equal(t, w*2, g.Width())
				for y := range g {
					for x := w; x < 2*w; x++ {
						assert.Equal(t, g[y][2*w-1-x], g[y][x])
					}
				}
			}
		}
	}
}

func TestDecodeBits(t *testing.T) {
	// Every bit in range lights exactly one pixel in the left half
	w, h := 4, 8
	for bit := 0; bit < w*h; bit++ {
		g := Decode(1<<uint(bit), w, h)
		for y := range g {
			for x := 0; x < w; x++ {
				assert.Equal(t, y*w+x == bit, g[y][x])
			}
		}
	}
}

func TestDecodePure(t *testing.T) {
	v := uint64(0x2a5f3c9d1e)
	assert.Equal(t, Decode(v, 5, 8), Decode(v, 5, 8))
}

func TestGridEmpty(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Height())
}

func TestString(t *testing.T) {
	assert.Equal(t, "**\n", Decode(0b1, 1, 1).String())
	assert.Equal(t, " ** \n*  *\n", Decode(0b0110, 2, 2).String())
	assert.Equal(t, " ** \n*  *\n ** \n", Decode(0b100110, 2, 3).String())
}

func TestRenderScaled(t *testing.T) {
	g := Decode(0b0110, 2, 2)
	c := canvas.NewText(8, 4)
	g.Render(c, image.Point{}, 2, nil)
	assert.Equal(t, "  ****  \n  ****  \n**    **\n**    **\n", c.String())

	g = Decode(0b100110, 2, 3)
	c = canvas.NewText(8, 6)
	g.Render(c, image.Point{}, 2, nil)
	assert.Equal(t, "  ****  \n  ****  \n**    **\n**    **\n  ****  \n  ****  \n", c.String())
}

func TestRenderOffset(t *testing.T) {
	g := Decode(0b0110, 2, 2)
	c := canvas.NewText(6, 4)
	g.Render(c, image.Pt(1, 1), 1, nil)
	assert.Equal(t, "      \n  **  \n *  * \n      \n", c.String())
}

func TestRenderScaledBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for scale := 1; scale <= 4; scale++ {
		g := Decode(uint64(r.Int63n(1<<32)), 4, 8)

		c := canvas.NewImage(g.Width()*scale, g.Height()*scale)
		g.Render(c, image.Point{}, scale, color.White)

		m := c.Image()
		for y := 0; y < m.Bounds().Dy(); y++ {
			for x := 0; x < m.Bounds().Dx(); x++ {
				_, _, _, a := m.At(x, y).RGBA()
				assert.Equal(t, g[y/scale][x/scale], a != 0, "scale %d at (%d, %d)", scale, x, y)
			}
		}
	}
}

func TestRenderColour(t *testing.T) {
	green := color.RGBA{0x00, 0xff, 0x00, 0xff}
	g := Decode(0b0110, 2, 2)
	c := canvas.NewImage(4, 2)
	g.Render(c, image.Point{}, 1, green)

	m := c.Image()
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if g[y][x] {
				assert.Equal(t, green, m.RGBAAt(x, y))
			} else {
				assert.Equal(t, color.RGBA{}, m.RGBAAt(x, y))
			}
		}
	}
}
