package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, 8, 4))
	colors := []color.RGBA{
		{0xff, 0x00, 0x00, 0xff},
		{0x00, 0xff, 0x00, 0xff},
		{0x00, 0x00, 0xff, 0xff},
	}
	for y := 1; y < 3; y++ {
		for x := 2; x < 6; x++ {
			m.SetRGBA(x, y, colors[(x+y)%len(colors)])
		}
	}
	return m
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Options{}.Validate())
	assert.NoError(t, Options{Blur: 2, Colors: 16}.Validate())
	assert.Equal(t, errNegativeBlur, Options{Blur: -1}.Validate())
	assert.Equal(t, errColors, Options{Colors: -1}.Validate())
	assert.Equal(t, errColors, Options{Colors: 257}.Validate())
}

func TestBlurZero(t *testing.T) {
	m := testImage()
	assert.True(t, Blur(m, 0) == image.Image(m))
}

func TestBlur(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 9, 9))
	m.SetRGBA(4, 4, color.RGBA{0xff, 0xff, 0xff, 0xff})

	b := Blur(m, 1)
	assert.Equal(t, m.Bounds(), b.Bounds())

	// Light spreads into the neighbours and the centre dims
	_, _, _, a := b.At(3, 4).RGBA()
	assert.True(t, a > 0)
	r, _, _, _ := b.At(4, 4).RGBA()
	assert.True(t, r < 0xffff)
}

func TestQuantize(t *testing.T) {
	m := Blur(testImage(), 1)

	pm := Quantize(m, 4)
	assert.Equal(t, m.Bounds(), pm.Bounds())
	assert.True(t, len(pm.Palette) <= 4)
}

func TestProcess(t *testing.T) {
	_, err := Process(testImage(), Options{Blur: -1})
	assert.Error(t, err)

	_, err = Process(image.NewRGBA(image.Rectangle{}), Options{})
	assert.Equal(t, errEmpty, err)

	m, err := Process(testImage(), Options{Blur: 1, Colors: 8})
	require.NoError(t, err)
	_, ok := m.(*image.Paletted)
	assert.True(t, ok)
}

func TestEncode(t *testing.T) {
	src := testImage()

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, src, Options{}))

	m, err := png.Decode(b)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), m.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, color.RGBAModel.Convert(src.At(x, y)), color.RGBAModel.Convert(m.At(x, y)))
		}
	}
}

func TestEncodePaletted(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, testImage(), Options{Blur: 1, Colors: 16}))

	m, err := png.Decode(b)
	require.NoError(t, err)
	pm, ok := m.(*image.Paletted)
	require.True(t, ok)
	assert.True(t, len(pm.Palette) <= 16)
	assert.Equal(t, image.Rect(0, 0, 8, 4), pm.Bounds())
}

func TestSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "invader.png")
	require.NoError(t, Save(file, testImage(), Options{Blur: DefaultBlur}))

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
}

func TestSaveBadPath(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "invader.png"), testImage(), Options{})
	assert.Error(t, err)
}
