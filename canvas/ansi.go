package canvas

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ANSI is a text canvas where every glyph keeps its colour, rendered with
// terminal escape sequences.
type ANSI struct {
	cells   [][]color.Color
	w       int
	profile termenv.Profile
}

// NewANSI returns a w by h blank ANSI canvas using 24-bit colour.
func NewANSI(w, h int) *ANSI {
	cells := make([][]color.Color, h)
	for y := range cells {
		cells[y] = make([]color.Color, w)
	}
	return &ANSI{
		cells:   cells,
		w:       w,
		profile: termenv.TrueColor,
	}
}

// SetProfile changes the colour profile used by String. termenv.Ascii
// renders the same output as a Text canvas.
func (a *ANSI) SetProfile(p termenv.Profile) {
	a.profile = p
}

func (a *ANSI) Set(x, y int, c color.Color) {
	checkBounds(x, y, a.w, len(a.cells))
	if c == nil {
		c = color.White
	}
	a.cells[y][x] = c
}

// String returns every row terminated by a newline.
func (a *ANSI) String() string {
	styles := make(map[color.Color]string)

	var b strings.Builder
	for _, row := range a.cells {
		for _, c := range row {
			if c == nil {
				b.WriteByte(Blank)
				continue
			}
			s, ok := styles[c]
			if !ok {
				s = a.glyph(c)
				styles[c] = s
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (a *ANSI) glyph(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return a.profile.String(string(Glyph)).Foreground(a.profile.Color(cf.Hex())).String()
}
