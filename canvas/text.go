package canvas

import (
	"bytes"
	"image/color"
)

// Text is a canvas of monospace characters.
type Text struct {
	rows [][]byte
	w    int
}

func NewText(w, h int) *Text {
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = bytes.Repeat([]byte{Blank}, w)
	}
	return &Text{
		rows: rows,
		w:    w,
	}
}

// Set paints the glyph at x, y. The colour is ignored.
func (t *Text) Set(x, y int, _ color.Color) {
	checkBounds(x, y, t.w, len(t.rows))
	t.rows[y][x] = Glyph
}

// String returns every row terminated by a newline.
func (t *Text) String() string {
	b := new(bytes.Buffer)
	b.Grow((t.w + 1) * len(t.rows))
	for _, row := range t.rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
