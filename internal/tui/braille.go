package tui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	// summed colour and count of the dots painted in each cell
	sum [][]colorful.Color
	n   [][]int
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	sum := make([][]colorful.Color, h)
	n := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		sum[i] = make([]colorful.Color, w)
		n[i] = make([]int, w)
	}
	return &brailleBuf{w: w, h: h, m: m, sum: sum, n: n}
}

// dotBits maps a dot inside a cell, [column][row], to its bit in U+2800.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) and reports
// whether it fell inside the buffer.
func (b *brailleBuf) setPixel(mx, my int) bool {
	if mx < 0 || my < 0 {
		return false
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return false
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
	return true
}

// paint sets a micro-pixel and adds its colour to the cell.
func (b *brailleBuf) paint(mx, my int, c color.Color) {
	if !b.setPixel(mx, my) {
		return
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return
	}
	cx, cy := mx/2, my/4
	s := &b.sum[cy][cx]
	s.R += cc.R
	s.G += cc.G
	s.B += cc.B
	b.n[cy][cx]++
}

// cellColor is the mean colour of the painted dots of a cell.
func (b *brailleBuf) cellColor(cx, cy int) (colorful.Color, bool) {
	n := b.n[cy][cx]
	if n == 0 {
		return colorful.Color{}, false
	}
	s := b.sum[cy][cx]
	f := float64(n)
	return colorful.Color{R: s.R / f, G: s.G / f, B: s.B / f}.Clamped(), true
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.paint(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rect outlines a micro-pixel rectangle.
func (b *brailleBuf) rect(x0, y0, x1, y1 int, c color.Color) {
	b.drawLineMicro(x0, y0, x1, y0, c)
	b.drawLineMicro(x1, y0, x1, y1, c)
	b.drawLineMicro(x1, y1, x0, y1, c)
	b.drawLineMicro(x0, y1, x0, y0, c)
}

func (b *brailleBuf) glyph(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
