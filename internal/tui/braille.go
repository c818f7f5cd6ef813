package tui

import "github.com/gogpu/charts/render"

// brailleAlphaThreshold is the minimum alpha for a micro-pixel to
// light a braille dot.
const brailleAlphaThreshold = 128

// brailleBuf accumulates braille dots at 2x4 micro-pixels per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	// Braille dot numbering: bits 0-2 and 6 are the left column,
	// bits 3-5 and 7 the right.
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// fromPixmap lights one dot per sufficiently opaque micro-pixel,
// reading a w*2 by h*4 window of the target starting at the origin.
// Window regions outside the target stay dark.
func (b *brailleBuf) fromPixmap(t *render.PixmapTarget, originX, originY int) {
	px := t.Pixels()
	stride := t.Stride()
	for my := 0; my < b.h*4; my++ {
		sy := originY + my
		if sy < 0 || sy >= t.Height() {
			continue
		}
		row := px[sy*stride:]
		for mx := 0; mx < b.w*2; mx++ {
			sx := originX + mx
			if sx < 0 || sx >= t.Width() {
				continue
			}
			if row[sx*4+3] >= brailleAlphaThreshold {
				b.setPixel(mx, my)
			}
		}
	}
}

// toLines renders the buffer as one string per cell row. Empty cells
// become spaces rather than blank braille, so terminals without
// braille fonts degrade gracefully.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
