package tui

import (
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/charts/render"
)

func TestBrailleSetPixel(t *testing.T) {
	tests := []struct {
		name     string
		mx, my   int
		wantMask uint8
	}{
		{"top left dot", 0, 0, 0x01},
		{"left column second", 0, 1, 0x02},
		{"left column third", 0, 2, 0x04},
		{"left column bottom", 0, 3, 0x40},
		{"top right dot", 1, 0, 0x08},
		{"right column second", 1, 1, 0x10},
		{"right column third", 1, 2, 0x20},
		{"right column bottom", 1, 3, 0x80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBrailleBuf(1, 1)
			b.setPixel(tt.mx, tt.my)
			if b.m[0][0] != tt.wantMask {
				t.Errorf("mask = %#02x, want %#02x", b.m[0][0], tt.wantMask)
			}
		})
	}
}

func TestBrailleSetPixelOutOfRange(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.setPixel(-1, 0)
	b.setPixel(0, -1)
	b.setPixel(4, 0)
	b.setPixel(0, 8)
	for y := range b.m {
		for x := range b.m[y] {
			if b.m[y][x] != 0 {
				t.Errorf("cell (%d, %d) = %#02x, want 0", x, y, b.m[y][x])
			}
		}
	}
}

func TestBrailleToLines(t *testing.T) {
	b := newBrailleBuf(3, 2)
	b.setPixel(0, 0)

	lines := b.toLines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	got := []rune(lines[0])
	if got[0] != rune(0x2801) {
		t.Errorf("cell (0, 0) = %q, want %q", got[0], rune(0x2801))
	}
	if got[1] != ' ' || got[2] != ' ' {
		t.Error("empty cells should render as spaces")
	}
	if lines[1] != "   " {
		t.Errorf("lines[1] = %q, want three spaces", lines[1])
	}
}

func TestBrailleFromPixmap(t *testing.T) {
	target := render.NewPixmapTarget(2, 4)
	target.SetPixel(0, 0, color.RGBA{R: 255, A: 255})
	target.SetPixel(1, 3, color.RGBA{B: 255, A: 255})

	b := newBrailleBuf(1, 1)
	b.fromPixmap(target, 0, 0)

	if want := uint8(0x01 | 0x80); b.m[0][0] != want {
		t.Errorf("mask = %#02x, want %#02x", b.m[0][0], want)
	}
}

func TestBrailleFromPixmapWindow(t *testing.T) {
	// A dot at (4, 8) lands at the window origin when the window
	// starts there.
	target := render.NewPixmapTarget(10, 16)
	target.SetPixel(4, 8, color.RGBA{A: 255})

	b := newBrailleBuf(1, 1)
	b.fromPixmap(target, 4, 8)

	if b.m[0][0] != 0x01 {
		t.Errorf("mask = %#02x, want 0x01", b.m[0][0])
	}
}

func TestBrailleFromPixmapOutOfBounds(t *testing.T) {
	target := render.NewPixmapTarget(2, 4)
	target.SetPixel(0, 0, color.RGBA{A: 255})

	// A window hanging off every edge must not panic and must stay
	// dark where it reads outside the target.
	b := newBrailleBuf(4, 4)
	b.fromPixmap(target, -2, -4)

	var lit int
	for y := range b.m {
		for x := range b.m[y] {
			if b.m[y][x] != 0 {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("lit cells = %d, want 1", lit)
	}
}

func TestBrailleTransparentPixelsStayDark(t *testing.T) {
	target := render.NewPixmapTarget(2, 4)
	target.SetPixel(0, 0, color.RGBA{R: 255, A: 40})

	b := newBrailleBuf(1, 1)
	b.fromPixmap(target, 0, 0)

	if b.m[0][0] != 0 {
		t.Errorf("mask = %#02x, want 0 for translucent pixel", b.m[0][0])
	}
}

func hasBraille(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 0x2800 && r <= 0x28FF
	})
}
