package charts

import "testing"

func TestBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want TextDirection
	}{
		{"latin", "Hello", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"neutral digits", "1234", DirectionLTR},
		{"empty", "", DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseDirection(tt.text); got != tt.want {
				t.Errorf("BaseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLabel_MeasureWithoutFont(t *testing.T) {
	l := NewLabel("abcd", 10)
	w, h := l.Measure()
	if !floatEq(w, 4*10*0.6) {
		t.Errorf("approximate width = %v, want %v", w, 4*10*0.6)
	}
	if !floatEq(h, 10) {
		t.Errorf("approximate height = %v, want %v", h, 10)
	}
}

func TestLabel_MeasureEmpty(t *testing.T) {
	l := NewLabel("", 12)
	if w, h := l.Measure(); w != 0 || h != 0 {
		t.Errorf("empty label measured (%v, %v)", w, h)
	}
}

func TestLabel_Anchor(t *testing.T) {
	l := NewLabel("ab", 10)
	l.SetAnchor(0.5, 0.5)
	dx, dy := l.Offset()
	w, h := l.Measure()
	if !floatEq(dx, -w/2) || !floatEq(dy, -h/2) {
		t.Errorf("offset = (%v, %v), want (%v, %v)", dx, dy, -w/2, -h/2)
	}
}

func TestLabel_SettersInvalidate(t *testing.T) {
	l := NewLabel("x", 10)
	_ = l.Path()
	l.SetText("y")
	if !l.NeedsRedraw() {
		t.Errorf("SetText did not invalidate")
	}
	_ = l.Path()
	l.SetFontSize(11)
	if !l.NeedsRedraw() {
		t.Errorf("SetFontSize did not invalidate")
	}
}
