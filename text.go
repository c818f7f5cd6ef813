package charts

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/charts/cache"
)

// fontIDs issues a unique id per parsed font for measurement cache keys.
var fontIDs atomic.Uint64

// Font is a parsed font usable for label measurement and rasterization.
// The typesetting font.Font is read-only and safe for concurrent use;
// renderers re-parse Data with their own rasterizer.
type Font struct {
	id   uint64
	data []byte
	face *font.Font
}

// ParseFont parses TTF/OTF font data.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("charts: parse font: %w", err)
	}
	return &Font{id: fontIDs.Add(1), data: data, face: face.Font}, nil
}

// Data returns the raw font bytes. Callers must not mutate them.
func (f *Font) Data() []byte { return f.data }

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reuse across
// sequential calls avoids re-allocating its buffers.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// TextDirection is the resolved base direction of a label's text.
type TextDirection uint8

// Text directions.
const (
	DirectionLTR TextDirection = iota
	DirectionRTL
)

// BaseDirection resolves the paragraph base direction of text using the
// Unicode bidi algorithm. Neutral text resolves to left-to-right.
func BaseDirection(text string) TextDirection {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// Label is a text sprite. Its vector path is empty; renderers rasterize
// the text directly using the label's font, size and style. Measurement
// shapes the text with the label's font when one is set, or falls back
// to a fixed-advance approximation.
type Label struct {
	Sprite
	text string
	size float64
	font *Font

	// anchor fractions: (0,0) positions the text's top-left at the
	// sprite position, (0.5,0.5) centers it, (1,1) bottom-right.
	anchorX, anchorY float64
}

// NewLabel creates a label with the given text and font size in pixels.
func NewLabel(text string, size float64) *Label {
	l := &Label{text: text, size: size}
	l.init(nil)
	return l
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.Invalidate()
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetFontSize sets the font size in pixels.
func (l *Label) SetFontSize(size float64) {
	if l.size == size {
		return
	}
	l.size = size
	l.Invalidate()
}

// FontSize returns the font size in pixels.
func (l *Label) FontSize() float64 { return l.size }

// SetFont sets the parsed font used for measurement and rasterization.
// A nil font selects the fixed-advance approximation.
func (l *Label) SetFont(f *Font) {
	if l.font == f {
		return
	}
	l.font = f
	l.Invalidate()
}

// Font returns the label font, or nil when unset.
func (l *Label) Font() *Font { return l.font }

// SetAnchor sets the anchor fractions relative to the measured text box.
func (l *Label) SetAnchor(ax, ay float64) {
	l.anchorX, l.anchorY = ax, ay
}

// Anchor returns the anchor fractions.
func (l *Label) Anchor() (ax, ay float64) {
	return l.anchorX, l.anchorY
}

// Direction returns the resolved base direction of the label text.
func (l *Label) Direction() TextDirection {
	return BaseDirection(l.text)
}

// measureKey identifies one shaped measurement. The text rides as a
// hash; the direction is derived from the text, so it never needs its
// own field.
type measureKey struct {
	textHash uint64
	fontID   uint64
	sizeBits uint64
}

type textSize struct {
	w, h float64
}

func hashMeasureKey(k measureKey) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], k.textHash)
	binary.LittleEndian.PutUint64(buf[8:], k.fontID)
	binary.LittleEndian.PutUint64(buf[16:], k.sizeBits)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// measureCache memoizes shaped measurements across labels. Shaping is
// the dominant cost of Measure; placement passes re-measure the same
// text every frame.
var measureCache = cache.NewSharded[measureKey, textSize](cache.DefaultCapacity, hashMeasureKey)

// Measure returns the advance width and line height of the label text at
// its font size.
func (l *Label) Measure() (w, h float64) {
	if l.text == "" || l.size <= 0 {
		return 0, 0
	}
	if l.font == nil {
		// Fixed-advance approximation for label layout without a font.
		n := 0
		for range l.text {
			n++
		}
		return float64(n) * l.size * 0.6, l.size
	}

	key := measureKey{
		textHash: cache.StringHasher(l.text),
		fontID:   l.font.id,
		sizeBits: math.Float64bits(l.size),
	}
	sz := measureCache.GetOrCreate(key, l.shape)
	return sz.w, sz.h
}

// shape runs the harfbuzz shaper over the label text and returns the
// advance width and line height.
func (l *Label) shape() textSize {
	runes := []rune(l.text)
	dir := di.DirectionLTR
	if l.Direction() == DirectionRTL {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(l.font.face),
		Size:      fixed.Int26_6(l.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range out.Glyphs {
		advance += g.XAdvance
	}
	height := out.LineBounds.Ascent - out.LineBounds.Descent
	return textSize{w: fixedToFloat(advance), h: fixedToFloat(height)}
}

// Offset returns the top-left drawing offset implied by the anchor.
func (l *Label) Offset() (dx, dy float64) {
	w, h := l.Measure()
	return -l.anchorX * w, -l.anchorY * h
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs by
// the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
