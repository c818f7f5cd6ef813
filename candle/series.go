package candle

import (
	"math"
	"slices"
	"time"

	"github.com/gogpu/charts"
)

// Bar is one OHLC sample.
type Bar struct {
	T     time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Default candle styles: teal for rising bars, red for falling ones.
var (
	DefaultBullStyle = charts.Style{
		Fill:        charts.RGB(0.15, 0.65, 0.60),
		Stroke:      charts.RGB(0.15, 0.65, 0.60),
		StrokeWidth: 1,
	}
	DefaultBearStyle = charts.Style{
		Fill:        charts.RGB(0.94, 0.33, 0.31),
		Stroke:      charts.RGB(0.94, 0.33, 0.31),
		StrokeWidth: 1,
	}
)

// Series lays out OHLC bars as candlestick sprites. Bars occupy equal
// slots in slice order along the time axis; the price axis spans the
// lowest low to the highest high. Layout writes every body and wick
// coordinate through the sprites' change-detecting setters, so calling
// it again with unchanged inputs invalidates nothing.
type Series struct {
	scene  *charts.Scene
	bars   []Bar
	sticks []*charts.Candlestick

	bull charts.Style
	bear charts.Style

	orientation charts.Orientation
	bodyFrac    float64
}

// NewSeries creates a candlestick series. Sprites are added to and
// removed from the scene as the bar count changes; a nil scene leaves
// sprite ownership to the caller via Sticks.
func NewSeries(scene *charts.Scene) *Series {
	return &Series{
		scene:    scene,
		bull:     DefaultBullStyle,
		bear:     DefaultBearStyle,
		bodyFrac: 0.6,
	}
}

// SetBars replaces the series data. The sprite set resizes to match;
// call Layout to position it.
func (s *Series) SetBars(bars []Bar) {
	s.bars = slices.Clone(bars)
	s.syncSticks()
	s.applyStyles()
}

// Bars returns the bars the series lays out, in slot order.
func (s *Series) Bars() []Bar { return s.bars }

// Sticks returns one candlestick sprite per bar, in slot order.
func (s *Series) Sticks() []*charts.Candlestick { return s.sticks }

// SetBullStyle sets the style for bars that close at or above their
// open.
func (s *Series) SetBullStyle(st charts.Style) {
	s.bull = st
	s.applyStyles()
}

// SetBearStyle sets the style for bars that close below their open.
func (s *Series) SetBearStyle(st charts.Style) {
	s.bear = st
	s.applyStyles()
}

// SetOrientation flips the series between vertical candles (time runs
// along x) and horizontal ones (time runs along y). Takes effect on the
// next Layout.
func (s *Series) SetOrientation(o charts.Orientation) {
	s.orientation = o
}

// Orientation returns the layout orientation.
func (s *Series) Orientation() charts.Orientation { return s.orientation }

// SetBodyFraction sets how much of a bar's slot the body covers, in
// (0, 1]. Values outside that interval are ignored.
func (s *Series) SetBodyFraction(f float64) {
	if f <= 0 || f > 1 {
		return
	}
	s.bodyFrac = f
}

// PriceRange returns the lowest low and highest high across the bars.
// ok is false when the series is empty.
func (s *Series) PriceRange() (lo, hi float64, ok bool) {
	for i, b := range s.bars {
		if i == 0 {
			lo, hi = b.Low, b.High
			ok = true
			continue
		}
		lo = math.Min(lo, b.Low)
		hi = math.Max(hi, b.High)
	}
	return lo, hi, ok
}

// TimeRange returns the timestamps of the first and last bar. ok is
// false when the series is empty.
func (s *Series) TimeRange() (from, to time.Time, ok bool) {
	if len(s.bars) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.bars[0].T, s.bars[len(s.bars)-1].T, true
}

// Layout positions every candlestick inside the plot rectangle. Bodies
// span open to close, the low wick drops from the body to the low, and
// the high wick rises from the body to the high. An empty plot or an
// empty series is a no-op.
func (s *Series) Layout(plot charts.Rect) {
	if len(s.bars) == 0 || plot.IsEmpty() {
		return
	}
	lo, hi, _ := s.PriceRange()
	if s.orientation == charts.Horizontal {
		s.layoutHorizontal(plot, lo, hi)
		return
	}
	s.layoutVertical(plot, lo, hi)
}

func (s *Series) layoutVertical(plot charts.Rect, lo, hi float64) {
	n := float64(len(s.bars))
	slots := NewScale(0, n, plot.MinX, plot.MaxX)
	price := NewScale(lo, hi, plot.MaxY, plot.MinY)
	bodyW := plot.Width() / n * s.bodyFrac
	mid := bodyW / 2

	for i, bar := range s.bars {
		st := s.sticks[i]
		yOpen := price.Map(bar.Open)
		yClose := price.Map(bar.Close)
		top := math.Min(yOpen, yClose)
		bodyH := math.Abs(yOpen - yClose)
		left := slots.Map(float64(i)+0.5) - mid

		st.SetOrientation(charts.Vertical)
		st.SetStyle(s.styleFor(bar))
		st.SetPosition(left, top)
		st.SetSize(bodyW, bodyH)
		st.SetHighWick(mid, 0, mid, price.Map(bar.High)-top)
		st.SetLowWick(mid, bodyH, mid, price.Map(bar.Low)-top)
	}
}

func (s *Series) layoutHorizontal(plot charts.Rect, lo, hi float64) {
	n := float64(len(s.bars))
	slots := NewScale(0, n, plot.MinY, plot.MaxY)
	price := NewScale(lo, hi, plot.MinX, plot.MaxX)
	bodyH := plot.Height() / n * s.bodyFrac
	mid := bodyH / 2

	for i, bar := range s.bars {
		st := s.sticks[i]
		xOpen := price.Map(bar.Open)
		xClose := price.Map(bar.Close)
		left := math.Min(xOpen, xClose)
		bodyW := math.Abs(xOpen - xClose)
		top := slots.Map(float64(i)+0.5) - mid

		st.SetOrientation(charts.Horizontal)
		st.SetStyle(s.styleFor(bar))
		st.SetPosition(left, top)
		st.SetSize(bodyW, bodyH)
		st.SetHighWick(bodyW, mid, price.Map(bar.High)-left, mid)
		st.SetLowWick(0, mid, price.Map(bar.Low)-left, mid)
	}
}

func (s *Series) styleFor(b Bar) charts.Style {
	if b.Close >= b.Open {
		return s.bull
	}
	return s.bear
}

func (s *Series) applyStyles() {
	for i, b := range s.bars {
		s.sticks[i].SetStyle(s.styleFor(b))
	}
}

// syncSticks grows or shrinks the sprite set to one stick per bar.
func (s *Series) syncSticks() {
	for len(s.sticks) > len(s.bars) {
		last := s.sticks[len(s.sticks)-1]
		if s.scene != nil {
			s.scene.Remove(last)
		}
		s.sticks = s.sticks[:len(s.sticks)-1]
	}
	for len(s.sticks) < len(s.bars) {
		st := charts.NewCandlestick()
		if s.scene != nil {
			s.scene.Add(st)
		}
		s.sticks = append(s.sticks, st)
	}
}
