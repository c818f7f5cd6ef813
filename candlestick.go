package charts

// Orientation selects the axis along which candlestick wicks extend.
type Orientation uint8

// Orientation values.
const (
	// Vertical candles have a value axis running top to bottom; wicks
	// extend along Y. This is the common price-chart layout.
	Vertical Orientation = iota
	// Horizontal candles have the value axis running left to right;
	// wicks extend along X.
	Horizontal
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// Candlestick is the OHLC candle shape: a rounded-rectangle body plus two
// open wick segments. The body attributes (size, corner rounding) come
// from the embedded Rectangle. The wicks are described by eight
// coordinates in local space, all defaulting to 0; a wick whose endpoints
// coincide draws nothing.
//
// Changing any wick coordinate, the orientation, or a body attribute
// discards the cached path so the whole shape is redrawn on the next
// draw pass. Placement and style changes never do.
type Candlestick struct {
	Rectangle

	lowX0, lowY0   float64
	lowX1, lowY1   float64
	highX0, highY0 float64
	highX1, highY1 float64

	orientation Orientation
}

// NewCandlestick creates a candlestick with a zero-size body and no wicks.
func NewCandlestick() *Candlestick {
	c := &Candlestick{}
	c.init(c.draw)
	return c
}

// SetOrientation sets the wick axis.
func (c *Candlestick) SetOrientation(o Orientation) {
	if c.orientation == o {
		return
	}
	c.orientation = o
	c.Invalidate()
}

// Orientation returns the wick axis.
func (c *Candlestick) Orientation() Orientation {
	return c.orientation
}

// SetLowX0 sets the X of the low wick's body-side endpoint.
func (c *Candlestick) SetLowX0(v float64) {
	if c.lowX0 == v {
		return
	}
	c.lowX0 = v
	c.Invalidate()
}

// SetLowY0 sets the Y of the low wick's body-side endpoint.
func (c *Candlestick) SetLowY0(v float64) {
	if c.lowY0 == v {
		return
	}
	c.lowY0 = v
	c.Invalidate()
}

// SetLowX1 sets the X of the low wick's far endpoint.
func (c *Candlestick) SetLowX1(v float64) {
	if c.lowX1 == v {
		return
	}
	c.lowX1 = v
	c.Invalidate()
}

// SetLowY1 sets the Y of the low wick's far endpoint.
func (c *Candlestick) SetLowY1(v float64) {
	if c.lowY1 == v {
		return
	}
	c.lowY1 = v
	c.Invalidate()
}

// SetHighX0 sets the X of the high wick's body-side endpoint.
func (c *Candlestick) SetHighX0(v float64) {
	if c.highX0 == v {
		return
	}
	c.highX0 = v
	c.Invalidate()
}

// SetHighY0 sets the Y of the high wick's body-side endpoint.
func (c *Candlestick) SetHighY0(v float64) {
	if c.highY0 == v {
		return
	}
	c.highY0 = v
	c.Invalidate()
}

// SetHighX1 sets the X of the high wick's far endpoint.
func (c *Candlestick) SetHighX1(v float64) {
	if c.highX1 == v {
		return
	}
	c.highX1 = v
	c.Invalidate()
}

// SetHighY1 sets the Y of the high wick's far endpoint.
func (c *Candlestick) SetHighY1(v float64) {
	if c.highY1 == v {
		return
	}
	c.highY1 = v
	c.Invalidate()
}

// SetLowWick sets all four low wick coordinates at once.
func (c *Candlestick) SetLowWick(x0, y0, x1, y1 float64) {
	c.SetLowX0(x0)
	c.SetLowY0(y0)
	c.SetLowX1(x1)
	c.SetLowY1(y1)
}

// SetHighWick sets all four high wick coordinates at once.
func (c *Candlestick) SetHighWick(x0, y0, x1, y1 float64) {
	c.SetHighX0(x0)
	c.SetHighY0(y0)
	c.SetHighX1(x1)
	c.SetHighY1(y1)
}

// LowWick returns the low wick endpoints.
func (c *Candlestick) LowWick() (x0, y0, x1, y1 float64) {
	return c.lowX0, c.lowY0, c.lowX1, c.lowY1
}

// HighWick returns the high wick endpoints.
func (c *Candlestick) HighWick() (x0, y0, x1, y1 float64) {
	return c.highX0, c.highY0, c.highX1, c.highY1
}

// draw renders the body box first, then the low and high wicks as open
// polylines. The wicks are never closed or filled.
func (c *Candlestick) draw(p *Path) {
	c.Rectangle.draw(p)
	p.Polyline(Pt(c.lowX0, c.lowY0), Pt(c.lowX1, c.lowY1))
	p.Polyline(Pt(c.highX0, c.highY0), Pt(c.highX1, c.highY1))
}
