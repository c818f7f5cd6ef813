// Package candle lays out OHLC bars as candlestick sprites: linear
// scales map time slots and prices onto plot pixels, and a Series
// writes body and wick geometry through the sprites' change-detecting
// setters, so a relayout with unchanged data costs no redraws.
package candle

// Scale linearly maps a data domain onto a pixel range. The range may
// run backwards, which is how price maps onto a y axis that grows
// downward.
type Scale struct {
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

// NewScale creates a scale mapping [domainMin, domainMax] onto
// [rangeMin, rangeMax].
func NewScale(domainMin, domainMax, rangeMin, rangeMax float64) Scale {
	return Scale{
		domainMin: domainMin,
		domainMax: domainMax,
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// Map converts a domain value to its pixel position. A degenerate
// domain maps everything to the middle of the range.
func (s Scale) Map(v float64) float64 {
	if s.domainMax == s.domainMin {
		return (s.rangeMin + s.rangeMax) / 2
	}
	t := (v - s.domainMin) / (s.domainMax - s.domainMin)
	return s.rangeMin + t*(s.rangeMax-s.rangeMin)
}

// Invert converts a pixel position back to its domain value. A
// degenerate range maps everything to the middle of the domain.
func (s Scale) Invert(px float64) float64 {
	if s.rangeMax == s.rangeMin {
		return (s.domainMin + s.domainMax) / 2
	}
	t := (px - s.rangeMin) / (s.rangeMax - s.rangeMin)
	return s.domainMin + t*(s.domainMax-s.domainMin)
}
