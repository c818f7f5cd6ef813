package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/charts"
)

// Config styles rendered charts. A TOML file only overrides the keys
// it names; everything else keeps the built-in theme.
type Config struct {
	// Background is the canvas fill color as a hex string.
	Background string `toml:"background"`

	Candles CandleConfig `toml:"candles"`
	Map     MapConfig    `toml:"map"`
}

// CandleConfig styles candlestick charts.
type CandleConfig struct {
	// Bull and Bear override the default candle colors. Empty keeps
	// the series defaults.
	Bull string `toml:"bull"`
	Bear string `toml:"bear"`

	// BodyFraction is how much of a bar's slot the body covers,
	// in (0, 1].
	BodyFraction float64 `toml:"body_fraction"`

	// Horizontal lays time along the y axis.
	Horizontal bool `toml:"horizontal"`
}

// MapConfig styles geographic map charts.
type MapConfig struct {
	Land        string  `toml:"land"`
	Water       string  `toml:"water"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`

	Marker       string  `toml:"marker"`
	MarkerRadius float64 `toml:"marker_radius"`
	LabelSize    float64 `toml:"label_size"`
}

// DefaultConfig returns the built-in theme.
func DefaultConfig() Config {
	return Config{
		Background: "#ffffff",
		Candles: CandleConfig{
			BodyFraction: 0.6,
		},
		Map: MapConfig{
			Land:         "#e8e4d8",
			Water:        "#cfe2f3",
			Stroke:       "#5b7a9d",
			StrokeWidth:  1,
			Marker:       "#d94f45",
			MarkerRadius: 3,
			LabelSize:    11,
		},
	}
}

// LoadConfig loads a styling configuration from a TOML file, applied
// over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, fmt.Errorf("cli: config file not found: %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: parse config: %w", err)
	}
	return cfg, nil
}

// loadConfigOrDefault loads the config at path, or returns the
// defaults when no path was given.
func loadConfigOrDefault(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// hexColor parses a hex color, falling back when the string is empty.
func hexColor(s string, fallback charts.RGBA) charts.RGBA {
	if s == "" {
		return fallback
	}
	return charts.Hex(s)
}
