package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/candle"
)

// plotPad is the margin between the viewport edge and the plot
// rectangle, leaving room for axis annotations.
const plotPad = 40.0

// candlesOpts holds the command-line flags for the candles command.
type candlesOpts struct {
	output string // output file path
	format string // output format: "svg" or "png"
	config string // TOML styling config path
	width  int    // viewport width in pixels
	height int    // viewport height in pixels
	last   int    // render only the most recent N bars (0 = all)
	title  string // chart title drawn above the plot
}

// candlesCommand creates the candles command for rendering OHLC data
// as a candlestick chart.
func (c *CLI) candlesCommand() *cobra.Command {
	opts := candlesOpts{format: formatSVG, width: defaultWidth, height: defaultHeight}

	cmd := &cobra.Command{
		Use:   "candles [data.csv]",
		Short: "Render an OHLC series as a candlestick chart",
		Long: `Render an OHLC series as a candlestick chart.

The input is a CSV file with time,open,high,low,close columns and an
optional header row. Bodies span open to close, wicks extend to the
high and low, and rising bars use the bull color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runCandles(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to the input name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg or png")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML styling config")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "viewport height in pixels")
	cmd.Flags().IntVar(&opts.last, "last", 0, "render only the most recent N bars")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")

	return cmd
}

// runCandles loads the bars, assembles the chart scene, and writes it
// to the requested format.
func (c *CLI) runCandles(input string, opts *candlesOpts) error {
	cfg, err := loadConfigOrDefault(opts.config)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	bars, err := candle.LoadCSV(input)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Loaded %d bars from %s", len(bars), input)

	if opts.last > 0 && opts.last < len(bars) {
		bars = bars[len(bars)-opts.last:]
	}

	scene := buildCandleScene(bars, cfg, opts)

	path := outputPath(opts.output, input, opts.format)
	if err := writeScene(scene, opts.width, opts.height, opts.format, path); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d candles to %s", len(bars), path))
	return nil
}

// buildCandleScene assembles the scene: a background, the candlestick
// series laid out inside a padded plot rectangle, price extremes on
// the right edge, the time range underneath, and an optional title.
func buildCandleScene(bars []candle.Bar, cfg Config, opts *candlesOpts) *charts.Scene {
	w, h := float64(opts.width), float64(opts.height)

	scene := charts.NewScene()
	bg := charts.NewRectangle(w, h)
	bg.SetStyle(charts.Style{Fill: hexColor(cfg.Background, charts.White)})
	scene.Add(bg)

	series := candle.NewSeries(scene)
	if cfg.Candles.Horizontal {
		series.SetOrientation(charts.Horizontal)
	}
	series.SetBodyFraction(cfg.Candles.BodyFraction)
	if cfg.Candles.Bull != "" {
		col := charts.Hex(cfg.Candles.Bull)
		series.SetBullStyle(charts.Style{Fill: col, Stroke: col, StrokeWidth: 1})
	}
	if cfg.Candles.Bear != "" {
		col := charts.Hex(cfg.Candles.Bear)
		series.SetBearStyle(charts.Style{Fill: col, Stroke: col, StrokeWidth: 1})
	}
	series.SetBars(bars)

	plot := charts.NewRect(plotPad, plotPad, w-2*plotPad, h-2*plotPad)
	series.Layout(plot)

	if lo, hi, ok := series.PriceRange(); ok && !cfg.Candles.Horizontal {
		addAxisLabel(scene, fmt.Sprintf("%.2f", hi), plot.MaxX+6, plot.MinY, 0, 0.5)
		addAxisLabel(scene, fmt.Sprintf("%.2f", lo), plot.MaxX+6, plot.MaxY, 0, 0.5)
	}
	if from, to, ok := series.TimeRange(); ok && !cfg.Candles.Horizontal {
		addAxisLabel(scene, from.Format("2006-01-02"), plot.MinX, plot.MaxY+8, 0, 0)
		addAxisLabel(scene, to.Format("2006-01-02"), plot.MaxX, plot.MaxY+8, 1, 0)
	}

	if opts.title != "" {
		title := charts.NewLabel(opts.title, 16)
		title.SetAnchor(0.5, 0.5)
		title.SetPosition(w/2, plotPad/2)
		title.SetStyle(charts.Style{Fill: charts.Black})
		scene.Add(title)
	}

	return scene
}

// addAxisLabel places a small annotation label on the scene.
func addAxisLabel(scene *charts.Scene, text string, x, y, ax, ay float64) {
	lbl := charts.NewLabel(text, 11)
	lbl.SetAnchor(ax, ay)
	lbl.SetPosition(x, y)
	lbl.SetStyle(charts.Style{Fill: charts.Black.WithAlpha(0.7)})
	scene.Add(lbl)
}
