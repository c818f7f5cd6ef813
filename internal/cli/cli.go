// Package cli implements the chartdemo command-line interface.
//
// The CLI renders charts built with the charts library to SVG or PNG
// files. It provides one command per chart family:
//
//   - candles: candlestick charts from OHLC CSV data
//   - geomap: geographic map charts from GeoJSON data
//
// All commands support --verbose (-v) for debug-level logging and
// --config for TOML styling overrides. Library logging is routed
// through the CLI logger, so placement diagnostics from the charts
// packages show up under --verbose as well.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/charts"
)

// version is the release version displayed by --version. Overridden at
// build time via ldflags.
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The pre-run hook installs the CLI logger as the charts
// library logger, so both log through the same handler.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "chartdemo",
		Short:        "Chartdemo renders candlestick and geographic map charts",
		Long:         `Chartdemo is a CLI for the charts library. It loads OHLC CSV or GeoJSON data, assembles a chart scene, and renders it to SVG or PNG.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			charts.SetLogger(slog.New(c.Logger))
		},
	}

	root.AddCommand(c.candlesCommand())
	root.AddCommand(c.geomapCommand())
	root.AddCommand(c.completionCommand())

	return root
}
