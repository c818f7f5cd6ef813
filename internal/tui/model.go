// Package tui is an interactive terminal previewer for chart scenes.
//
// Charts render through the regular software rasterizer into an
// offscreen pixmap, which is downsampled to braille cells at 2x4
// micro-pixels per terminal cell. The preview therefore exercises the
// same scene and raster pipeline as PNG output.
package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/charts/candle"
	"github.com/gogpu/charts/geo"
	"github.com/gogpu/charts/render"
)

// chartKind selects which chart family the loaded file previews as.
type chartKind int

const (
	kindNone chartKind = iota
	kindCandles
	kindGeomap
)

// Model is the bubbletea model for the chart previewer.
type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int // pan offset in cells
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Loaded data
	kind      chartKind
	bars      []candle.Bar
	features  []geo.Feature
	centerLon float64
	centerLat float64

	// projIndex cycles through the preview projections for map data.
	projIndex int

	renderer *render.SoftwareRenderer
}

// New creates a previewer with no data loaded. The file sidebar lists
// supported files in the working directory.
func New() Model {
	m := Model{
		helpVisible: true,
		zoom:        1.0,
		status:      "chart preview ready",
		renderer:    render.NewSoftwareRenderer(),
	}
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.refreshDir()
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }
