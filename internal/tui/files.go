package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/gogpu/charts/candle"
	"github.com/gogpu/charts/geo"
)

// fileItem is one entry in the file sidebar.
type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// refreshDir repopulates the sidebar with supported files from the
// working directory.
func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".csv" || ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].(fileItem).title < items[j].(fileItem).title
	})
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a supported file into the model. CSV files preview as
// candlestick charts, GeoJSON files as maps.
func (m *Model) loadPath(p string) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".csv":
		bars, err := candle.LoadCSV(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.kind = kindCandles
		m.bars = bars
		m.features = nil
	case ".geojson", ".json":
		features, err := geo.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.kind = kindGeomap
		m.features = features
		m.bars = nil
		m.centerLon, m.centerLat = featureCenter(features)
	default:
		m.status = "unsupported file: " + filepath.Ext(p)
		return
	}
	m.selPath = p
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = "loaded: " + filepath.Base(p)
}

// featureCenter returns the midpoint of the features' bounding box.
func featureCenter(features []geo.Feature) (lon, lat float64) {
	var minLon, minLat, maxLon, maxLat float64
	first := true
	for _, f := range features {
		if f.Geometry == nil {
			continue
		}
		for _, c := range f.Geometry.Coordinates() {
			if first {
				minLon, maxLon = c.Lon, c.Lon
				minLat, maxLat = c.Lat, c.Lat
				first = false
				continue
			}
			minLon = min(minLon, c.Lon)
			maxLon = max(maxLon, c.Lon)
			minLat = min(minLat, c.Lat)
			maxLat = max(maxLat, c.Lat)
		}
	}
	return (minLon + maxLon) / 2, (minLat + maxLat) / 2
}
