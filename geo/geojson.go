package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Feature pairs a geometry with the source feature's identity and
// properties. Multi-part source geometries (MultiLineString,
// MultiPolygon) are split into one Feature per part; the parts share
// the feature id, and lookups by id resolve to the first part.
type Feature struct {
	ID         string
	Properties map[string]any
	Geometry   Geometry
}

// Property returns a property value as a string.
func (f Feature) Property(key string) (string, bool) {
	v, ok := f.Properties[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// LoadGeoJSON reads and parses a GeoJSON file.
func LoadGeoJSON(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("geo: %w", err)
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON parses a GeoJSON document: a FeatureCollection, a single
// Feature, or a bare geometry. Unknown geometry types are skipped.
func ParseGeoJSON(data []byte) ([]Feature, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("geo: parse geojson: %w", err)
	}

	var features []Feature

	parseCoord := func(v any) (Coord, bool) {
		a, ok := v.([]any)
		if !ok || len(a) < 2 {
			return Coord{}, false
		}
		lon, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if !lok || !aok {
			return Coord{}, false
		}
		return Coord{Lon: lon, Lat: lat}, true
	}
	parseCoords := func(v any) ([]Coord, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		coords := make([]Coord, 0, len(arr))
		for _, el := range arr {
			if c, ok := parseCoord(el); ok {
				coords = append(coords, c)
			}
		}
		return coords, true
	}
	parseRings := func(v any) ([][]Coord, bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		rings := make([][]Coord, 0, len(arr))
		for _, el := range arr {
			if ring, ok := parseCoords(el); ok {
				rings = append(rings, ring)
			}
		}
		return rings, true
	}

	walkGeom := func(g map[string]any, id string, props map[string]any) {
		emit := func(geom Geometry) {
			features = append(features, Feature{ID: id, Properties: props, Geometry: geom})
		}
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if c, ok := parseCoord(g["coordinates"]); ok {
				emit(&Point{Coord: c})
			}
		case "MultiPoint":
			if coords, ok := parseCoords(g["coordinates"]); ok {
				emit(&MultiPoint{Coords: coords})
			}
		case "LineString":
			if coords, ok := parseCoords(g["coordinates"]); ok {
				emit(&LineString{Coords: coords})
			}
		case "MultiLineString":
			if parts, ok := parseRings(g["coordinates"]); ok {
				for _, part := range parts {
					emit(&LineString{Coords: part})
				}
			}
		case "Polygon":
			if rings, ok := parseRings(g["coordinates"]); ok {
				emit(&Polygon{Rings: rings})
			}
		case "MultiPolygon":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if rings, ok := parseRings(el); ok {
						emit(&Polygon{Rings: rings})
					}
				}
			}
		}
	}

	walkFeature := func(fm map[string]any) {
		props, _ := fm["properties"].(map[string]any)
		id := featureID(fm, props)
		if g, ok := fm["geometry"].(map[string]any); ok {
			walkGeom(g, id, props)
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		walkFeature(raw)
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					walkFeature(fm)
				}
			}
		}
	default:
		// Bare geometry document.
		walkGeom(raw, "", nil)
	}

	if len(features) == 0 {
		return nil, errors.New("geo: no geometries found")
	}
	return features, nil
}

// featureID extracts the feature identifier: the feature-level "id"
// member first, then an "id" property.
func featureID(fm, props map[string]any) string {
	switch v := fm["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	switch v := props["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}
