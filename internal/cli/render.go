package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/charts"
	"github.com/gogpu/charts/render"
)

const (
	formatSVG = "svg"
	formatPNG = "png"

	defaultWidth  = 800 // default viewport width in pixels
	defaultHeight = 600 // default viewport height in pixels
)

// validateFormat checks that the requested output format is supported.
func validateFormat(format string) error {
	switch format {
	case formatSVG, formatPNG:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", format)
	}
}

// outputPath derives the output file path. An explicit output wins;
// otherwise the input name with its extension swapped for the format.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// writeScene renders the scene to path. SVG writes vector paths
// directly; PNG rasterizes through the software renderer.
func writeScene(scene *charts.Scene, width, height int, format, path string) error {
	switch format {
	case formatSVG:
		f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		defer func() { _ = f.Close() }()
		return render.WriteSVG(f, scene, width, height)
	case formatPNG:
		target := render.NewPixmapTarget(width, height)
		r := render.NewSoftwareRenderer()
		if err := r.Render(target, scene); err != nil {
			return err
		}
		return render.SavePNG(path, target)
	default:
		return fmt.Errorf("cli: unknown format: %s", format)
	}
}
