// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/charts"
)

func TestWriteSVGFill(t *testing.T) {
	rect := charts.NewRectangle(20, 10)
	rect.SetPosition(5, 5)
	rect.SetStyle(charts.Style{Fill: charts.Red})

	scene := charts.NewScene()
	scene.Add(rect)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 100, 50); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<svg`,
		`width="100"`,
		`height="50"`,
		`<path`,
		`d="M`,
		`fill="#ff0000"`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGStroke(t *testing.T) {
	line := charts.NewPolyline(charts.Pt(0, 0), charts.Pt(50, 20), charts.Pt(80, 10))
	line.SetStyle(charts.Style{Stroke: charts.Green, StrokeWidth: 2})

	scene := charts.NewScene()
	scene.Add(line)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 100, 50); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`fill="none"`,
		`stroke="#00ff00"`,
		`stroke-width="2"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGFillOpacity(t *testing.T) {
	rect := charts.NewRectangle(10, 10)
	rect.SetStyle(charts.Style{Fill: charts.Blue.WithAlpha(0.5)})

	scene := charts.NewScene()
	scene.Add(rect)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 20, 20); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	if !strings.Contains(buf.String(), `fill-opacity="0.5"`) {
		t.Errorf("output missing fill-opacity:\n%s", buf.String())
	}
}

func TestWriteSVGPolygonHole(t *testing.T) {
	pg := charts.NewPolygon()
	pg.SetRings(
		[]charts.Point{charts.Pt(0, 0), charts.Pt(40, 0), charts.Pt(40, 40), charts.Pt(0, 40)},
		[]charts.Point{charts.Pt(10, 10), charts.Pt(30, 10), charts.Pt(30, 30), charts.Pt(10, 30)},
	)
	pg.SetStyle(charts.Style{Fill: charts.Black})

	scene := charts.NewScene()
	scene.Add(pg)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 50, 50); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	if !strings.Contains(buf.String(), `fill-rule="evenodd"`) {
		t.Errorf("polygon output missing even-odd fill rule:\n%s", buf.String())
	}
}

func TestWriteSVGLabel(t *testing.T) {
	lbl := charts.NewLabel("Revenue", 14)
	lbl.SetPosition(10, 20)
	lbl.SetStyle(charts.Style{Fill: charts.Black})

	scene := charts.NewScene()
	scene.Add(lbl)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 100, 50); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`<text`,
		`>Revenue</text>`,
		`font-size="14px"`,
		`text-anchor="start"`,
		`translate(10,20)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGLabelAnchorAndRotation(t *testing.T) {
	lbl := charts.NewLabel("N", 10)
	lbl.SetPosition(50, 50)
	lbl.SetAnchor(0.5, 0.5)
	lbl.SetRotation(1.5707963267948966)
	lbl.SetStyle(charts.Style{Fill: charts.Black})

	scene := charts.NewScene()
	scene.Add(lbl)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 100, 100); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`text-anchor="middle"`,
		`dominant-baseline="central"`,
		` rotate(`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSVGInvisibleSkipped(t *testing.T) {
	rect := charts.NewRectangle(10, 10)
	rect.SetStyle(charts.Style{Fill: charts.Red})
	rect.SetVisible(false)

	scene := charts.NewScene()
	scene.Add(rect)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene, 20, 20); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	if strings.Contains(buf.String(), "<path") {
		t.Errorf("invisible item must not emit a path:\n%s", buf.String())
	}
}

func TestWriteSVGNilScene(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, nil, 10, 10); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Errorf("nil scene should still produce a document:\n%s", out)
	}
}

func TestWriteSVGWriterError(t *testing.T) {
	rect := charts.NewRectangle(10, 10)
	rect.SetStyle(charts.Style{Fill: charts.Red})

	scene := charts.NewScene()
	scene.Add(rect)

	wantErr := errors.New("disk full")
	err := WriteSVG(failWriter{err: wantErr}, scene, 20, 20)
	if !errors.Is(err, wantErr) {
		t.Errorf("WriteSVG() error = %v, want %v", err, wantErr)
	}
}

// failWriter fails every write.
type failWriter struct {
	err error
}

func (fw failWriter) Write(p []byte) (int, error) {
	return 0, fw.err
}
