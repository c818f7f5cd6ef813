// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the target's pixels to w in PNG format.
func EncodePNG(w io.Writer, target *PixmapTarget) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	return png.Encode(w, target.Image())
}

// SavePNG writes the target's pixels to a PNG file.
func SavePNG(path string, target *PixmapTarget) error {
	if target == nil {
		return errors.New("render: nil target")
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, target.Image())
}
