// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font16

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FromTrueType renders runes of a parsed TrueType font at size points (72
// DPI, so points are pixels).
//
// Runes missing from the font are skipped instead of being rendered as the
// .notdef box.
func FromTrueType(f *truetype.Font, size float64, runes ...rune) Map {
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	present := make([]rune, 0, len(runes))
	for _, r := range runes {
		if f.Index(r) != 0 {
			present = append(present, r)
		}
	}
	return Rasterize(face, present...)
}

// ParseTrueType parses TrueType font data and renders runes from it.
func ParseTrueType(data []byte, size float64, runes ...rune) (Map, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font16: %w", err)
	}
	return FromTrueType(f, size, runes...), nil
}

// LoadTrueType reads a .ttf file and renders runes from it.
//
// Use it with a CJK font to build the double-byte part of a table.
func LoadTrueType(path string, size float64, runes ...rune) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font16: %w", err)
	}
	return ParseTrueType(data, size, runes...)
}

// GoRegular returns the printable ASCII glyphs of the Go Regular font.
func GoRegular(size float64) (Map, error) {
	return ParseTrueType(goregular.TTF, size, ASCII()...)
}
