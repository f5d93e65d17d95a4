// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font16

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Rasterize renders runes with face into 16x16 glyphs.
//
// Narrow runes are centered in columns 4 to 11, wide runes in the full cell.
// Pixels with more than half coverage are turned on; anything falling outside
// of the rune's window is dropped. Runes the face has no advance for are
// skipped.
func Rasterize(face font.Face, runes ...rune) Map {
	m := make(Map, len(runes))
	baseline := baseline(face.Metrics())
	for _, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		m[r] = rasterizeRune(face, r, adv.Ceil(), baseline)
	}
	return m
}

// Basic returns the printable ASCII glyphs of basicfont.Face7x13.
func Basic() Map {
	return Rasterize(basicfont.Face7x13, ASCII()...)
}

func rasterizeRune(face font.Face, r rune, advance, baseline int) Glyph {
	start, end := Window(r)
	x := start
	if w := end - start; advance < w {
		x += (w - advance) / 2
	}
	dc := gg.NewContext(Size, Size)
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawString(string(r), float64(x), float64(baseline))
	img := dc.Image()
	var g Glyph
	for j := range Size {
		for i := start; i < end; i++ {
			if _, _, _, a := img.At(i, j).RGBA(); a >= 0x8000 {
				g.Set(i, j, true)
			}
		}
	}
	return g
}

// baseline vertically centers the face's line in the cell.
func baseline(m font.Metrics) int {
	ascent := m.Ascent.Ceil()
	h := ascent + m.Descent.Ceil()
	pad := 0
	if h < Size {
		pad = (Size - h) / 2
	}
	if b := pad + ascent; b < Size {
		return b
	}
	return Size
}
