// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font16

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// FromTinyfont renders runes of a tinyfont font into 16x16 glyphs.
//
// baseline is the row the font's baseline is drawn on. Runes drawing no pixel
// are skipped, except the space.
func FromTinyfont(f tinyfont.Fonter, baseline int16, runes ...rune) Map {
	m := make(Map, len(runes))
	for _, r := range runes {
		c := &cell{}
		c.start, c.end = Window(r)
		tinyfont.DrawChar(c, f, int16(c.start), baseline, r, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		if c.g.Empty() && r != ' ' {
			continue
		}
		m[r] = c.g
	}
	return m
}

// cell captures the pixels tinyfont draws for one rune.
type cell struct {
	g          Glyph
	start, end int
}

func (c *cell) Size() (x, y int16) {
	return Size, Size
}

func (c *cell) SetPixel(x, y int16, col color.RGBA) {
	if int(x) < c.start || int(x) >= c.end || col.A == 0 {
		return
	}
	c.g.Set(int(x), int(y), true)
}

func (c *cell) Display() error {
	return nil
}

var _ drivers.Displayer = &cell{}
