// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package text

import "fmt"

// Cell size in pixels.
const (
	CellWidth  = 16
	CellHeight = 16
)

// Cursor is a text insertion position in pixels.
//
// X and Y are never negative. Y is not bounded by the screen height: rows
// past the bottom of the screen are clipped when drawn.
type Cursor struct {
	X, Y int
}

// Origin returns the top left position.
func Origin() Cursor {
	return Cursor{}
}

func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Next moves past a wide glyph.
func (c Cursor) Next() Cursor {
	c.X += CellWidth
	return c
}

// NextHalf moves past a narrow glyph; two narrow glyphs fill one cell.
func (c Cursor) NextHalf() Cursor {
	c.X += CellWidth / 2
	return c
}

// NewLine moves to the start of the next row.
func (c Cursor) NewLine() Cursor {
	c.X = 0
	c.Y += CellHeight
	return c
}

// Wrap moves to the next row when X reached width.
//
// Call it before drawing a glyph so it is never started past the right edge.
func (c Cursor) Wrap(width int) Cursor {
	if c.X >= width {
		return c.NewLine()
	}
	return c
}
