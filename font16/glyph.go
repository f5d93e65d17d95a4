// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font16

import (
	"errors"
	"strings"
)

// Size is the width and height of a glyph cell in pixels.
const Size = 16

// Narrow glyphs only use columns [NarrowStart, NarrowEnd) of the cell.
const (
	NarrowStart = 4
	NarrowEnd   = 12
)

// ErrNotFound is returned when a table has no glyph for a rune.
var ErrNotFound = errors.New("font16: glyph not found")

// Glyph is a 16x16 bit grid.
//
// Word j is row j; bit i of the word is column i, bit 0 being the leftmost
// column. The linear offset of pixel (i, j) is j*16+i.
type Glyph [Size]uint16

// Bit reports whether the pixel at linear offset off is on.
func (g *Glyph) Bit(off int) bool {
	return g[off/Size]&(1<<uint(off%Size)) != 0
}

// At reports whether the pixel at column i, row j is on.
func (g *Glyph) At(i, j int) bool {
	return g.Bit(j*Size + i)
}

// Set turns the pixel at column i, row j on or off. Out of range pixels are
// ignored.
func (g *Glyph) Set(i, j int, on bool) {
	if i < 0 || i >= Size || j < 0 || j >= Size {
		return
	}
	if on {
		g[j] |= 1 << uint(i)
	} else {
		g[j] &^= 1 << uint(i)
	}
}

// Empty reports whether no pixel is on.
func (g *Glyph) Empty() bool {
	for _, w := range g {
		if w != 0 {
			return false
		}
	}
	return true
}

// String returns the glyph as 16 lines of '#' and '.'.
func (g *Glyph) String() string {
	var b strings.Builder
	for j := range Size {
		for i := range Size {
			if g.At(i, j) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Narrow reports whether r is stored in the narrow sub-window of its cell.
func Narrow(r rune) bool {
	return r <= 127
}

// Window returns the columns [start, end) of the cell holding r's pixels.
func Window(r rune) (start, end int) {
	if Narrow(r) {
		return NarrowStart, NarrowEnd
	}
	return 0, Size
}

// Table maps a rune to its glyph.
type Table interface {
	// Lookup returns the glyph for r, or false if the table doesn't have it.
	Lookup(r rune) (Glyph, bool)
}

// Map is an in-memory Table.
type Map map[rune]Glyph

// Lookup implements Table.
func (m Map) Lookup(r rune) (Glyph, bool) {
	g, ok := m[r]
	return g, ok
}

// Chain is a Table that looks up each table in order and returns the first
// match.
type Chain []Table

// Lookup implements Table.
func (c Chain) Lookup(r rune) (Glyph, bool) {
	for _, t := range c {
		if g, ok := t.Lookup(r); ok {
			return g, true
		}
	}
	return Glyph{}, false
}

// ASCII returns the printable ASCII runes, 0x20 to 0x7E.
func ASCII() []rune {
	return Range(0x20, 0x7E)
}

// Range returns the runes from lo to hi, inclusive.
func Range(lo, hi rune) []rune {
	if hi < lo {
		return nil
	}
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

var _ Table = Map(nil)
var _ Table = Chain(nil)
