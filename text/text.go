// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package text

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/GermanBionicSystems/oledtext/font16"
)

// Runes above wideAdvance move the cursor by a full cell. This is not the
// same threshold as font16.Narrow: runes 128 to 255 are drawn from the full
// cell but only advance by half a cell.
const wideAdvance = 255

// Canvas is a 1-bit pixel sink. *ssd1315.Dev implements it.
type Canvas interface {
	// SetPixel changes one pixel in memory. Out of range pixels are ignored.
	SetPixel(x, y int, on bool)
	// Flush makes the pixels set so far visible.
	Flush() error
	// Bounds returns the size of the canvas. Min is {0, 0}.
	Bounds() image.Rectangle
}

// Opts defines the options for a Renderer.
type Opts struct {
	// Logger receives skipped glyphs. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{}

// Renderer draws text from a font table onto a canvas.
type Renderer struct {
	c      Canvas
	t      font16.Table
	logger *slog.Logger
}

// New returns a Renderer drawing glyphs of t onto c.
func New(c Canvas, t font16.Table, opts *Opts) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{c: c, t: t, logger: logger}
}

// Advance returns the cursor position following r drawn at c.
func Advance(r rune, c Cursor) Cursor {
	if r > wideAdvance {
		return c.Next()
	}
	return c.NextHalf()
}

// DrawChar draws the glyph of r with its top left corner at the cursor and
// flushes the canvas once.
//
// Only "on" pixels are drawn. When the table has no glyph for r nothing is
// drawn nor flushed and the error wraps font16.ErrNotFound.
func (r *Renderer) DrawChar(ch rune, at Cursor) error {
	g, ok := r.t.Lookup(ch)
	if !ok {
		return fmt.Errorf("text: %U: %w", ch, font16.ErrNotFound)
	}
	start, end := font16.Window(ch)
	for i := start; i < end; i++ {
		for j := range font16.Size {
			if g.Bit(j*font16.Size + i) {
				r.c.SetPixel(at.X+i-start, at.Y+j, true)
			}
		}
	}
	return r.c.Flush()
}

// DrawText draws s one rune at a time and returns the cursor following the
// last rune, so more text can be appended.
//
// The cursor wraps to the next row before a rune is drawn. Runes that fail to
// draw are logged and skipped; their cell is still advanced over.
func (r *Renderer) DrawText(s string, at Cursor) Cursor {
	for _, ch := range s {
		at = r.drawRune(ch, at)
	}
	return at
}

// DrawRunes is DrawText for a slice of runes.
func (r *Renderer) DrawRunes(runes []rune, at Cursor) Cursor {
	for _, ch := range runes {
		at = r.drawRune(ch, at)
	}
	return at
}

// DrawLines draws each line starting on its own row, the first one at the
// cursor.
func (r *Renderer) DrawLines(at Cursor, lines ...string) Cursor {
	for i, l := range lines {
		if i != 0 {
			at = at.NewLine()
		}
		at = r.DrawText(l, at)
	}
	return at
}

func (r *Renderer) drawRune(ch rune, at Cursor) Cursor {
	at = at.Wrap(r.c.Bounds().Dx())
	if err := r.DrawChar(ch, at); err != nil {
		r.logger.Error("skipped glyph", "rune", fmt.Sprintf("%U", ch), "cursor", at.String(), "err", err)
	}
	return Advance(ch, at)
}
