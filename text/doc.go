// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package text lays out fixed cell text on a 1-bit canvas.
//
// Glyphs come from a font16.Table. Each rune is drawn at the cursor, then the
// cursor moves by a full cell (16 pixels) for runes above 255 or by half a
// cell otherwise. When the cursor reached the right edge, it moves to the
// next row before the following rune is drawn.
package text
