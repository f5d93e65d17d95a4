// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Framebuffer is an in-memory copy of the controller GDDRAM.
//
// The memory is organized in pages: horizontal bands 8 pixels high. Each byte
// holds 8 vertically stacked pixels of one column, the least significant bit
// being the top one. This is exactly the layout of image1bit.VerticalLSB, so
// the framebuffer is also a regular draw.Image.
type Framebuffer struct {
	*image1bit.VerticalLSB
}

// NewFramebuffer returns a zeroed framebuffer of w x h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{VerticalLSB: image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))}
}

// Pages returns the number of 8 pixels high pages.
func (f *Framebuffer) Pages() int {
	return (f.Rect.Dy() + 7) / 8
}

// Page returns the bytes of one page, one byte per column.
//
// The slice aliases the framebuffer memory.
func (f *Framebuffer) Page(p int) []byte {
	off := p * f.Stride
	return f.Pix[off : off+f.Rect.Dx()]
}

// Plot sets or clears the pixel at (x, y).
//
// It returns false and leaves the memory untouched when the pixel is outside
// of the framebuffer.
func (f *Framebuffer) Plot(x, y int, on bool) bool {
	if x < 0 || x >= f.Rect.Dx() || y < 0 || y >= f.Rect.Dy() {
		return false
	}
	page := y / 8
	mask := byte(1) << uint(y%8)
	i := page*f.Stride + x
	if on {
		f.Pix[i] |= mask
	} else {
		f.Pix[i] &^= mask
	}
	return true
}

// Clear zeroes the whole framebuffer.
func (f *Framebuffer) Clear() {
	clear(f.Pix)
}
