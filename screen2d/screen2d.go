// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a monochrome 2D display.Drawer that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful to preview what an OLED panel shows, either alone or as the mirror
// of a real device.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H    int
	Palette *ansi256.Palette
	// On is the color of lit pixels. The zero value selects white.
	On color.NRGBA

	_ struct{}
}

// Dev is an OLED panel emulator that outputs to the console.
type Dev struct {
	w      io.Writer
	img    *image1bit.VerticalLSB
	on     string
	off    string
	frames int

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes frames to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	on := opts.On
	if on.A == 0 {
		on = color.NRGBA{255, 255, 255, 255}
	}
	return &Dev{
		w:   w,
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
		on:  p.Block(on),
		off: p.Block(color.NRGBA{0, 0, 0, 255}),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%s}", d.img.Rect.Max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Rect
}

// Draw implements display.Drawer.
//
// Every call prints the whole screen; from the second frame on, the previous
// frame is overwritten in place.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.img, r, src, sp)
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	h := d.img.Rect.Dy()
	if d.frames != 0 {
		// Move back to the top of the previous frame.
		fmt.Fprintf(&d.buf, "\033[%dA", h)
	}
	for y := 0; y < h; y++ {
		_, _ = d.buf.WriteString("\r")
		for x := 0; x < d.img.Rect.Dx(); x++ {
			if d.img.BitAt(x, y) {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.frames++
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
