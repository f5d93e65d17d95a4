// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestDraw(t *testing.T) {
	var out bytes.Buffer
	d := NewWriter(&out, &Opts{W: 16, H: 8})
	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 16, 8))
	src.SetBit(3, 5, image1bit.On)
	src.SetBit(15, 0, image1bit.On)
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	on := ansi256.Default.Block(color.NRGBA{255, 255, 255, 255})
	off := ansi256.Default.Block(color.NRGBA{0, 0, 0, 255})
	if n := strings.Count(s, on); n != 2 {
		t.Errorf("%d lit pixels, want 2", n)
	}
	if n := strings.Count(s, off); n != 16*8-2 {
		t.Errorf("%d dark pixels, want %d", n, 16*8-2)
	}
	if n := strings.Count(s, "\n"); n != 8 {
		t.Errorf("%d lines, want 8", n)
	}
	if strings.Contains(s, "\033[8A") {
		t.Error("first frame must not move the cursor up")
	}

	out.Reset()
	if err := d.Draw(d.Bounds(), src, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[8A") {
		t.Error("second frame must overwrite the first one")
	}
}

func TestMisc(t *testing.T) {
	var out bytes.Buffer
	d := NewWriter(&out, &Opts{W: 128, H: 64})
	if got := d.Bounds(); got != image.Rect(0, 0, 128, 64) {
		t.Errorf("Bounds() = %v", got)
	}
	if d.ColorModel() != image1bit.BitModel {
		t.Error("ColorModel() is not image1bit.BitModel")
	}
	if s := d.String(); s != "Screen2D{(128,64)}" {
		t.Errorf("String() = %q", s)
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "\033[0m\n" {
		t.Errorf("Halt() wrote %q", out.String())
	}
}
