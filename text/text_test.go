// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package text

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/GermanBionicSystems/oledtext/font16"
	"github.com/GermanBionicSystems/oledtext/ssd1315"
)

type fakeCanvas struct {
	w, h    int
	on      map[image.Point]bool
	flushes int
	// pixels set since the last flush, per flush.
	batches [][]image.Point
	pending []image.Point
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{w: 128, h: 64, on: map[image.Point]bool{}}
}

func (f *fakeCanvas) SetPixel(x, y int, on bool) {
	p := image.Point{x, y}
	f.pending = append(f.pending, p)
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.on[p] = on
}

func (f *fakeCanvas) Flush() error {
	f.flushes++
	f.batches = append(f.batches, f.pending)
	f.pending = nil
	return nil
}

func (f *fakeCanvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

// glyphA is a narrow 'A' stored in columns 4 to 11, plus a stray bit in
// column 0 that must never be drawn.
func glyphA() font16.Glyph {
	var g font16.Glyph
	for j := 2; j < 14; j++ {
		g.Set(4, j, true)
		g.Set(11, j, true)
	}
	for i := 4; i < 12; i++ {
		g.Set(i, 2, true)
		g.Set(i, 8, true)
	}
	g.Set(0, 0, true)
	return g
}

// glyphBox is a wide glyph with its four corners on.
func glyphBox() font16.Glyph {
	var g font16.Glyph
	g.Set(0, 0, true)
	g.Set(15, 0, true)
	g.Set(0, 15, true)
	g.Set(15, 15, true)
	return g
}

func testTable() font16.Map {
	return font16.Map{
		'A':       glyphA(),
		rune(300): glyphBox(),
		rune(200): glyphBox(),
	}
}

func TestDrawCharNarrow(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	if err := r.DrawChar('A', Origin()); err != nil {
		t.Fatal(err)
	}
	if c.flushes != 1 {
		t.Fatalf("flushes = %d, want 1", c.flushes)
	}
	g := glyphA()
	want := map[image.Point]bool{}
	for j := range 16 {
		for i := 4; i < 12; i++ {
			if g.At(i, j) {
				want[image.Point{i - 4, j}] = true
			}
		}
	}
	if diff := cmp.Diff(c.on, want); diff != "" {
		t.Errorf("pixels difference (-got +want):\n%s", diff)
	}
	for p := range c.on {
		if p.X < 0 || p.X > 7 || p.Y < 0 || p.Y > 15 {
			t.Errorf("pixel %v outside of the 8x16 cell", p)
		}
	}
}

func TestDrawCharWide(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	if err := r.DrawChar(300, Cursor{32, 16}); err != nil {
		t.Fatal(err)
	}
	want := map[image.Point]bool{{32, 16}: true, {47, 16}: true, {32, 31}: true, {47, 31}: true}
	if diff := cmp.Diff(c.on, want); diff != "" {
		t.Errorf("pixels difference (-got +want):\n%s", diff)
	}
}

func TestDrawCharKeepsExistingPixels(t *testing.T) {
	c := newFakeCanvas()
	c.SetPixel(1, 1, true)
	r := New(c, testTable(), &DefaultOpts)
	if err := r.DrawChar('A', Origin()); err != nil {
		t.Fatal(err)
	}
	if !c.on[image.Point{1, 1}] {
		t.Error("off glyph bits must not clear the canvas")
	}
}

func TestDrawCharNotFound(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	err := r.DrawChar('Z', Origin())
	if !errors.Is(err, font16.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if c.flushes != 0 || len(c.on) != 0 {
		t.Errorf("missing glyph drew %d pixels and flushed %d times", len(c.on), c.flushes)
	}
}

func TestDrawText(t *testing.T) {
	for _, tc := range []struct {
		name    string
		s       string
		at      Cursor
		want    Cursor
		flushes int
	}{
		{"single narrow", "A", Origin(), Cursor{8, 0}, 1},
		{"wide then narrow", string([]rune{300, 'A'}), Origin(), Cursor{24, 0}, 2},
		{"latin-1 advances half", string([]rune{200}), Origin(), Cursor{8, 0}, 1},
		{"missing glyph still advances", "ZA", Origin(), Cursor{16, 0}, 1},
		{"empty", "", Cursor{40, 16}, Cursor{40, 16}, 0},
		{"no wrap from 120", string([]rune{300}), Cursor{120, 0}, Cursor{136, 0}, 1},
		{"wrap at 128", string([]rune{300}), Cursor{128, 0}, Cursor{16, 16}, 1},
		{"wraps mid string", "AAAAAAAAAAAAAAAAAA", Origin(), Cursor{16, 16}, 18},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newFakeCanvas()
			r := New(c, testTable(), &DefaultOpts)
			if got := r.DrawText(tc.s, tc.at); got != tc.want {
				t.Errorf("DrawText() = %v, want %v", got, tc.want)
			}
			if c.flushes != tc.flushes {
				t.Errorf("flushes = %d, want %d", c.flushes, tc.flushes)
			}
		})
	}
}

func TestDrawTextWrapsBeforeDrawing(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	r.DrawRunes([]rune{300}, Cursor{128, 0})
	for _, p := range c.batches[0] {
		if p.Y < 16 || p.X > 15 {
			t.Fatalf("pixel %v drawn before wrapping", p)
		}
	}
}

func TestDrawTextClipsBelowScreen(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	got := r.DrawText("A", Cursor{0, 64})
	if got != (Cursor{8, 64}) {
		t.Errorf("DrawText() = %v", got)
	}
	if len(c.on) != 0 {
		t.Errorf("%d pixels drawn below the screen", len(c.on))
	}
}

func TestDrawLines(t *testing.T) {
	c := newFakeCanvas()
	r := New(c, testTable(), &DefaultOpts)
	got := r.DrawLines(Origin(), "AA", "A")
	if want := (Cursor{8, 16}); got != want {
		t.Errorf("DrawLines() = %v, want %v", got, want)
	}
	if c.flushes != 3 {
		t.Errorf("flushes = %d, want 3", c.flushes)
	}
}

func TestDrawTextOnDevice(t *testing.T) {
	record := &i2ctest.Record{}
	opts := ssd1315.DefaultOpts
	dev, err := ssd1315.NewI2C(record, &opts)
	if err != nil {
		t.Fatal(err)
	}
	record.Ops = nil
	r := New(dev, testTable(), &DefaultOpts)
	if got := r.DrawText("A", Origin()); got != (Cursor{8, 0}) {
		t.Errorf("DrawText() = %v", got)
	}
	// One flush: 8 pages, each a command and a data transaction.
	if len(record.Ops) != 16 {
		t.Fatalf("%d transactions, want 16", len(record.Ops))
	}
	g := glyphA()
	fb := dev.Framebuffer()
	for y := range 64 {
		for x := range 128 {
			want := x < 8 && y < 16 && g.At(x+4, y)
			if got := bool(fb.BitAt(x, y)); got != want {
				t.Fatalf("pixel (%d, %d) = %t, want %t", x, y, got, want)
			}
		}
	}
}
