// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oledtext writes lines of text on a SSD1315 OLED display.
//
// Each argument is drawn on its own row. ASCII is built in; pass a Unifont
// .hex file or a TrueType font with -hex or -font for CJK text.
//
//	oledtext -font NotoSansSC.ttf "Hello" "你好世界"
//	oledtext -dry-run "preview only"
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/GermanBionicSystems/oledtext/font16"
	"github.com/GermanBionicSystems/oledtext/screen2d"
	"github.com/GermanBionicSystems/oledtext/ssd1315"
	"github.com/GermanBionicSystems/oledtext/text"
)

// asciiTable returns the fallback table used for runes missing from the
// -hex and -font tables.
func asciiTable(name string) (font16.Map, error) {
	switch name {
	case "basic":
		return font16.Basic(), nil
	case "proggy":
		return font16.FromTinyfont(&proggy.TinySZ8pt7b, 12, font16.ASCII()...), nil
	case "goregular":
		return font16.GoRegular(14)
	default:
		return nil, fmt.Errorf("unknown -ascii font %q", name)
	}
}

func loadTable(hexPath, ttfPath string, size float64, ascii string, lines []string) (font16.Table, error) {
	var chain font16.Chain
	if hexPath != "" {
		f, err := os.Open(hexPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		m, err := font16.ReadHex(f)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	if ttfPath != "" {
		m, err := font16.LoadTrueType(ttfPath, size, usedRunes(lines)...)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	fallback, err := asciiTable(ascii)
	if err != nil {
		return nil, err
	}
	return append(chain, fallback), nil
}

func usedRunes(lines []string) []rune {
	seen := map[rune]struct{}{}
	var out []rune
	for _, l := range lines {
		for _, r := range l {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}
	return out
}

func mainImpl() error {
	i2cName := flag.String("i2c", "", "I²C bus to use")
	addr := flag.Int("addr", 0x3c, "I²C address of the display")
	hz := flag.Int("khz", 400, "I²C bus speed in kHz")
	spiName := flag.String("spi", "", "SPI port to use instead of I²C")
	dcName := flag.String("dc", "", "D/C# pin, required with -spi")
	w := flag.Int("w", 128, "display width")
	h := flag.Int("h", 64, "display height")
	contrast := flag.Int("contrast", 0xCF, "contrast, 1 to 255")
	hexPath := flag.String("hex", "", "Unifont .hex font file")
	ttfPath := flag.String("font", "", "TrueType font file")
	size := flag.Float64("size", 16, "TrueType font size in pixels")
	ascii := flag.String("ascii", "basic", "fallback ASCII font: basic, proggy or goregular")
	preview := flag.Bool("preview", false, "mirror the display on the terminal")
	dryRun := flag.Bool("dry-run", false, "do not touch the hardware, preview on the terminal")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *contrast < 1 || *contrast > 255 {
		return fmt.Errorf("invalid -contrast %d", *contrast)
	}

	lines := flag.Args()
	table, err := loadTable(*hexPath, *ttfPath, *size, *ascii, lines)
	if err != nil {
		return err
	}

	opts := ssd1315.DefaultOpts
	opts.W = *w
	opts.H = *h
	opts.Addr = uint16(*addr)
	opts.Contrast = byte(*contrast)
	opts.Logger = logger
	if *preview || *dryRun {
		opts.Mirror = screen2d.New(&screen2d.Opts{W: *w, H: *h})
	}

	var dev *ssd1315.Dev
	switch {
	case *dryRun:
		dev, err = ssd1315.NewI2C(&i2ctest.Record{}, &opts)
	case *spiName != "":
		if _, err := host.Init(); err != nil {
			return err
		}
		dc := gpioreg.ByName(*dcName)
		if dc == nil {
			return fmt.Errorf("unknown -dc pin %q", *dcName)
		}
		p, err2 := spireg.Open(*spiName)
		if err2 != nil {
			return err2
		}
		defer p.Close()
		dev, err = ssd1315.NewSPI(p, dc, &opts)
	default:
		if _, err := host.Init(); err != nil {
			return err
		}
		b, err2 := i2creg.Open(*i2cName)
		if err2 != nil {
			return err2
		}
		defer b.Close()
		if err := b.SetSpeed(physic.Frequency(*hz) * physic.KiloHertz); err != nil {
			return err
		}
		dev, err = ssd1315.NewI2C(b, &opts)
	}
	if err != nil {
		return err
	}
	logger.Debug("opened", "dev", dev.String())

	if err := dev.ClearPhysical(); err != nil {
		return err
	}
	dev.ClearBuffer()
	r := text.New(dev, table, &text.Opts{Logger: logger})
	end := r.DrawLines(text.Origin(), lines...)
	logger.Debug("done", "cursor", end.String())
	if opts.Mirror != nil {
		return opts.Mirror.Halt()
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("oledtext: %v", err)
	}
}
