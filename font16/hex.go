// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font16

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ReadHex parses a GNU Unifont .hex stream.
//
// Each line is "CODEPOINT:BITMAP" with 32 hex digits for an 8x16 glyph or 64
// for a 16x16 glyph, rows top to bottom, most significant bit leftmost.
// 8x16 glyphs are stored in columns 4 to 11 of the cell. Empty lines and
// lines starting with '#' are ignored.
func ReadHex(r io.Reader) (Map, error) {
	m := Map{}
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		cp, bitmap, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("font16: hex line %d: missing ':'", line)
		}
		code, err := strconv.ParseUint(cp, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("font16: hex line %d: %w", line, err)
		}
		if !utf8.ValidRune(rune(code)) {
			return nil, fmt.Errorf("font16: hex line %d: invalid code point %s", line, cp)
		}
		raw, err := hex.DecodeString(bitmap)
		if err != nil {
			return nil, fmt.Errorf("font16: hex line %d: %w", line, err)
		}
		var g Glyph
		switch len(raw) {
		case Size:
			for j, b := range raw {
				for k := range 8 {
					if b&(0x80>>uint(k)) != 0 {
						g.Set(NarrowStart+k, j, true)
					}
				}
			}
		case 2 * Size:
			for j := range Size {
				w := uint16(raw[2*j])<<8 | uint16(raw[2*j+1])
				for k := range Size {
					if w&(0x8000>>uint(k)) != 0 {
						g.Set(k, j, true)
					}
				}
			}
		default:
			return nil, fmt.Errorf("font16: hex line %d: bitmap of %d bytes", line, len(raw))
		}
		m[rune(code)] = g
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("font16: %w", err)
	}
	return m, nil
}
