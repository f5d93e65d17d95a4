// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font16 provides 16x16 bitmap font tables for mixed ASCII and CJK
// text.
//
// Every glyph uses the same 16x16 cell. Single-byte runes (<= 127) are
// stored in the 8 columns in the middle of the cell, columns 4 to 11;
// anything else uses the whole cell.
//
// Tables can be built from a Unifont .hex file, a TrueType font, a tinyfont
// font or any golang.org/x/image/font.Face.
package font16
