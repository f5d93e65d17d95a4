// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package oledtext is a container for the packages driving a SSD1315 OLED
// panel with mixed ASCII and CJK text.
//
// ssd1315 owns the framebuffer and talks to the controller, font16 provides
// 16x16 glyph tables, text lays glyphs out on the panel and screen2d previews
// the panel on a terminal.
package oledtext
