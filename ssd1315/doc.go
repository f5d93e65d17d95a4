// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1315 controls a 128x64 monochrome OLED display via a SSD1315
// controller.
//
// The driver keeps a framebuffer laid out like the controller GDDRAM: 8
// pages of 128 bytes, each byte covering 8 vertical pixels. SetPixel only
// changes memory; Flush sends the whole framebuffer, one data transaction per
// page. Batch pixel updates and flush once per logical drawing unit, since a
// transaction per pixel is far too slow on I²C.
//
// The device can be driven on either I²C or SPI with 4 wires. On I²C every
// transaction starts with a control byte: 0x00 for commands, 0x40 for data.
// On SPI the D/C# pin carries the same information.
//
// # Datasheets
//
// https://www.solomon-systech.com/product/ssd1315/
package ssd1315
