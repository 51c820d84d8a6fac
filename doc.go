// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306oled controls a monochrome OLED display via a SSD1306
// controller over I²C.
//
// Unlike drivers that allocate their own frame memory, this driver draws into
// a caller-owned framebuffer attached with AttachBuffer. The buffer uses the
// SSD1306 GDDRAM layout: one byte covers a column of 8 vertically stacked
// pixels, least significant bit on top, pages of 8 rows from top to bottom.
// The image1bit subpackage provides an image.Image with the exact same pixel
// layout so rendered images can be attached without conversion.
//
// Graphics primitives beyond DrawPixel are intentionally not provided; any 2D
// library that can plot pixels (or produce an image.Image) can be layered on
// top. Dev implements display.Drawer for the image path.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306oled
