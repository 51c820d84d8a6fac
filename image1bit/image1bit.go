// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements a 1 bit image matching the SSD1306 GDDRAM
// layout.
//
// Pixels are packed vertically: each byte of Pix covers one column of 8 rows,
// least significant bit on top, in horizontal bands (pages) of 8 rows. The
// Pix slice of a panel-sized VerticalLSB can be attached directly as the
// driver framebuffer.
package image1bit

import (
	"image"
	"image/color"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color model for Bit. Any color at or above 50% luminance
// converts to On.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Perceptual weights, scaled so a mid-gray lands on the boundary.
	y := (299*r + 587*g + 114*b) / 1000
	return Bit(y >= 0x8000)
}

// VerticalLSB is a 1 bit image with pixels packed in vertical bytes.
type VerticalLSB struct {
	// Pix holds the image's pixels, as vertically packed bits in horizontal
	// bands of 8 rows.
	Pix []byte
	// Stride is the Pix stride (in bytes) between vertically adjacent bands.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
//
// The height is rounded up to a multiple of 8 for storage purposes; Bounds
// still reports r.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	bands := (r.Dy() + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*bands),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convert(c).(Bit))
}

// SetBit is the optimized version of Set().
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset in Pix and the bit mask for (x, y).
func (i *VerticalLSB) pixOffset(x, y int) (int, byte) {
	x -= i.Rect.Min.X
	y -= i.Rect.Min.Y
	return (y/8)*i.Stride + x, byte(1) << uint(y&7)
}

var _ image.Image = &VerticalLSB{}
