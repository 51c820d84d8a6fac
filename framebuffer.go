// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

// Color is a pixel write operation on the 1 bit framebuffer.
type Color byte

// Valid pixel operations.
const (
	// Black clears the pixel.
	Black Color = iota
	// White sets the pixel.
	White
	// Inverse toggles the pixel.
	Inverse
)

// Rotation changes the coordinate transform applied by DrawPixel. It does not
// alter the byte layout of the framebuffer nor the panel configuration.
type Rotation byte

// Valid rotations, counter-clockwise.
const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// AttachBuffer attaches the caller-owned framebuffer the driver draws into.
//
// w and h must equal the panel dimensions and len(pix) must equal
// w * (h / 8). The driver keeps a reference to pix until the next successful
// AttachBuffer; the caller must not shrink it.
func (d *Dev) AttachBuffer(w, h int, pix []byte) error {
	if pix == nil {
		return ErrNilBuffer
	}
	if w != d.rect.Dx() || h != d.rect.Dy() || len(pix) != w*(h/8) {
		return ErrBufferSize
	}
	d.pix = pix
	return nil
}

// ClearBuffer zeroes the attached framebuffer. It does not touch the panel;
// call Update to push the cleared frame.
func (d *Dev) ClearBuffer() {
	for i := range d.pix {
		d.pix[i] = 0
	}
}

// SetRotation sets the rotation applied to subsequent DrawPixel calls.
func (d *Dev) SetRotation(r Rotation) {
	d.rotation = r & 3
}

// Rotation returns the current drawing rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}

// DrawPixel applies the color operation at (x, y) in the attached framebuffer.
//
// The point is first mapped through the current rotation, then clipped to the
// framebuffer. Out of bounds writes are a silent no-op so graphics primitives
// can clip trivially.
func (d *Dev) DrawPixel(x, y int, c Color) {
	if d.pix == nil {
		return
	}
	w := d.rect.Dx()
	h := d.rect.Dy()
	switch d.rotation {
	case Rotation90:
		x, y = w-1-y, x
	case Rotation180:
		x, y = w-1-x, h-1-y
	case Rotation270:
		x, y = y, h-1-x
	}
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	tc := w*(y>>3) + x
	mask := byte(1) << uint(y&7)
	switch c {
	case White:
		d.pix[tc] |= mask
	case Black:
		d.pix[tc] &^= mask
	case Inverse:
		d.pix[tc] ^= mask
	}
}
