// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

import (
	"bytes"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306oled/image1bit"
)

// DrawBitmap draws a horizontally packed 1 bit bitmap into the framebuffer at
// (x, y).
//
// Rows are packed MSB first: bit 7 of byte j*(w/8)+i/8 is the leftmost pixel
// of the group. Set bits draw White and cleared bits Black; invert swaps the
// two. Every pixel goes through DrawPixel, so rotation and clipping apply.
//
// The panel is not touched; call Update to push the frame.
func (d *Dev) DrawBitmap(x, y, w, h int, data []byte, invert bool) error {
	if d.pix == nil {
		return ErrNilBuffer
	}
	if x > d.rect.Dx() || y > d.rect.Dy() {
		return ErrBitmapBounds
	}
	if w > d.rect.Dx() || h > d.rect.Dy() {
		return ErrBitmapTooLarge
	}
	if data == nil {
		return ErrNilBitmap
	}
	if w%8 != 0 {
		return ErrBitmapWidth
	}
	byteWidth := w / 8
	if len(data) < byteWidth*h {
		return ErrNilBitmap
	}
	fg, bg := White, Black
	if invert {
		fg, bg = Black, White
	}
	for j := 0; j < h; j++ {
		var b byte
		for i := 0; i < w; i++ {
			if i&7 != 0 {
				b <<= 1
			} else {
				b = data[j*byteWidth+i/8]
			}
			if b&0x80 != 0 {
				d.DrawPixel(x+i, y+j, fg)
			} else {
				d.DrawPixel(x+i, y+j, bg)
			}
		}
	}
	return nil
}

// Update writes the framebuffer to the panel.
//
// It programs the full-frame window, then streams all w*(h/8) bytes in one
// data transaction. Horizontal addressing makes the controller walk columns
// then pages, which is exactly the buffer layout.
func (d *Dev) Update() error {
	if d.pix == nil {
		return ErrNilBuffer
	}
	err := d.sendCommand([]byte{
		setColumnAddr, 0, byte(d.rect.Dx() - 1),
		setPageAddr, 0, byte(d.pages - 1),
	})
	if err != nil {
		return err
	}
	return d.sendData(d.pix)
}

// FillScreen fills the panel with a byte pattern, bypassing the framebuffer.
//
// Each page is addressed with the page addressing commands and receives one
// pattern byte per column. A zero pattern clears the screen without touching
// the buffer.
func (d *Dev) FillScreen(pattern byte) error {
	for page := 0; page < d.pages; page++ {
		if err := d.FillPage(page, pattern); err != nil {
			return err
		}
	}
	return nil
}

// FillPage fills one page (0 to height/8 - 1) with a byte pattern, bypassing
// the framebuffer.
func (d *Dev) FillPage(page int, pattern byte) error {
	if page < 0 || page >= d.pages {
		return ErrInvalidPage
	}
	err := d.sendCommand([]byte{
		pageStartAddr | byte(page),
		setLowColumn,
		setHighColumn,
	})
	if err != nil {
		return err
	}
	return d.sendData(bytes.Repeat([]byte{pattern}, d.rect.Dx()))
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
//
// The logical canvas follows the rotation: width and height are swapped for
// Rotation90 and Rotation270.
func (d *Dev) Bounds() image.Rectangle {
	if d.rotation == Rotation90 || d.rotation == Rotation270 {
		return image.Rect(0, 0, d.rect.Dy(), d.rect.Dx())
	}
	return d.rect
}

// Draw implements display.Drawer.
//
// The source is rasterized into the attached framebuffer through DrawPixel
// and the frame is pushed to the panel synchronously. On a slow I²C bus it
// may be preferable to defer Draw() calls to a background goroutine.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.pix == nil {
		return ErrNilBuffer
	}
	r = r.Intersect(d.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			if image1bit.BitModel.Convert(p).(image1bit.Bit) {
				d.DrawPixel(x, y, White)
			} else {
				d.DrawPixel(x, y, Black)
			}
		}
	}
	return d.Update()
}

var _ display.Drawer = &Dev{}
