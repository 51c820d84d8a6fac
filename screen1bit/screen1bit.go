// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1bit implements a monochrome panel emulator that outputs to
// terminal (stdout) using ANSI color codes.
//
// It accepts the same vertically packed framebuffer as the ssd1306oled driver
// so code can be exercised before the OLED module arrives in the mail.
package screen1bit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306oled/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel size in pixels. H must be a multiple
	// of 8.
	W, H    int
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a monochrome panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	rect    image.Rectangle
	palette ansi256.Palette

	img    *image1bit.VerticalLSB
	buf    bytes.Buffer
	frames int
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.W <= 0 || opts.H <= 0 || opts.H%8 != 0 {
		return nil, fmt.Errorf("screen1bit: invalid size %dx%d", opts.W, opts.H)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	r := image.Rect(0, 0, opts.W, opts.H)
	return &Dev{
		w:       colorable.NewColorableStdout(),
		rect:    r,
		palette: *p,
		img:     image1bit.NewVerticalLSB(r),
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("screen1bit.Dev{%s}", d.rect.Max)
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Write accepts a vertically packed pixel stream, as attached to the
// ssd1306oled driver, and renders it to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.img.Pix) {
		return 0, fmt.Errorf("screen1bit: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.img.Pix), len(pixels))
	}
	copy(d.img.Pix, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := src.At(sp.X+x-r.Min.X, sp.Y+y-r.Min.Y)
			d.img.SetBit(x, y, image1bit.BitModel.Convert(p).(image1bit.Bit))
		}
	}
	return d.refresh()
}

var (
	on  = color.NRGBA{255, 255, 255, 255}
	off = color.NRGBA{0, 0, 0, 255}
)

// refresh redraws the whole frame in place.
//
// This code is designed to minimize the amount of memory allocated per call.
func (d *Dev) refresh() error {
	d.buf.Reset()
	if d.frames > 0 {
		// Move back to the frame's top-left corner.
		fmt.Fprintf(&d.buf, "\033[%dA", d.rect.Dy())
	}
	d.frames++
	for y := 0; y < d.rect.Dy(); y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < d.rect.Dx(); x++ {
			c := off
			if d.img.BitAt(x, y) {
				c = on
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
