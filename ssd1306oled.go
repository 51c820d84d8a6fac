// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// W is the panel width in pixels. Must be 64 or 128.
	W int
	// H is the panel height in pixels. Must be 16, 32 or 64.
	H int
	// Addr is the 7 bit I²C slave address of the display. Defaults to 0x3C.
	Addr uint16
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306 display
// controller.
//
// The panel is fully initialized and turned on when NewI2C returns. Attach a
// framebuffer with AttachBuffer before drawing.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.W != 64 && opts.W != 128 {
		return nil, fmt.Errorf("ssd1306oled: invalid width %d; must be 64 or 128", opts.W)
	}
	if opts.H != 16 && opts.H != 32 && opts.H != 64 {
		return nil, fmt.Errorf("ssd1306oled: invalid height %d; must be 16, 32 or 64", opts.H)
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d := &Dev{
		c:     &i2c.Dev{Bus: b, Addr: addr},
		rect:  image.Rect(0, 0, opts.W, opts.H),
		pages: opts.H / 8,
	}
	if err := d.sendCommand(initCmd(opts.H)); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication.
	c conn.Conn

	// Panel geometry, fixed for the lifetime of the device.
	rect  image.Rectangle
	pages int

	// Caller-owned framebuffer, nil until AttachBuffer succeeds. The driver
	// only touches it from within its own method calls.
	pix      []byte
	rotation Rotation
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306oled.Dev{%s, %s}", d.c, d.rect.Max)
}

// initCmd returns the power-on initialization sequence.
//
// The flow follows the recommended order on page 64 of the datasheet. COM pin
// layout and contrast depend on the panel height, matching the reference
// values shipped by panel vendors for each geometry.
func initCmd(h int) []byte {
	comPins := byte(0x02)
	contrast := byte(0xAF)
	switch h {
	case 64:
		comPins = 0x12
		contrast = 0xCF
	case 32:
		contrast = 0x8F
	}
	return []byte{
		displayOff,
		setClockDiv, 0x80, // Suggested ratio.
		setMuxRatio, byte(h - 1),
		setDisplayOffset, 0x00,
		setStartLine | 0x00,
		chargePump, 0x14, // Internal charge pump on.
		memoryAddrMode, 0x00, // Horizontal addressing for linear frame dumps.
		segRemapReverse,
		comScanDec,
		setComPins, comPins,
		setContrast, contrast,
		setPrecharge, 0xF1,
		setVComDeselect, 0x40,
		displayAllOnResume,
		normalDisplay,
		deactivateScroll,
		displayOn,
	}
}

// Enable turns the panel on or off. The GDDRAM content is retained while off.
func (d *Dev) Enable(on bool) error {
	if on {
		return d.sendCommand([]byte{displayOn})
	}
	return d.sendCommand([]byte{displayOff})
}

// Halt turns off the display. It implements conn.Resource and is the call to
// make before powering down.
func (d *Dev) Halt() error {
	return d.Enable(false)
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand([]byte{setContrast, level})
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.sendCommand([]byte{invertDisplay})
	}
	return d.sendCommand([]byte{normalDisplay})
}

// CheckConnection verifies the panel answers on the bus by reading one byte.
// A nil return means the address was acknowledged.
func (d *Dev) CheckConnection() error {
	var rx [1]byte
	return d.c.Tx(nil, rx[:])
}

// sendCommand sends a command stream in a single transaction.
func (d *Dev) sendCommand(c []byte) error {
	return d.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

// sendData sends a GDDRAM data stream in a single transaction.
func (d *Dev) sendData(c []byte) error {
	return d.c.Tx(append([]byte{i2cData}, c...), nil)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
