// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

// Hardware-assisted scrolling, datasheet pages 28 to 30.
//
// start and stop are page indexes (0 to height/8 - 1) delimiting the
// horizontal band that moves. Only one scroll can be active; call StopScroll
// before reconfiguring, and before Update: the panel's behavior when mixing
// an active scroll with RAM writes is vendor-defined.

// StartScrollRight scrolls the pages start through stop to the right.
func (d *Dev) StartScrollRight(start, stop byte) error {
	return d.sendCommand([]byte{
		scrollRight,
		0x00, // Dummy byte.
		start,
		0x00, // Interval: 5 frames.
		stop,
		0x00, 0xFF, // Dummy bytes.
		activateScroll,
	})
}

// StartScrollLeft scrolls the pages start through stop to the left.
func (d *Dev) StartScrollLeft(start, stop byte) error {
	return d.sendCommand([]byte{
		scrollLeft,
		0x00,
		start,
		0x00,
		stop,
		0x00, 0xFF,
		activateScroll,
	})
}

// StartScrollDiagRight scrolls the pages start through stop diagonally to the
// right, with a one row vertical offset per step over the whole panel height.
func (d *Dev) StartScrollDiagRight(start, stop byte) error {
	return d.sendCommand([]byte{
		setVScrollArea,
		0x00, // Fixed rows on top.
		byte(d.rect.Dy()),
		scrollDiagRight,
		0x00,
		start,
		0x00,
		stop,
		0x01, // Vertical offset per scroll step.
		activateScroll,
	})
}

// StartScrollDiagLeft scrolls the pages start through stop diagonally to the
// left, with a one row vertical offset per step over the whole panel height.
func (d *Dev) StartScrollDiagLeft(start, stop byte) error {
	return d.sendCommand([]byte{
		setVScrollArea,
		0x00,
		byte(d.rect.Dy()),
		scrollDiagLeft,
		0x00,
		start,
		0x00,
		stop,
		0x01,
		activateScroll,
	})
}

// StopScroll stops any scrolling previously set. The RAM content may need to
// be rewritten with Update afterwards.
func (d *Dev) StopScroll() error {
	return d.sendCommand([]byte{deactivateScroll})
}
