// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

// SSD1306 command set, datasheet page 28.
const (
	memoryAddrMode     = 0x20
	setColumnAddr      = 0x21
	setPageAddr        = 0x22
	scrollRight        = 0x26
	scrollLeft         = 0x27
	scrollDiagRight    = 0x29
	scrollDiagLeft     = 0x2A
	deactivateScroll   = 0x2E
	activateScroll     = 0x2F
	setStartLine       = 0x40
	setContrast        = 0x81
	chargePump         = 0x8D
	setVScrollArea     = 0xA3
	displayAllOnResume = 0xA4
	normalDisplay      = 0xA6
	invertDisplay      = 0xA7
	setMuxRatio        = 0xA8
	displayOff         = 0xAE
	displayOn          = 0xAF
	pageStartAddr      = 0xB0
	comScanDec         = 0xC8
	setDisplayOffset   = 0xD3
	setClockDiv        = 0xD5
	setPrecharge       = 0xD9
	setComPins         = 0xDA
	setVComDeselect    = 0xDB
	segRemapReverse    = 0xA1
	setLowColumn       = 0x00
	setHighColumn      = 0x10
)

// Control byte prefixing every I²C transaction, datasheet page 20. With the
// continuation bit cleared, all bytes following the prefix share its D/C#
// setting, so a whole command or data stream fits in one transaction.
const (
	i2cCmd  = 0x00 // following bytes are commands
	i2cData = 0x40 // following bytes are GDDRAM data
)
