// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306oled

import "errors"

// Contract errors. Bus failures are returned verbatim from conn.Conn.Tx and
// are not wrapped in any of these.
var (
	// ErrBufferSize is returned by AttachBuffer when the slice length does not
	// equal width * (height / 8) or the dimensions do not match the panel.
	ErrBufferSize = errors.New("ssd1306oled: buffer length must equal width * (height / 8)")

	// ErrNilBuffer is returned when a nil framebuffer is attached, or when an
	// operation needing the framebuffer runs before AttachBuffer.
	ErrNilBuffer = errors.New("ssd1306oled: no framebuffer attached")

	// ErrBitmapBounds is returned by DrawBitmap when the origin lies beyond
	// the framebuffer.
	ErrBitmapBounds = errors.New("ssd1306oled: bitmap origin out of bounds")

	// ErrBitmapTooLarge is returned by DrawBitmap when the bitmap is larger
	// than the framebuffer in either dimension.
	ErrBitmapTooLarge = errors.New("ssd1306oled: bitmap larger than screen")

	// ErrNilBitmap is returned by DrawBitmap when the bitmap data is nil or
	// shorter than h * w / 8 bytes.
	ErrNilBitmap = errors.New("ssd1306oled: bitmap data is nil or truncated")

	// ErrBitmapWidth is returned by DrawBitmap when the bitmap width is not a
	// multiple of 8; rows must be byte aligned.
	ErrBitmapWidth = errors.New("ssd1306oled: bitmap width must be a multiple of 8")

	// ErrInvalidPage is returned by FillPage for a page outside 0..pages-1.
	ErrInvalidPage = errors.New("ssd1306oled: page out of range")
)
