// Copyright 2022 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestBit(t *testing.T) {
	if r, g, b, a := On.RGBA(); r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Fatalf("On.RGBA() = %d, %d, %d, %d", r, g, b, a)
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("Off.RGBA() = %d, %d, %d, %d", r, g, b, a)
	}
	if On.String() != "On" || Off.String() != "Off" {
		t.Fatal("unexpected String()")
	}
}

func TestBitModel(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want Bit
	}{
		{color.White, On},
		{color.Black, Off},
		{On, On},
		{Off, Off},
		{color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, On},
		{color.RGBA{0x10, 0x10, 0x10, 0xFF}, Off},
		{color.Gray{0x80}, On},
		{color.Gray{0x7F}, Off},
	} {
		if got := BitModel.Convert(tc.c).(Bit); got != tc.want {
			t.Errorf("Convert(%v) = %s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestVerticalLSB_Layout(t *testing.T) {
	// One byte per column of 8 rows, LSB on top, pages top to bottom.
	img := NewVerticalLSB(image.Rect(0, 0, 128, 64))
	if len(img.Pix) != 1024 || img.Stride != 128 {
		t.Fatalf("Pix/Stride = %d/%d, want 1024/128", len(img.Pix), img.Stride)
	}
	img.SetBit(0, 0, On)
	if img.Pix[0] != 0x01 {
		t.Fatalf("Pix[0] = %#02x, want 0x01", img.Pix[0])
	}
	img.SetBit(0, 7, On)
	if img.Pix[0] != 0x81 {
		t.Fatalf("Pix[0] = %#02x, want 0x81", img.Pix[0])
	}
	img.SetBit(127, 63, On)
	if img.Pix[1023] != 0x80 {
		t.Fatalf("Pix[1023] = %#02x, want 0x80", img.Pix[1023])
	}
	if !img.BitAt(0, 7) || img.BitAt(1, 7) {
		t.Fatal("BitAt() disagrees with SetBit()")
	}
	img.SetBit(0, 7, Off)
	if img.Pix[0] != 0x01 {
		t.Fatalf("Pix[0] = %#02x after clear, want 0x01", img.Pix[0])
	}
}

func TestVerticalLSB_Clip(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		img.SetBit(p.X, p.Y, On)
		if img.BitAt(p.X, p.Y) {
			t.Fatalf("out of bounds read at %v returned On", p)
		}
	}
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatal("out of bounds SetBit() wrote to Pix")
		}
	}
}

func TestVerticalLSB_DrawImage(t *testing.T) {
	// The type must be usable as a draw.Image destination.
	img := NewVerticalLSB(image.Rect(0, 0, 16, 8))
	draw.Draw(img, image.Rect(0, 0, 8, 8), &image.Uniform{color.White}, image.Point{}, draw.Src)
	for x := 0; x < 16; x++ {
		want := byte(0xFF)
		if x >= 8 {
			want = 0
		}
		if img.Pix[x] != want {
			t.Fatalf("Pix[%d] = %#02x, want %#02x", x, img.Pix[x], want)
		}
	}
}

func TestVerticalLSB_RoundedHeight(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 10, 11))
	if len(img.Pix) != 20 {
		t.Fatalf("len(Pix) = %d, want 20", len(img.Pix))
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 10, 11); got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestVerticalLSB_At(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 8))
	img.Set(1, 2, color.White)
	if img.At(1, 2).(Bit) != On {
		t.Fatal("At() after Set(color.White) is not On")
	}
	if img.ColorModel() != BitModel {
		t.Fatal("ColorModel() is not BitModel")
	}
}
