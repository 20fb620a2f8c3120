package arena

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Buffer is a 4-channel (RGBA) float pixel buffer, row-major and interleaved.
type Buffer struct {
	W   int
	H   int
	Pix []float32
}

// NewBuffer creates a buffer with every channel zero.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, Pix: make([]float32, w*h*4)}
}

// InBounds returns true if (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Reset clears the color channels and sets alpha to 1 everywhere.
func (b *Buffer) Reset() {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i] = 0
		b.Pix[i+1] = 0
		b.Pix[i+2] = 0
		b.Pix[i+3] = 1
	}
}

// Set overwrites the color of (x, y), leaving alpha alone.
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if !b.InBounds(x, y) {
		return
	}
	i := (y*b.W + x) * 4
	b.Pix[i] = float32(c.R)
	b.Pix[i+1] = float32(c.G)
	b.Pix[i+2] = float32(c.B)
}

// SetGreen overwrites only the green channel of (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) SetGreen(x, y int, g float64) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pix[(y*b.W+x)*4+1] = float32(g)
}

// At returns the color and alpha of (x, y).
// Out-of-bounds coordinates return transparent black.
func (b *Buffer) At(x, y int) (Color, float32) {
	if !b.InBounds(x, y) {
		return Color{}, 0
	}
	i := (y*b.W + x) * 4
	return Color{R: float64(b.Pix[i]), G: float64(b.Pix[i+1]), B: float64(b.Pix[i+2])}, b.Pix[i+3]
}

// FillRect sets every pixel of the inclusive rectangle to c.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, c Color) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.Set(x, y, c)
		}
	}
}

// ToRGBA converts the buffer to an 8-bit image.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := (y*b.W + x) * 4
			img.SetRGBA(x, y, color.RGBA{
				R: to8(b.Pix[i]),
				G: to8(b.Pix[i+1]),
				B: to8(b.Pix[i+2]),
				A: to8(b.Pix[i+3]),
			})
		}
	}
	return img
}

// EncodePNG writes the buffer as an 8-bit PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToRGBA()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func to8(v float32) uint8 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
