// Package video is the shared compositing engine for the arcade boards:
// resistor-weighted palette derivation, dirty-tracked tile layers, sprite
// lists, bit-planar framebuffers, and per-frame composition into an indexed
// raster that is resolved to RGBA through a palette.
package video

import "image"

// Bitmap is an indexed raster. Each pixel holds a pen number which is
// resolved to a colour through a Palette.
type Bitmap struct {
	Pix    []uint16
	Stride int
	Rect   image.Rectangle
}

// NewBitmap creates a w x h bitmap with its origin at (0, 0).
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		Pix:    make([]uint16, w*h),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// Bounds returns the bitmap rectangle.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

func (b *Bitmap) offset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x - b.Rect.Min.X)
}

// PenAt returns the pen at (x, y), or 0 outside the bitmap.
func (b *Bitmap) PenAt(x, y int) uint16 {
	if !(image.Point{x, y}.In(b.Rect)) {
		return 0
	}
	return b.Pix[b.offset(x, y)]
}

// SetPen sets the pen at (x, y). Writes outside the bitmap are dropped.
func (b *Bitmap) SetPen(x, y int, pen uint16) {
	if !(image.Point{x, y}.In(b.Rect)) {
		return
	}
	b.Pix[b.offset(x, y)] = pen
}

// Fill sets every pixel inside clip to pen.
func (b *Bitmap) Fill(clip image.Rectangle, pen uint16) {
	clip = clip.Intersect(b.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		row := b.Pix[b.offset(clip.Min.X, y):b.offset(clip.Max.X, y)]
		for i := range row {
			row[i] = pen
		}
	}
}
