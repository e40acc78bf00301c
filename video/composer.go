package video

import (
	"image"
)

// StatusOK is the only status DrawFrame reports.
const StatusOK = 0

// Stage is one layer of a frame.
type Stage interface {
	Draw(dst *Bitmap, clip image.Rectangle)
}

// StageFunc adapts a function to a Stage.
type StageFunc func(dst *Bitmap, clip image.Rectangle)

// Draw calls f.
func (f StageFunc) Draw(dst *Bitmap, clip image.Rectangle) { f(dst, clip) }

// FrameComposer draws a board's stages in a fixed order. The order is the
// hardware priority: each stage draws over the ones before it.
type FrameComposer struct {
	prepare    func()
	stages     []Stage
	background uint16
}

// NewFrameComposer creates a composer. prepare, if not nil, runs before the
// first stage and pushes register state into the layers.
func NewFrameComposer(prepare func(), stages ...Stage) *FrameComposer {
	return &FrameComposer{
		prepare: prepare,
		stages:  stages,
	}
}

// SetBackground sets the pen the clip region is cleared to before drawing.
func (c *FrameComposer) SetBackground(pen uint16) { c.background = pen }

// DrawFrame clears clip and draws every stage into dst.
func (c *FrameComposer) DrawFrame(dst *Bitmap, clip image.Rectangle) int {
	if c.prepare != nil {
		c.prepare()
	}
	dst.Fill(clip, c.background)
	for _, s := range c.stages {
		s.Draw(dst, clip)
	}
	return StatusOK
}

// Resolve converts the pens of src inside area to colours in dst. Pixel
// (area.Min.X, area.Min.Y) of src lands on dst.Rect.Min.
func Resolve(dst *image.RGBA, src *Bitmap, area image.Rectangle, pal *Palette) {
	area = area.Intersect(src.Rect)
	pix := dst.Pix
	stride := dst.Stride
	w := min(area.Dx(), dst.Rect.Dx())
	h := min(area.Dy(), dst.Rect.Dy())

	for y := 0; y < h; y++ {
		row := src.Pix[src.offset(area.Min.X, area.Min.Y+y):]
		offset := y * stride
		for x := 0; x < w; x++ {
			c := pal.Pen(row[x])
			p := offset + x*4
			pix[p] = c.R
			pix[p+1] = c.G
			pix[p+2] = c.B
			pix[p+3] = 0xff
		}
	}
}
