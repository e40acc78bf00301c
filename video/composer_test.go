package video

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameComposer_Order(t *testing.T) {
	var order []string
	stage := func(name string, pen uint16) Stage {
		return StageFunc(func(dst *Bitmap, clip image.Rectangle) {
			order = append(order, name)
			dst.SetPen(0, 0, pen)
		})
	}

	c := NewFrameComposer(func() { order = append(order, "prepare") },
		stage("bg", 1), stage("sprites", 2), stage("fg", 3))

	dst := NewBitmap(4, 4)
	status := c.DrawFrame(dst, dst.Bounds())

	assert.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"prepare", "bg", "sprites", "fg"}, order)
	assert.Equal(t, uint16(3), dst.PenAt(0, 0))
}

func TestFrameComposer_ClearsClip(t *testing.T) {
	c := NewFrameComposer(nil)
	c.SetBackground(5)

	dst := NewBitmap(4, 4)
	dst.Fill(dst.Bounds(), 9)
	c.DrawFrame(dst, image.Rect(1, 1, 3, 3))

	assert.Equal(t, uint16(5), dst.PenAt(1, 1))
	assert.Equal(t, uint16(5), dst.PenAt(2, 2))
	assert.Equal(t, uint16(9), dst.PenAt(0, 0))
	assert.Equal(t, uint16(9), dst.PenAt(3, 3))
}

func TestResolve(t *testing.T) {
	pal := NewPalette(3)
	pal.SetColor(1, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})
	pal.SetColor(2, color.RGBA{R: 0xff, A: 0xff})

	src := NewBitmap(4, 4)
	src.SetPen(1, 2, 1)
	src.SetPen(2, 2, 2)

	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	Resolve(dst, src, image.Rect(1, 2, 3, 4), pal)

	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, dst.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, dst.RGBAAt(0, 1))
}
