package adapter

import (
	"image"

	"golang.org/x/image/draw"
)

// Screenshot returns a copy of the last frame scaled by an integer factor
// with nearest neighbour sampling. A scale below 1 is treated as 1.
func (c *Core) Screenshot(scale int) *image.RGBA {
	src := c.board.Framebuffer()
	scale = max(scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, src.Rect.Dx()*scale, src.Rect.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
