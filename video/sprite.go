package video

import "image"

// SpritePart is one cell blit produced from a sprite record. Objects made of
// several cells yield several parts, in the order the hardware draws them.
type SpritePart struct {
	Code         int
	Color        int
	FlipX, FlipY bool
	X, Y         int
}

// SpriteDecoder turns one sprite record into parts appended to out. A
// disabled record appends nothing. flip is the global screen flip.
type SpriteDecoder func(record []byte, flip bool, out []SpritePart) []SpritePart

// FlipCoord mirrors a coordinate for a global screen flip. Applying it twice
// returns the original coordinate.
func FlipCoord(extent, size, v int) int {
	return extent - size - v
}

// SpriteCompositor draws a sprite attribute table. Records are drawn from
// the start of the table to the end, so a later record appears above an
// earlier one where both are opaque.
type SpriteCompositor struct {
	gfx      *GfxElement
	stride   int
	transPen int
	decode   SpriteDecoder

	parts []SpritePart
}

// NewSpriteCompositor creates a compositor for records of stride bytes.
func NewSpriteCompositor(gfx *GfxElement, stride, transPen int, decode SpriteDecoder) *SpriteCompositor {
	return &SpriteCompositor{
		gfx:      gfx,
		stride:   stride,
		transPen: transPen,
		decode:   decode,
		parts:    make([]SpritePart, 0, 8),
	}
}

// Stride returns the record size in bytes.
func (c *SpriteCompositor) Stride() int { return c.stride }

// Parts decodes the whole table without drawing it. A trailing partial
// record is ignored.
func (c *SpriteCompositor) Parts(table []byte, flip bool) []SpritePart {
	var out []SpritePart
	for offs := 0; offs+c.stride <= len(table); offs += c.stride {
		out = c.decode(table[offs:offs+c.stride], flip, out)
	}
	return out
}

// DrawFrame decodes and draws every record in table.
func (c *SpriteCompositor) DrawFrame(table []byte, dst *Bitmap, clip image.Rectangle, flip bool) {
	for offs := 0; offs+c.stride <= len(table); offs += c.stride {
		c.parts = c.decode(table[offs:offs+c.stride], flip, c.parts[:0])
		for _, p := range c.parts {
			c.gfx.DrawTransparent(dst, clip, p.Code, p.Color, p.FlipX, p.FlipY, p.X, p.Y, c.transPen)
		}
	}
}
