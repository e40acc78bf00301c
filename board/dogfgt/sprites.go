package dogfgt

import "github.com/user-none/emarc/video"

// Sprite attribute byte bits.
const (
	sprEnable   = 0x01
	sprFlipY    = 0x02
	sprFlipX    = 0x04
	sprColor    = 0x08
	sprCodeHigh = 0x30
)

// spriteSize is the sprite cell size in pixels.
const spriteSize = 16

// decodeSprite reads a record of {attr, code, y, x}.
func (b *Board) decodeSprite(rec []byte, flip bool, out []video.SpritePart) []video.SpritePart {
	attr := rec[0]
	if attr&sprEnable == 0 {
		return out
	}

	sx := int(rec[3])
	sy := (240 - int(rec[2])) & 0xff
	flipX := attr&sprFlipX != 0
	flipY := attr&sprFlipY != 0

	if flip {
		sx = video.FlipCoord(ScreenWidth, spriteSize, sx)
		sy = video.FlipCoord(ScreenHeight, spriteSize, sy)
		flipX = !flipX
		flipY = !flipY
	}

	return append(out, video.SpritePart{
		Code:  int(rec[1]) + int(attr&sprCodeHigh)<<4,
		Color: int(attr&sprColor) >> 3,
		FlipX: flipX,
		FlipY: flipY,
		X:     sx,
		Y:     sy,
	})
}

// Sprites decodes the sprite table as it will be drawn next frame.
func (b *Board) Sprites() []video.SpritePart {
	return b.sprites.Parts(b.spriteRAM[:], b.flip())
}
