package bogeyman

import "github.com/user-none/emarc/video"

// Sprite attribute byte bits.
const (
	sprEnable   = 0x01
	sprFlipY    = 0x02
	sprNoFlipX  = 0x04
	sprColor    = 0x08
	sprMulti    = 0x10
	sprCodeHigh = 0x40
)

const spriteSize = 16

// decodeSprite reads a record of {attr, code, y, x}. A multi sprite is two
// cells stacked vertically, code above code+1.
func (b *Board) decodeSprite(rec []byte, flip bool, out []video.SpritePart) []video.SpritePart {
	attr := rec[0]
	if attr&sprEnable == 0 {
		return out
	}

	code := int(rec[1]) + int(attr&sprCodeHigh)<<2
	color := int(attr&sprColor) >> 3
	flipX := attr&sprNoFlipX == 0
	flipY := attr&sprFlipY != 0
	sx := int(rec[3])
	sy := (240 - int(rec[2])) & 0xff
	multi := attr&sprMulti != 0

	if multi {
		sy -= spriteSize
	}
	if flip {
		sx = video.FlipCoord(ScreenWidth, spriteSize, sx)
		sy = video.FlipCoord(ScreenHeight, spriteSize, sy)
		flipX = !flipX
		flipY = !flipY
	}

	out = append(out, video.SpritePart{Code: code, Color: color, FlipX: flipX, FlipY: flipY, X: sx, Y: sy})
	if multi {
		dy := spriteSize
		if flip {
			dy = -spriteSize
		}
		out = append(out, video.SpritePart{Code: code + 1, Color: color, FlipX: flipX, FlipY: flipY, X: sx, Y: sy + dy})
	}
	return out
}

// Sprites decodes the sprite table as it will be drawn next frame.
func (b *Board) Sprites() []video.SpritePart {
	return b.sprites.Parts(b.spriteRAM[:], b.flip)
}
