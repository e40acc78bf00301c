package fcombat

import "github.com/user-none/emarc/video"

// Sprite flag byte bits.
const (
	sprColorLo  = 0x06
	sprWide     = 0x08
	sprColumn   = 0x10
	sprCodeHigh = 0x20
	sprFlipY    = 0x40
	sprFlipX    = 0x80
)

const spriteSize = 16

// decodeSprite reads a record of {flags, y, code, x}. A wide sprite adds a
// second cell below the first, with bit 4 of the code selecting which half
// is on top. A column sprite adds three more cells below, 16 codes apart.
// The cell at y is drawn last.
func (b *Board) decodeSprite(rec []byte, flip bool, out []video.SpritePart) []video.SpritePart {
	flags := int(rec[0])
	y := int(rec[1] ^ 0xff)
	code := int(rec[2]) + (flags&sprCodeHigh)<<3
	x := int(rec[3])*2 + 72

	flipX := flags&sprFlipX != 0
	flipY := flags&sprFlipY != 0
	wide := flags&sprWide != 0
	code2 := code

	color := (flags&sprColorLo)>>1 | (code>>5)&0x04 | code&0x08 | b.spritePal*16

	if flip {
		x = video.FlipCoord(ScreenWidth, spriteSize, x)
		y = video.FlipCoord(ScreenHeight, spriteSize, y)
		if wide {
			y -= spriteSize
		}
		flipX = !flipX
		flipY = !flipY
	}

	part := func(code, y int) video.SpritePart {
		return video.SpritePart{Code: code, Color: color, FlipX: flipX, FlipY: flipY, X: x, Y: y}
	}

	if wide {
		if flipY {
			code |= 0x10
			code2 &^= 0x10
		} else {
			code &^= 0x10
			code2 |= 0x10
		}
		out = append(out, part(code2, y+spriteSize))
	}
	if flags&sprColumn != 0 {
		for i := 1; i <= 3; i++ {
			out = append(out, part(code2+16*i, y+i*spriteSize))
		}
	}
	return append(out, part(code, y))
}

// Sprites decodes the sprite table as it will be drawn next frame.
func (b *Board) Sprites() []video.SpritePart {
	return b.sprites.Parts(b.spriteRAM[:], b.flip)
}
