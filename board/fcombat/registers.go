package fcombat

import (
	"github.com/user-none/emarc/logger"
)

// Video register bits.
const (
	regFlip      = 0x01
	regCharPal   = 0x06
	regCharBank  = 0x08
	regSpritePal = 0xc0
)

// WriteVideoRAM writes a text cell. The character colour comes from the
// upper nibble of the code.
func (b *Board) WriteVideoRAM(offset int, v uint8) {
	if offset < 0 || offset >= videoRAMSize {
		logger.Log("fcombat", "video RAM write out of range")
		return
	}
	b.videoRAM[offset] = v
}

// ReadVideoRAM reads a text cell.
func (b *Board) ReadVideoRAM(offset int) uint8 {
	if offset < 0 || offset >= videoRAMSize {
		return 0
	}
	return b.videoRAM[offset]
}

// WriteSpriteRAM writes the sprite attribute table.
func (b *Board) WriteSpriteRAM(offset int, v uint8) {
	if offset < 0 || offset >= spriteRAMSize {
		logger.Log("fcombat", "sprite RAM write out of range")
		return
	}
	b.spriteRAM[offset] = v
}

// ReadSpriteRAM reads the sprite attribute table.
func (b *Board) ReadSpriteRAM(offset int) uint8 {
	if offset < 0 || offset >= spriteRAMSize {
		return 0
	}
	return b.spriteRAM[offset]
}

// WriteVideoReg writes the video control register:
//
//	bit 0     cocktail flip
//	bits 1-2  character palette bank
//	bit 3     character bank
//	bits 6-7  sprite palette bank
//
// The sprite palette lines are not connected on the board, so the sprite
// bank always reads back as zero.
func (b *Board) WriteVideoReg(v uint8) {
	b.videoReg = v
	b.flip = v&regFlip != 0
	b.charPal = int(v&regCharPal) >> 1
	b.charBank = int(v&regCharBank) >> 3
	b.spritePal = 0
}

// VideoReg returns the last value written to the video control register.
func (b *Board) VideoReg() uint8 { return b.videoReg }

// FlipScreen returns the cocktail flip.
func (b *Board) FlipScreen() bool { return b.flip }

// CharPalette returns the character palette bank.
func (b *Board) CharPalette() int { return b.charPal }

// CharBank returns the character bank.
func (b *Board) CharBank() int { return b.charBank }

// SpritePalette returns the sprite palette bank.
func (b *Board) SpritePalette() int { return b.spritePal }

// WriteScrollH sets the background vertical scroll.
func (b *Board) WriteScrollH(v uint8) { b.scrollH = v }

// WriteScrollVLow sets the low byte of the background horizontal scroll.
func (b *Board) WriteScrollVLow(v uint8) {
	b.scrollV = b.scrollV&0xff00 | uint16(v)
}

// WriteScrollVHigh sets the high byte of the background horizontal scroll.
func (b *Board) WriteScrollVHigh(v uint8) {
	b.scrollV = b.scrollV&0x00ff | uint16(v)<<8
}

// Scroll returns the raw scroll registers.
func (b *Board) Scroll() (h uint8, v uint16) { return b.scrollH, b.scrollV }
