package bogeyman

import (
	"github.com/user-none/emarc/logger"
	"github.com/user-none/emarc/video"
)

func (b *Board) writeRAM(name string, ram []uint8, layer *video.TileLayer, offset int, v uint8) {
	if offset < 0 || offset >= len(ram) {
		logger.Logf("bogeyman", "%s write out of range", name)
		return
	}
	ram[offset] = v
	layer.MarkDirty(offset)
}

// WriteVideoRAM writes a background tile code.
func (b *Board) WriteVideoRAM(offset int, v uint8) {
	b.writeRAM("video RAM", b.videoRAM[:], b.bg, offset, v)
}

// WriteColorRAM writes a background tile attribute.
func (b *Board) WriteColorRAM(offset int, v uint8) {
	b.writeRAM("colour RAM", b.colorRAM[:], b.bg, offset, v)
}

// WriteVideoRAM2 writes a character code.
func (b *Board) WriteVideoRAM2(offset int, v uint8) {
	b.writeRAM("video RAM 2", b.videoRAM2[:], b.fg, offset, v)
}

// WriteColorRAM2 writes a character attribute.
func (b *Board) WriteColorRAM2(offset int, v uint8) {
	b.writeRAM("colour RAM 2", b.colorRAM2[:], b.fg, offset, v)
}

// WriteColorBank selects the character colour from bit 0. Every character
// uses it, so a change redraws the whole layer.
func (b *Board) WriteColorBank(v uint8) {
	if v&0x01 != b.colBank&0x01 {
		b.colBank = v & 0x01
		b.fg.MarkAllDirty()
	}
}

// ColorBank returns the character colour bank.
func (b *Board) ColorBank() uint8 { return b.colBank }

// SetFlipScreen sets the cocktail flip.
func (b *Board) SetFlipScreen(flip bool) {
	b.flip = flip
}

// FlipScreen returns the cocktail flip.
func (b *Board) FlipScreen() bool { return b.flip }

// WritePaletteRAM writes one of the 16 sprite palette RAM entries. The RAM
// outputs are inverted before the DAC.
func (b *Board) WritePaletteRAM(i int, v uint8) {
	if i < 0 || i >= paletteRAMSize {
		logger.Log("bogeyman", "palette RAM write out of range")
		return
	}
	b.paletteRAM[i] = v
	b.pal.SetColor(i, video.DecodeRGB233(v, true))
}

// WriteSpriteRAM writes the sprite attribute table.
func (b *Board) WriteSpriteRAM(offset int, v uint8) {
	if offset < 0 || offset >= spriteRAMSize {
		logger.Log("bogeyman", "sprite RAM write out of range")
		return
	}
	b.spriteRAM[offset] = v
}
