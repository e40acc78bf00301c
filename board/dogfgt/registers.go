package dogfgt

import (
	"github.com/user-none/emarc/logger"
	"github.com/user-none/emarc/video"
)

// Control register bits.
const (
	ctrlColorLo = 0x01
	ctrlColorHi = 0x02
	ctrlCoinA   = 0x10
	ctrlCoinB   = 0x20
	ctrlFlip    = 0x80
)

// WriteBgVideoRAM writes the background tile RAM. The low 1KB holds tile
// codes, the high 1KB the colour of the same cell.
func (b *Board) WriteBgVideoRAM(offset int, v uint8) {
	if offset < 0 || offset >= bgRAMSize {
		logger.Log("dogfgt", "bg video RAM write out of range")
		return
	}
	b.bgRAM[offset] = v
	b.bg.MarkDirty(offset & 0x3ff)
}

// ReadBgVideoRAM reads the background tile RAM.
func (b *Board) ReadBgVideoRAM(offset int) uint8 {
	if offset < 0 || offset >= bgRAMSize {
		return 0
	}
	return b.bgRAM[offset]
}

// WriteScroll writes scroll register i: 0/1 are X low/high, 2/3 Y low/high.
func (b *Board) WriteScroll(i int, v uint8) {
	if i < 0 || i >= len(b.scroll) {
		logger.Log("dogfgt", "scroll register out of range")
		return
	}
	b.scroll[i] = v
}

// WritePlaneSelect selects the bitmap plane seen through the bitmap RAM
// window.
func (b *Board) WritePlaneSelect(v uint8) {
	b.planeSelect = v
}

// WriteBitmapRAM writes the selected bitmap plane.
func (b *Board) WriteBitmapRAM(offset int, v uint8) {
	b.bitmap.WritePlane(offset, v, int(b.planeSelect))
}

// ReadBitmapRAM reads the selected bitmap plane.
func (b *Board) ReadBitmapRAM(offset int) uint8 {
	return b.bitmap.ReadPlane(offset, int(b.planeSelect))
}

// WriteControl writes the video control latch. Bits 0 and 1 select the
// bitmap colour bank with their order swapped, bits 4 and 5 drive the coin
// counters and bit 7 flips the screen.
func (b *Board) WriteControl(v uint8) {
	b.control = v
	b.applyControl()
}

func (b *Board) applyControl() {
	b.bitmap.SetFlip(b.flip())
	b.bitmap.SetColorBank(b.pixColor())
}

func (b *Board) pixColor() int {
	return int((b.control&ctrlColorLo)<<1 | (b.control&ctrlColorHi)>>1)
}

func (b *Board) flip() bool {
	return b.control&ctrlFlip != 0
}

// CoinCounters returns the state of the two coin counter outputs.
func (b *Board) CoinCounters() (coinA, coinB bool) {
	return b.control&ctrlCoinA != 0, b.control&ctrlCoinB != 0
}

// WritePaletteRAM writes one of the 16 sprite palette RAM entries.
func (b *Board) WritePaletteRAM(i int, v uint8) {
	if i < 0 || i >= paletteRAMSize {
		logger.Log("dogfgt", "palette RAM write out of range")
		return
	}
	b.paletteRAM[i] = v
	b.pal.SetColor(i, video.DecodeRGB233(v, false))
}

// WriteSpriteRAM writes the sprite attribute table.
func (b *Board) WriteSpriteRAM(offset int, v uint8) {
	if offset < 0 || offset >= spriteRAMSize {
		logger.Log("dogfgt", "sprite RAM write out of range")
		return
	}
	b.spriteRAM[offset] = v
}
