package video

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistorChannel_Weights(t *testing.T) {
	assert.Equal(t, uint8(0x00), ResistorChannel(0, 0, 0))
	assert.Equal(t, uint8(0x21), ResistorChannel(1, 0, 0))
	assert.Equal(t, uint8(0x47), ResistorChannel(0, 1, 0))
	assert.Equal(t, uint8(0x97), ResistorChannel(0, 0, 1))
	assert.Equal(t, uint8(0xff), ResistorChannel(1, 1, 1))
}

func TestDerivePalette_LayoutA_RedBits(t *testing.T) {
	prom := []byte{0x07}
	pal := DerivePalette(prom, LayoutA(1))
	require.Len(t, pal, 1)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}, pal[0])
}

func TestDerivePalette_LayoutA_GreenBlue(t *testing.T) {
	prom := []byte{
		0x08, // green low resistor
		0x38, // all green
		0x40, // blue middle resistor
		0xc0, // all blue
	}
	pal := DerivePalette(prom, LayoutA(4))
	assert.Equal(t, uint8(0x21), pal[0].G)
	assert.Equal(t, uint8(0xff), pal[1].G)
	assert.Equal(t, uint8(0x47), pal[2].B)
	assert.Equal(t, uint8(0xde), pal[3].B)
	for i, c := range pal {
		assert.Zero(t, c.R, "entry %d red", i)
	}
}

func TestDerivePalette_LayoutA_EndToEnd(t *testing.T) {
	black := DerivePalette(make([]byte, 32), LayoutA(32))
	require.Len(t, black, 32)
	for i, c := range black {
		assert.Equal(t, color.RGBA{A: 0xff}, c, "entry %d", i)
	}

	// blue has only two resistors, so it tops out at 0x47+0x97
	white := DerivePalette(bytes.Repeat([]byte{0xff}, 32), LayoutA(32))
	require.Len(t, white, 32)
	for i, c := range white {
		assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xde, A: 0xff}, c, "entry %d", i)
	}
}

func TestDerivePalette_Deterministic(t *testing.T) {
	prom := make([]byte, 64)
	for i := range prom {
		prom[i] = uint8(i * 37)
	}
	a := DerivePalette(prom, LayoutA(64))
	b := DerivePalette(prom, LayoutA(64))
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestDerivePalette_LayoutB(t *testing.T) {
	prom := make([]byte, 512)
	prom[0], prom[256] = 0x0f, 0x0f
	// plane0 bit 3 is the low green resistor
	prom[1] = 0x08
	// plane1 bits 0-1 are the upper green resistors
	prom[2+256] = 0x03
	// plane1 bit 2 is the middle blue resistor
	prom[3+256] = 0x04
	// upper nibbles are not wired
	prom[4], prom[4+256] = 0xf0, 0xf0

	layout := LayoutB(256)
	require.Equal(t, 512, layout.PROMSize())
	pal := DerivePalette(prom, layout)
	require.Len(t, pal, 256)

	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xde, A: 0xff}, pal[0])
	assert.Equal(t, color.RGBA{G: 0x21, A: 0xff}, pal[1])
	assert.Equal(t, color.RGBA{G: 0x47 + 0x97, A: 0xff}, pal[2])
	assert.Equal(t, color.RGBA{B: 0x47, A: 0xff}, pal[3])
	assert.Equal(t, color.RGBA{A: 0xff}, pal[4])
}

func TestDecodeRGB233(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, DecodeRGB233(0x07, false))
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, DecodeRGB233(0x38, false))
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, DecodeRGB233(0xc0, false))
	assert.Equal(t, DecodeRGB233(0x07, false), DecodeRGB233(0xf8, true))
}

func TestPalette_Indirect(t *testing.T) {
	p := NewIndirectPalette(4, 8)
	p.SetColor(2, color.RGBA{R: 1, A: 0xff})
	p.SetColor(3, color.RGBA{G: 1, A: 0xff})
	p.SetPenIndirect(5, 2)
	p.SetPenIndirect(6, 3)

	assert.Equal(t, 8, p.Len())
	assert.Equal(t, uint16(2), p.PenIndirect(5))
	assert.Equal(t, color.RGBA{R: 1, A: 0xff}, p.Pen(5))
	assert.Equal(t, color.RGBA{G: 1, A: 0xff}, p.Pen(6))
	// unset pens route to colour 0
	assert.Equal(t, color.RGBA{A: 0xff}, p.Pen(0))
}

func TestPalette_PenIndirectWraps(t *testing.T) {
	p := NewIndirectPalette(4, 8)
	p.SetPenIndirect(5, 2)
	p.SetPenIndirect(99, 3)

	assert.Equal(t, uint16(2), p.PenIndirect(13))
	assert.Equal(t, uint16(2), p.PenIndirect(-3))
	assert.Equal(t, uint16(0), p.PenIndirect(99))

	d := NewPalette(4)
	assert.Equal(t, uint16(1), d.PenIndirect(5))
}

func TestPalette_Direct(t *testing.T) {
	p := NewPalette(4)
	p.SetColors(1, []color.RGBA{{R: 9, A: 0xff}, {B: 9, A: 0xff}})
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, color.RGBA{R: 9, A: 0xff}, p.Pen(1))
	assert.Equal(t, color.RGBA{B: 9, A: 0xff}, p.Pen(2))
	// out of range pens wrap
	assert.Equal(t, p.Pen(1), p.Pen(5))
}
