// Package bogeyman implements the video hardware of Bogey Manor: a 16x16
// background of banked tiles, tall sprites, and an 8x8 character layer on
// top.
package bogeyman

import (
	"fmt"
	"image"

	"github.com/user-none/emarc/romset"
	"github.com/user-none/emarc/video"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 256

	bgRAMSize      = 0x100
	fgRAMSize      = 0x400
	spriteRAMSize  = 0x400
	paletteRAMSize = 16

	// pens 0-15 are palette RAM, the two PROMs follow
	promColorBase = 16
	charColorBase = promColorBase
	tileColorBase = promColorBase + 128
	totalPens     = promColorBase + 256
)

// Graphics element banks as addressed by the tile and sprite hardware.
const (
	gfxChars0 = iota
	gfxChars1
	gfxSprites
	gfxTiles0
	gfxTiles1
	gfxTiles2
	gfxTiles3
	gfxBanks
)

// VisibleArea is the displayed part of the screen bitmap.
var VisibleArea = image.Rect(0, 8, 256, 248)

// PaletteLayout is the wiring of the two colour PROMs.
var PaletteLayout = video.LayoutB(256)

// Graphics ROM layouts.
var (
	CharLayout   = video.PlanarLayout(8, 8, 3, 1024)
	TileLayout   = video.PlanarLayout(16, 16, 3, 512)
	SpriteLayout = video.PlanarLayout(16, 16, 3, 512)
)

// Regions lists the ROM regions read by the video hardware.
var Regions = []romset.Region{
	{Name: "proms", Size: PaletteLayout.PROMSize()},
	{Name: "chars", Size: CharLayout.ROMSize()},
	{Name: "tiles", Size: TileLayout.ROMSize()},
	{Name: "sprites", Size: SpriteLayout.ROMSize()},
}

// Config holds the fixed data a board is built from.
type Config struct {
	PROM []byte
	// Chars holds 1024 8x8 cells, split into two banks of 512.
	Chars *video.GfxElement
	// Tiles holds 512 16x16 cells, split into four banks of 128.
	Tiles   *video.GfxElement
	Sprites *video.GfxElement
}

// Board is one Bogey Manor video board.
type Board struct {
	videoRAM   [bgRAMSize]uint8
	colorRAM   [bgRAMSize]uint8
	videoRAM2  [fgRAMSize]uint8
	colorRAM2  [fgRAMSize]uint8
	spriteRAM  [spriteRAMSize]uint8
	paletteRAM [paletteRAMSize]uint8

	colBank uint8
	flip    bool

	pal      *video.Palette
	gfx      [gfxBanks]*video.GfxElement
	bg       *video.TileLayer
	fg       *video.TileLayer
	sprites  *video.SpriteCompositor
	composer *video.FrameComposer

	screen      *video.Bitmap
	framebuffer *image.RGBA
}

// New builds a board from cfg. The colour PROMs are decoded here.
func New(cfg Config) (*Board, error) {
	if need := PaletteLayout.PROMSize(); len(cfg.PROM) < need {
		return nil, fmt.Errorf("bogeyman: colour PROM has %d bytes, need %d: %w", len(cfg.PROM), need, video.ErrShortPROM)
	}
	if cfg.Chars == nil || cfg.Tiles == nil || cfg.Sprites == nil {
		return nil, fmt.Errorf("bogeyman: %w", video.ErrMissingGfx)
	}

	b := &Board{
		pal:         video.NewPalette(totalPens),
		screen:      video.NewBitmap(ScreenWidth, ScreenHeight),
		framebuffer: image.NewRGBA(image.Rect(0, 0, VisibleArea.Dx(), VisibleArea.Dy())),
	}
	b.pal.SetColors(promColorBase, video.DerivePalette(cfg.PROM, PaletteLayout))

	b.gfx[gfxChars0] = cfg.Chars.Sub(0, 0x200, charColorBase, 8, 16)
	b.gfx[gfxChars1] = cfg.Chars.Sub(0x200, 0x200, charColorBase, 8, 16)
	b.gfx[gfxSprites] = cfg.Sprites
	for i := range 4 {
		b.gfx[gfxTiles0+i] = cfg.Tiles.Sub(i*0x80, 0x80, tileColorBase, 8, 8)
	}

	b.bg = video.NewTileLayer(b.gfx[:], b.bgTileInfo, 16, 16, 16, 16)
	b.fg = video.NewTileLayer(b.gfx[:], b.fgTileInfo, 8, 8, 32, 32)
	b.fg.SetTransparentPen(0)
	b.sprites = video.NewSpriteCompositor(cfg.Sprites, 4, 0, b.decodeSprite)

	b.composer = video.NewFrameComposer(b.prepare,
		b.bg,
		video.StageFunc(func(dst *video.Bitmap, clip image.Rectangle) {
			b.sprites.DrawFrame(b.spriteRAM[:], dst, clip, b.flip)
		}),
		b.fg,
	)

	b.Reset()
	return b, nil
}

// NewFromRegions decodes the board's ROM regions and builds a board.
func NewFromRegions(set romset.Set) (*Board, error) {
	var data [4][]byte
	for i, r := range Regions {
		d, err := set.Require(r)
		if err != nil {
			return nil, fmt.Errorf("bogeyman: %w", err)
		}
		data[i] = d
	}
	return New(Config{
		PROM:    data[0],
		Chars:   video.DecodeGfx(CharLayout, data[1], charColorBase, 8, 16),
		Tiles:   video.DecodeGfx(TileLayout, data[2], tileColorBase, 8, 8),
		Sprites: video.DecodeGfx(SpriteLayout, data[3], 0, 8, 2),
	})
}

// Reset returns the video RAM and registers to their power-on state.
func (b *Board) Reset() {
	b.videoRAM = [bgRAMSize]uint8{}
	b.colorRAM = [bgRAMSize]uint8{}
	b.videoRAM2 = [fgRAMSize]uint8{}
	b.colorRAM2 = [fgRAMSize]uint8{}
	b.spriteRAM = [spriteRAMSize]uint8{}
	for i := range b.paletteRAM {
		b.WritePaletteRAM(i, 0)
	}
	b.colBank = 0
	b.flip = false
	b.bg.MarkAllDirty()
	b.fg.MarkAllDirty()
}

func (b *Board) bgTileInfo(index int) video.TileInfo {
	attr := int(b.colorRAM[index])
	code := int(b.videoRAM[index])
	return video.TileInfo{
		Gfx:   ((attr&0x01)<<8+code)/0x80 + gfxTiles0,
		Code:  code & 0x7f,
		Color: (attr >> 1) & 0x07,
	}
}

func (b *Board) fgTileInfo(index int) video.TileInfo {
	tile := int(b.videoRAM2[index]) | int(b.colorRAM2[index]&0x03)<<8
	return video.TileInfo{
		Gfx:   tile / 0x200,
		Code:  tile & 0x1ff,
		Color: int(b.colBank),
	}
}

func (b *Board) prepare() {
	b.bg.SetFlip(b.flip, b.flip)
	b.fg.SetFlip(b.flip, b.flip)
}

// DrawFrame composes one frame: background, sprites, then characters.
func (b *Board) DrawFrame(clip image.Rectangle) int {
	status := b.composer.DrawFrame(b.screen, clip)
	video.Resolve(b.framebuffer, b.screen, VisibleArea, b.pal)
	return status
}

// Screen returns the indexed screen bitmap.
func (b *Board) Screen() *video.Bitmap { return b.screen }

// Framebuffer returns the visible area of the last frame.
func (b *Board) Framebuffer() *image.RGBA { return b.framebuffer }

// Palette returns the board palette.
func (b *Board) Palette() *video.Palette { return b.pal }

// VisibleArea returns the displayed part of the screen bitmap.
func (b *Board) VisibleArea() image.Rectangle { return VisibleArea }
