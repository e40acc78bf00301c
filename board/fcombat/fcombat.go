// Package fcombat implements the video hardware of Field Combat: a long
// scrolling background read straight from ROM, 2bpp sprites that can be
// stacked into columns, and a text overlay drawn cell by cell.
//
// Every pen goes through a lookup PROM into a 32 colour table.
package fcombat

import (
	"fmt"
	"image"

	"github.com/user-none/emarc/romset"
	"github.com/user-none/emarc/video"
)

const (
	ScreenWidth  = 512
	ScreenHeight = 256

	videoRAMSize  = 0x800
	spriteRAMSize = 0x100

	colorCount = 0x20
	penCount   = 0x300

	charColorBase   = 0
	spriteColorBase = 0x100
	bgColorBase     = 0x200

	// bg tiles always use this colour
	bgColor = 0x18

	textCols = 64
	textRows = 32
)

// Graphics element banks.
const (
	gfxChars = iota
	gfxSprites
	gfxTiles
	gfxBanks
)

// VisibleArea is the displayed part of the screen bitmap.
var VisibleArea = image.Rect(12*8, 2*8, 52*8, 30*8)

// PaletteLayout is the wiring of the colour PROM. The pen lookup table
// follows it in the same region.
var PaletteLayout = video.LayoutA(colorCount)

// Graphics ROM layouts.
var (
	CharLayout   = video.PlanarLayout(8, 8, 2, 512)
	SpriteLayout = video.PlanarLayout(16, 16, 2, 512)
	TileLayout   = video.PlanarLayout(16, 16, 2, 256)
)

const (
	bgCols = 512
	bgRows = 32

	// bgDataSize is the tile map ROM, one code per cell.
	bgDataSize = bgCols * bgRows
)

// Regions lists the ROM regions read by the video hardware.
var Regions = []romset.Region{
	{Name: "proms", Size: PaletteLayout.PROMSize() + penCount},
	{Name: "chars", Size: CharLayout.ROMSize()},
	{Name: "sprites", Size: SpriteLayout.ROMSize()},
	{Name: "tiles", Size: TileLayout.ROMSize()},
	{Name: "bgdata", Size: bgDataSize},
}

// Config holds the fixed data a board is built from.
type Config struct {
	// PROM is the colour PROM followed by the pen lookup table.
	PROM    []byte
	Chars   *video.GfxElement
	Sprites *video.GfxElement
	BgTiles *video.GfxElement
	// BgData holds the background tile codes, row by row.
	BgData []byte
}

// Board is one Field Combat video board.
type Board struct {
	videoRAM  [videoRAMSize]uint8
	spriteRAM [spriteRAMSize]uint8
	bgData    []byte

	flip      bool
	charPal   int
	charBank  int
	spritePal int
	videoReg  uint8
	scrollH   uint8
	scrollV   uint16

	pal      *video.Palette
	gfx      [gfxBanks]*video.GfxElement
	bg       *video.TileLayer
	sprites  *video.SpriteCompositor
	composer *video.FrameComposer

	screen      *video.Bitmap
	framebuffer *image.RGBA
}

// New builds a board from cfg. The colour PROM and pen lookup table are
// decoded here.
func New(cfg Config) (*Board, error) {
	if need := PaletteLayout.PROMSize() + penCount; len(cfg.PROM) < need {
		return nil, fmt.Errorf("fcombat: colour PROM has %d bytes, need %d: %w", len(cfg.PROM), need, video.ErrShortPROM)
	}
	if cfg.Chars == nil || cfg.Sprites == nil || cfg.BgTiles == nil {
		return nil, fmt.Errorf("fcombat: %w", video.ErrMissingGfx)
	}
	if len(cfg.BgData) < bgDataSize {
		return nil, fmt.Errorf("fcombat: background map has %d bytes, need %d: %w", len(cfg.BgData), bgDataSize, video.ErrMissingGfx)
	}

	b := &Board{
		bgData:      cfg.BgData,
		pal:         video.NewIndirectPalette(colorCount, penCount),
		screen:      video.NewBitmap(ScreenWidth, ScreenHeight),
		framebuffer: image.NewRGBA(image.Rect(0, 0, VisibleArea.Dx(), VisibleArea.Dy())),
	}
	initPalette(b.pal, cfg.PROM)

	b.gfx[gfxChars] = cfg.Chars
	b.gfx[gfxSprites] = cfg.Sprites
	b.gfx[gfxTiles] = cfg.BgTiles

	b.bg = video.NewTileLayer(b.gfx[:], b.bgTileInfo, 16, 16, bgCols, bgRows)
	b.sprites = video.NewSpriteCompositor(cfg.Sprites, 4, 0, b.decodeSprite)

	b.composer = video.NewFrameComposer(b.prepare,
		b.bg,
		video.StageFunc(func(dst *video.Bitmap, clip image.Rectangle) {
			b.sprites.DrawFrame(b.spriteRAM[:], dst, clip, b.flip)
		}),
		video.StageFunc(b.drawText),
	)

	b.Reset()
	return b, nil
}

// initPalette loads the 32 colours and routes every pen through the lookup
// table. Character and sprite pens read the table with the pixel bits
// rotated into the middle of the index and always land in the upper 16
// colours. Background pens use the lower 16.
func initPalette(pal *video.Palette, prom []byte) {
	pal.SetColors(0, video.DerivePalette(prom, PaletteLayout))
	lut := prom[PaletteLayout.PROMSize():]

	for i := 0; i < bgColorBase; i++ {
		idx := (i & 0x1c0) | (i&0x03)<<4 | (i>>2)&0x0f
		pal.SetPenIndirect(i, uint16(lut[idx]&0x0f|0x10))
	}
	for i := bgColorBase; i < penCount; i++ {
		pal.SetPenIndirect(i, uint16(lut[i]&0x0f))
	}
}

// NewFromRegions decodes the board's ROM regions and builds a board.
func NewFromRegions(set romset.Set) (*Board, error) {
	var data [5][]byte
	for i, r := range Regions {
		d, err := set.Require(r)
		if err != nil {
			return nil, fmt.Errorf("fcombat: %w", err)
		}
		data[i] = d
	}
	return New(Config{
		PROM:    data[0],
		Chars:   video.DecodeGfx(CharLayout, data[1], charColorBase, 4, 64),
		Sprites: video.DecodeGfx(SpriteLayout, data[2], spriteColorBase, 4, 64),
		BgTiles: video.DecodeGfx(TileLayout, data[3], bgColorBase, 4, 64),
		BgData:  data[4],
	})
}

// Reset returns the video RAM and registers to their power-on state.
func (b *Board) Reset() {
	b.videoRAM = [videoRAMSize]uint8{}
	b.spriteRAM = [spriteRAMSize]uint8{}
	b.WriteVideoReg(0)
	b.scrollH = 0
	b.scrollV = 0
	b.bg.MarkAllDirty()
}

func (b *Board) bgTileInfo(index int) video.TileInfo {
	return video.TileInfo{
		Gfx:   gfxTiles,
		Code:  int(b.bgData[index]),
		Color: bgColor,
	}
}

func (b *Board) prepare() {
	b.bg.SetScrollX(int(b.scrollV) - 24)
	b.bg.SetScrollY(int(b.scrollH))
	// the map lives in ROM and is cheap to re-read
	b.bg.MarkAllDirty()
}

// drawText draws the character cells covering the visible area. Cells
// outside it are never shown, even when flipped.
func (b *Board) drawText(dst *video.Bitmap, clip image.Rectangle) {
	g := b.gfx[gfxChars]
	for sy := VisibleArea.Min.Y / 8; sy < VisibleArea.Max.Y/8; sy++ {
		for sx := VisibleArea.Min.X / 8; sx < VisibleArea.Max.X/8; sx++ {
			x, y := 8*sx, 8*sy
			if b.flip {
				x = (textCols-1)*8 - x
				y = (textRows-1)*8 - y
			}
			v := int(b.videoRAM[sx+sy*textCols])
			code := v + 256*b.charBank
			color := v>>4 + b.charPal*16
			g.DrawTransparent(dst, clip, code, color, b.flip, b.flip, x, y, 0)
		}
	}
}

// DrawFrame composes one frame: background, sprites, then text.
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
