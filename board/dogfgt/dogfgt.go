// Package dogfgt implements the video hardware of Dog Fight: a scrolling
// 16x16 tile background, 4-byte sprites, and a 3-plane bitmap drawn over
// both.
package dogfgt

import (
	"fmt"
	"image"

	"github.com/user-none/emarc/romset"
	"github.com/user-none/emarc/video"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 256

	bgRAMSize      = 0x800
	spriteRAMSize  = 0x60
	paletteRAMSize = 16

	bitmapPlanes    = 3
	bitmapPlaneSize = 0x2000

	// pens 0-15 are palette RAM, the PROM follows
	promColorBase   = 16
	tileColors      = 4
	pixmapColorBase = promColorBase + 32
	totalPens       = promColorBase + 64
)

// VisibleArea is the displayed part of the screen bitmap.
var VisibleArea = image.Rect(0, 8, 256, 248)

// PaletteLayout is the colour PROM wiring.
var PaletteLayout = video.LayoutA(64)

// Graphics ROM layouts.
var (
	TileLayout   = video.PlanarLayout(16, 16, 3, 256)
	SpriteLayout = video.PlanarLayout(16, 16, 3, 1024)
)

// Regions lists the ROM regions read by the video hardware.
var Regions = []romset.Region{
	{Name: "proms", Size: 0x40},
	{Name: "tiles", Size: TileLayout.ROMSize()},
	{Name: "sprites", Size: SpriteLayout.ROMSize()},
}

// Config holds the fixed data a board is built from.
type Config struct {
	PROM    []byte
	Tiles   *video.GfxElement
	Sprites *video.GfxElement
}

// Board is one Dog Fight video board.
type Board struct {
	bgRAM      [bgRAMSize]uint8
	spriteRAM  [spriteRAMSize]uint8
	paletteRAM [paletteRAMSize]uint8

	scroll      [4]uint8
	planeSelect uint8
	control     uint8

	pal      *video.Palette
	bg       *video.TileLayer
	sprites  *video.SpriteCompositor
	bitmap   *video.PlaneFramebuffer
	composer *video.FrameComposer

	screen      *video.Bitmap
	framebuffer *image.RGBA
}

// New builds a board from cfg. The colour PROM is decoded here.
func New(cfg Config) (*Board, error) {
	if need := PaletteLayout.PROMSize(); len(cfg.PROM) < need {
		return nil, fmt.Errorf("dogfgt: colour PROM has %d bytes, need %d: %w", len(cfg.PROM), need, video.ErrShortPROM)
	}
	if cfg.Tiles == nil || cfg.Sprites == nil {
		return nil, fmt.Errorf("dogfgt: %w", video.ErrMissingGfx)
	}

	b := &Board{
		pal:         video.NewPalette(totalPens),
		screen:      video.NewBitmap(ScreenWidth, ScreenHeight),
		framebuffer: image.NewRGBA(image.Rect(0, 0, VisibleArea.Dx(), VisibleArea.Dy())),
	}
	b.pal.SetColors(promColorBase, video.DerivePalette(cfg.PROM, PaletteLayout))

	b.bg = video.NewTileLayer([]*video.GfxElement{cfg.Tiles}, b.bgTileInfo, 16, 16, 32, 32)
	b.sprites = video.NewSpriteCompositor(cfg.Sprites, 4, 0, b.decodeSprite)
	b.bitmap = video.NewPlaneFramebuffer(video.PlaneConfig{
		Planes:    bitmapPlanes,
		PlaneSize: bitmapPlaneSize,
		Height:    ScreenHeight,
		BaseColor: pixmapColorBase,
	})

	b.composer = video.NewFrameComposer(b.prepare,
		b.bg,
		video.StageFunc(func(dst *video.Bitmap, clip image.Rectangle) {
			b.sprites.DrawFrame(b.spriteRAM[:], dst, clip, b.flip())
		}),
		video.StageFunc(b.bitmap.Blit),
	)

	b.Reset()
	return b, nil
}

// NewFromRegions decodes the board's ROM regions and builds a board.
func NewFromRegions(set romset.Set) (*Board, error) {
	var data [3][]byte
	for i, r := range Regions {
		d, err := set.Require(r)
		if err != nil {
			return nil, fmt.Errorf("dogfgt: %w", err)
		}
		data[i] = d
	}
	return New(Config{
		PROM:    data[0],
		Tiles:   video.DecodeGfx(TileLayout, data[1], promColorBase, 8, tileColors),
		Sprites: video.DecodeGfx(SpriteLayout, data[2], 0, 8, 2),
	})
}

// Reset returns the video RAM and registers to their power-on state.
func (b *Board) Reset() {
	b.bgRAM = [bgRAMSize]uint8{}
	b.spriteRAM = [spriteRAMSize]uint8{}
	b.scroll = [4]uint8{}
	b.planeSelect = 0
	b.control = 0
	for i := range b.paletteRAM {
		b.WritePaletteRAM(i, 0)
	}
	b.bitmap.Restore(make([]uint8, bitmapPlanes*bitmapPlaneSize), false, 0)
	b.bg.MarkAllDirty()
}

func (b *Board) bgTileInfo(index int) video.TileInfo {
	return video.TileInfo{
		Code:  int(b.bgRAM[index]),
		Color: int(b.bgRAM[index+0x400] & 0x03),
	}
}

func (b *Board) prepare() {
	b.bg.SetScrollX(int(b.scroll[0]) + 256*int(b.scroll[1]) + 256)
	b.bg.SetScrollY(int(b.scroll[2]) + 256*int(b.scroll[3]))
	b.bg.SetFlip(b.flip(), b.flip())
}

// DrawFrame composes one frame: background, sprites, then the bitmap.
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
