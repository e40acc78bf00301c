package dogfgt

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/user-none/emarc/logger"
	"github.com/user-none/emarc/video"
)

// solidGfx returns count 16x16 cells where every pixel is pix.
func solidGfx(count int, pix uint8, colorBase, granularity, colors int) *video.GfxElement {
	data := make([]uint8, count*16*16)
	for i := range data {
		data[i] = pix
	}
	return video.NewGfxElement(16, 16, count, data, colorBase, granularity, colors)
}

func makeTestBoard(t *testing.T) *Board {
	t.Helper()
	prom := make([]byte, 64)
	prom[1] = 0x07 // tile colour 0, pen 1: red
	b, err := New(Config{
		PROM:    prom,
		Tiles:   solidGfx(4, 1, promColorBase, 8, tileColors),
		Sprites: solidGfx(4, 2, 0, 8, 2),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNew_ConfigErrors(t *testing.T) {
	_, err := New(Config{PROM: make([]byte, 63), Tiles: solidGfx(1, 0, 0, 8, 1), Sprites: solidGfx(1, 0, 0, 8, 1)})
	if !errors.Is(err, video.ErrShortPROM) {
		t.Errorf("expected ErrShortPROM, got %v", err)
	}
	_, err = New(Config{PROM: make([]byte, 64)})
	if !errors.Is(err, video.ErrMissingGfx) {
		t.Errorf("expected ErrMissingGfx, got %v", err)
	}
}

func TestBoard_Palette(t *testing.T) {
	b := makeTestBoard(t)

	if c := b.Palette().Color(promColorBase + 1); c != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("PROM entry 1: expected red, got %v", c)
	}
	if c := b.Palette().Color(promColorBase); c != (color.RGBA{A: 0xff}) {
		t.Errorf("PROM entry 0: expected black, got %v", c)
	}

	b.WritePaletteRAM(3, 0x38)
	if c := b.Palette().Color(3); c != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("palette RAM entry 3: expected green, got %v", c)
	}
}

func TestBoard_BgTileInfo(t *testing.T) {
	b := makeTestBoard(t)
	b.WriteBgVideoRAM(5, 0x07)
	b.WriteBgVideoRAM(0x405, 0xfe)

	cell := b.bg.Cell(5)
	if cell.Code != 7 {
		t.Errorf("expected code 7, got %d", cell.Code)
	}
	if cell.Color != 2 {
		t.Errorf("expected colour 2, got %d", cell.Color)
	}

	// a colour write alone must re-derive the cell
	b.WriteBgVideoRAM(0x405, 0x01)
	if !b.bg.Dirty(5) {
		t.Fatal("colour write did not mark the cell dirty")
	}
	if cell := b.bg.Cell(5); cell.Color != 1 {
		t.Errorf("expected colour 1, got %d", cell.Color)
	}
}

func TestBoard_Scroll(t *testing.T) {
	b := makeTestBoard(t)
	b.WriteScroll(0, 0x10)
	b.WriteScroll(1, 0x01)
	b.WriteScroll(2, 0x20)
	b.WriteScroll(3, 0x01)
	b.prepare()

	x, y := b.bg.Scroll()
	if x != 0x10+256+256 {
		t.Errorf("expected scroll x %#x, got %#x", 0x10+256+256, x)
	}
	if y != 0x120 {
		t.Errorf("expected scroll y 0x120, got %#x", y)
	}
}

func TestBoard_ControlColorBank(t *testing.T) {
	b := makeTestBoard(t)

	tests := []struct {
		v    uint8
		bank int
	}{
		{0x00, 0},
		{0x01, 2},
		{0x02, 1},
		{0x03, 3},
		{0x30, 0},
	}
	for _, tt := range tests {
		b.WriteControl(tt.v)
		if got := b.bitmap.ColorBank(); got != tt.bank {
			t.Errorf("control %02x: expected bank %d, got %d", tt.v, tt.bank, got)
		}
	}

	b.WriteControl(0x30)
	if a, c := b.CoinCounters(); !a || !c {
		t.Errorf("expected both coin counters set")
	}
}

func TestBoard_DecodeSprite(t *testing.T) {
	b := makeTestBoard(t)
	rec := []byte{sprEnable | sprFlipX | sprColor | 0x10, 0x22, 40, 50}

	parts := b.decodeSprite(rec, false, nil)
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	want := video.SpritePart{Code: 0x122, Color: 1, FlipX: true, X: 50, Y: 200}
	if parts[0] != want {
		t.Errorf("expected %+v, got %+v", want, parts[0])
	}

	parts = b.decodeSprite(rec, true, nil)
	want = video.SpritePart{Code: 0x122, Color: 1, FlipY: true, X: 190, Y: 40}
	if parts[0] != want {
		t.Errorf("flipped: expected %+v, got %+v", want, parts[0])
	}

	if parts := b.decodeSprite([]byte{0x00, 1, 2, 3}, false, nil); len(parts) != 0 {
		t.Errorf("disabled sprite decoded to %d parts", len(parts))
	}
}

func TestBoard_DrawOrder(t *testing.T) {
	b := makeTestBoard(t)

	// sprite at (0,16): sy = (240 - 224) & 0xff
	b.WriteSpriteRAM(0, sprEnable)
	b.WriteSpriteRAM(2, 224)
	b.WriteSpriteRAM(3, 0)

	// bitmap pixel at (0,16)
	b.WritePlaneSelect(0)
	b.WriteBitmapRAM(16, 0x01)

	status := b.DrawFrame(VisibleArea)
	if status != video.StatusOK {
		t.Errorf("expected status ok, got %d", status)
	}

	s := b.Screen()
	if got := s.PenAt(0, 16); got != pixmapColorBase+1 {
		t.Errorf("bitmap over sprite: expected %d, got %d", pixmapColorBase+1, got)
	}
	if got := s.PenAt(1, 16); got != 2 {
		t.Errorf("sprite over bg: expected 2, got %d", got)
	}
	if got := s.PenAt(20, 16); got != promColorBase+1 {
		t.Errorf("bg: expected %d, got %d", promColorBase+1, got)
	}

	// framebuffer starts at the top of the visible area
	if c := b.Framebuffer().RGBAAt(20, 16-VisibleArea.Min.Y); c != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("framebuffer: expected red, got %v", c)
	}
}

func TestBoard_BadPlaneTolerated(t *testing.T) {
	b := makeTestBoard(t)
	b.WritePlaneSelect(3)
	b.WriteBitmapRAM(16, 0xff)
	if got := b.ReadBitmapRAM(16); got != 0 {
		t.Errorf("expected 0 from nonexistent plane, got %02x", got)
	}

	b.WritePlaneSelect(0)
	if got := b.ReadBitmapRAM(16); got != 0 {
		t.Errorf("plane 0 was modified: %02x", got)
	}
}

func TestBoard_BadPlaneSweepEchoesOnce(t *testing.T) {
	logger.Clear()
	var sb strings.Builder
	logger.SetEcho(&sb)
	defer logger.SetEcho(nil)

	b := makeTestBoard(t)
	b.WritePlaneSelect(3)
	for offs := 0; offs < bitmapPlaneSize; offs++ {
		b.WriteBitmapRAM(offs, 0xff)
	}

	if n := strings.Count(sb.String(), "\n"); n != 1 {
		t.Errorf("expected 1 echoed line, got %d", n)
	}
	if n := len(logger.Entries()); n != 1 {
		t.Errorf("expected 1 entry, got %d", n)
	}
}

func TestBoard_FlipReexpandsBitmap(t *testing.T) {
	b := makeTestBoard(t)
	b.WriteBitmapRAM(16, 0x01)
	b.WriteControl(ctrlFlip)

	if got := b.bitmap.PenAt(255, 255-16); got != pixmapColorBase+1 {
		t.Errorf("expected flipped pixel %d, got %d", pixmapColorBase+1, got)
	}
	if got := b.bitmap.PenAt(0, 16); got != pixmapColorBase {
		t.Errorf("expected old position cleared, got %d", got)
	}
}

func TestBoard_SerializeRoundTrip(t *testing.T) {
	a := makeTestBoard(t)
	a.WriteBgVideoRAM(0x10, 3)
	a.WriteBgVideoRAM(0x410, 2)
	a.WriteScroll(0, 0x33)
	a.WritePaletteRAM(0, 0xc0)
	a.WriteSpriteRAM(0, sprEnable)
	a.WriteSpriteRAM(2, 100)
	a.WriteBitmapRAM(0x123, 0x5a)
	a.WriteControl(0x81)

	buf := make([]byte, SerializeSize)
	if err := a.Serialize(buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	b := makeTestBoard(t)
	if err := b.Deserialize(buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	a.DrawFrame(VisibleArea)
	b.DrawFrame(VisibleArea)
	pa, pb := a.Screen().Pix, b.Screen().Pix
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("screen differs at %d: %d vs %d", i, pa[i], pb[i])
		}
	}
	if b.Palette().Color(0) != a.Palette().Color(0) {
		t.Errorf("palette RAM not restored")
	}
}

func TestBoard_SerializeErrors(t *testing.T) {
	b := makeTestBoard(t)
	if err := b.Serialize(make([]byte, SerializeSize-1)); err == nil {
		t.Error("expected error for short buffer")
	}
	if err := b.Deserialize(make([]byte, SerializeSize-1)); err == nil {
		t.Error("expected error for short buffer")
	}
	buf := make([]byte, SerializeSize)
	buf[0] = serializeVersion + 1
	if err := b.Deserialize(buf); err == nil {
		t.Error("expected error for future version")
	}
}
