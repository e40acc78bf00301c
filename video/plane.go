package video

import (
	"image"

	"github.com/user-none/emarc/logger"
)

// PlaneConfig describes a bit-planar bitmap. Each plane holds PlaneSize
// bytes; a byte covers 8 horizontally adjacent pixels. Bytes run down a
// column of Height rows before moving 8 pixels right.
type PlaneConfig struct {
	Planes    int
	PlaneSize int
	Height    int
	// BaseColor is the first pen of the bitmap's colour range.
	BaseColor int
}

// Width returns the bitmap width in pixels.
func (c PlaneConfig) Width() int {
	return 8 * (c.PlaneSize / c.Height)
}

// PlaneFramebuffer stores N 1-bit planes and keeps an expanded pen bitmap
// up to date on every write. Flip and colour bank are baked into the
// expanded pixels, so changing either re-expands the whole buffer.
type PlaneFramebuffer struct {
	cfg  PlaneConfig
	ram  []uint8
	pix  *Bitmap
	flip bool
	bank int
}

// NewPlaneFramebuffer creates a cleared framebuffer.
func NewPlaneFramebuffer(cfg PlaneConfig) *PlaneFramebuffer {
	p := &PlaneFramebuffer{
		cfg: cfg,
		ram: make([]uint8, cfg.Planes*cfg.PlaneSize),
		pix: NewBitmap(cfg.Width(), cfg.Height),
	}
	p.expandAll()
	return p
}

// Config returns the framebuffer geometry.
func (p *PlaneFramebuffer) Config() PlaneConfig { return p.cfg }

// Pixels returns the expanded pen bitmap.
func (p *PlaneFramebuffer) Pixels() *Bitmap { return p.pix }

// RAM returns the raw plane storage, plane 0 first.
func (p *PlaneFramebuffer) RAM() []uint8 { return p.ram }

func (p *PlaneFramebuffer) validPlane(plane int) bool {
	return plane >= 0 && plane < p.cfg.Planes
}

// WritePlane stores value at offset in plane and re-expands the 8 pixels it
// covers. Writes to a plane that does not exist are dropped and logged.
func (p *PlaneFramebuffer) WritePlane(offset int, value uint8, plane int) {
	if !p.validPlane(plane) {
		logger.Logf("video", "bitmap write to nonexistent plane %d", plane)
		return
	}
	if offset < 0 || offset >= p.cfg.PlaneSize {
		logger.Logf("video", "bitmap write past plane size %04x", p.cfg.PlaneSize)
		return
	}
	p.ram[plane*p.cfg.PlaneSize+offset] = value
	p.expand(offset)
}

// ReadPlane returns the byte at offset in plane. Nonexistent planes read 0.
func (p *PlaneFramebuffer) ReadPlane(offset, plane int) uint8 {
	if !p.validPlane(plane) {
		logger.Logf("video", "bitmap read from nonexistent plane %d", plane)
		return 0
	}
	if offset < 0 || offset >= p.cfg.PlaneSize {
		return 0
	}
	return p.ram[plane*p.cfg.PlaneSize+offset]
}

// SetFlip sets the global flip state, re-expanding the buffer on change.
func (p *PlaneFramebuffer) SetFlip(flip bool) {
	if flip == p.flip {
		return
	}
	p.flip = flip
	p.expandAll()
}

// Flip returns the global flip state.
func (p *PlaneFramebuffer) Flip() bool { return p.flip }

// SetColorBank selects the 8-pen colour bank, re-expanding the buffer on
// change.
func (p *PlaneFramebuffer) SetColorBank(bank int) {
	if bank == p.bank {
		return
	}
	p.bank = bank
	p.expandAll()
}

// ColorBank returns the selected colour bank.
func (p *PlaneFramebuffer) ColorBank() int { return p.bank }

// Restore replaces the raw planes and registers, then re-expands.
func (p *PlaneFramebuffer) Restore(ram []uint8, flip bool, bank int) {
	copy(p.ram, ram)
	p.flip = flip
	p.bank = bank
	p.expandAll()
}

// TransparentPen is the pen of a pixel whose plane bits are all clear.
func (p *PlaneFramebuffer) TransparentPen() uint16 {
	return uint16(p.cfg.BaseColor + 8*p.bank)
}

// PenAt returns the expanded pen at (x, y).
func (p *PlaneFramebuffer) PenAt(x, y int) uint16 {
	return p.pix.PenAt(x, y)
}

func (p *PlaneFramebuffer) expand(offset int) {
	x := 8 * (offset / p.cfg.Height)
	y := offset % p.cfg.Height
	if p.flip {
		y = p.cfg.Height - 1 - y
	}
	base := p.TransparentPen()
	w := p.pix.Rect.Dx()

	for sub := 0; sub < 8; sub++ {
		var c uint16
		for i := 0; i < p.cfg.Planes; i++ {
			if p.ram[i*p.cfg.PlaneSize+offset]&(1<<uint(sub)) != 0 {
				c |= 1 << uint(i)
			}
		}
		px := x + sub
		if p.flip {
			px = w - 1 - px
		}
		p.pix.SetPen(px, y, base+c)
	}
}

func (p *PlaneFramebuffer) expandAll() {
	for offs := 0; offs < p.cfg.PlaneSize; offs++ {
		p.expand(offs)
	}
}

// Blit copies the expanded bitmap onto dst within clip, skipping pixels
// whose plane bits are all clear.
func (p *PlaneFramebuffer) Blit(dst *Bitmap, clip image.Rectangle) {
	area := clip.Intersect(dst.Rect).Intersect(p.pix.Rect)
	trans := p.TransparentPen()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		src := p.pix.Pix[p.pix.offset(area.Min.X, y):p.pix.offset(area.Max.X, y)]
		out := dst.Pix[dst.offset(area.Min.X, y):]
		for i, pen := range src {
			if pen != trans {
				out[i] = pen
			}
		}
	}
}
