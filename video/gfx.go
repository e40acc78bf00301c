package video

import (
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NoTransparency disables the transparent pen check on a blit.
const NoTransparency = -1

// orientedCacheSize is the number of flipped cell images kept per element.
const orientedCacheSize = 1024

// GfxLayout describes how fixed-size cells are packed into a graphics ROM.
// All offsets are in bits. Plane 0 is the most significant pixel bit.
type GfxLayout struct {
	Width, Height int
	// Total is the number of cells; 0 takes as many as the ROM holds.
	Total         int
	PlaneOffsets  []int
	XOffsets      []int
	YOffsets      []int
	CharIncrement int
}

type orientKey struct {
	code         int
	flipX, flipY bool
}

// GfxElement is a decoded set of same-sized cells plus the pen mapping for
// its colour codes: pen = colorBase + color*granularity + pixel.
type GfxElement struct {
	width, height int
	count         int
	data          []uint8

	colorBase   int
	granularity int
	colors      int

	oriented *lru.Cache[orientKey, []uint8]
}

// NewGfxElement wraps already decoded cells. data holds count cells of
// width*height pixels each, row-major.
func NewGfxElement(width, height, count int, data []uint8, colorBase, granularity, colors int) *GfxElement {
	cache, _ := lru.New[orientKey, []uint8](orientedCacheSize)
	if colors < 1 {
		colors = 1
	}
	return &GfxElement{
		width:       width,
		height:      height,
		count:       count,
		data:        data,
		colorBase:   colorBase,
		granularity: granularity,
		colors:      colors,
		oriented:    cache,
	}
}

func readBit(rom []byte, bit int) bool {
	return rom[bit/8]&(0x80>>uint(bit%8)) != 0
}

// DecodeGfx decodes the cells of rom described by layout.
func DecodeGfx(layout GfxLayout, rom []byte, colorBase, granularity, colors int) *GfxElement {
	total := layout.Total
	if total == 0 && layout.CharIncrement > 0 {
		total = len(rom) * 8 / layout.CharIncrement
	}
	planes := len(layout.PlaneOffsets)
	size := layout.Width * layout.Height
	data := make([]uint8, total*size)

	for c := 0; c < total; c++ {
		base := c * layout.CharIncrement
		cell := data[c*size : (c+1)*size]
		for y := 0; y < layout.Height; y++ {
			for x := 0; x < layout.Width; x++ {
				var pix uint8
				for p, off := range layout.PlaneOffsets {
					bit := base + off + layout.YOffsets[y] + layout.XOffsets[x]
					if bit/8 < len(rom) && readBit(rom, bit) {
						pix |= 1 << uint(planes-1-p)
					}
				}
				cell[y*layout.Width+x] = pix
			}
		}
	}
	return NewGfxElement(layout.Width, layout.Height, total, data, colorBase, granularity, colors)
}

// Width returns the cell width in pixels.
func (g *GfxElement) Width() int { return g.width }

// Height returns the cell height in pixels.
func (g *GfxElement) Height() int { return g.height }

// Count returns the number of cells.
func (g *GfxElement) Count() int { return g.count }

func (g *GfxElement) wrap(code int) int {
	if g.count == 0 {
		return 0
	}
	code %= g.count
	if code < 0 {
		code += g.count
	}
	return code
}

// Pixel returns the raw pixel value of cell code at (x, y).
func (g *GfxElement) Pixel(code, x, y int) uint8 {
	if g.count == 0 {
		return 0
	}
	return g.data[g.wrap(code)*g.width*g.height+y*g.width+x]
}

// Pen returns the pen for a raw pixel drawn with colour code color.
func (g *GfxElement) Pen(color int, pix uint8) uint16 {
	color %= g.colors
	if color < 0 {
		color += g.colors
	}
	return uint16(g.colorBase + color*g.granularity + int(pix))
}

// Cell returns the pixels of cell code with flips applied. Codes past the
// end of the set wrap.
func (g *GfxElement) Cell(code int, flipX, flipY bool) []uint8 {
	size := g.width * g.height
	if g.count == 0 {
		return make([]uint8, size)
	}
	code = g.wrap(code)
	src := g.data[code*size : (code+1)*size]
	if !flipX && !flipY {
		return src
	}

	key := orientKey{code, flipX, flipY}
	if c, ok := g.oriented.Get(key); ok {
		return c
	}
	out := make([]uint8, size)
	for y := 0; y < g.height; y++ {
		sy := y
		if flipY {
			sy = g.height - 1 - y
		}
		for x := 0; x < g.width; x++ {
			sx := x
			if flipX {
				sx = g.width - 1 - x
			}
			out[y*g.width+x] = src[sy*g.width+sx]
		}
	}
	g.oriented.Add(key, out)
	return out
}

// DrawTransparent draws one cell with its top-left corner at (sx, sy),
// clipped to clip. Pixels equal to transPen are skipped.
func (g *GfxElement) DrawTransparent(dst *Bitmap, clip image.Rectangle, code, color int, flipX, flipY bool, sx, sy int, transPen int) {
	area := image.Rect(sx, sy, sx+g.width, sy+g.height).Intersect(clip).Intersect(dst.Rect)
	if area.Empty() {
		return
	}
	cell := g.Cell(code, flipX, flipY)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		src := cell[(y-sy)*g.width:]
		row := dst.Pix[dst.offset(dst.Rect.Min.X, y):]
		for x := area.Min.X; x < area.Max.X; x++ {
			pix := src[x-sx]
			if int(pix) == transPen {
				continue
			}
			row[x-dst.Rect.Min.X] = g.Pen(color, pix)
		}
	}
}

// PlanarLayout describes total w x h cells stored plane after plane, each
// plane a run of row-major bits for every cell in turn.
func PlanarLayout(w, h, planes, total int) GfxLayout {
	l := GfxLayout{
		Width:         w,
		Height:        h,
		Total:         total,
		PlaneOffsets:  make([]int, planes),
		XOffsets:      make([]int, w),
		YOffsets:      make([]int, h),
		CharIncrement: w * h,
	}
	for p := range l.PlaneOffsets {
		l.PlaneOffsets[p] = p * total * w * h
	}
	for x := range l.XOffsets {
		l.XOffsets[x] = x
	}
	for y := range l.YOffsets {
		l.YOffsets[y] = y * w
	}
	return l
}

// ROMSize returns the number of bytes a planar layout occupies.
func (l GfxLayout) ROMSize() int {
	return len(l.PlaneOffsets) * l.Total * l.Width * l.Height / 8
}

// Sub returns count cells starting at first as a new element with its own
// pen mapping. The pixel data is shared.
func (g *GfxElement) Sub(first, count, colorBase, granularity, colors int) *GfxElement {
	size := g.width * g.height
	first = min(max(first, 0), g.count)
	count = min(count, g.count-first)
	return NewGfxElement(g.width, g.height, count, g.data[first*size:(first+count)*size], colorBase, granularity, colors)
}
