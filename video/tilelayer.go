package video

import (
	"fmt"
	"image"

	"github.com/user-none/emarc/logger"
)

// TileInfo is the derived state of one tile cell.
type TileInfo struct {
	// Gfx selects the graphics element (pattern bank) of the layer.
	Gfx          int
	Code         int
	Color        int
	FlipX, FlipY bool
}

// TileInfoFunc derives a cell from the board's raw tile RAM. It is called
// lazily at draw time for cells that have been marked dirty, so it always
// sees the current RAM contents.
type TileInfoFunc func(index int) TileInfo

// TileLayer is a scrolling grid of tile cells laid out in row order.
type TileLayer struct {
	gfx  []*GfxElement
	info TileInfoFunc

	tileW, tileH int
	cols, rows   int

	cells []TileInfo
	dirty []bool

	scrollX, scrollY int
	transPen         int
	flipX, flipY     bool
}

// NewTileLayer creates a cols x rows layer of tileW x tileH cells. All cells
// start dirty and the layer is opaque.
func NewTileLayer(gfx []*GfxElement, info TileInfoFunc, tileW, tileH, cols, rows int) *TileLayer {
	l := &TileLayer{
		gfx:      gfx,
		info:     info,
		tileW:    tileW,
		tileH:    tileH,
		cols:     cols,
		rows:     rows,
		cells:    make([]TileInfo, cols*rows),
		dirty:    make([]bool, cols*rows),
		transPen: NoTransparency,
	}
	l.MarkAllDirty()
	return l
}

// Width returns the layer width in pixels.
func (l *TileLayer) Width() int { return l.cols * l.tileW }

// Height returns the layer height in pixels.
func (l *TileLayer) Height() int { return l.rows * l.tileH }

// Len returns the number of cells.
func (l *TileLayer) Len() int { return len(l.cells) }

// MarkDirty schedules cell index for re-derivation before it is next drawn.
func (l *TileLayer) MarkDirty(index int) {
	if index < 0 || index >= len(l.dirty) {
		if strictAddressing {
			panic(fmt.Sprintf("tile layer: cell %d out of range [0,%d)", index, len(l.dirty)))
		}
		logger.Logf("video", "tile layer: dirty mark outside %d cells dropped", len(l.dirty))
		return
	}
	l.dirty[index] = true
}

// MarkAllDirty schedules every cell for re-derivation. Boards call this when
// a register that feeds every cell's derivation changes.
func (l *TileLayer) MarkAllDirty() {
	for i := range l.dirty {
		l.dirty[i] = true
	}
}

// SetScrollX sets the horizontal scroll in layer pixels.
func (l *TileLayer) SetScrollX(v int) { l.scrollX = v }

// SetScrollY sets the vertical scroll in layer pixels.
func (l *TileLayer) SetScrollY(v int) { l.scrollY = v }

// Scroll returns the current scroll offsets.
func (l *TileLayer) Scroll() (x, y int) { return l.scrollX, l.scrollY }

// SetTransparentPen sets the raw pixel value that is not drawn.
// NoTransparency makes the layer opaque.
func (l *TileLayer) SetTransparentPen(pen int) { l.transPen = pen }

// SetFlip mirrors the layer output about the destination bitmap.
func (l *TileLayer) SetFlip(x, y bool) {
	l.flipX = x
	l.flipY = y
}

// Cell returns the current state of cell index, deriving it first if it is
// dirty.
func (l *TileLayer) Cell(index int) TileInfo {
	if l.dirty[index] {
		l.cells[index] = l.info(index)
		l.dirty[index] = false
	}
	return l.cells[index]
}

// Dirty reports whether cell index is waiting to be re-derived.
func (l *TileLayer) Dirty(index int) bool {
	return l.dirty[index]
}

func (l *TileLayer) element(bank int) *GfxElement {
	if bank < 0 || bank >= len(l.gfx) {
		logger.Logf("video", "tile layer: gfx bank %d out of range", bank)
		bank = 0
	}
	return l.gfx[bank]
}

func wrapMod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draw composites the layer into dst within clip, applying scroll with
// wraparound and the transparent pen.
func (l *TileLayer) Draw(dst *Bitmap, clip image.Rectangle) {
	area := clip.Intersect(dst.Rect)
	if area.Empty() || len(l.cells) == 0 {
		return
	}
	w, h := l.Width(), l.Height()
	r := dst.Rect

	for dy := area.Min.Y; dy < area.Max.Y; dy++ {
		sy := dy
		if l.flipY {
			sy = r.Min.Y + r.Max.Y - 1 - dy
		}
		ly := wrapMod(sy+l.scrollY, h)
		row, py := ly/l.tileH, ly%l.tileH
		out := dst.Pix[dst.offset(r.Min.X, dy):]

		last := -1
		var g *GfxElement
		var info TileInfo
		var cell []uint8
		for dx := area.Min.X; dx < area.Max.X; dx++ {
			sx := dx
			if l.flipX {
				sx = r.Min.X + r.Max.X - 1 - dx
			}
			lx := wrapMod(sx+l.scrollX, w)
			idx := row*l.cols + lx/l.tileW
			if idx != last {
				info = l.Cell(idx)
				g = l.element(info.Gfx)
				cell = g.Cell(info.Code, info.FlipX, info.FlipY)
				last = idx
			}
			pix := cell[py*g.width+lx%l.tileW]
			if int(pix) == l.transPen {
				continue
			}
			out[dx-r.Min.X] = g.Pen(info.Color, pix)
		}
	}
}
