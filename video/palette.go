package video

import (
	"image/color"
)

// ResistorWeights are the DAC contributions of the three resistors on each
// colour channel, lowest weight first. 0x21 + 0x47 + 0x97 = 0xff.
var ResistorWeights = [3]int{0x21, 0x47, 0x97}

// NoBit marks a resistor that is tied low.
const NoBit = -1

// BitRef selects one bit from one byte plane of a colour PROM.
type BitRef struct {
	Plane int
	Bit   int
}

// ChannelBits lists the bits driving one channel, lowest weight first.
type ChannelBits [3]BitRef

// PaletteLayout describes how a colour PROM is wired to the DAC.
type PaletteLayout struct {
	Entries int
	// PlaneStride is the distance in bytes between the byte planes.
	PlaneStride int
	Red         ChannelBits
	Green       ChannelBits
	Blue        ChannelBits
}

// LayoutA is a single PROM with one byte per entry:
// red = bits 0-2, green = bits 3-5, blue = bits 6-7.
func LayoutA(entries int) PaletteLayout {
	return PaletteLayout{
		Entries:     entries,
		PlaneStride: entries,
		Red:         ChannelBits{{0, 0}, {0, 1}, {0, 2}},
		Green:       ChannelBits{{0, 3}, {0, 4}, {0, 5}},
		Blue:        ChannelBits{{0, NoBit}, {0, 6}, {0, 7}},
	}
}

// LayoutB is two parallel PROMs of entries bytes each:
// red = plane0 bits 0-2, green = plane0 bit 3 + plane1 bits 0-1,
// blue = plane1 bits 2-3.
func LayoutB(entries int) PaletteLayout {
	return PaletteLayout{
		Entries:     entries,
		PlaneStride: entries,
		Red:         ChannelBits{{0, 0}, {0, 1}, {0, 2}},
		Green:       ChannelBits{{0, 3}, {1, 0}, {1, 1}},
		Blue:        ChannelBits{{1, NoBit}, {1, 2}, {1, 3}},
	}
}

// PROMSize returns the number of PROM bytes the layout reads.
func (l PaletteLayout) PROMSize() int {
	planes := 0
	for _, ch := range [3]ChannelBits{l.Red, l.Green, l.Blue} {
		for _, b := range ch {
			if b.Bit != NoBit && b.Plane+1 > planes {
				planes = b.Plane + 1
			}
		}
	}
	if planes <= 1 {
		return l.Entries
	}
	return (planes-1)*l.PlaneStride + l.Entries
}

// ResistorChannel returns the DAC level for three resistor bits, lowest
// weight first.
func ResistorChannel(b0, b1, b2 int) uint8 {
	return uint8(b0*ResistorWeights[0] + b1*ResistorWeights[1] + b2*ResistorWeights[2])
}

func (l PaletteLayout) channel(prom []byte, i int, ch ChannelBits) uint8 {
	var bits [3]int
	for k, ref := range ch {
		if ref.Bit == NoBit {
			continue
		}
		bits[k] = int(prom[ref.Plane*l.PlaneStride+i]>>uint(ref.Bit)) & 1
	}
	return ResistorChannel(bits[0], bits[1], bits[2])
}

// DerivePalette converts a colour PROM into layout.Entries colours. The PROM
// must be at least layout.PROMSize() bytes; callers validate this when the
// board is configured.
func DerivePalette(prom []byte, layout PaletteLayout) []color.RGBA {
	out := make([]color.RGBA, layout.Entries)
	for i := range out {
		out[i] = color.RGBA{
			R: layout.channel(prom, i, layout.Red),
			G: layout.channel(prom, i, layout.Green),
			B: layout.channel(prom, i, layout.Blue),
			A: 0xff,
		}
	}
	return out
}

// DecodeRGB233 decodes a palette RAM byte with red in bits 0-2, green in
// bits 3-5 and blue in bits 6-7. Boards with inverting drivers on the RAM
// outputs set inverted.
func DecodeRGB233(v uint8, inverted bool) color.RGBA {
	if inverted {
		v = ^v
	}
	r := v & 0x07
	g := (v >> 3) & 0x07
	b := (v >> 6) & 0x03
	return color.RGBA{
		R: (r << 5) | (r << 2) | (r >> 1),
		G: (g << 5) | (g << 2) | (g >> 1),
		B: b * 0x55,
		A: 0xff,
	}
}

// Palette maps pens to colours. A direct palette has one colour per pen; an
// indirect palette routes each pen through a lookup into a smaller colour
// table.
type Palette struct {
	colors []color.RGBA
	pens   []uint16
}

// NewPalette creates a direct palette of n pens, all black.
func NewPalette(n int) *Palette {
	p := &Palette{colors: make([]color.RGBA, n)}
	for i := range p.colors {
		p.colors[i].A = 0xff
	}
	return p
}

// NewIndirectPalette creates a palette of pens entries routed through a
// table of colors entries.
func NewIndirectPalette(colors, pens int) *Palette {
	p := NewPalette(colors)
	p.pens = make([]uint16, pens)
	return p
}

// Len returns the number of pens.
func (p *Palette) Len() int {
	if p.pens != nil {
		return len(p.pens)
	}
	return len(p.colors)
}

// SetColor sets colour table entry i.
func (p *Palette) SetColor(i int, c color.RGBA) {
	if i >= 0 && i < len(p.colors) {
		p.colors[i] = c
	}
}

// SetColors copies cs into the colour table starting at entry base.
func (p *Palette) SetColors(base int, cs []color.RGBA) {
	for i, c := range cs {
		p.SetColor(base+i, c)
	}
}

// SetPenIndirect routes pen through colour table entry idx.
func (p *Palette) SetPenIndirect(pen int, idx uint16) {
	if pen >= 0 && pen < len(p.pens) {
		p.pens[pen] = idx
	}
}

// PenIndirect returns the colour table entry pen is routed through. Pens
// past the end wrap, as in Pen.
func (p *Palette) PenIndirect(pen int) uint16 {
	if p.pens == nil {
		return uint16(wrapMod(pen, len(p.colors)))
	}
	return p.pens[wrapMod(pen, len(p.pens))]
}

// Color returns colour table entry i.
func (p *Palette) Color(i int) color.RGBA {
	return p.colors[i]
}

// Pen returns the colour a pen resolves to. Pens past the end wrap.
func (p *Palette) Pen(pen uint16) color.RGBA {
	if p.pens != nil {
		return p.colors[int(p.pens[int(pen)%len(p.pens)])%len(p.colors)]
	}
	return p.colors[int(pen)%len(p.colors)]
}
