// Package ebiten shows board frames in an Ebiten window.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/emarc/ui"
)

// Presenter draws RGBA frames of a fixed width scaled to fit the screen.
type Presenter struct {
	width int

	offscreen *ebiten.Image           // Offscreen buffer for native resolution rendering
	drawOpts  ebiten.DrawImageOptions // Pre-allocated draw options to avoid per-frame allocation
}

// NewPresenter creates a presenter for frames width pixels wide.
func NewPresenter(width int) *Presenter {
	return &Presenter{width: width}
}

// Draw renders pixel data to the screen, letterboxed and scaled with
// nearest neighbour filtering.
func (p *Presenter) Draw(screen *ebiten.Image, pixels []byte, stride, height int) {
	if height == 0 || stride == 0 {
		return
	}

	requiredLen := stride * height
	if len(pixels) < requiredLen {
		return
	}

	// Create or resize offscreen buffer if needed
	if p.offscreen == nil || p.offscreen.Bounds().Dy() != height {
		p.offscreen = ebiten.NewImage(p.width, height)
	}

	p.offscreen.WritePixels(pixels[:requiredLen])

	scale, offsetX, offsetY := ui.Fit(screen.Bounds().Dx(), screen.Bounds().Dy(), p.width, height)

	p.drawOpts = ebiten.DrawImageOptions{}
	p.drawOpts.GeoM.Scale(scale, scale)
	p.drawOpts.GeoM.Translate(offsetX, offsetY)
	p.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(p.offscreen, &p.drawOpts)
}

// Layout implements the ebiten.Game sizing rule: the game draws at the
// window's native size.
func (p *Presenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
