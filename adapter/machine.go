package adapter

import (
	"image"

	"github.com/user-none/emarc/board/bogeyman"
	"github.com/user-none/emarc/board/dogfgt"
	"github.com/user-none/emarc/board/fcombat"
	"github.com/user-none/emarc/romset"
)

// Board is the part of a video board the core drives.
type Board interface {
	Reset()
	DrawFrame(clip image.Rectangle) int
	Framebuffer() *image.RGBA
	VisibleArea() image.Rectangle
	Serialize(buf []byte) error
	Deserialize(buf []byte) error
}

// Machine describes one supported board.
type Machine struct {
	// Name is the short name, also used for the data directory.
	Name  string
	Title string
	// Regions are the ROM regions, in the order CreateEmulator expects them
	// concatenated.
	Regions   []romset.Region
	Visible   image.Rectangle
	StateSize int
	FPS       int
	Scanlines int
	// AspectRatio is the displayed width over height.
	AspectRatio float64

	New func(set romset.Set) (Board, error)
}

// Width returns the displayed width in pixels.
func (m Machine) Width() int { return m.Visible.Dx() }

// Height returns the displayed height in pixels.
func (m Machine) Height() int { return m.Visible.Dy() }

var (
	DogFight = Machine{
		Name:        "dogfgt",
		Title:       "Dog-Fight",
		Regions:     dogfgt.Regions,
		Visible:     dogfgt.VisibleArea,
		StateSize:   dogfgt.SerializeSize,
		FPS:         60,
		Scanlines:   256,
		AspectRatio: 4.0 / 3.0,
		New: func(set romset.Set) (Board, error) {
			return dogfgt.NewFromRegions(set)
		},
	}

	BogeyManor = Machine{
		Name:        "bogeyman",
		Title:       "Bogey Manor",
		Regions:     bogeyman.Regions,
		Visible:     bogeyman.VisibleArea,
		StateSize:   bogeyman.SerializeSize,
		FPS:         60,
		Scanlines:   256,
		AspectRatio: 4.0 / 3.0,
		New: func(set romset.Set) (Board, error) {
			return bogeyman.NewFromRegions(set)
		},
	}

	FieldCombat = Machine{
		Name:        "fcombat",
		Title:       "Field Combat",
		Regions:     fcombat.Regions,
		Visible:     fcombat.VisibleArea,
		StateSize:   fcombat.SerializeSize,
		FPS:         60,
		Scanlines:   256,
		AspectRatio: 3.0 / 4.0,
		New: func(set romset.Set) (Board, error) {
			return fcombat.NewFromRegions(set)
		},
	}
)

// Machines lists every supported board.
var Machines = []Machine{DogFight, BogeyManor, FieldCombat}

// Lookup returns the machine with the given short name.
func Lookup(name string) (Machine, bool) {
	for _, m := range Machines {
		if m.Name == name {
			return m, true
		}
	}
	return Machine{}, false
}
