// Package adapter exposes the video boards to eblitui frontends. A core
// only draws frames: audio is silent and input is ignored.
package adapter

import (
	"hash/crc32"

	emucore "github.com/user-none/eblitui/api"
	"github.com/user-none/emarc/romset"
)

const (
	Name    = "emarc"
	Version = "0.1.0"
)

// Compile-time interface checks.
var (
	_ emucore.CoreFactory = (*Factory)(nil)
	_ emucore.Emulator    = (*Core)(nil)
	_ emucore.SaveStater  = (*Core)(nil)
)

// Factory implements emucore.CoreFactory for one machine.
type Factory struct {
	Machine Machine
}

// NewFactory returns a factory for m.
func NewFactory(m Machine) *Factory {
	return &Factory{Machine: m}
}

// SystemInfo returns system metadata for UI configuration.
func (f *Factory) SystemInfo() emucore.SystemInfo {
	m := f.Machine
	return emucore.SystemInfo{
		Name:            Name + "-" + m.Name,
		ConsoleName:     m.Title,
		Extensions:      []string{".bin"},
		ScreenWidth:     m.Width(),
		MaxScreenHeight: m.Height(),
		AspectRatio:     m.AspectRatio,
		SampleRate:      48000,
		Players:         1,
		DataDirName:     Name,
		CoreName:        Name,
		CoreVersion:     Version,
		SerializeSize:   stateHeaderSize + m.StateSize,
	}
}

// CreateEmulator creates a core from rom, which holds the machine's ROM
// regions back to back. Region only affects the reported timing.
func (f *Factory) CreateEmulator(rom []byte, region emucore.Region) (emucore.Emulator, error) {
	return NewCore(f.Machine, rom, region)
}

// DetectRegion always reports NTSC. Arcade boards have no region header.
func (f *Factory) DetectRegion(rom []byte) (emucore.Region, bool) {
	return emucore.RegionNTSC, false
}

// Core runs one board.
type Core struct {
	machine Machine
	board   Board
	region  emucore.Region
	romCRC  uint32
}

// NewCore splits rom into the machine's regions and builds its board.
func NewCore(m Machine, rom []byte, region emucore.Region) (*Core, error) {
	set, err := romset.Split(rom, m.Regions)
	if err != nil {
		return nil, err
	}
	return NewCoreFromSet(m, set, region)
}

// NewCoreFromSet builds a core from already loaded regions.
func NewCoreFromSet(m Machine, set romset.Set, region emucore.Region) (*Core, error) {
	b, err := m.New(set)
	if err != nil {
		return nil, err
	}
	return &Core{
		machine: m,
		board:   b,
		region:  region,
		romCRC:  crc32.ChecksumIEEE(romset.Concat(set, m.Regions)),
	}, nil
}

// Machine returns the machine the core runs.
func (c *Core) Machine() Machine { return c.machine }

// Board returns the video board, for hosts that drive its registers.
func (c *Core) Board() Board { return c.board }

// RunFrame draws one frame of the visible area.
func (c *Core) RunFrame() {
	c.board.DrawFrame(c.board.VisibleArea())
}

// GetFramebuffer returns the last frame as RGBA pixel data.
func (c *Core) GetFramebuffer() []byte {
	return c.board.Framebuffer().Pix
}

// GetFramebufferStride returns bytes per row in the framebuffer.
func (c *Core) GetFramebufferStride() int {
	return c.board.Framebuffer().Stride
}

// GetActiveHeight returns the displayed height.
func (c *Core) GetActiveHeight() int {
	return c.machine.Height()
}

// GetAudioSamples returns nil. The boards have no sound hardware here.
func (c *Core) GetAudioSamples() []int16 { return nil }

// SetInput is ignored.
func (c *Core) SetInput(player int, buttons uint32) {}

// GetRegion returns the region the core was created with.
func (c *Core) GetRegion() emucore.Region { return c.region }

// SetRegion records region. Timing does not depend on it.
func (c *Core) SetRegion(region emucore.Region) { c.region = region }

// GetTiming returns the board refresh rate and line count.
func (c *Core) GetTiming() emucore.Timing {
	return emucore.Timing{
		FPS:       c.machine.FPS,
		Scanlines: c.machine.Scanlines,
	}
}

// SetOption is ignored. There are no core options.
func (c *Core) SetOption(key string, value string) {}

// Reset returns the board to its power-on state.
func (c *Core) Reset() { c.board.Reset() }

// Close releases nothing.
func (c *Core) Close() {}
