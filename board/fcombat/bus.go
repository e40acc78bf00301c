package fcombat

import "github.com/user-none/go-chip-z80"

var _ z80.Bus = (*Bus)(nil)

// Memory is the part of the CPU address space outside the video hardware:
// program ROM, work RAM, inputs and the sound latch.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Bus implements z80.Bus for the main CPU, decoding the video addresses
// and passing everything else to a host Memory.
//
// Video memory map:
//
//	0xD000-0xD7FF  text RAM
//	0xD800-0xD8FF  sprite RAM
//	0xE800         video control register (write)
//	0xE900         background vertical scroll (write)
//	0xEA00         background horizontal scroll, low byte (write)
//	0xEB00         background horizontal scroll, high byte (write)
type Bus struct {
	board *Board
	mem   Memory
}

// NewBus creates a Bus for board. mem may be nil, in which case reads
// outside the video hardware return 0xFF and writes are dropped.
func NewBus(board *Board, mem Memory) *Bus {
	return &Bus{board: board, mem: mem}
}

// Fetch reads an opcode byte. There is no M1-specific decoding.
func (b *Bus) Fetch(addr uint16) uint8 {
	return b.Read(addr)
}

// Read reads a byte from the CPU address space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr >= 0xd000 && addr < 0xd800:
		return b.board.ReadVideoRAM(int(addr - 0xd000))
	case addr >= 0xd800 && addr < 0xd900:
		return b.board.ReadSpriteRAM(int(addr - 0xd800))
	}
	if b.mem == nil {
		return 0xff
	}
	return b.mem.Read(addr)
}

// Write writes a byte to the CPU address space.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr >= 0xd000 && addr < 0xd800:
		b.board.WriteVideoRAM(int(addr-0xd000), val)
	case addr >= 0xd800 && addr < 0xd900:
		b.board.WriteSpriteRAM(int(addr-0xd800), val)
	case addr == 0xe800:
		b.board.WriteVideoReg(val)
	case addr == 0xe900:
		b.board.WriteScrollH(val)
	case addr == 0xea00:
		b.board.WriteScrollVLow(val)
	case addr == 0xeb00:
		b.board.WriteScrollVHigh(val)
	default:
		if b.mem != nil {
			b.mem.Write(addr, val)
		}
	}
}

// In reads an I/O port. The board decodes no ports.
func (b *Bus) In(port uint16) uint8 {
	return 0xff
}

// Out writes an I/O port.
func (b *Bus) Out(port uint16, val uint8) {}
