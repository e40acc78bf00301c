package dogfgt

import (
	"errors"
)

const (
	serializeVersion = 1
	// SerializeSize is the total bytes needed for board serialization.
	// version(1) + bgRAM(2048) + spriteRAM(96) + paletteRAM(16) +
	// scroll(4) + planeSelect(1) + control(1) + bitmap(3*8192)
	SerializeSize = 1 + bgRAMSize + spriteRAMSize + paletteRAMSize + 4 + 1 + 1 + bitmapPlanes*bitmapPlaneSize
)

// Serialize writes board state to buf. buf must be at least SerializeSize
// bytes.
func (b *Board) Serialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("dogfgt serialize buffer too small")
	}

	offset := 0

	buf[offset] = serializeVersion
	offset++

	copy(buf[offset:], b.bgRAM[:])
	offset += len(b.bgRAM)
	copy(buf[offset:], b.spriteRAM[:])
	offset += len(b.spriteRAM)
	copy(buf[offset:], b.paletteRAM[:])
	offset += len(b.paletteRAM)

	// Registers
	copy(buf[offset:], b.scroll[:])
	offset += len(b.scroll)
	buf[offset] = b.planeSelect
	offset++
	buf[offset] = b.control
	offset++

	// Bitmap planes
	copy(buf[offset:], b.bitmap.RAM())

	return nil
}

// Deserialize reads board state from buf. buf must be at least
// SerializeSize bytes.
func (b *Board) Deserialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("dogfgt deserialize buffer too small")
	}

	offset := 0

	version := buf[offset]
	offset++
	if version > serializeVersion {
		return errors.New("unsupported dogfgt state version")
	}

	copy(b.bgRAM[:], buf[offset:])
	offset += len(b.bgRAM)
	copy(b.spriteRAM[:], buf[offset:])
	offset += len(b.spriteRAM)
	for i := range b.paletteRAM {
		b.WritePaletteRAM(i, buf[offset+i])
	}
	offset += len(b.paletteRAM)

	copy(b.scroll[:], buf[offset:])
	offset += len(b.scroll)
	b.planeSelect = buf[offset]
	offset++
	b.control = buf[offset]
	offset++

	b.bitmap.Restore(buf[offset:offset+bitmapPlanes*bitmapPlaneSize], b.flip(), b.pixColor())
	b.bg.MarkAllDirty()

	return nil
}
