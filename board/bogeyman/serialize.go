package bogeyman

import (
	"errors"
)

const (
	serializeVersion = 1
	// SerializeSize is the total bytes needed for board serialization.
	// version(1) + videoRAM(256) + colorRAM(256) + videoRAM2(1024) +
	// colorRAM2(1024) + spriteRAM(1024) + paletteRAM(16) + colBank(1) + flip(1)
	SerializeSize = 1 + 2*bgRAMSize + 2*fgRAMSize + spriteRAMSize + paletteRAMSize + 1 + 1
)

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Serialize writes board state to buf. buf must be at least SerializeSize
// bytes.
func (b *Board) Serialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("bogeyman serialize buffer too small")
	}

	offset := 0

	buf[offset] = serializeVersion
	offset++

	for _, ram := range [][]uint8{b.videoRAM[:], b.colorRAM[:], b.videoRAM2[:], b.colorRAM2[:], b.spriteRAM[:], b.paletteRAM[:]} {
		copy(buf[offset:], ram)
		offset += len(ram)
	}

	buf[offset] = b.colBank
	offset++
	buf[offset] = boolByte(b.flip)

	return nil
}

// Deserialize reads board state from buf. buf must be at least
// SerializeSize bytes.
func (b *Board) Deserialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("bogeyman deserialize buffer too small")
	}

	offset := 0

	version := buf[offset]
	offset++
	if version > serializeVersion {
		return errors.New("unsupported bogeyman state version")
	}

	for _, ram := range [][]uint8{b.videoRAM[:], b.colorRAM[:], b.videoRAM2[:], b.colorRAM2[:], b.spriteRAM[:]} {
		copy(ram, buf[offset:])
		offset += len(ram)
	}
	for i := range b.paletteRAM {
		b.WritePaletteRAM(i, buf[offset+i])
	}
	offset += len(b.paletteRAM)

	b.colBank = buf[offset] & 0x01
	offset++
	b.flip = buf[offset] != 0

	b.bg.MarkAllDirty()
	b.fg.MarkAllDirty()

	return nil
}
