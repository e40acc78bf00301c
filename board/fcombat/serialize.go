package fcombat

import (
	"errors"
)

const (
	serializeVersion = 1
	// SerializeSize is the total bytes needed for board serialization.
	// version(1) + videoRAM(2048) + spriteRAM(256) + videoReg(1) +
	// scrollH(1) + scrollV(2)
	SerializeSize = 1 + videoRAMSize + spriteRAMSize + 1 + 1 + 2
)

// Serialize writes board state to buf. buf must be at least SerializeSize
// bytes.
func (b *Board) Serialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("fcombat serialize buffer too small")
	}

	offset := 0

	buf[offset] = serializeVersion
	offset++

	copy(buf[offset:], b.videoRAM[:])
	offset += videoRAMSize
	copy(buf[offset:], b.spriteRAM[:])
	offset += spriteRAMSize

	buf[offset] = b.videoReg
	offset++
	buf[offset] = b.scrollH
	offset++
	buf[offset] = uint8(b.scrollV)
	buf[offset+1] = uint8(b.scrollV >> 8)

	return nil
}

// Deserialize reads board state from buf. buf must be at least
// SerializeSize bytes.
func (b *Board) Deserialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("fcombat deserialize buffer too small")
	}

	offset := 0

	version := buf[offset]
	offset++
	if version > serializeVersion {
		return errors.New("unsupported fcombat state version")
	}

	copy(b.videoRAM[:], buf[offset:])
	offset += videoRAMSize
	copy(b.spriteRAM[:], buf[offset:])
	offset += spriteRAMSize

	b.WriteVideoReg(buf[offset])
	offset++
	b.scrollH = buf[offset]
	offset++
	b.scrollV = uint16(buf[offset]) | uint16(buf[offset+1])<<8

	return nil
}
