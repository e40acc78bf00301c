package adapter

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "eMARCState\x00\x00"
	stateHeaderSize = 22 // magic(12) + version(2) + romCRC(4) + dataCRC(4)
)

// SerializeSize returns the total size in bytes needed for a save state.
func (c *Core) SerializeSize() int {
	return stateHeaderSize + c.machine.StateSize
}

// Serialize creates a save state and returns it as a byte slice.
func (c *Core) Serialize() ([]byte, error) {
	data := make([]byte, c.SerializeSize())

	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], c.romCRC)

	if err := c.board.Serialize(data[stateHeaderSize:]); err != nil {
		return nil, err
	}

	dataCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	binary.LittleEndian.PutUint32(data[18:22], dataCRC)

	return data, nil
}

// Deserialize restores a save state.
func (c *Core) Deserialize(data []byte) error {
	if err := c.VerifyState(data); err != nil {
		return err
	}
	return c.board.Deserialize(data[stateHeaderSize:])
}

// VerifyState checks a save state without loading it.
func (c *Core) VerifyState(data []byte) error {
	if len(data) < c.SerializeSize() {
		return errors.New("save state too short")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	romCRC := binary.LittleEndian.Uint32(data[14:18])
	if romCRC != c.romCRC {
		return errors.New("save state is for a different ROM")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}
