// Package snapshot parses the well-known .spc700 snapshot container: a
// fixed-offset header (register file, title metadata) followed by a full
// 64 KiB RAM image and the 128-byte DSP register file, read with plain
// fixed-offset encoding/binary field reads.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

const (
	headerMagic    = "SNES-SPC700 Sound File Data v0.30"
	offsetPC       = 0x25
	offsetA        = 0x27
	offsetX        = 0x28
	offsetY        = 0x29
	offsetPSW      = 0x2A
	offsetSP       = 0x2B
	offsetRAM      = 0x100
	ramSize        = 65536
	offsetDSPRegs  = offsetRAM + ramSize
	dspRegsSize    = 128
)

// Snapshot is a fully decoded .spc700 capture: CPU register state plus the
// RAM and DSP register images needed to resume execution exactly where it
// was captured.
type Snapshot struct {
	PC       uint16
	A, X, Y  uint8
	PSW      uint8
	SP       uint8
	RAM      [65536]byte
	DSPRegs  [128]byte
}

// Load reads and decodes a snapshot file from path.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a snapshot already read into memory.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < offsetDSPRegs+dspRegsSize {
		return nil, errors.New("snapshot: file too short")
	}
	if string(data[:len(headerMagic)]) != headerMagic {
		return nil, fmt.Errorf("snapshot: bad magic %q", data[:len(headerMagic)])
	}

	s := &Snapshot{
		PC:  binary.LittleEndian.Uint16(data[offsetPC:]),
		A:   data[offsetA],
		X:   data[offsetX],
		Y:   data[offsetY],
		PSW: data[offsetPSW],
		SP:  data[offsetSP],
	}
	copy(s.RAM[:], data[offsetRAM:offsetRAM+ramSize])
	copy(s.DSPRegs[:], data[offsetDSPRegs:offsetDSPRegs+dspRegsSize])
	return s, nil
}
