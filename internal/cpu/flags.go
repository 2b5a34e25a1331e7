// Package cpu implements the 8-bit sound-CPU interpreter: registers, flags,
// the 64 KiB memory map with its memory-mapped I/O region, the three
// divider timers, and the 256-entry opcode dispatch table.
package cpu

// Flags holds the eight PSW condition bits. Bit layout on the wire (Get/Set)
// is N V P B H I Z C, matching the PSW byte from MSB to LSB.
type Flags struct {
	N bool // sign
	V bool // overflow
	P bool // direct page select: false -> $0000, true -> $0100
	B bool // break
	H bool // half carry (nibble carry, used by DAA/DAS)
	I bool // interrupt enable
	Z bool // zero
	C bool // carry
}

// NewFlags returns the cold-start PSW: all flags clear except Z.
func NewFlags() Flags {
	return Flags{Z: true}
}

// Get packs the flags into a PSW byte.
func (f Flags) Get() uint8 {
	var v uint8
	if f.N {
		v |= 0x80
	}
	if f.V {
		v |= 0x40
	}
	if f.P {
		v |= 0x20
	}
	if f.B {
		v |= 0x10
	}
	if f.H {
		v |= 0x08
	}
	if f.I {
		v |= 0x04
	}
	if f.Z {
		v |= 0x02
	}
	if f.C {
		v |= 0x01
	}
	return v
}

// Set unpacks a PSW byte into the flags.
func (f *Flags) Set(psw uint8) {
	f.N = psw&0x80 != 0
	f.V = psw&0x40 != 0
	f.P = psw&0x20 != 0
	f.B = psw&0x10 != 0
	f.H = psw&0x08 != 0
	f.I = psw&0x04 != 0
	f.Z = psw&0x02 != 0
	f.C = psw&0x01 != 0
}

// SetNZ sets N and Z from an 8-bit result, leaving other flags untouched.
func (f *Flags) SetNZ(v uint8) {
	f.N = v&0x80 != 0
	f.Z = v == 0
}

// SetNZ16 sets N and Z from a 16-bit result.
func (f *Flags) SetNZ16(v uint16) {
	f.N = v&0x8000 != 0
	f.Z = v == 0
}
