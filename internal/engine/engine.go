// Package engine ties the CPU, its three hardware timers, and the DSP
// together into a single sound-chip unit, advancing the CPU exactly far
// enough between calls to trigger one DSP sample emission.
package engine

import (
	"github.com/spc-sound/spc700emu/internal/cpu"
	"github.com/spc-sound/spc700emu/internal/dsp"
)

// cyclesPerSample is the number of CPU cycles between DSP sample
// emissions: one DSP sample is emitted every 64 CPU cycles.
const cyclesPerSample = 64

// Engine is a complete, runnable instance of the sound subsystem.
type Engine struct {
	CPU    *cpu.CPU
	Mem    *cpu.Memory
	DSP    *dsp.DSP
	timers [3]*cpu.Timer

	cycleAccum int
}

// New constructs an Engine with the boot ROM installed and every
// subsystem wired together.
func New() *Engine {
	mem := cpu.NewMemory()

	t0 := cpu.NewTimer(256)
	t1 := cpu.NewTimer(256)
	t2 := cpu.NewTimer(32)
	mem.SetTimers(t0, t1, t2)

	d := dsp.New(mem)
	mem.SetDSP(d)
	mem.LoadROM(BootROM)

	c := cpu.New(mem)

	return &Engine{
		CPU:    c,
		Mem:    mem,
		DSP:    d,
		timers: [3]*cpu.Timer{t0, t1, t2},
	}
}

// LoadRAM overlays a full 64 KiB RAM image, e.g. from a snapshot, and
// leaves the CPU's registers untouched (callers set PC separately).
func (e *Engine) LoadRAM(ram [65536]byte) {
	e.Mem.LoadRAM(ram)
}

// Reset sets the program counter, typically to $FFC0 for a cold boot via
// the IPL ROM, or to a snapshot's saved PC.
func (e *Engine) Reset(pc uint16) {
	e.CPU.Reg.PC = pc
	e.cycleAccum = 0
}

// NextSample runs the CPU and timers forward until exactly one sample
// period has elapsed and returns the DSP's mixed stereo output.
func (e *Engine) NextSample() (left, right int16) {
	for e.cycleAccum < cyclesPerSample {
		n := e.CPU.Step()
		e.cycleAccum += n
		for _, t := range e.timers {
			t.Cycles(n)
		}
	}
	e.cycleAccum -= cyclesPerSample
	return e.DSP.Mix()
}
