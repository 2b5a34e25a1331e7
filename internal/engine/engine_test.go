package engine

import "testing"

func TestNewEngineColdBootRunsWithoutPanicking(t *testing.T) {
	e := New()
	e.Reset(0xFFC0)
	for i := 0; i < 64; i++ {
		e.NextSample()
	}
}

func TestLoadRAMOverridesMemory(t *testing.T) {
	e := New()
	var ram [65536]byte
	ram[0x0200] = 0x00 // NOP
	e.LoadRAM(ram)
	e.Reset(0x0200)
	cycles := e.CPU.Step()
	if cycles != 2 {
		t.Fatalf("expected NOP to cost 2 cycles, got %d", cycles)
	}
}

func TestNextSampleAdvancesByFixedCycleBudget(t *testing.T) {
	e := New()
	var ram [65536]byte
	for i := 0; i < 1024; i++ {
		ram[0x0200+i] = 0x00 // NOP stream
	}
	e.LoadRAM(ram)
	e.Reset(0x0200)
	startPC := e.CPU.Reg.PC
	e.NextSample()
	if e.CPU.Reg.PC <= startPC {
		t.Fatal("expected PC to advance after producing a sample")
	}
}

// A DSP sample is emitted every 64 CPU cycles, not 32 - a NOP costs 2
// cycles, so one NextSample call over an all-NOP stream must advance PC
// by exactly 32 NOPs (64 cycles), pinning the cycles-per-sample budget.
func TestNextSampleUses64CycleBudget(t *testing.T) {
	e := New()
	var ram [65536]byte
	for i := 0; i < 1024; i++ {
		ram[0x0200+i] = 0x00 // NOP stream
	}
	e.LoadRAM(ram)
	e.Reset(0x0200)
	startPC := e.CPU.Reg.PC
	e.NextSample()
	advanced := e.CPU.Reg.PC - startPC
	if advanced != 32 {
		t.Fatalf("expected PC to advance by 32 (64 cycles / 2 cycles-per-NOP), got %d", advanced)
	}
}
