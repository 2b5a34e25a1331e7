package cpu

import "testing"

// newCPUTestRig builds a CPU with a fresh memory bus, a no-op DSP stub, and
// three disabled timers, ready to run small hand-assembled programs.
type stubDSP struct{}

func (stubDSP) ReadRegister(uint8) uint8     { return 0 }
func (stubDSP) WriteRegister(uint8, uint8) {}

func newCPUTestRig() (*CPU, *Memory) {
	mem := NewMemory()
	t0, t1, t2 := NewTimer(256), NewTimer(256), NewTimer(32)
	mem.SetTimers(t0, t1, t2)
	mem.SetDSP(stubDSP{})
	c := New(mem)
	return c, mem
}

func (c *CPU) loadAndRun(mem *Memory, pc uint16, program []byte, steps int) {
	for i, b := range program {
		mem.Write(pc+uint16(i), b)
	}
	c.Reg.PC = pc
	for i := 0; i < steps; i++ {
		c.Step()
	}
}

func requireEqual(t *testing.T, name string, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestMovImmSetsFlags(t *testing.T) {
	c, mem := newCPUTestRig()
	c.loadAndRun(mem, 0x0200, []byte{0xE8, 0x00}, 1) // MOV A,#$00
	requireEqual(t, "A", c.Reg.A, uint8(0))
	requireEqual(t, "Z", c.Reg.PSW.Z, true)
	requireEqual(t, "N", c.Reg.PSW.N, false)
}

func TestAdcSetsOverflowWithoutCarry(t *testing.T) {
	c, mem := newCPUTestRig()
	c.Reg.A = 0x7F
	c.loadAndRun(mem, 0x0200, []byte{0x88, 0x01}, 1) // ADC A,#$01
	requireEqual(t, "A", c.Reg.A, uint8(0x80))
	requireEqual(t, "V", c.Reg.PSW.V, true)
	requireEqual(t, "N", c.Reg.PSW.N, true)
	requireEqual(t, "C", c.Reg.PSW.C, false)
}

func TestSbcIsComplementedAdc(t *testing.T) {
	c, mem := newCPUTestRig()
	c.Reg.A = 0x10
	c.Reg.PSW.C = true
	c.loadAndRun(mem, 0x0200, []byte{0xA8, 0x05}, 1) // SBC A,#$05
	requireEqual(t, "A", c.Reg.A, uint8(0x0B))
	requireEqual(t, "C", c.Reg.PSW.C, true)
}

func TestDirectPageBiasedByPFlag(t *testing.T) {
	c, mem := newCPUTestRig()
	c.Reg.PSW.P = true
	mem.Write(0x0150, 0x42)
	c.loadAndRun(mem, 0x0200, []byte{0xE4, 0x50}, 1) // MOV A,$50
	requireEqual(t, "A", c.Reg.A, uint8(0x42))
}

func TestBranchTakenAddsCycles(t *testing.T) {
	c, mem := newCPUTestRig()
	c.Reg.PSW.Z = true
	mem.Write(0x0200, 0xF0) // BEQ
	mem.Write(0x0201, 0x02) // +2
	c.Reg.PC = 0x0200
	cycles := c.Step()
	requireEqual(t, "PC", c.Reg.PC, uint16(0x0204))
	requireEqual(t, "cycles", cycles, cycleTable[0xF0]+2)
}

func TestPushPopRoundTrip(t *testing.T) {
	c, mem := newCPUTestRig()
	c.Reg.SP = 0xFF
	c.Reg.A = 0x55
	c.loadAndRun(mem, 0x0200, []byte{0x2D}, 1) // PUSH A
	c.Reg.A = 0x00
	c.loadAndRun(mem, 0x0201, []byte{0xAE}, 1) // POP A
	requireEqual(t, "A", c.Reg.A, uint8(0x55))
	requireEqual(t, "SP", c.Reg.SP, uint8(0xFF))
}

func TestDivNonRestoring(t *testing.T) {
	c, _ := newCPUTestRig()
	c.Reg.Y = 0x0F
	c.Reg.A = 0x00
	c.Reg.X = 0x10
	opDiv(c)
	// YA = 0x0F00 = 3840, X = 16: 3840/16 = 240 (0xF0), remainder 0.
	requireEqual(t, "A", c.Reg.A, uint8(0xF0))
	requireEqual(t, "Y", c.Reg.Y, uint8(0x00))
}

func TestXcnSwapsNibbles(t *testing.T) {
	c, _ := newCPUTestRig()
	c.Reg.A = 0xAB
	opXcn(c)
	requireEqual(t, "A", c.Reg.A, uint8(0xBA))
}

func TestTimerWrapsAndClearsOnRead(t *testing.T) {
	timer := NewTimer(256)
	timer.Enable()
	timer.WriteDivider(2)
	timer.Cycles(256 * 2)
	requireEqual(t, "output", timer.ReadOut(), uint8(1))
	requireEqual(t, "output after read", timer.ReadOut(), uint8(0))
}

func TestTimerDividerZeroMeans256(t *testing.T) {
	timer := NewTimer(256)
	timer.Enable()
	timer.WriteDivider(0)
	timer.Cycles(256 * 255)
	requireEqual(t, "output before wrap", timer.ReadOut(), uint8(0))
	timer.Cycles(256)
	requireEqual(t, "output after wrap", timer.ReadOut(), uint8(1))
}

func TestControlPortTimerEnable(t *testing.T) {
	_, mem := newCPUTestRig()
	mem.Write(0x00F1, 0x07) // enable T0,T1,T2
	if !mem.timers[0].Enabled() || !mem.timers[1].Enabled() || !mem.timers[2].Enabled() {
		t.Fatal("expected all three timers enabled")
	}
	mem.Write(0x00F1, 0x00)
	if mem.timers[0].Enabled() {
		t.Fatal("expected timer 0 disabled")
	}
}

func TestROMOverlayGatedByWritableBit(t *testing.T) {
	_, mem := newCPUTestRig()
	mem.LoadROM([64]byte{0: 0xAA})
	requireEqual(t, "rom read", mem.Read(0xFFC0), uint8(0xAA))
	mem.Write(0x00F1, 0x80) // romWritable = false (bit set)
	requireEqual(t, "still rom", mem.Read(0xFFC0), uint8(0xAA))
	mem.Write(0x00F1, 0x00) // romWritable = true
	mem.Write(0xFFC0, 0x55)
	requireEqual(t, "ram shadow", mem.Read(0xFFC0), uint8(0x55))
}
