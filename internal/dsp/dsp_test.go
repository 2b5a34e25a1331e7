package dsp

import "testing"

// ramBus is an in-memory Bus stub for tests that need raw sample/echo data
// without a real cpu.Memory instance.
type ramBus struct {
	ram [65536]byte
}

func (b *ramBus) RawRead(addr uint16) uint8     { return b.ram[addr] }
func (b *ramBus) RawWrite(addr uint16, v uint8) { b.ram[addr] = v }

func requireEqualDSP(t *testing.T, name string, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
}

func TestEnvelopeAttackRampsToDecayBoundary(t *testing.T) {
	e := NewEnvelope()
	e.SetADSR(0x8F, 0x00) // enabled, attack rate 15 (fast), decay 0, sustain rate 0
	e.KeyOn()
	for i := 1; i <= 4; i++ {
		e.Advance(i)
	}
	if e.Level < 0x7E0 {
		t.Fatalf("expected attack to reach decay boundary quickly, got level %d", e.Level)
	}
	requireEqualDSP(t, "stage", e.Stage, StageDecay)
}

func TestEnvelopeKeyOffForcesRelease(t *testing.T) {
	e := NewEnvelope()
	e.SetADSR(0x80, 0xE0)
	e.KeyOn()
	e.Level = 0x400
	e.Stage = StageSustain
	e.KeyOff()
	requireEqualDSP(t, "stage", e.Stage, StageRelease)
	prev := e.Level
	e.Advance(1)
	if e.Level >= prev {
		t.Fatalf("expected release to decrease level, got %d -> %d", prev, e.Level)
	}
}

func TestEnvelopeDirectGain(t *testing.T) {
	e := NewEnvelope()
	e.SetGain(0x40) // bit7 clear: direct level 0x40
	requireEqualDSP(t, "level", e.Level, 0x40<<4)
}

func TestBRRBlockDecodeShiftZeroIsSilent(t *testing.T) {
	var block [9]byte
	block[0] = 0x00 // shift=0, filter=0, no loop, no end
	samples, header := DecodeBRRBlock(block, 0, 0)
	requireEqualDSP(t, "end", header.End, false)
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
}

func TestBRRBlockEndFlagWithoutLoopStops(t *testing.T) {
	var block [9]byte
	block[0] = 0x01 // end flag set, loop clear
	_, header := DecodeBRRBlock(block, 0, 0)
	requireEqualDSP(t, "end", header.End, true)
	requireEqualDSP(t, "loop", header.Loop, false)
}

func TestVoiceKeyOnReadsSampleDirectory(t *testing.T) {
	bus := &ramBus{}
	bus.ram[0x0400] = 0x00 // start lo
	bus.ram[0x0401] = 0x06 // start hi -> 0x0600
	bus.ram[0x0402] = 0x00 // loop lo
	bus.ram[0x0403] = 0x06 // loop hi -> 0x0600
	bus.ram[0x0600] = 0x01 // BRR header: end flag set, shift 0

	env := NewEnvelope()
	v := NewVoice(bus, env)
	v.SetSourceDirectory(0x0400)
	v.SetSRCN(0)
	v.KeyOn()

	if !v.Active() {
		t.Fatal("expected voice active immediately after key-on")
	}
}

func TestFIRSaturates(t *testing.T) {
	f := NewFIR()
	for i := 0; i < 8; i++ {
		f.SetCoeff(i, 127)
	}
	var out int32
	for i := 0; i < 16; i++ {
		out = f.Apply(0x7FFF)
	}
	if out > 0x7FFF || out < -0x8000 {
		t.Fatalf("expected saturated output, got %d", out)
	}
}

func TestGaussianInterpolateNonzeroAtZero(t *testing.T) {
	out := GaussianInterpolate(0, 0, 1000, 0, 0)
	if out == 0 {
		t.Fatal("expected nonzero interpolated output for nonzero tap")
	}
}

func TestDSPRegisterRoundTrip(t *testing.T) {
	bus := &ramBus{}
	d := New(bus)
	d.WriteRegister(0x00, 0x40) // voice 0 VOLL
	requireEqualDSP(t, "voll", d.ReadRegister(0x00), uint8(0x40))
	requireEqualDSP(t, "voice vol", d.voices[0].Vol[0], int8(0x40))
}

func TestEnvelopeTicksOnSharedGlobalCounter(t *testing.T) {
	// Two envelopes on the same rate must fire on the same global cycles
	// regardless of when each was individually keyed on - this is the
	// cross-voice phase relationship the global counter exists to model.
	a := NewEnvelope()
	a.SetADSR(0x80, 0x1F) // sustain rate 31 (fastest), so StageSustain ticks every sample
	a.Stage = StageSustain
	a.Level = 0x400

	b := NewEnvelope()
	b.SetADSR(0x80, 0x1F)
	b.Stage = StageSustain
	b.Level = 0x400

	for cycle := 1; cycle <= 3; cycle++ {
		a.Advance(cycle)
		b.Advance(cycle)
	}
	requireEqualDSP(t, "level", a.Level, b.Level)
}

func TestVoiceKeyOnDelaySilencesInitialSamples(t *testing.T) {
	bus := &ramBus{}
	bus.ram[0x0400] = 0x00
	bus.ram[0x0401] = 0x06
	bus.ram[0x0402] = 0x00
	bus.ram[0x0403] = 0x06
	bus.ram[0x0600] = 0x00 // shift 0, no end - keeps voice active

	env := NewEnvelope()
	v := NewVoice(bus, env)
	v.SetSourceDirectory(0x0400)
	v.SetSRCN(0)
	v.SetPitch(pitchUnity)
	v.KeyOn()

	for i := 0; i < keyOnDelaySamples; i++ {
		if out := v.Step(i+1, false, 0); out != 0 {
			t.Fatalf("expected silence during key-on delay at sample %d, got %d", i, out)
		}
	}
}

func TestPMONModulatesPitchFromPrecedingVoice(t *testing.T) {
	bus := &ramBus{}
	env := NewEnvelope()
	v := NewVoice(bus, env)
	v.SetPitch(0x1000)
	v.active = true
	v.keyOnDelay = 0

	baseline := v.pitchCounter
	v.Step(1, false, 0)
	unmodulated := v.pitchCounter - baseline

	v2 := NewVoice(bus, NewEnvelope())
	v2.SetPitch(0x1000)
	v2.active = true
	v2.keyOnDelay = 0
	baseline2 := v2.pitchCounter
	v2.Step(1, true, 0x4000) // large positive modulation source
	modulated := v2.pitchCounter - baseline2

	if modulated <= unmodulated {
		t.Fatalf("expected PMON to increase effective pitch, got unmodulated=%d modulated=%d", unmodulated, modulated)
	}
}

func TestMixWritesEchoIntoSharedRAM(t *testing.T) {
	bus := &ramBus{}
	d := New(bus)
	d.WriteRegister(regESA, 0x10) // echo RAM base 0x1000
	d.WriteRegister(regEDL, 0x01)
	d.WriteRegister(regFLG, 0x00) // echo write enabled, not muted/reset

	addr := d.echoAddr(0)
	bus.ram[addr] = 0xAB
	bus.ram[addr+1] = 0xCD

	d.Mix()

	if bus.ram[addr] == 0xAB && bus.ram[addr+1] == 0xCD {
		t.Fatal("expected Mix to overwrite the echo RAM slot at (ESA<<8)+echoPos*4")
	}
	if d.echoPos != 1%d.echoLen() {
		t.Fatalf("expected echo position to advance, got %d", d.echoPos)
	}
}

func TestMixHonorsEchoWriteDisable(t *testing.T) {
	bus := &ramBus{}
	d := New(bus)
	d.WriteRegister(regESA, 0x10)
	d.WriteRegister(regEDL, 0x01)
	d.WriteRegister(regEFB, 127)
	d.WriteRegister(regEON, 0xFF)
	addr := d.echoAddr(0)
	bus.ram[addr] = 0xAB
	bus.ram[addr+1] = 0xCD

	d.WriteRegister(regFLG, flgEchoWriteDisable)
	d.Mix()

	if bus.ram[addr] != 0xAB || bus.ram[addr+1] != 0xCD {
		t.Fatal("expected echo RAM untouched when FLG echo-write-disable is set")
	}
}

func TestGaussianInterpolateOutputIsEven(t *testing.T) {
	out := GaussianInterpolate(1234, -5678, 910, -1112, 77)
	if out&1 != 0 {
		t.Fatalf("expected interpolated output's low bit cleared, got %d", out)
	}
}

func TestDSPKeyOnKeyOff(t *testing.T) {
	bus := &ramBus{}
	bus.ram[0x0000] = 0x00
	bus.ram[0x0001] = 0x06
	bus.ram[0x0002] = 0x00
	bus.ram[0x0003] = 0x06
	bus.ram[0x0600] = 0x01 // silent, end, no loop

	d := New(bus)
	d.WriteRegister(regDIR, 0x00)
	d.WriteRegister(regKON, 0x01)
	if !d.voices[0].active {
		t.Fatal("expected voice 0 active after KON")
	}
	d.WriteRegister(regKOFF, 0x01)
	if d.envs[0].Stage != StageRelease && d.envs[0].Stage != StageOff {
		t.Fatalf("expected voice 0 releasing after KOFF, got stage %v", d.envs[0].Stage)
	}
}
