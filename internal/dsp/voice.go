package dsp

// Bus is the DSP's view of the shared 64 KiB address space: raw reads of
// sample directory entries and BRR block data, and raw writes of echo
// delay-line samples, bypassing the CPU's I/O dispatch and ROM overlay.
// This resolves the CPU -> RAM -> DSP cyclic reference from the other
// side: the DSP holds a handle into Memory instead of owning it.
type Bus interface {
	RawRead(addr uint16) uint8
	RawWrite(addr uint16, v uint8)
}

const pitchUnity = 0x1000 // Q12 fixed point: 0x1000 == native playback speed

// keyOnDelaySamples is the number of samples a voice stays silent right
// after KEY ON while the BRR decoder and envelope pipeline warm up.
const keyOnDelaySamples = 5

// Voice is one of the eight BRR playback channels.
type Voice struct {
	bus Bus
	env *Envelope

	dirBase uint16
	srcn    uint8
	pitch   uint16

	curAddr  uint16
	loopAddr uint16
	decoded  [16]int16
	blockPos int

	hist         [4]int32
	pitchCounter uint32

	oldSample1, oldSample2 int32

	active     bool
	endReached bool // current block has the end flag without loop
	keyOnDelay int
	Vol        [2]int8 // left, right, signed 8-bit
}

func NewVoice(bus Bus, env *Envelope) *Voice {
	return &Voice{bus: bus, env: env}
}

func (v *Voice) SetSourceDirectory(addr uint16) { v.dirBase = addr }
func (v *Voice) SetSRCN(srcn uint8)             { v.srcn = srcn }
func (v *Voice) SetPitch(p uint16)              { v.pitch = p & 0x3FFF }

func (v *Voice) sampleDirEntry(srcn uint8) (start, loop uint16) {
	addr := v.dirBase + uint16(srcn)*4
	start = uint16(v.bus.RawRead(addr)) | uint16(v.bus.RawRead(addr+1))<<8
	loop = uint16(v.bus.RawRead(addr+2)) | uint16(v.bus.RawRead(addr+3))<<8
	return
}

// KeyOn starts playback from the sample directory entry for the current
// SRCN and resets the envelope and BRR predictor state.
func (v *Voice) KeyOn() {
	start, loop := v.sampleDirEntry(v.srcn)
	v.curAddr = start
	v.loopAddr = loop
	v.oldSample1, v.oldSample2 = 0, 0
	v.blockPos = 0
	v.hist = [4]int32{}
	v.pitchCounter = 0
	v.active = true
	v.keyOnDelay = keyOnDelaySamples
	v.env.KeyOn()
	v.decodeNextBlock()
}

func (v *Voice) KeyOff() {
	v.env.KeyOff()
}

func (v *Voice) decodeNextBlock() {
	var block [9]byte
	for i := range block {
		block[i] = v.bus.RawRead(v.curAddr + uint16(i))
	}
	samples, header := DecodeBRRBlock(block, v.oldSample1, v.oldSample2)
	v.decoded = samples
	v.oldSample2 = int32(samples[14])
	v.oldSample1 = int32(samples[15])
	v.curAddr += 9

	// An end block without the loop flag still plays; Step stops the voice
	// once playback moves past it.
	v.endReached = header.End && !header.Loop
	if header.End && header.Loop {
		v.curAddr = v.loopAddr
	}
}

func (v *Voice) pushSample(s int16) {
	v.hist[0], v.hist[1], v.hist[2] = v.hist[1], v.hist[2], v.hist[3]
	v.hist[3] = int32(s)
}

// Step advances the voice by one output sample and returns its envelope
// scaled, interpolated PCM value. globalCycle is the DSP's shared sample
// counter, used to keep this voice's envelope phase-locked with every
// other voice on the same rate. When pmEnabled is set, the voice's pitch
// is modulated by prevOutput, the preceding voice's raw output sample, per
// the PMON register.
func (v *Voice) Step(globalCycle int, pmEnabled bool, prevOutput int32) int32 {
	if !v.active {
		v.env.Advance(globalCycle)
		return 0
	}

	if v.keyOnDelay > 0 {
		v.keyOnDelay--
		return 0
	}

	effPitch := int32(v.pitch)
	if pmEnabled {
		effPitch += (effPitch * (prevOutput >> 5)) >> 10
		if effPitch < 0 {
			effPitch = 0
		}
		if effPitch > 0x3FFF {
			effPitch = 0x3FFF
		}
	}

	v.pitchCounter += uint32(effPitch)
	for v.pitchCounter >= pitchUnity {
		v.pitchCounter -= pitchUnity
		v.blockPos++
		if v.blockPos >= 16 {
			if v.endReached {
				v.active = false
				v.env.KeyOff()
				break
			}
			v.decodeNextBlock()
			v.blockPos = 0
		}
		v.pushSample(v.decoded[v.blockPos])
	}

	frac := uint8((v.pitchCounter >> 4) & 0xFF)
	interp := GaussianInterpolate(v.hist[0], v.hist[1], v.hist[2], v.hist[3], frac)
	level := v.env.Advance(globalCycle)
	return (interp * int32(level)) >> 11
}

// Active reports whether the voice is currently producing sound (either
// still playing or ramping down its release envelope).
func (v *Voice) Active() bool {
	return v.active || v.env.Stage != StageOff
}
