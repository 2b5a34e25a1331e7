package cpu

// DSPPort is the handle the memory bus uses to dispatch $00F2/$00F3
// register-file accesses to the DSP. The DSP is not owned by Memory; this
// is a lightweight accessor into whatever entity owns it, resolving the
// CPU -> RAM -> DSP reference without RAM owning the DSP.
type DSPPort interface {
	ReadRegister(addr uint8) uint8
	WriteRegister(addr uint8, v uint8)
}

// I/O port addresses within the $00F0-$00FF window.
const (
	portTest       = 0xF0
	portControl    = 0xF1
	portDSPAddr    = 0xF2
	portDSPData    = 0xF3
	portCPUIO0     = 0xF4
	portCPUIO1     = 0xF5
	portCPUIO2     = 0xF6
	portCPUIO3     = 0xF7
	portTimer0Div  = 0xFA
	portTimer1Div  = 0xFB
	portTimer2Div  = 0xFC
	portTimer0Out  = 0xFD
	portTimer1Out  = 0xFE
	portTimer2Out  = 0xFF
	romOverlayLow  = 0xFFC0
	romOverlayHigh = 0xFFFF
)

// Memory is the 64 KiB address space shared by the CPU and the DSP: a flat
// RAM array, a 64-byte boot ROM overlaid at $FFC0-$FFFF, and the
// memory-mapped I/O region at $00F0-$00FF.
type Memory struct {
	ram [65536]byte
	rom [64]byte

	ramWritable  bool
	romWritable  bool
	dspSelector  uint8
	timerEnable  [3]bool
	dsp          DSPPort
	timers       [3]*Timer
}

// NewMemory constructs an empty memory bus. Timers must be supplied via
// SetTimers and the DSP handle via SetDSP before use.
func NewMemory() *Memory {
	return &Memory{romWritable: false}
}

// SetDSP installs the DSP register-file accessor.
func (m *Memory) SetDSP(dsp DSPPort) { m.dsp = dsp }

// SetTimers installs the three timer instances (T0, T1, T2 in order).
func (m *Memory) SetTimers(t0, t1, t2 *Timer) {
	m.timers[0], m.timers[1], m.timers[2] = t0, t1, t2
}

// LoadROM installs the 64-byte boot ROM image.
func (m *Memory) LoadROM(rom [64]byte) { m.rom = rom }

// LoadRAM overlays a full 64 KiB RAM image, e.g. from a snapshot.
func (m *Memory) LoadRAM(ram [65536]byte) {
	m.ram = ram
	m.ramWritable = m.ram[portTest]&0x02 != 0
	m.romWritable = m.ram[portControl]&0x80 == 0
}

// Read performs a CPU-visible memory read, dispatching the I/O region and
// the ROM overlay as documented.
func (m *Memory) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x00F0 && addr <= 0x00FF:
		return m.readIO(addr)
	case addr >= romOverlayLow:
		if m.romWritable {
			return m.ram[addr]
		}
		return m.rom[addr-romOverlayLow]
	default:
		return m.ram[addr]
	}
}

func (m *Memory) readIO(addr uint16) uint8 {
	switch addr {
	case portTest, portControl:
		return 0
	case portDSPAddr:
		return m.dspSelector
	case portDSPData:
		if m.dsp != nil {
			return m.dsp.ReadRegister(m.dspSelector)
		}
		return 0
	case portCPUIO0, portCPUIO1, portCPUIO2, portCPUIO3:
		return 0
	case portTimer0Div, portTimer1Div, portTimer2Div:
		return m.ram[addr]
	case portTimer0Out:
		return m.timers[0].ReadOut()
	case portTimer1Out:
		return m.timers[1].ReadOut()
	case portTimer2Out:
		return m.timers[2].ReadOut()
	default:
		return m.ram[addr]
	}
}

// Write performs a CPU-visible memory write, dispatching the I/O region.
// Per §4.2, every write to the I/O region also lands in the RAM mirror.
func (m *Memory) Write(addr uint16, v uint8) {
	if addr >= 0x00F0 && addr <= 0x00FF {
		m.writeIO(addr, v)
		m.ram[addr] = v
		return
	}
	m.ram[addr] = v
}

func (m *Memory) writeIO(addr uint16, v uint8) {
	switch addr {
	case portTest:
		m.ramWritable = v&0x02 != 0
	case portControl:
		for i := 0; i < 3; i++ {
			bit := v&(1<<uint(i)) != 0
			if bit && !m.timers[i].Enabled() {
				m.timers[i].Enable()
			} else if !bit {
				m.timers[i].Disable()
			}
		}
		m.romWritable = v&0x80 == 0
	case portDSPAddr:
		m.dspSelector = v
	case portDSPData:
		if m.dsp != nil {
			m.dsp.WriteRegister(m.dspSelector, v)
		}
	case portCPUIO0, portCPUIO1, portCPUIO2, portCPUIO3:
		// No host main-CPU connected; writes are no-ops beyond the RAM mirror.
	case portTimer0Div:
		m.timers[0].WriteDivider(v)
	case portTimer1Div:
		m.timers[1].WriteDivider(v)
	case portTimer2Div:
		m.timers[2].WriteDivider(v)
	case portTimer0Out, portTimer1Out, portTimer2Out:
		// Read-only outputs.
	}
}

// RawRead reads directly from the RAM array, bypassing I/O dispatch and the
// ROM overlay. The DSP uses this for BRR source fetches and echo buffer
// access, since those are raw accesses to the shared 64 KiB array rather
// than CPU bus cycles.
func (m *Memory) RawRead(addr uint16) uint8 { return m.ram[addr] }

// RawWrite writes directly to the RAM array, bypassing I/O dispatch.
func (m *Memory) RawWrite(addr uint16, v uint8) { m.ram[addr] = v }
