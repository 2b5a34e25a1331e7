package snapshot

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, offsetDSPRegs+dspRegsSize)
	copy(data, headerMagic)
	binary.LittleEndian.PutUint16(data[offsetPC:], 0x1234)
	data[offsetA] = 0x11
	data[offsetX] = 0x22
	data[offsetY] = 0x33
	data[offsetPSW] = 0x44
	data[offsetSP] = 0xEF
	data[offsetRAM] = 0xAA
	data[offsetDSPRegs] = 0xBB
	return data
}

func TestDecodeReadsFixedOffsets(t *testing.T) {
	data := buildFixture(t)
	snap, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), snap.PC)
	require.Equal(t, uint8(0x11), snap.A)
	require.Equal(t, uint8(0x22), snap.X)
	require.Equal(t, uint8(0x33), snap.Y)
	require.Equal(t, uint8(0x44), snap.PSW)
	require.Equal(t, uint8(0xEF), snap.SP)
	require.Equal(t, byte(0xAA), snap.RAM[0])
	require.Equal(t, byte(0xBB), snap.DSPRegs[0])
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := buildFixture(t)
	data[0] = 'X'
	_, err := Decode(data)
	require.Error(t, err)
}

func TestDecodeRejectsShortFile(t *testing.T) {
	_, err := Decode([]byte("too short"))
	require.Error(t, err)
}
