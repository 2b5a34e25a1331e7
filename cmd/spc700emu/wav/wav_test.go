package wav

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// memBuffer is a growable byte slice with a simple in-memory Seek, enough
// for the Writer's backpatch-on-Close pattern.
type memBuffer struct {
	buf []byte
	pos int
}

func (m *memBuffer) Write(p []byte) (int, error) {
	n := copy(m.buf[m.pos:], p)
	if n < len(p) {
		m.buf = append(m.buf, p[n:]...)
	}
	m.pos += len(p)
	if m.pos > len(m.buf) {
		m.buf = m.buf[:m.pos]
	}
	return len(p), nil
}

func (m *memBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		m.pos = int(offset)
	case 2:
		m.pos = len(m.buf) + int(offset)
	}
	return int64(m.pos), nil
}

func TestWriterProducesCanonicalHeader(t *testing.T) {
	mb := &memBuffer{}
	w, err := NewWriter(mb, 32000)
	require.NoError(t, err)

	require.NoError(t, w.WriteSample(100, -100))
	require.NoError(t, w.WriteSample(200, -200))
	require.NoError(t, w.Close())

	require.True(t, bytes.Equal(mb.buf[0:4], []byte("RIFF")))
	require.True(t, bytes.Equal(mb.buf[8:12], []byte("WAVE")))
	require.True(t, bytes.Equal(mb.buf[36:40], []byte("data")))
	require.Len(t, mb.buf, 44+8)
}
