// Package wav writes a canonical 44-byte-header PCM WAV file for stereo
// 16-bit samples using a fixed-layout encoding/binary header, backpatched
// with the RIFF and data chunk sizes on Close.
package wav

import (
	"encoding/binary"
	"io"
)

const (
	numChannels   = 2
	bitsPerSample = 16
)

// Writer streams stereo int16 sample pairs into a WAV file, backpatching
// the header's size fields on Close.
type Writer struct {
	w          io.WriteSeeker
	sampleRate int
	dataBytes  uint32
}

// NewWriter writes a placeholder 44-byte header and returns a Writer ready
// to accept samples via WriteSample.
func NewWriter(w io.WriteSeeker, sampleRate int) (*Writer, error) {
	wr := &Writer{w: w, sampleRate: sampleRate}
	if err := wr.writeHeader(0); err != nil {
		return nil, err
	}
	return wr, nil
}

func (w *Writer) writeHeader(dataBytes uint32) error {
	if _, err := w.w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	byteRate := w.sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataBytes)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataBytes)

	_, err := w.w.Write(header)
	return err
}

// WriteSample appends one stereo sample pair.
func (w *Writer) WriteSample(left, right int16) error {
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[0:2], uint16(left))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(right))
	if _, err := w.w.Write(buf[:]); err != nil {
		return err
	}
	w.dataBytes += 4
	return nil
}

// Close backpatches the RIFF and data chunk sizes now that the sample
// count is known.
func (w *Writer) Close() error {
	if _, err := w.w.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	return w.writeHeader(w.dataBytes)
}
