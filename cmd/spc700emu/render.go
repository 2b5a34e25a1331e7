package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/spc-sound/spc700emu/cmd/spc700emu/wav"
	"github.com/spc-sound/spc700emu/internal/engine"
)

// renderToWAV drives eng sample-by-sample for the given duration, writing
// a stereo 16-bit WAV file.
func renderToWAV(logger *log.Logger, eng *engine.Engine, out io.WriteSeeker, sampleRate int, numSamples int) error {
	writer, err := wav.NewWriter(out, sampleRate)
	if err != nil {
		return fmt.Errorf("render: creating wav writer: %w", err)
	}

	logStep := numSamples / 10
	if logStep == 0 {
		logStep = 1
	}
	for i := 0; i < numSamples; i++ {
		l, r := eng.NextSample()
		if err := writer.WriteSample(l, r); err != nil {
			return fmt.Errorf("render: writing sample %d: %w", i, err)
		}
		if i%logStep == 0 {
			logger.Debug("rendering", "sample", i, "of", numSamples)
		}
	}
	return writer.Close()
}

// renderLive drives eng forever, pulling one sample at a time for an
// audio backend's Read callback.
func renderLive(eng *engine.Engine) func() (int16, int16) {
	return func() (int16, int16) {
		return eng.NextSample()
	}
}
