// Command spc700emu runs a cycle-accurate emulation of the SPC700 CPU and
// its 16-bit DSP, either rendering a fixed duration to a WAV file or
// streaming audio live through the host's sound device.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/spc-sound/spc700emu/cmd/spc700emu/snapshot"
	"github.com/spc-sound/spc700emu/internal/engine"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "optional TOML config file")
		snapPath   = pflag.StringP("snapshot", "s", "", "load a .spc700 snapshot before running")
		outPath    = pflag.StringP("out", "o", "out.wav", "output WAV file path (ignored with --realtime)")
		duration   = pflag.DurationP("duration", "d", 0, "how long to render (overrides config)")
		realtime   = pflag.Bool("realtime", false, "stream audio live instead of rendering to a file")
		debug      = pflag.Bool("debug", false, "enable verbose logging")
	)
	pflag.Parse()

	logger := newLogger(*debug)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if *duration > 0 {
		cfg.Duration = duration.String()
	}
	if *outPath != "" && (cfg.Out == "" || pflag.CommandLine.Changed("out")) {
		cfg.Out = *outPath
	}
	if *snapPath != "" {
		cfg.Snapshot = *snapPath
	}
	if *realtime {
		cfg.Realtime = true
	}

	dur, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		logger.Fatal("invalid duration", "duration", cfg.Duration, "err", err)
	}

	eng := engine.New()
	if cfg.Snapshot != "" {
		snap, err := snapshot.Load(cfg.Snapshot)
		if err != nil {
			logger.Fatal("loading snapshot", "path", cfg.Snapshot, "err", err)
		}
		eng.LoadRAM(snap.RAM)
		eng.CPU.Reg.A = snap.A
		eng.CPU.Reg.X = snap.X
		eng.CPU.Reg.Y = snap.Y
		eng.CPU.Reg.SP = snap.SP
		eng.CPU.Reg.PSW.Set(snap.PSW)
		eng.Reset(snap.PC)
		for i, v := range snap.DSPRegs {
			eng.DSP.WriteRegister(uint8(i), v)
		}
		logger.Info("snapshot loaded", "path", cfg.Snapshot, "pc", fmt.Sprintf("%04X", snap.PC))
	} else {
		eng.Reset(0xFFC0)
		logger.Info("cold boot", "pc", "FFC0")
	}

	if cfg.Realtime {
		runRealtime(logger, eng)
		return
	}

	numSamples := int(dur.Seconds() * float64(cfg.SampleRate))
	f, err := os.Create(cfg.Out)
	if err != nil {
		logger.Fatal("creating output file", "path", cfg.Out, "err", err)
	}
	defer f.Close()

	logger.Info("rendering", "duration", dur, "samples", numSamples, "out", cfg.Out)
	if err := renderToWAV(logger, eng, f, cfg.SampleRate, numSamples); err != nil {
		logger.Fatal("render failed", "err", err)
	}
	logger.Info("render complete", "out", cfg.Out)
}

func runRealtime(logger *log.Logger, eng *engine.Engine) {
	player, err := NewPlayer(32000, renderLive(eng))
	if err != nil {
		logger.Fatal("starting audio backend", "err", err)
	}
	player.Start()
	logger.Info("streaming live; press Ctrl-C to stop")
	select {}
}
