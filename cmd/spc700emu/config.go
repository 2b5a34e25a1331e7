package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a TOML file may override; CLI flags always
// take precedence when explicitly set.
type Config struct {
	SampleRate int    `toml:"sample_rate"`
	Duration   string `toml:"duration"`
	Snapshot   string `toml:"snapshot"`
	Out        string `toml:"out"`
	Realtime   bool   `toml:"realtime"`
}

func defaultConfig() Config {
	return Config{SampleRate: 32000, Duration: "10s"}
}

// loadConfig reads an optional TOML config file, falling back to defaults
// for any field the file doesn't set.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
