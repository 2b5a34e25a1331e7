package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger builds a charmbracelet/log logger, switching to plain text
// formatting when stderr isn't an interactive terminal (e.g. piped to a
// file in a render job).
func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		ReportCaller:    debug,
		TimeFormat:      "15:04:05",
	})
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		logger.SetFormatter(log.LogfmtFormatter)
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
