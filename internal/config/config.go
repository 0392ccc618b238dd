// Package config builds the shared runtime pieces of the randomizer
// commands.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the logger for a run at the level the verbosity
// flags select. Debug wins over quiet.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
