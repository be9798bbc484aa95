// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"

	"github.com/softglow/ramcolor/internal/options"
)

// CreateLogger creates a logger with the log level the options ask for
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
