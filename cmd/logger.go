// Package cmd wires the birdgroups command tree.
package cmd

import "github.com/tphakala/birdgroups/internal/logger"

// GetLogger returns the logger for the command line layer.
func GetLogger() logger.Logger {
	return logger.Global().Module("cli")
}
