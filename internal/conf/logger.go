package conf

import "github.com/tphakala/birdgroups/internal/logger"

// GetLogger returns the config package logger scoped to the config module.
// The logger is fetched from the global logger each time so it picks up the
// central logger installed after settings are loaded.
func GetLogger() logger.Logger {
	return logger.Global().Module("config")
}
