package birdgroups

import (
	"sync"

	"github.com/tphakala/birdgroups/internal/logger"
)

var (
	serviceLogger logger.Logger
	initOnce      sync.Once
)

// GetLogger returns the package logger scoped to the birdgroups module.
func GetLogger() logger.Logger {
	initOnce.Do(func() {
		serviceLogger = logger.Global().Module("birdgroups")
	})
	return serviceLogger
}
