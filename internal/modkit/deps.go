package modkit

import (
	"tzconv/internal/platform/config"
	"tzconv/internal/platform/logger"
	ptime "tzconv/internal/platform/time"
)

// Deps are shared by every module
type Deps struct {
	Log *logger.Logger
	// Cfg is the HTTP settings view (TZCONV_HTTP_)
	Cfg   config.Conf
	Clock ptime.Clock
}

// Now returns the clock, or the process clock when unset
func (d Deps) Now() ptime.Clock {
	if d.Clock == nil {
		return ptime.Now
	}
	return d.Clock
}

// Logger returns Log, or the global logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log == nil {
		return logger.Get()
	}
	return d.Log
}
