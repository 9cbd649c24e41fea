// Package modkit assembles the HTTP API out of small self-mounting modules
package modkit

import (
	phttp "tzconv/internal/platform/net/http"
)

// Module is one slice of the API, e.g. meta or convert
type Module interface {
	// Name labels the module in logs
	Name() string
	// MountRoutes attaches the module endpoints to r
	MountRoutes(r phttp.Router)
	// Ports exposes what the module serves to other modules, nil if nothing
	Ports() any
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// Spec pairs a Builder with the options it is built with
type Spec struct {
	Build Builder
	Opts  []Option
}

// MountAll builds every spec against deps and mounts the modules on r in order.
// The built modules are returned so callers can reach their ports
func MountAll(r phttp.Router, deps Deps, specs ...Spec) []Module {
	log := deps.Logger()
	mods := make([]Module, 0, len(specs))
	for _, s := range specs {
		m := s.Build(deps, s.Opts...)
		log.Debug().Str("module", m.Name()).Msg("mounting module")
		m.MountRoutes(r)
		mods = append(mods, m)
	}
	return mods
}
