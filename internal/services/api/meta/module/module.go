// Package module mounts the meta endpoints (health, readiness, version)
package module

import (
	"tzconv/internal/modkit"
	"tzconv/internal/modkit/httpkit"
	str "tzconv/internal/platform/strings"
	metahttp "tzconv/internal/services/api/meta/http"
)

// ServiceName is reported by /health and /service
const ServiceName = "tzconv"

// Module serves the meta routes
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New builds the meta module, mounted at /meta unless WithPrefix says otherwise.
// The readiness probe zones come from READY_ZONES in deps.Cfg
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	clock := deps.Now()
	return &Module{
		b: b,
		deps: metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   clock(),
			Clock:       clock,
			Probe:       deps.Cfg.MayCSV("READY_ZONES", nil),
		},
	}
}

// MountRoutes attaches the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.b.Prefix), m.b.Mw, func(rr httpkit.Router) {
		rr = m.b.Subrouter(rr)
		metahttp.Register(rr, m.deps)
		m.b.Register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Ports returns nil; meta shares nothing
func (m *Module) Ports() any { return nil }
