// Package module mounts the conversion endpoints
package module

import (
	"tzconv/internal/modkit"
	"tzconv/internal/modkit/httpkit"
	str "tzconv/internal/platform/strings"
	converthttp "tzconv/internal/services/api/convert/http"
	"tzconv/internal/services/convert/domain"
	convertsvc "tzconv/internal/services/convert/service"
)

// Module serves /convert and /zones
type Module struct {
	b   modkit.Built
	svc domain.ConverterPort
}

// New builds the convert module. A domain.ConverterPort passed with
// modkit.WithPorts is served as is; otherwise one is built on the deps clock
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("convert")}, opts...)...)

	svc, ok := b.Ports.(domain.ConverterPort)
	if !ok || svc == nil {
		svc = convertsvc.New(convertsvc.Options{Clock: deps.Now()})
	}
	return &Module{b: b, svc: svc}
}

// MountRoutes attaches the routes; without a prefix they sit directly under the API root
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.b.Prefix == "" {
		r.Group(func(rr httpkit.Router) {
			if len(m.b.Mw) > 0 {
				rr.Use(m.b.Mw...)
			}
			m.mount(rr)
		})
		return
	}
	httpkit.MountUnder(r, str.MustPrefix(m.b.Prefix), m.b.Mw, m.mount)
}

func (m *Module) mount(rr httpkit.Router) {
	rr = m.b.Subrouter(rr)
	converthttp.Register(rr, m.svc)
	m.b.Register(rr)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports returns the converter the module serves
func (m *Module) Ports() any { return m.svc }
