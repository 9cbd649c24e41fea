package modkit

import (
	"net/http"

	phttp "tzconv/internal/platform/net/http"
)

// Option adjusts how a module is built
type Option func(*Built)

// Built is the resolved option set a module constructor reads
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// Subrouter wraps the module router before Register runs (identity by default)
	Subrouter func(phttp.Router) phttp.Router
	// Register attaches extra endpoints after the module's own (no-op by default)
	Register func(phttp.Router)
}

// Build applies opts in order; later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(phttp.Router) {}
	}
	return b
}

// WithName names the module in logs
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix mounts the module under prefix, e.g. "/meta"
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends module-local middleware; the slice passed in is copied
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	cp := append([]func(http.Handler) http.Handler(nil), mw...)
	return func(b *Built) { b.Mw = append(b.Mw, cp...) }
}

// WithPorts hands the module a dependency it would otherwise build itself,
// such as the converter the convert module serves
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSubrouter sets the subrouter factory
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds endpoints next to the module's own
func WithRegister(fn func(phttp.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
