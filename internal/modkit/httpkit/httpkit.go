// Package httpkit holds the HTTP helpers API modules build on, so a module
// needs neither chi nor the platform http package
package httpkit

import (
	"net/http"

	phttp "tzconv/internal/platform/net/http"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is the platform handler type
	Handler = phttp.Handler
)

// Call wraps fn as a Handler answering with the platform envelope
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.Endpoint(fn) }

// Query is Call with T bound and validated from the URL query
func Query[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.Bound(fn) }

// GetQuery registers fn at GET path with its query bound into T
func GetQuery[T any](r Router, path string, fn func(*http.Request, T) (any, error)) {
	r.Get(path, Query(fn))
}
