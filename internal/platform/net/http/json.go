package http

import (
	"net/http"

	"tzconv/internal/platform/net/http/bind"
)

// Bound is Endpoint for handlers whose input T is parsed and validated from the
// URL query first; a bind failure never reaches fn
func Bound[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Endpoint(func(r *http.Request) (any, error) {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			return nil, err
		}
		return fn(r, in)
	})
}
