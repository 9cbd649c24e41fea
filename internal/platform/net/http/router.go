package http

import "net/http"

// Handler is a plain handler function
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount on; AdaptChi provides the implementation
type Router interface {
	Get(path string, h Handler)
	Head(path string, h Handler)
	Handle(path string, h http.Handler)

	// Use appends middleware; on chi it must come before the first route
	Use(mw ...func(http.Handler) http.Handler)
	// Group shares the path but isolates middleware
	Group(fn func(Router))
	// Route mounts a sub router at pattern
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
