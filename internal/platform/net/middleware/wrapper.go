package middleware

import (
	"net/http"

	pstrings "tzconv/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// chi middleware used by the API stack, re-exported so modules never import chi
var (
	RequestID    = chimw.RequestID
	RealIP       = chimw.RealIP
	NoCache      = chimw.NoCache
	StripSlashes = chimw.StripSlashes
	Timeout      = chimw.Timeout
	Throttle     = chimw.Throttle
	Heartbeat    = chimw.Heartbeat
)

// compressible lists the content types the API writes
var compressible = []string{"application/json", "text/plain"}

// Compress compresses JSON and plain text responses at level (a compress/flate level)
func Compress(level int) func(http.Handler) http.Handler {
	return chimw.Compress(level, compressible...)
}

// CORSOptions is the subset of go-chi/cors settings the API exposes
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// CORS wraps go-chi/cors. The API is read-only, so methods default to GET,
// HEAD and OPTIONS
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		AllowedHeaders:   pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders:   pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}
