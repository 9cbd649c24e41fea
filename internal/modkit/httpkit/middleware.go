package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"tzconv/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins are the allowed origins; empty disables cross-origin access
	CORSOrigins []string
	// Timeout bounds each request (0 means 10s)
	Timeout time.Duration
	// Slow marks access log lines at warn level (0 disables)
	Slow time.Duration
}

// CommonStack returns the baseline middleware slice for the API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID,
		middleware.RealIP,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache,

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/healthz"),
		middleware.StripSlashes,
		middleware.Timeout(timeout),
	}
}
