// Package middleware wraps chi middleware and adds the access log and panic recovery
package middleware

import (
	"net/http"
	"time"

	"tzconv/internal/platform/logger"
	pnet "tzconv/internal/platform/net"

	"github.com/rs/zerolog"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests taking at least Slow at warn (0 disables)
	Slow time.Duration
}

// AccessLogZerolog logs one line per request. 5xx responses log at error,
// slow ones at warn, the rest at info. The query string is kept since it
// carries the conversion being asked for.
// Mount after RequestID: the chi request id is copied onto the context so
// logger.C in handlers tags their lines with it
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			r = r.WithContext(pnet.WithRequest(r.Context(), chimw.GetReqID(r.Context())))
			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			accessEvent(logger.C(r.Context()), status, elapsed, opt.Slow).
				Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", r.URL.RawQuery).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

func accessEvent(log *logger.Logger, status int, elapsed, slow time.Duration) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case slow > 0 && elapsed >= slow:
		return log.Warn()
	default:
		return log.Info()
	}
}
