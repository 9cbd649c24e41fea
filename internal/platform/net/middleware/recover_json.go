package middleware

import (
	"fmt"
	stdhttp "net/http"
	"runtime/debug"

	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"
	pnet "tzconv/internal/platform/net"
	phttp "tzconv/internal/platform/net/http"
)

// RecoverJSON turns a handler panic into a 500 JSON envelope with code "panic".
// The stack is logged, never sent. http.ErrAbortHandler is re-raised for net/http
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			switch v {
			case nil:
				return
			case stdhttp.ErrAbortHandler:
				panic(v)
			}

			logger.C(r.Context()).Error().
				Err(fmt.Errorf("%v", v)).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			if id := pnet.RequestID(r.Context()); id != "" {
				w.Header().Set("X-Request-ID", id)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
