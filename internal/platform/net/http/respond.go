// Package http is the platform HTTP layer: the router seam over chi, the
// server lifecycle and the JSON envelope every endpoint answers with
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "tzconv/internal/platform/errors"
	pnet "tzconv/internal/platform/net"
)

// Envelope is the body of every JSON response. Data is set on success; Code,
// Error and Field on failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  pnet.RequestID(r.Context()),
	}
}

// JSON writes v with status as application/json
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondData writes data in a success envelope; status 0 means 200
func RespondData(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, data any) {
	if status == 0 {
		status = stdhttp.StatusOK
	}
	env := envelope(r, status)
	env.Data = data
	JSON(w, status, env)
}

// RespondError writes err in an error envelope, its status taken from the error code
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, wire := perr.HTTP(err)
	env := envelope(r, status)
	env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	JSON(w, status, env)
}

// Endpoint adapts fn into a Handler. A value is sent with 200, an error
// through RespondError
func Endpoint(fn func(*stdhttp.Request) (any, error)) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		data, err := fn(r)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		RespondData(w, r, stdhttp.StatusOK, data)
	}
}
