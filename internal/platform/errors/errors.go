// Package errors is the tool's structured error type. Import it as perr.
//
// Every failure in the conversion pipeline carries an ErrorCode and, where
// one exists, the raw token that caused it. The CLI turns the code into an
// exit status; the HTTP surface into a status and a JSON body.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error. The names are part of the HTTP wire
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeInvalidArgument covers bad flags, settings and query parameters
	ErrorCodeInvalidArgument
	// ErrorCodeArgumentCount is too few positional arguments
	ErrorCodeArgumentCount

	ErrorCodeTimeParse
	ErrorCodeOriginZone
	// ErrorCodeDestinationZone also covers a failed local fallback
	ErrorCodeDestinationZone
	ErrorCodeDay
	ErrorCodeMonth
	ErrorCodeYear
	// ErrorCodeInvalidMoment is a date that does not exist, e.g. 30 feb, or a
	// wall clock inside a daylight-saving gap
	ErrorCodeInvalidMoment

	ErrorCodeNotFound
)

type codeMeta struct {
	name   string
	status int
	exit   int
}

var codes = map[ErrorCode]codeMeta{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError, 1},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError, 1},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusBadRequest, 2},
	ErrorCodeArgumentCount:   {"argument_count", http.StatusBadRequest, 2},
	ErrorCodeTimeParse:       {"time_parse", http.StatusUnprocessableEntity, 1},
	ErrorCodeOriginZone:      {"origin_zone", http.StatusUnprocessableEntity, 1},
	ErrorCodeDestinationZone: {"destination_zone", http.StatusUnprocessableEntity, 1},
	ErrorCodeDay:             {"day", http.StatusUnprocessableEntity, 1},
	ErrorCodeMonth:           {"month", http.StatusUnprocessableEntity, 1},
	ErrorCodeYear:            {"year", http.StatusUnprocessableEntity, 1},
	ErrorCodeInvalidMoment:   {"invalid_moment", http.StatusUnprocessableEntity, 1},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound, 1},
}

// String returns the snake_case name
func (c ErrorCode) String() string {
	if m, ok := codes[c]; ok {
		return m.name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// MarshalText encodes the code by name, so JSON carries "time_parse" rather than 4
func (c ErrorCode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a name written by MarshalText
func (c *ErrorCode) UnmarshalText(b []byte) error {
	for code, m := range codes {
		if m.name == string(b) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown error code %q", b)
}

// IsInput reports whether c is a problem with one of the conversion tokens
func (c ErrorCode) IsInput() bool {
	return c >= ErrorCodeTimeParse && c <= ErrorCodeInvalidMoment
}

// HTTPStatusCode maps c to a response status; unknown codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if m, ok := codes[c]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// ExitCode maps c to a process exit status: 2 for usage problems, 1 otherwise
func ExitCode(c ErrorCode) int {
	if m, ok := codes[c]; ok {
		return m.exit
	}
	return 1
}

// Error is the structured error. msg is for people, code for machines, field
// holds the offending raw token
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

// Wire is the JSON form of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the cause, if any
func (e *Error) Unwrap() error { return e.cause }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the cause
func (e *Error) Message() string { return e.msg }

// Field returns the offending token, if any
func (e *Error) Field() string { return e.field }

// Wire returns the JSON form of e
func (e *Error) Wire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns an *Error with code and a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error with code and a formatted message around cause
func Wrap(cause error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), cause: cause}
}

// Token returns an *Error rejecting token, which is kept as the field
func Token(code ErrorCode, token, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), field: token}
}

// InvalidArgf returns an ErrorCodeInvalidArgument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// NotFoundf returns an ErrorCodeNotFound error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// PanicErrf returns an ErrorCodePanic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Internalf returns an ErrorCodeUnknown error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// WithField returns a copy of err with field set; foreign errors are returned as is
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// Exit returns the process exit status for err, 0 when err is nil
func Exit(err error) int {
	if err == nil {
		return 0
	}
	return ExitCode(CodeOf(err))
}

// HTTP returns the response status and wire body for err. Foreign errors
// become a 500 carrying their text
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	if e, ok := As(err); ok {
		return HTTPStatusCode(e.code), e.Wire()
	}
	return http.StatusInternalServerError, Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}
