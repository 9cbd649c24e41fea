// Package logger owns the process-wide zerolog logger.
//
// Logs go to stderr so stdout carries nothing but conversion output. The
// level defaults to warn; -v on the command line raises it.
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"tzconv/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type handed around the tool
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level  string
	Format string // console or json
	// Service is stamped on every line
	Service string
	// Writer defaults to stderr
	Writer      io.Writer
	NoColor     bool
	WithCaller  bool
	SampleEvery int
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and
// LOG_SAMPLE_EVERY, plus NO_COLOR for the console writer
func FromEnv() Options {
	env := raw.New()
	logEnv := env.Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(logEnv.Get("LEVEL", "warn")),
		Format:      strings.ToLower(logEnv.Get("FORMAT", "console")),
		Service:     logEnv.Get("SERVICE", "tzconv"),
		NoColor:     env.Has("NO_COLOR"),
		WithCaller:  logEnv.GetBool("CALLER", false),
		SampleEvery: logEnv.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Get returns the root logger, initialising it from the environment on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l := build(opt)
		root.Store(&l)
		inited.Store(true)
	})
}

func build(opt Options) zerolog.Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opt.NoColor}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}

	l := ctx.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// ParseLevel maps a LOG_LEVEL value to a level. It accepts zerolog's names
// plus "warning" and "off"; anything else means warn
func ParseLevel(s string) zerolog.Level {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "":
		return zerolog.WarnLevel
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// verbosity is indexed by the -v count minus one
var verbosity = []zerolog.Level{zerolog.InfoLevel, zerolog.DebugLevel, zerolog.TraceLevel}

// SetVerbosity raises the root level from a repeated -v count:
// 0 keeps the configured level, 1 info, 2 debug, 3 or more trace
func SetVerbosity(count int) {
	if count <= 0 {
		return
	}
	l := Get().Level(verbosity[min(count, len(verbosity))-1])
	root.Store(&l)
}

type ctxKey struct{}

// WithRequest stores a run or request id on ctx for C to pick up
func WithRequest(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequest, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// C returns the root logger, tagged with the request id on ctx when there is one
func C(ctx context.Context) *Logger {
	id := RequestID(ctx)
	if id == "" {
		return Get()
	}
	l := Get().With().Str("request_id", id).Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
