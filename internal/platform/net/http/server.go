package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"sync/atomic"
	"time"

	"tzconv/internal/platform/config"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server serves a chi mux until the context handed to Run ends
type Server struct {
	srv   *stdhttp.Server
	mux   *chi.Mux
	grace time.Duration

	addr      atomic.Pointer[string]
	bound     chan struct{}
	boundOnce sync.Once
}

// NewServer reads ADDR (default :4000), READ_HEADER_TIMEOUT (10s) and
// SHUTDOWN_TIMEOUT (5s) from cfg, usually the TZCONV_HTTP_ view
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	s := &Server{
		mux:   mux,
		grace: cfg.MayDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		bound: make(chan struct{}),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("ADDR", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
	}
	s.addr.Store(&s.srv.Addr)
	return s
}

// Router exposes the mux behind the platform Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured address until Run binds, then the bound one
func (s *Server) Addr() string { return *s.addr.Load() }

// Bound is closed once Run holds its listener
func (s *Server) Bound() <-chan struct{} { return s.bound }

// Run listens and serves until ctx ends, then drains for at most the shutdown
// timeout. A shutdown, from ctx or from Shutdown, returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "listen on %s", s.srv.Addr)
	}
	addr := ln.Addr().String()
	s.addr.Store(&addr)
	s.boundOnce.Do(func() { close(s.bound) })

	log := logger.Named("http").With().Str("addr", addr).Logger()
	log.Info().Msg("http listening")

	served := make(chan error, 1)
	go func() { served <- s.srv.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.grace)
	defer cancel()
	return s.Shutdown(sctx)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
