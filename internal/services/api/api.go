// Package api provides the HTTP API for the application
package api

import (
	"time"

	"tzconv/internal/platform/config"
	"tzconv/internal/platform/logger"
	phttp "tzconv/internal/platform/net/http"
	"tzconv/internal/platform/net/middleware"
	ptime "tzconv/internal/platform/time"

	"tzconv/internal/modkit"
	"tzconv/internal/modkit/httpkit"
	"tzconv/internal/modkit/swaggerkit"

	convertmod "tzconv/internal/services/api/convert/module"
	metamod "tzconv/internal/services/api/meta/module"
	"tzconv/internal/services/convert/domain"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
	Clock  ptime.Clock
	// Converter is served by the convert module; nil builds a default one
	Converter domain.ConverterPort
	// CORSOrigins are the allowed cross-origin callers
	CORSOrigins []string
	// Timeout bounds each request
	Timeout time.Duration
	// MaxInFlight caps concurrent conversions (0 means unlimited)
	MaxInFlight int
	// EnableDocs serves the swagger UI under /docs
	EnableDocs bool
}

// Mount mounts the API service onto the given router
// r must not have routes yet; the common stack is attached to it
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Clock: opt.Clock,
	}

	var convertOpts []modkit.Option
	if opt.Converter != nil {
		convertOpts = append(convertOpts, modkit.WithPorts(opt.Converter))
	}
	// meta stays reachable when conversions are saturated
	if opt.MaxInFlight > 0 {
		convertOpts = append(convertOpts, modkit.WithMiddlewares(middleware.Throttle(opt.MaxInFlight)))
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Timeout:     opt.Timeout,
		Slow:        time.Second,
	})

	// the stack sits on the root so /healthz and unknown paths are logged too
	r.Use(stack...)

	swaggerkit.Mount(r, opt.EnableDocs)

	httpkit.MountAPIV1(r, nil, func(v1 httpkit.Router) {
		modkit.MountAll(v1, deps,
			modkit.Spec{Build: metamod.New},
			modkit.Spec{Build: convertmod.New, Opts: convertOpts},
		)
	})
}
