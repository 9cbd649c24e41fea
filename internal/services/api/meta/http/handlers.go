// Package http serves the meta endpoints: liveness, zone database readiness,
// build info and uptime
package http

import (
	"net/http"
	"time"

	"tzconv/internal/core/version"
	"tzconv/internal/modkit/httpkit"
	ptime "tzconv/internal/platform/time"
)

// DefaultProbe is loaded by /ready when Deps.Probe is empty
var DefaultProbe = []string{"UTC", "Europe/London", "America/New_York", "Asia/Tokyo"}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Clock       ptime.Clock
	// Probe lists IANA names loaded by the readiness check
	Probe []string
}

// Health is the /health payload
type Health struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// Check is one zone load attempted by /ready
type Check struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Readiness is the /ready payload; Status is fail when any check failed
type Readiness struct {
	Status string  `json:"status"`
	Checks []Check `json:"checks"`
	Now    string  `json:"now"`
}

// Service is the /service payload, uptime in whole seconds
type Service struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// Register mounts the meta routes on r
func Register(r httpkit.Router, d Deps) {
	if d.Clock == nil {
		d.Clock = ptime.Now
	}
	if len(d.Probe) == 0 {
		d.Probe = DefaultProbe
	}
	h := &handlers{deps: d}

	r.Get("/health", httpkit.Call(h.health))
	r.Get("/ready", httpkit.Call(h.ready))
	r.Get("/version", httpkit.Call(h.version))
	r.Get("/service", httpkit.Call(h.service))
}

type handlers struct{ deps Deps }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} Health "ok"
// @Router /meta/health [get]
func (h *handlers) health(*http.Request) (any, error) {
	return Health{OK: true, Service: h.deps.ServiceName, Started: stamp(h.deps.StartedAt), Now: stamp(h.deps.Clock())}, nil
}

// @Summary Zone database readiness
// @Description Loads each probe zone; status is fail when any load failed
// @Tags Meta
// @Produce json
// @Success 200 {object} Readiness "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(*http.Request) (any, error) {
	return probe(h.deps.Probe, h.deps.Clock()), nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(*http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} Service "ok"
// @Router /meta/service [get]
func (h *handlers) service(*http.Request) (any, error) {
	up := h.deps.Clock().Sub(h.deps.StartedAt)
	return Service{Name: h.deps.ServiceName, Started: stamp(h.deps.StartedAt), Uptime: int64(up / time.Second)}, nil
}

func probe(names []string, now time.Time) Readiness {
	out := Readiness{Status: "ok", Checks: make([]Check, 0, len(names)), Now: stamp(now)}
	for _, name := range names {
		c := Check{Name: name, Status: "ok"}
		if _, err := time.LoadLocation(name); err != nil {
			c.Status, c.Error = "fail", err.Error()
			out.Status = "fail"
		}
		out.Checks = append(out.Checks, c)
	}
	return out
}
