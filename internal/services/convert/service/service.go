// Package service contains the conversion workflow
package service

import (
	"context"
	"strings"
	"time"

	"tzconv/internal/core/calendar"
	"tzconv/internal/core/clock"
	"tzconv/internal/core/normalize"
	"tzconv/internal/core/zones"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"
	ptime "tzconv/internal/platform/time"
	"tzconv/internal/services/convert/domain"
)

// Service defines the convert service contract
type Service interface {
	domain.ConverterPort
}

// Options configures the service
type Options struct {
	// Clock is the source of "now" (nil means the process clock)
	Clock ptime.Clock
	// Local stands in for a missing destination (nil means time.Local)
	Local *time.Location
	// Extended enables the fixed-offset abbreviation fallback
	Extended bool
	// CurrentYearDefault defaults a missing year to the current year instead
	// of the current month number
	CurrentYearDefault bool
}

// Svc implements the convert service
type Svc struct {
	clock ptime.Clock
	zones *zones.Resolver
	cal   *calendar.Resolver
}

// New constructs a convert service
func New(opts Options) *Svc {
	c := opts.Clock
	if c == nil {
		c = ptime.Now
	}
	return &Svc{
		clock: c,
		zones: zones.New(c, zones.Options{Local: opts.Local, Extended: opts.Extended}),
		cal:   calendar.New(c, calendar.Options{CurrentYearDefault: opts.CurrentYearDefault}),
	}
}

// Now returns the service clock reading
func (s *Svc) Now() time.Time { return s.clock() }

// Convert runs time, zones, day, month and year resolution in that order and
// builds the origin moment; the first failure aborts
func (s *Svc) Convert(ctx context.Context, req domain.Request) (domain.Result, error) {
	log := logger.C(ctx).With().Str("op", "convert").Logger()

	t, format, err := clock.ParseToken(req.Time)
	if err != nil {
		return domain.Result{}, err
	}
	log.Debug().Str("format", format.String()).Str("clock", t.String()).Msg("time parsed")

	z, err := s.zones.Resolve(req.Origin, req.Destination)
	if err != nil {
		return domain.Result{}, err
	}

	f, err := s.cal.Resolve(req.Day, req.Month, req.Year)
	if err != nil {
		return domain.Result{}, err
	}
	if !f.Valid() {
		return domain.Result{}, perr.Token(perr.ErrorCodeInvalidMoment, dateToken(req),
			"%d %s %d is not a real date", f.Day, f.Month, f.Year)
	}

	origin := time.Date(f.Year, f.Month, f.Day, t.Hour, t.Minute, 0, 0, z.Origin)
	// a wall clock inside a daylight-saving gap is normalised by time.Date
	if origin.Hour() != t.Hour || origin.Minute() != t.Minute || origin.Day() != f.Day {
		return domain.Result{}, perr.Token(perr.ErrorCodeInvalidMoment, req.Time,
			"%s on %d %s %d does not exist in %s", t, f.Day, f.Month, f.Year, z.Origin)
	}
	dest := origin.In(z.Destination)

	log.Debug().
		Time("origin", origin).
		Time("destination", dest).
		Bool("assumed_local", z.AssumedLocal).
		Msg("converted")

	return domain.Result{
		Request:     req,
		Format:      format,
		Clock:       t,
		Zones:       z,
		Fields:      f,
		Origin:      origin,
		Destination: dest,
	}, nil
}

// Zones lists the zone table with each entry's current UTC offset
// filter matches a folded substring of the key or the IANA name
func (s *Svc) Zones(ctx context.Context, filter string) []domain.ZoneRow {
	now := s.clock()
	needle := normalize.Token(filter)

	entries := zones.Entries()
	out := make([]domain.ZoneRow, 0, len(entries))
	for _, e := range entries {
		if needle != "" && !strings.Contains(e.Key, needle) && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		loc, _, ok := s.zones.Lookup(e.Key)
		if !ok {
			continue
		}
		out = append(out, domain.ZoneRow{
			Key:    e.Key,
			Name:   e.Name,
			Kind:   string(e.Kind),
			Offset: now.In(loc).Format("-07:00"),
		})
	}
	logger.C(ctx).Debug().Str("filter", needle).Int("rows", len(out)).Msg("zones listed")
	return out
}

// dateToken joins the calendar tokens the caller supplied
func dateToken(req domain.Request) string {
	var parts []string
	for _, p := range []*string{req.Day, req.Month, req.Year} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}
