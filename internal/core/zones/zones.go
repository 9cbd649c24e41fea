// Package zones resolves origin and destination time-zone tokens into locations
//
// Lookup order for a token, after normalization:
//  1. the static table (abbreviations, utc±N offsets, IANA names, bare city names)
//  2. an exact, case-sensitive IANA name the embedded database knows
//  3. when enabled, the extended abbreviation list, as a fixed offset
//
// A missing destination falls back to the table key for the local whole-hour
// UTC offset and flags the result so callers can warn about the assumption.
package zones

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // conversions must not depend on the host zoneinfo

	"tzconv/internal/core/normalize"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"
	ptime "tzconv/internal/platform/time"
)

// Zones is the outcome of resolving both zone tokens
type Zones struct {
	Origin         *time.Location
	Destination    *time.Location
	OriginKey      string
	DestinationKey string
	// AssumedLocal is set when the destination was derived from the local offset
	AssumedLocal bool
}

// Options configures a Resolver
type Options struct {
	// Local is the zone whose offset stands in for a missing destination (nil means time.Local)
	Local *time.Location
	// Extended enables the fixed-offset fallback over the full abbreviation list
	Extended bool
}

// Resolver looks up zone tokens; it is safe for concurrent use
type Resolver struct {
	now   ptime.Clock
	opts  Options
	abbrs abbreviationSource
	cache sync.Map // IANA name -> *time.Location
}

// New returns a Resolver using c for the local offset (nil means the process clock)
func New(c ptime.Clock, opts Options) *Resolver {
	if c == nil {
		c = ptime.Now
	}
	if opts.Local == nil {
		opts.Local = time.Local
	}
	return &Resolver{now: c, opts: opts, abbrs: goTimezone{}}
}

// Resolve resolves the origin, then the destination or the local fallback
func (r *Resolver) Resolve(origin string, destination *string) (Zones, error) {
	log := logger.Named("zones")

	oloc, okey, ok := r.Lookup(origin)
	if !ok {
		return Zones{}, perr.Token(perr.ErrorCodeOriginZone, origin, "cannot parse origin %s", origin)
	}
	z := Zones{Origin: oloc, OriginKey: okey}

	if destination != nil {
		dloc, dkey, ok := r.Lookup(*destination)
		if !ok {
			return Zones{}, perr.Token(perr.ErrorCodeDestinationZone, *destination,
				"cannot parse destination %q", *destination)
		}
		z.Destination, z.DestinationKey = dloc, dkey
	} else {
		key := r.LocalKey()
		dloc, _, ok := r.Lookup(key)
		if !ok {
			return Zones{}, perr.Token(perr.ErrorCodeDestinationZone, "",
				"cannot parse destination and cannot get local timezone (%s)", key)
		}
		z.Destination, z.DestinationKey, z.AssumedLocal = dloc, key, true
	}

	log.Debug().
		Str("origin", z.Origin.String()).
		Str("destination", z.Destination.String()).
		Bool("assumed_local", z.AssumedLocal).
		Msg("zones resolved")
	return z, nil
}

// LocalKey returns the utc±N key for the local zone's current whole-hour offset
func (r *Resolver) LocalKey() string {
	return OffsetKey(ptime.HourOffset(r.now().In(r.opts.Local)))
}

// Lookup resolves a single raw token and returns the location and the key it matched
func (r *Resolver) Lookup(raw string) (*time.Location, string, bool) {
	key := normalize.Token(raw)
	if key == "" {
		return nil, "", false
	}
	if name, ok := Name(key); ok {
		if loc, err := r.load(name); err == nil {
			return loc, key, true
		}
	}

	// exact IANA names outside the static list, e.g. America/Kentucky/Louisville
	if name := strings.TrimSpace(raw); strings.Contains(name, "/") {
		if loc, err := r.load(name); err == nil {
			return loc, name, true
		}
	}

	if r.opts.Extended {
		if loc, ok := r.abbrs.fixed(key); ok {
			logger.Named("zones").Debug().Str("key", key).Msg("extended abbreviation used")
			return loc, key, true
		}
	}
	return nil, "", false
}

func (r *Resolver) load(name string) (*time.Location, error) {
	if v, ok := r.cache.Load(name); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	r.cache.Store(name, loc)
	return loc, nil
}
