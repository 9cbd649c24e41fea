// Package calendar resolves the optional day, month and year tokens of a
// conversion, defaulting each unspecified field to the current UTC date
package calendar

import (
	"strconv"
	"strings"
	"time"

	"tzconv/internal/core/normalize"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"
	ptime "tzconv/internal/platform/time"
)

// Year bounds of the proleptic Gregorian range the tool accepts
const (
	MinYear = -262144
	MaxYear = 262143
)

// Day keywords
const (
	Today     = "today"
	Yesterday = "yesterday"
	Tomorrow  = "tomorrow"
)

// Fields is a fully-specified calendar date
type Fields struct {
	Day   int
	Month time.Month
	Year  int
}

// Options configures a Resolver
type Options struct {
	// CurrentYearDefault makes an unspecified year default to the current UTC
	// year. Without it the year defaults to the current month number, as it
	// always has
	CurrentYearDefault bool
}

// Resolver defaults and validates calendar tokens against an injected clock
type Resolver struct {
	now  ptime.Clock
	opts Options
}

// New returns a Resolver reading "now" from c (nil means the process clock)
func New(c ptime.Clock, opts Options) *Resolver {
	if c == nil {
		c = ptime.Now
	}
	return &Resolver{now: c, opts: opts}
}

// Resolve resolves day, then month, then year; the first failure aborts
func (r *Resolver) Resolve(day, month, year *string) (Fields, error) {
	d, err := r.Day(day)
	if err != nil {
		return Fields{}, err
	}
	m, err := r.Month(month)
	if err != nil {
		return Fields{}, err
	}
	y, err := r.Year(year)
	if err != nil {
		return Fields{}, err
	}
	return Fields{Day: d, Month: m, Year: y}, nil
}

// Day resolves a day-of-month token. nil means today; the keywords today,
// yesterday and tomorrow are relative to the current UTC date; anything else
// must be an integer that is a real day of the current UTC month
func (r *Resolver) Day(token *string) (int, error) {
	now := r.now.UTC()
	s := Today
	if token != nil {
		s = normalize.Token(*token)
	} else {
		logger.Named("calendar").Debug().Int("day", now.Day()).Msg("day defaulted to today")
	}

	switch s {
	case Today:
		return now.Day(), nil
	case Yesterday:
		return now.AddDate(0, 0, -1).Day(), nil
	case Tomorrow:
		return now.AddDate(0, 0, 1).Day(), nil
	}

	raw := s
	if token != nil {
		raw = *token
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > DaysIn(now.Year(), now.Month()) {
		return 0, perr.Token(perr.ErrorCodeDay, raw, "could not parse day %q", raw)
	}
	return n, nil
}

// Month resolves a month token by exact lookup in the month table; nil means
// the current UTC month
func (r *Resolver) Month(token *string) (time.Month, error) {
	if token == nil {
		m := r.now.UTC().Month()
		logger.Named("calendar").Debug().Stringer("month", m).Msg("month defaulted to current")
		return m, nil
	}
	if m, ok := LookupMonth(strings.TrimSpace(*token)); ok {
		return m, nil
	}
	return 0, perr.Token(perr.ErrorCodeMonth, *token, "could not parse month %q", *token)
}

// Year resolves a signed year token; nil means the default year
func (r *Resolver) Year(token *string) (int, error) {
	if token == nil {
		now := r.now.UTC()
		y := int(now.Month())
		policy := "month number"
		if r.opts.CurrentYearDefault {
			y = now.Year()
			policy = "current year"
		}
		logger.Named("calendar").Debug().Int("year", y).Str("policy", policy).Msg("year defaulted")
		return y, nil
	}
	n, err := strconv.Atoi(normalize.Token(*token))
	if err != nil || n < MinYear || n > MaxYear {
		return 0, perr.Token(perr.ErrorCodeYear, *token, "could not parse year %q", *token)
	}
	return n, nil
}

// DaysIn returns the number of days in month m of year y
func DaysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Valid reports whether f names a real date that time.Date would not normalise
func (f Fields) Valid() bool {
	if f.Month < time.January || f.Month > time.December {
		return false
	}
	return f.Day >= 1 && f.Day <= DaysIn(f.Year, f.Month)
}
