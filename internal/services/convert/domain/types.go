// Package domain defines the types and interfaces for the convert service
package domain

import (
	"time"

	"tzconv/internal/core/calendar"
	"tzconv/internal/core/clock"
	"tzconv/internal/core/zones"
	pstrings "tzconv/internal/platform/strings"
)

// Request carries the raw tokens of one conversion
// nil optional tokens are unspecified and get defaulted
type Request struct {
	Time        string
	Origin      string
	Destination *string
	Day         *string
	Month       *string
	Year        *string
}

// FromArgs maps positional arguments onto a Request
// args must hold at least time and origin; anything past year is ignored
func FromArgs(args []string) Request {
	at := func(i int) *string { return pstrings.At(args, i) }
	req := Request{Destination: at(2), Day: at(3), Month: at(4), Year: at(5)}
	if len(args) > 0 {
		req.Time = args[0]
	}
	if len(args) > 1 {
		req.Origin = args[1]
	}
	return req
}

// Shape names which optional tokens a Request carries
type Shape uint8

const (
	// ShapeOther is any combination without a dedicated sentence, e.g. a day with no destination
	ShapeOther Shape = iota
	ShapeLocal
	ShapeDestination
	ShapeDay
	ShapeDayMonth
	ShapeFull
)

// Shape classifies the Request by the optional tokens present
func (r Request) Shape() Shape {
	d, dy, m, y := r.Destination != nil, r.Day != nil, r.Month != nil, r.Year != nil
	switch {
	case d && dy && m && y:
		return ShapeFull
	case d && dy && m && !y:
		return ShapeDayMonth
	case d && dy && !m && !y:
		return ShapeDay
	case d && !dy && !m && !y:
		return ShapeDestination
	case !d && !dy && !m && !y:
		return ShapeLocal
	}
	return ShapeOther
}

// Result is a completed conversion
type Result struct {
	Request     Request
	Format      clock.Format
	Clock       clock.Time
	Zones       zones.Zones
	Fields      calendar.Fields
	Origin      time.Time
	Destination time.Time
}
