package domain

import pstrings "tzconv/internal/platform/strings"

// ConvertQuery is the query string of GET /v1/convert
// blank optional parameters behave like absent ones
type ConvertQuery struct {
	Time        string `query:"time"        json:"time"                  validate:"required,max=32"`
	Origin      string `query:"origin"      json:"origin"                validate:"required,max=64"`
	Destination string `query:"destination" json:"destination,omitempty" validate:"omitempty,max=64"`
	Day         string `query:"day"         json:"day,omitempty"         validate:"omitempty,max=16"`
	Month       string `query:"month"       json:"month,omitempty"       validate:"omitempty,max=16"`
	Year        string `query:"year"        json:"year,omitempty"        validate:"omitempty,max=16"`
}

// Request maps the query onto a conversion Request
func (q ConvertQuery) Request() Request {
	return Request{
		Time:        q.Time,
		Origin:      q.Origin,
		Destination: pstrings.BlankPtr(q.Destination),
		Day:         pstrings.BlankPtr(q.Day),
		Month:       pstrings.BlankPtr(q.Month),
		Year:        pstrings.BlankPtr(q.Year),
	}
}

// ConvertResponse is the payload of GET /v1/convert
type ConvertResponse struct {
	Sentence        string `json:"sentence"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginZone      string `json:"origin_zone"`
	DestinationZone string `json:"destination_zone"`
	Format          string `json:"format"`
	AssumedLocal    bool   `json:"assumed_local"`
}

// ZonesQuery is the query string of GET /v1/zones
type ZonesQuery struct {
	Filter string `query:"filter" json:"filter,omitempty" validate:"omitempty,max=64"`
}

// ZoneRow is one zone table entry with its current offset
type ZoneRow struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Offset string `json:"offset"`
}
