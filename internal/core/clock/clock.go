// Package clock classifies and parses the time-of-day token of a conversion.
//
// Four formats are accepted, tested in priority order:
//
//	SimpleAmPm    1am, 10pm
//	FullAmPm      12:24am, 6:30pm
//	MilitaryColon 07:00, 13:52
//	Military      0900, 1634
//
// The pm offset is additive: 12 is added to the hour of any pm token and the
// result must still be a valid 24-hour clock, so 12pm is rejected and 12am is noon.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tzconv/internal/core/normalize"
	perr "tzconv/internal/platform/errors"
)

// Format tags which pattern a time token matched
type Format uint8

const (
	// FormatNone means no pattern matched
	FormatNone Format = iota
	SimpleAmPm
	FullAmPm
	MilitaryColon
	Military
)

// Formats lists the accepted formats in classification priority order
var Formats = []Format{SimpleAmPm, FullAmPm, MilitaryColon, Military}

var formatNames = map[Format]string{
	FormatNone:    "None",
	SimpleAmPm:    "SimpleAmPm",
	FullAmPm:      "FullAmPm",
	MilitaryColon: "MilitaryColon",
	Military:      "Military",
}

var formatExamples = map[Format]string{
	SimpleAmPm:    "eg. 1am, 10pm, etc.",
	FullAmPm:      "eg. 12:24am, 6:30pm, etc.",
	MilitaryColon: "eg. 07:00, 13:52, etc.",
	Military:      "eg. 0900, 1634, etc.",
}

// String returns the format name
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Example returns a short example list for help and diagnostics
func (f Format) Example() string { return formatExamples[f] }

var patterns = []struct {
	format Format
	re     *regexp.Regexp
}{
	{SimpleAmPm, regexp.MustCompile(`^\d{1,2}(am|pm)$`)},
	{FullAmPm, regexp.MustCompile(`^\d{1,2}:\d{2}(am|pm)$`)},
	{MilitaryColon, regexp.MustCompile(`^\d{2}:\d{2}$`)},
	{Military, regexp.MustCompile(`^\d{4}$`)},
}

// Classify returns the first format whose pattern matches s, or FormatNone
// s is expected lower-cased; no range checks happen here
func Classify(s string) Format {
	for _, p := range patterns {
		if p.re.MatchString(s) {
			return p.format
		}
	}
	return FormatNone
}

// Time is a validated wall-clock time of day
type Time struct {
	Hour   int
	Minute int
}

// Valid reports whether the hour is 0-23 and the minute 0-59
func (t Time) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// String renders the time as HH:MM
func (t Time) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// Parse classifies s and extracts a validated Time
// ok is false when s matches no format or a field is out of range; values are never clamped
func Parse(s string) (Time, bool) {
	f := Classify(s)
	var (
		t  Time
		ok bool
	)
	switch f {
	case SimpleAmPm:
		body, off := splitMeridiem(s)
		t.Hour, ok = atoi(body)
		t.Hour += off
	case FullAmPm:
		body, off := splitMeridiem(s)
		t, ok = splitColon(body)
		t.Hour += off
	case MilitaryColon:
		t, ok = splitColon(s)
	case Military:
		var okH, okM bool
		t.Hour, okH = atoi(s[:2])
		t.Minute, okM = atoi(s[2:])
		ok = okH && okM
	}
	if !ok || !t.Valid() {
		return Time{}, false
	}
	return t, true
}

// ParseToken folds a raw command-line token and parses it
// The error carries the raw token so diagnostics echo what was typed
func ParseToken(raw string) (Time, Format, error) {
	s := normalize.Token(raw)
	t, ok := Parse(s)
	if !ok {
		return Time{}, Classify(s), perr.Token(perr.ErrorCodeTimeParse, raw, "cannot parse the time %q", raw)
	}
	return t, Classify(s), nil
}

// splitMeridiem strips the am/pm suffix and returns the additive hour offset
func splitMeridiem(s string) (string, int) {
	if body, ok := strings.CutSuffix(s, "pm"); ok {
		return body, 12
	}
	return strings.TrimSuffix(s, "am"), 0
}

func splitColon(s string) (Time, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return Time{}, false
	}
	hour, okH := atoi(h)
	minute, okM := atoi(m)
	return Time{Hour: hour, Minute: minute}, okH && okM
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
