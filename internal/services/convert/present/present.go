// Package present renders conversion results and diagnostics as terminal text
package present

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tzconv/internal/core/clock"
	perr "tzconv/internal/platform/errors"
	"tzconv/internal/services/convert/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when tags are coloured
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted modes
var ColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

type styles struct {
	err  lipgloss.Style
	warn lipgloss.Style
	hint lipgloss.Style
	bad  lipgloss.Style
	dest lipgloss.Style
}

func newStyles(w io.Writer, mode ColorMode) styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		err:  r.NewStyle().Foreground(lipgloss.Color("1")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		hint: r.NewStyle().Foreground(lipgloss.Color("6")),
		bad:  r.NewStyle().Foreground(lipgloss.Color("1")),
		dest: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Colored reports whether output to w gets colour under mode
// auto follows the terminal capabilities lipgloss detects for w
func Colored(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return lipgloss.NewRenderer(w).ColorProfile() != termenv.Ascii
}

// Printer writes results and diagnostics to out and side notes to diag
type Printer struct {
	out     io.Writer
	diag    io.Writer
	st      styles
	dst     styles
	colored bool
}

// New returns a Printer; diag may equal out
func New(out, diag io.Writer, mode ColorMode) *Printer {
	return &Printer{
		out:     out,
		diag:    diag,
		st:      newStyles(out, mode),
		dst:     newStyles(diag, mode),
		colored: Colored(out, mode),
	}
}

// Result prints the conversion sentence framed by blank lines
func (p *Printer) Result(res domain.Result) {
	s := Sentence(res)
	if res.Request.Shape() == domain.ShapeOther {
		s = fmt.Sprintf("%s is %s", res.Origin, p.st.dest.Render(res.Destination.String()))
	}
	fmt.Fprintf(p.out, "\n\n%s\n\n\n", s)
}

// AssumedLocal warns that the destination came from the local offset
func (p *Printer) AssumedLocal(key string) {
	fmt.Fprintf(p.diag, "[%s] no destination given, assuming local time (%s)\n", p.dst.warn.Render("WARNING"), key)
}

// Underspecified reports too few positional arguments
func (p *Printer) Underspecified(n int) {
	fmt.Fprintf(p.out, "\n[%s] cannot convert timezones with only %d argument(s) specified.\n\n", p.st.err.Render("ERROR"), n)
}

// Overspecified warns about arguments past the year; the first six are used
func (p *Printer) Overspecified(args []string) {
	if len(args) <= 6 {
		return
	}
	fmt.Fprintf(p.out,
		"\n[%s] you have overspecified the conversion.\n\n\tExpected: time origin_timezone destination_timezone day month year\n\tGot:      %s %s\n\n",
		p.st.warn.Render("WARNING"),
		strings.Join(args[:6], " "),
		p.st.bad.Render(strings.Join(args[6:], " ")),
	)
}

// Diagnostic renders a pipeline error; unknown errors print their text
func (p *Printer) Diagnostic(err error) {
	if err == nil {
		return
	}
	tag := "[" + p.st.err.Render("ERROR") + "]"
	e, ok := perr.As(err)
	if !ok {
		fmt.Fprintf(p.out, "\n%s %s\n", tag, err.Error())
		return
	}

	switch e.Code() {
	case perr.ErrorCodeTimeParse:
		fmt.Fprintf(p.out, "\n%s %s. Please format the time as one of the following:\n\n%s\n[%s] %s\n",
			tag, e.Message(), formatList(), p.st.hint.Render("HINT"), timeHint)
	case perr.ErrorCodeDay, perr.ErrorCodeMonth, perr.ErrorCodeYear:
		fmt.Fprintf(p.out, "%s %s\n", tag, e.Message())
	default:
		fmt.Fprintf(p.out, "\n%s %s\n", tag, e.Message())
	}
}

// Sentence echoes the typed tokens with the destination wall clock
// Combinations without a dedicated form fall back to both moments in long form
func Sentence(res domain.Result) string {
	r := res.Request
	at := TwelveHour(res.Destination)
	switch r.Shape() {
	case domain.ShapeFull:
		return fmt.Sprintf("%s %s %s %s %s is %s %s", r.Time, r.Origin, *r.Day, *r.Month, *r.Year, at, *r.Destination)
	case domain.ShapeDayMonth:
		return fmt.Sprintf("%s %s %s %s is %s %s", r.Time, r.Origin, *r.Day, *r.Month, at, *r.Destination)
	case domain.ShapeDay:
		return fmt.Sprintf("%s %s %s is %s %s", r.Time, r.Origin, *r.Day, at, *r.Destination)
	case domain.ShapeDestination:
		return fmt.Sprintf("%s %s is %s %s", r.Time, r.Origin, at, *r.Destination)
	case domain.ShapeLocal:
		return fmt.Sprintf("%s %s is %s local time", r.Time, r.Origin, at)
	}
	return fmt.Sprintf("%s is %s", res.Origin, res.Destination)
}

// TwelveHour formats the wall clock of t as H:MMam or H:MMpm
func TwelveHour(t time.Time) string {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "am"
	if t.Hour() >= 12 {
		suffix = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), suffix)
}

const timeHint = "this software is pretty good at working out which format you are using, make sure that if you specified am/pm that you are not using 24 hours and that you don't go over 59 minutes."

func formatList() string {
	var b strings.Builder
	for _, f := range clock.Formats {
		fmt.Fprintf(&b, "\t%-13s - %s\n", f, f.Example())
	}
	return b.String()
}

// Usage is the text shown when no arguments are given
func Usage() string {
	return `
Timezone conversion on the command line.

	Usage: tzconv time origin_timezone destination_timezone day month year
	Example: tzconv 1pm et bst tomorrow
	  ↳ display what 1pm eastern time is in British summer time tomorrow.

time should be in one of the following formats:

` + formatList() + `
The origin and destination timezones can be either a city,
such as Europe/London, or a timezone abbreviation, such
as gmt. Run "tzconv zones" for the full list of accepted
timezones.

The day, month, and year are all fairly self-explanatory,
but you can also specify 'today', 'tomorrow' or 'yesterday'
for the day.

This software is robust, you do not have to fully-specify
the conversion that you want to perform. At a minimum you
can specify only the time and the origin, with the rest
being assumed to be your local timezone, the current day,
the current month, and the current year.
`
}

// Help prints Usage
func (p *Printer) Help() { fmt.Fprintln(p.out, Usage()) }
