package calendar

import (
	"maps"
	"slices"
	"strconv"
	"time"
)

// months maps every accepted month spelling to its number
// lookups are case-sensitive; lower-case and Title-case spellings are listed
var months = buildMonths()

func buildMonths() map[string]time.Month {
	names := map[time.Month][]string{
		time.January:   {"january", "jan"},
		time.February:  {"february", "feb"},
		time.March:     {"march", "mar"},
		time.April:     {"april", "apr"},
		time.May:       {"may"},
		time.June:      {"june", "jun"},
		time.July:      {"july", "jul"},
		time.August:    {"august", "aug"},
		time.September: {"september", "sep", "sept"},
		time.October:   {"october", "oct"},
		time.November:  {"november", "nov"},
		time.December:  {"december", "dec"},
	}
	out := make(map[string]time.Month, 64)
	for m, list := range names {
		for _, n := range list {
			out[n] = m
			out[title(n)] = m
		}
		out[strconv.Itoa(int(m))] = m
		if m < 10 {
			out["0"+strconv.Itoa(int(m))] = m
		}
	}
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// LookupMonth returns the month named by s
func LookupMonth(s string) (time.Month, bool) {
	m, ok := months[s]
	return m, ok
}

// MonthKeys returns every accepted month spelling, sorted
func MonthKeys() []string {
	return slices.Sorted(maps.Keys(months))
}
