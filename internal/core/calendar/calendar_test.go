package calendar

import (
	"strconv"
	"testing"
	"time"

	perr "tzconv/internal/platform/errors"
	kit "tzconv/internal/platform/testkit"
	ptime "tzconv/internal/platform/time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-04-30 22:00 in UTC-5 is 2024-05-01 03:00 UTC
var fixed = time.Date(2024, 4, 30, 22, 0, 0, 0, time.FixedZone("x", -5*3600))

func newResolver(opts Options) *Resolver { return New(ptime.Fixed(fixed), opts) }

func TestDay_DefaultsAndKeywords(t *testing.T) {
	r := newResolver(Options{})

	d, err := r.Day(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, d, "defaults use the UTC date")

	today, err := r.Day(kit.Ref("today"))
	require.NoError(t, err)
	assert.Equal(t, d, today)

	y, err := r.Day(kit.Ref("yesterday"))
	require.NoError(t, err)
	assert.Equal(t, 30, y, "yesterday crosses the month boundary")

	tm, err := r.Day(kit.Ref("Tomorrow"))
	require.NoError(t, err)
	assert.Equal(t, 2, tm)
}

func TestDay_TomorrowModuloMonth(t *testing.T) {
	for _, at := range []time.Time{
		time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	} {
		r := New(ptime.Fixed(at), Options{})
		got, err := r.Day(kit.Ref("tomorrow"))
		require.NoError(t, err)
		assert.Equal(t, at.AddDate(0, 0, 1).Day(), got, "tomorrow at %v", at)
	}
}

func TestDay_Numbers(t *testing.T) {
	// now is May 2024 in UTC: 31 days
	r := newResolver(Options{})

	for _, tok := range []string{"1", "01", "15", "31", "+5", "３１"} {
		_, err := r.Day(kit.Ref(tok))
		assert.NoError(t, err, "Day(%q)", tok)
	}
	for _, tok := range []string{"0", "32", "-1", "fifth", "1st", ""} {
		_, err := r.Day(kit.Ref(tok))
		require.Error(t, err, "Day(%q)", tok)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeDay))
		e, _ := perr.As(err)
		assert.Equal(t, tok, e.Field())
	}

	// validated against the current month, not the month argument
	feb := New(ptime.Fixed(time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)), Options{})
	_, err := feb.Day(kit.Ref("30"))
	assert.Error(t, err)
	_, err = feb.Day(kit.Ref("28"))
	assert.NoError(t, err)
}

func TestMonth(t *testing.T) {
	r := newResolver(Options{})

	m, err := r.Month(nil)
	require.NoError(t, err)
	assert.Equal(t, time.May, m)

	cases := map[string]time.Month{
		"feb":      time.February,
		"Feb":      time.February,
		"february": time.February,
		"2":        time.February,
		"02":       time.February,
		"sept":     time.September,
		"Sep":      time.September,
		"12":       time.December,
		"May":      time.May,
	}
	for tok, want := range cases {
		got, err := r.Month(kit.Ref(tok))
		require.NoError(t, err, "Month(%q)", tok)
		assert.Equal(t, want, got, "Month(%q)", tok)
	}

	for _, tok := range []string{"FEB", "13", "0", "00", "010", "smarch", ""} {
		_, err := r.Month(kit.Ref(tok))
		require.Error(t, err, "Month(%q)", tok)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeMonth))
	}
}

func TestMonthTable_RoundTrips(t *testing.T) {
	keys := MonthKeys()
	require.NotEmpty(t, keys)
	for _, k := range keys {
		m, ok := LookupMonth(k)
		require.True(t, ok)
		assert.True(t, m >= time.January && m <= time.December, "key %q", k)
	}
	for n := 1; n <= 12; n++ {
		m, ok := LookupMonth(strconv.Itoa(n))
		require.True(t, ok)
		assert.Equal(t, time.Month(n), m)
		if n < 10 {
			padded, ok := LookupMonth("0" + strconv.Itoa(n))
			require.True(t, ok)
			assert.Equal(t, m, padded)
		}
		full, ok := LookupMonth(time.Month(n).String())
		require.True(t, ok, "Title-case full name %s", time.Month(n))
		assert.Equal(t, m, full)
	}
}

func TestYear(t *testing.T) {
	r := newResolver(Options{})
	y, err := r.Year(nil)
	require.NoError(t, err)
	assert.Equal(t, 5, y, "an unspecified year is the current UTC month number")

	current := newResolver(Options{CurrentYearDefault: true})
	y, err = current.Year(nil)
	require.NoError(t, err)
	assert.Equal(t, 2024, y)

	for tok, want := range map[string]int{"2020": 2020, "-44": -44, "0": 0, "262143": MaxYear} {
		got, err := r.Year(kit.Ref(tok))
		require.NoError(t, err, "Year(%q)", tok)
		assert.Equal(t, want, got)
	}
	for _, tok := range []string{"twenty", "2020ad", "262144", "-262145", ""} {
		_, err := r.Year(kit.Ref(tok))
		require.Error(t, err, "Year(%q)", tok)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeYear))
	}
}

func TestResolve_OrderAndFields(t *testing.T) {
	r := newResolver(Options{})

	f, err := r.Resolve(kit.Ref("20"), kit.Ref("feb"), kit.Ref("2020"))
	require.NoError(t, err)
	assert.Equal(t, Fields{Day: 20, Month: time.February, Year: 2020}, f)
	assert.True(t, f.Valid())

	// day fails first even when month and year are bad too
	_, err = r.Resolve(kit.Ref("99"), kit.Ref("bad"), kit.Ref("bad"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDay))
	_, err = r.Resolve(nil, kit.Ref("bad"), kit.Ref("bad"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeMonth))
	_, err = r.Resolve(nil, nil, kit.Ref("bad"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeYear))
}

func TestFieldsValidAndDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 30, DaysIn(2024, time.April))
	assert.False(t, Fields{Day: 31, Month: time.April, Year: 2024}.Valid())
	assert.False(t, Fields{Day: 29, Month: time.February, Year: 2023}.Valid())
	assert.True(t, Fields{Day: 29, Month: time.February, Year: 2024}.Valid())
	assert.False(t, Fields{Day: 1, Month: 13, Year: 2024}.Valid())
}

func TestNew_NilClock(t *testing.T) {
	r := New(nil, Options{})
	_, err := r.Day(nil)
	assert.NoError(t, err)
}

func TestResolve_DefaultYearIsMonthNumber(t *testing.T) {
	r := New(ptime.Fixed(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)), Options{})
	f, err := r.Resolve(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Fields{Day: 17, Month: time.October, Year: 10}, f)
	assert.True(t, f.Valid())
}
