package zones

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
)

// Kind says how a table key was derived
type Kind string

const (
	KindAbbreviation Kind = "abbreviation"
	KindOffset       Kind = "offset"
	KindIANA         Kind = "iana"
	KindCity         Kind = "city"
)

// Entry is one row of the zone table
type Entry struct {
	Key  string
	Name string
	Kind Kind
}

// abbreviations pins fixed-offset abbreviations to Etc zones so "est" stays
// UTC-5 in July; generic names (et, pt) follow the city and its DST rules
var abbreviations = map[string]string{
	"utc":  "UTC",
	"ut":   "UTC",
	"gmt":  "UTC",
	"z":    "UTC",
	"zulu": "UTC",
	"wet":  "UTC",
	"west": "Etc/GMT-1",
	"bst":  "Etc/GMT-1",
	"cet":  "Etc/GMT-1",
	"cest": "Etc/GMT-2",
	"eet":  "Etc/GMT-2",
	"eest": "Etc/GMT-3",
	"msk":  "Europe/Moscow",
	"ist":  "Asia/Kolkata",
	"pkt":  "Asia/Karachi",
	"npt":  "Asia/Kathmandu",
	"gst":  "Asia/Dubai",
	"ict":  "Asia/Bangkok",
	"wib":  "Asia/Jakarta",
	"sgt":  "Asia/Singapore",
	"hkt":  "Asia/Hong_Kong",
	"pht":  "Asia/Manila",
	"jst":  "Asia/Tokyo",
	"kst":  "Asia/Seoul",
	"awst": "Australia/Perth",
	"acst": "Australia/Darwin",
	"aest": "Etc/GMT-10",
	"aedt": "Etc/GMT-11",
	"nzst": "Etc/GMT-12",
	"nzdt": "Etc/GMT-13",
	"wat":  "Africa/Lagos",
	"cat":  "Africa/Maputo",
	"sast": "Africa/Johannesburg",
	"eat":  "Africa/Nairobi",
	"ast":  "Etc/GMT+4",
	"adt":  "Etc/GMT+3",
	"est":  "Etc/GMT+5",
	"edt":  "Etc/GMT+4",
	"cst":  "Etc/GMT+6",
	"cdt":  "Etc/GMT+5",
	"mst":  "Etc/GMT+7",
	"mdt":  "Etc/GMT+6",
	"pst":  "Etc/GMT+8",
	"pdt":  "Etc/GMT+7",
	"akst": "Etc/GMT+9",
	"akdt": "Etc/GMT+8",
	"hst":  "Pacific/Honolulu",
	"nst":  "America/St_Johns",
	"brt":  "America/Sao_Paulo",
	"art":  "America/Argentina/Buenos_Aires",

	// generic, DST-following
	"et":  "America/New_York",
	"ct":  "America/Chicago",
	"mt":  "America/Denver",
	"pt":  "America/Los_Angeles",
	"akt": "America/Anchorage",
	"ht":  "Pacific/Honolulu",
	"at":  "America/Halifax",
	"aet": "Australia/Sydney",
	"uk":  "Europe/London",
}

// ianaNames are the region/city zones reachable by name, case-insensitively
var ianaNames = []string{
	"Africa/Abidjan", "Africa/Accra", "Africa/Addis_Ababa", "Africa/Algiers", "Africa/Cairo",
	"Africa/Casablanca", "Africa/Dakar", "Africa/Dar_es_Salaam", "Africa/Johannesburg", "Africa/Kampala",
	"Africa/Khartoum", "Africa/Kinshasa", "Africa/Lagos", "Africa/Luanda", "Africa/Maputo",
	"Africa/Nairobi", "Africa/Tripoli", "Africa/Tunis", "Africa/Windhoek",
	"America/Anchorage", "America/Argentina/Buenos_Aires", "America/Asuncion", "America/Bogota",
	"America/Caracas", "America/Chicago", "America/Costa_Rica", "America/Denver", "America/Edmonton",
	"America/Guatemala", "America/Halifax", "America/Havana", "America/Lima", "America/Los_Angeles",
	"America/Mexico_City", "America/Montevideo", "America/New_York", "America/Panama", "America/Phoenix",
	"America/Puerto_Rico", "America/Regina", "America/Santiago", "America/Santo_Domingo",
	"America/Sao_Paulo", "America/St_Johns", "America/Toronto", "America/Vancouver", "America/Winnipeg",
	"America/Detroit", "America/Indiana/Indianapolis", "America/Boise", "America/Juneau",
	"Antarctica/McMurdo",
	"Asia/Almaty", "Asia/Amman", "Asia/Baghdad", "Asia/Baku", "Asia/Bangkok", "Asia/Beirut",
	"Asia/Colombo", "Asia/Damascus", "Asia/Dhaka", "Asia/Dubai", "Asia/Ho_Chi_Minh", "Asia/Hong_Kong",
	"Asia/Jakarta", "Asia/Jerusalem", "Asia/Kabul", "Asia/Karachi", "Asia/Kathmandu", "Asia/Kolkata",
	"Asia/Kuala_Lumpur", "Asia/Kuwait", "Asia/Manila", "Asia/Qatar", "Asia/Riyadh", "Asia/Seoul",
	"Asia/Shanghai", "Asia/Singapore", "Asia/Taipei", "Asia/Tashkent", "Asia/Tbilisi", "Asia/Tehran",
	"Asia/Tokyo", "Asia/Ulaanbaatar", "Asia/Vladivostok", "Asia/Yangon", "Asia/Yekaterinburg",
	"Asia/Yerevan", "Asia/Novosibirsk",
	"Atlantic/Azores", "Atlantic/Canary", "Atlantic/Cape_Verde", "Atlantic/Reykjavik",
	"Australia/Adelaide", "Australia/Brisbane", "Australia/Darwin", "Australia/Hobart",
	"Australia/Melbourne", "Australia/Perth", "Australia/Sydney",
	"Europe/Amsterdam", "Europe/Athens", "Europe/Belgrade", "Europe/Berlin", "Europe/Brussels",
	"Europe/Bucharest", "Europe/Budapest", "Europe/Copenhagen", "Europe/Dublin", "Europe/Helsinki",
	"Europe/Istanbul", "Europe/Kyiv", "Europe/Lisbon", "Europe/London", "Europe/Madrid", "Europe/Minsk",
	"Europe/Moscow", "Europe/Oslo", "Europe/Paris", "Europe/Prague", "Europe/Riga", "Europe/Rome",
	"Europe/Sofia", "Europe/Stockholm", "Europe/Tallinn", "Europe/Vienna", "Europe/Vilnius",
	"Europe/Warsaw", "Europe/Zurich",
	"Indian/Maldives", "Indian/Mauritius",
	"Pacific/Auckland", "Pacific/Chatham", "Pacific/Fiji", "Pacific/Guam", "Pacific/Honolulu",
	"Pacific/Kiritimati", "Pacific/Noumea", "Pacific/Pago_Pago", "Pacific/Port_Moresby", "Pacific/Tongatapu",
	"UTC",
}

// table is the process-wide lookup from lower-case key to IANA name
var table, kinds = buildTable()

// MinOffset and MaxOffset bound the utc±N keys
const (
	MinOffset = -12
	MaxOffset = 14
)

// OffsetKey returns the utc±N key for a whole-hour offset, e.g. utc+1, utc-5, utc+0
func OffsetKey(hours int) string { return fmt.Sprintf("utc%+d", hours) }

// etcName maps a whole-hour offset to its Etc zone, whose sign is inverted by POSIX convention
func etcName(hours int) string {
	if hours == 0 {
		return "UTC"
	}
	return fmt.Sprintf("Etc/GMT%+d", -hours)
}

func buildTable() (map[string]string, map[string]Kind) {
	t := make(map[string]string, 512)
	k := make(map[string]Kind, 512)
	put := func(key, name string, kind Kind) {
		if _, dup := t[key]; dup {
			return
		}
		t[key] = name
		k[key] = kind
	}

	for key, name := range abbreviations {
		put(key, name, KindAbbreviation)
	}
	for h := MinOffset; h <= MaxOffset; h++ {
		put(OffsetKey(h), etcName(h), KindOffset)
		put(fmt.Sprintf("gmt%+d", h), etcName(h), KindOffset)
	}
	put("utc-0", "UTC", KindOffset)
	put("gmt-0", "UTC", KindOffset)

	for _, name := range ianaNames {
		put(strings.ToLower(name), name, KindIANA)
	}
	// bare city names second so an IANA key always wins
	for _, name := range ianaNames {
		put(strings.ToLower(path.Base(name)), name, KindCity)
	}
	return t, k
}

// Entries returns the table sorted by key
func Entries() []Entry {
	keys := slices.Sorted(maps.Keys(table))
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		out = append(out, Entry{Key: key, Name: table[key], Kind: kinds[key]})
	}
	return out
}

// Name returns the IANA name for an already normalized key
func Name(key string) (string, bool) {
	n, ok := table[key]
	return n, ok
}
