package zones

import (
	"strings"
	"time"

	"github.com/tkuchiki/go-timezone"
)

// abbreviationSource resolves an abbreviation the static table does not know
type abbreviationSource interface {
	fixed(key string) (*time.Location, bool)
}

// goTimezone reads the abbreviation list bundled with go-timezone
// ambiguous abbreviations take the first listed offset
type goTimezone struct{}

var tzdb = timezone.New()

func (goTimezone) fixed(key string) (*time.Location, bool) {
	abbr := strings.ToUpper(key)
	infos, err := tzdb.GetTzAbbreviationInfo(abbr)
	if err != nil || len(infos) == 0 {
		return nil, false
	}
	return time.FixedZone(abbr, infos[0].Offset()), true
}
