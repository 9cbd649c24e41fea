// Package raw reads environment variables before anything else is set up.
// The logger reads LOG_* through it, so it must not log
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view over the environment, e.g. "LOG_"
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix returns a view with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) read(key string) string { return strings.TrimSpace(os.Getenv(c.prefix + key)) }

// Has reports whether the variable is set at all, even to ""; NO_COLOR is
// presence-only
func (c Conf) Has(key string) bool {
	_, ok := os.LookupEnv(c.prefix + key)
	return ok
}

// Get returns the trimmed value or def when blank
func (c Conf) Get(key, def string) string {
	if v := c.read(key); v != "" {
		return v
	}
	return def
}

// GetBool is true for 1, true, yes and on in any case; other values are false
// and a blank one gives def
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.read(key)); v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt parses a non-negative integer; blank or anything else gives def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.read(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
