// Package config handles application configuration via environment variables
// layered over an optional YAML file
package config

import (
	stderrs "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	perr "tzconv/internal/platform/errors"
	"tzconv/internal/platform/logger"

	"github.com/spf13/viper"
)

// AppPrefix is the env namespace of the tool. File keys drop it and are lower-cased,
// so TZCONV_STRICT_EXIT is strict_exit in config.yaml
const AppPrefix = "TZCONV_"

// Conf is a namespaced view over environment variables (e.g., "TZCONV_", "TZCONV_HTTP_")
// Use New() for env-only access, Load() to layer a config file under the env
type Conf struct {
	prefix string
	v      *viper.Viper
}

// New creates a root Conf (no prefix, no file)
func New() Conf { return Conf{} }

// DefaultPath returns $XDG_CONFIG_HOME/tzconv/config.yaml (or the platform equivalent)
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tzconv", "config.yaml")
}

// Load creates a root Conf backed by the YAML file at path. An empty path means
// DefaultPath, which is allowed to be missing; an explicit path must exist
func Load(path string) (Conf, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return New(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !explicit && (stderrs.As(err, &nf) || stderrs.Is(err, fs.ErrNotExist)) {
			logger.Get().Debug().Str("config_file", path).Msg("no config file; env only")
			return New(), nil
		}
		return New(), perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read config %s", path)
	}
	logger.Get().Debug().Str("config_file", v.ConfigFileUsed()).Msg("config file loaded")
	return Conf{v: v}, nil
}

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("TZCONV_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, v: c.v} }

// File returns the config file backing c, or "" when env only
func (c Conf) File() string {
	if c.v == nil {
		return ""
	}
	return c.v.ConfigFileUsed()
}

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// fileKey maps an env var name onto its config file key
func fileKey(envKey string) string {
	return strings.ToLower(strings.TrimPrefix(envKey, AppPrefix))
}

// Lookup returns the trimmed value for key, env first then file, and whether it was found
func (c Conf) Lookup(key string) (string, bool) {
	k := c.key(key)
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v, true
	}
	if c.v == nil {
		return "", false
	}
	fk := fileKey(k)
	if !c.v.IsSet(fk) {
		return "", false
	}
	var s string
	switch val := c.v.Get(fk).(type) {
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
		s = strings.Join(parts, ",")
	default:
		s = fmt.Sprint(val)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// parsed reads key through parse. Missing keys give def; unparsable ones are
// logged and give def too, so a typo never stops the tool
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().
			Str("key", c.key(key)).
			Str("value", s).
			Interface("default", def).
			Msg("unparsable setting; using default")
		return def
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	return parsed(c, key, def, func(s string) (string, error) { return s, nil })
}

// MayInt returns the integer value or def
func (c Conf) MayInt(key string, def int) int { return parsed(c, key, def, strconv.Atoi) }

// MayBool returns the boolean value (1, t, true, 0, f, false...) or def
func (c Conf) MayBool(key string, def bool) bool { return parsed(c, key, def, strconv.ParseBool) }

// MayDuration returns the duration value (e.g. 750ms) or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma-separated value, dropping blanks. A YAML list in the
// file arrives here already joined. def is returned when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	out := parsed(c, key, []string(nil), func(s string) ([]string, error) {
		var items []string
		for item := range strings.SplitSeq(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	})
	if len(out) == 0 {
		return def
	}
	return out
}
