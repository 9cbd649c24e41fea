package testkit

import (
	"os"
	"strings"
	"testing"
)

// Swap replaces *target with v until the test ends
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	orig := *target
	*target = v
	t.Cleanup(func() { *target = orig })
}

// ClearEnv unsets every environment variable whose name starts with prefix
// until the test ends. Like t.Setenv it cannot be used in parallel tests
func ClearEnv(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		t.Setenv(k, "") // restores the original value on cleanup
		_ = os.Unsetenv(k)
	}
}

// Isolate gives the test an empty config directory and strips TZCONV_
// settings and NO_COLOR from the environment. It returns the directory that
// os.UserConfigDir resolves to
func Isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	ClearEnv(t, "TZCONV_")
	ClearEnv(t, "NO_COLOR")
	return dir
}
