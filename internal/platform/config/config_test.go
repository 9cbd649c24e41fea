package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	perr "tzconv/internal/platform/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestPrefixAndKey(t *testing.T) {
	http := New().Prefix(AppPrefix).Prefix("HTTP_")
	if got := http.key("ADDR"); got != "TZCONV_HTTP_ADDR" {
		t.Fatalf("key() = %q", got)
	}
	if got := fileKey(http.key("ADDR")); got != "http_addr" {
		t.Fatalf("fileKey() = %q, want http_addr", got)
	}
}

func TestMay_EnvParsingAndFallbacks(t *testing.T) {
	t.Setenv("MAY_NAME", " tzconv ")
	t.Setenv("MAY_N", " 7 ")
	t.Setenv("MAY_N_BAD", "seven")
	t.Setenv("MAY_D", "150ms")
	t.Setenv("MAY_D_BAD", "soon")
	t.Setenv("MAY_B", "true")
	t.Setenv("MAY_B_BAD", "yes please")
	c := New().Prefix("MAY_")

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"string", c.MayString("NAME", "x"), "tzconv"},
		{"string default", c.MayString("NOPE", "def"), "def"},
		{"int", c.MayInt("N", 0), 7},
		{"int default", c.MayInt("NOPE", 9), 9},
		{"int unparsable", c.MayInt("N_BAD", 3), 3},
		{"duration", c.MayDuration("D", time.Second), 150 * time.Millisecond},
		{"duration default", c.MayDuration("NOPE", 5*time.Second), 5 * time.Second},
		{"duration unparsable", c.MayDuration("D_BAD", time.Minute), time.Minute},
		{"bool", c.MayBool("B", false), true},
		{"bool default", c.MayBool("NOPE", true), true},
		{"bool unparsable", c.MayBool("B_BAD", false), false},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestMayCSV(t *testing.T) {
	t.Setenv("CSV_VALS", " one, two , ,three ,, ")
	t.Setenv("CSV_BLANK", " , ,  ,")
	c := New().Prefix("CSV_")

	got := c.MayCSV("VALS", nil)
	if strings.Join(got, "|") != "one|two|three" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayCSV("MISS", []string{"a", "b"}); strings.Join(got, "|") != "a|b" {
		t.Fatalf("missing key should give def, got %#v", got)
	}
	if got := c.MayCSV("BLANK", []string{"fallback"}); len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("all-blank list should give def, got %#v", got)
	}
}

// file layering

func TestLoad_FileValuesUnderEnv(t *testing.T) {
	p := writeFile(t, "strict_exit: true\ncolor: never\nhttp_addr: \":5000\"\nhttp_cors_origins:\n  - https://a.example\n  - https://b.example\n")

	root, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.File() != p {
		t.Fatalf("File() = %q, want %q", root.File(), p)
	}
	app := root.Prefix(AppPrefix)

	if v, ok := app.Lookup("STRICT_EXIT"); !ok || v != "true" {
		t.Fatalf("file bool = %q %v", v, ok)
	}
	if got := app.MayString("COLOR", "auto"); got != "never" {
		t.Fatalf("file string = %q, want never", got)
	}
	if got := app.Prefix("HTTP_").MayString("ADDR", ":4000"); got != ":5000" {
		t.Fatalf("nested file key = %q, want :5000", got)
	}
	origins := app.MayCSV("HTTP_CORS_ORIGINS", nil)
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Fatalf("file list = %#v", origins)
	}

	// env wins over the file
	t.Setenv("TZCONV_COLOR", "always")
	if got := app.MayString("COLOR", "auto"); got != "always" {
		t.Fatalf("env should override file, got %q", got)
	}

	if _, ok := app.Lookup("LOCAL_ZONE"); ok {
		t.Fatalf("Lookup should miss unset keys")
	}
}

func TestLoad_MissingFiles(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("explicit missing file: want InvalidArgument, got %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("default missing file should not error: %v", err)
	}
	if c.File() != "" {
		t.Fatalf("env-only Conf should report no file, got %q", c.File())
	}
}

func TestLoad_BadYAML(t *testing.T) {
	p := writeFile(t, "color: [unterminated\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("malformed yaml should error")
	}
}
