package version

import (
	"strings"
	"testing"

	kit "tzconv/internal/platform/testkit"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info()
	if bi.Name != "tzconv" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected build info: %+v", bi)
	}
	if bi.Version == "" {
		t.Fatalf("version should never be empty")
	}
}

func TestInfo_Ldflags(t *testing.T) {
	kit.Swap(t, &version, "v1.2.3")
	kit.Swap(t, &commit, "abc123")

	bi := Info()
	if bi.Version != "v1.2.3" || bi.Commit != "abc123" {
		t.Fatalf("ldflags values not reported: %+v", bi)
	}
	s := bi.String()
	if !strings.HasPrefix(s, "tzconv v1.2.3") {
		t.Fatalf("String() = %q", s)
	}
	kit.MustContain(t, s, "commit abc123")
}
