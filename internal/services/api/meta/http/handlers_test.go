package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "tzconv/internal/platform/net/http"
	ptime "tzconv/internal/platform/time"

	"github.com/go-chi/chi/v5"
)

func serve(t *testing.T, d Deps, path string) map[string]any {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("%s status=%d body=%s", path, rr.Code, rr.Body.String())
	}
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestService_Uptime(t *testing.T) {
	started := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	d := Deps{ServiceName: "tzconv", StartedAt: started, Clock: ptime.Fixed(started.Add(90 * time.Second))}

	got := serve(t, d, "/service")
	if got["uptime"] != float64(90) || got["name"] != "tzconv" {
		t.Fatalf("unexpected service payload %v", got)
	}
}

func TestReady_FailsOnUnknownZone(t *testing.T) {
	d := Deps{Probe: []string{"UTC", "Mars/Olympus_Mons"}}

	got := serve(t, d, "/ready")
	if got["status"] != "fail" {
		t.Fatalf("expected fail, got %v", got)
	}
	checks, _ := got["checks"].([]any)
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %v", got["checks"])
	}
	second, _ := checks[1].(map[string]any)
	if second["status"] != "fail" || second["error"] == "" {
		t.Fatalf("unexpected check %v", second)
	}
}

func TestReady_DefaultProbeOK(t *testing.T) {
	got := serve(t, Deps{}, "/ready")
	if got["status"] != "ok" {
		t.Fatalf("expected ok, got %v", got)
	}
}

func TestHealth_StampsUTC(t *testing.T) {
	started := time.Date(2024, 7, 1, 14, 0, 0, 0, time.FixedZone("cest", 2*3600))
	d := Deps{ServiceName: "tzconv", StartedAt: started, Clock: ptime.Fixed(started.Add(time.Minute))}

	got := serve(t, d, "/health")
	if got["ok"] != true || got["started"] != "2024-07-01T12:00:00Z" || got["now"] != "2024-07-01T12:01:00Z" {
		t.Fatalf("unexpected health payload %v", got)
	}
}

func TestVersion_Served(t *testing.T) {
	got := serve(t, Deps{}, "/version")
	if len(got) == 0 {
		t.Fatal("empty version payload")
	}
}
