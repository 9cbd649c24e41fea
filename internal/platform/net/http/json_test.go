package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type inQuery struct {
	Time string `query:"time" json:"time" validate:"required"`
}

func TestBound_Success(t *testing.T) {
	t.Parallel()

	h := Bound[inQuery](func(_ *http.Request, in inQuery) (any, error) {
		return map[string]string{"echo": in.Time}, nil
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/x?time=1pm", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"echo":"1pm"`) {
		t.Fatalf("body %q missing echo", rr.Body.String())
	}
}

func TestBound_BindError(t *testing.T) {
	t.Parallel()

	h := Bound[inQuery](func(_ *http.Request, _ inQuery) (any, error) {
		t.Fatal("handler should not be called on bind error")
		return nil, nil
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on bind error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"field":"time"`) {
		t.Fatalf("expected field in body, got %q", rr.Body.String())
	}
}

func TestBound_HandlerError(t *testing.T) {
	t.Parallel()

	h := Bound[inQuery](func(_ *http.Request, _ inQuery) (any, error) {
		return nil, errors.New("boom")
	})

	rr := httptest.NewRecorder()
	h(rr, httptest.NewRequest(http.MethodGet, "/x?time=1pm", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on handler error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("expected error message in body, got %q", rr.Body.String())
	}
}
