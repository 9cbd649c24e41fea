package bind

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	perr "tzconv/internal/platform/errors"
)

type query struct {
	Time   string  `query:"time"   json:"time"   validate:"required,max=8"`
	Origin string  `query:"origin" json:"origin" validate:"required"`
	Day    *string `query:"day"    json:"day"`
	Skip   string  `json:"skip"`
}

func TestParseQuery_Success(t *testing.T) {
	req := httptest.NewRequest("GET", "/?time=1pm&origin=est&day=2&day=3&skip=x&other=y", nil)
	got, err := ParseQuery[query](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Time != "1pm" || got.Origin != "est" {
		t.Fatalf("got %+v", got)
	}
	if got.Day == nil || *got.Day != "2" {
		t.Fatalf("repeated parameter should keep the first value, got %v", got.Day)
	}
	if got.Skip != "" {
		t.Fatalf("untagged fields must not bind, got %q", got.Skip)
	}
}

func TestParseQuery_AbsentPointerStaysNil(t *testing.T) {
	req := httptest.NewRequest("GET", "/?time=1pm&origin=est", nil)
	got, err := ParseQuery[query](req)
	if err != nil || got.Day != nil {
		t.Fatalf("got %+v, err %v", got, err)
	}
}

func TestParseQuery_ValidationError(t *testing.T) {
	req := httptest.NewRequest("GET", "/?time=1pm", nil)
	_, err := ParseQuery[query](req)
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("expected invalid argument, got %v (%v)", perr.CodeOf(err), err)
	}
	e, _ := perr.As(err)
	if e.Field() != "origin" {
		t.Fatalf("field = %q, want origin", e.Field())
	}
	if !strings.Contains(e.Message(), "origin") {
		t.Fatalf("message should name the field: %q", e.Message())
	}

	req = httptest.NewRequest("GET", "/?time=10:30pm-and-more&origin=est", nil)
	_, err = ParseQuery[query](req)
	e, _ = perr.As(err)
	if e == nil || e.Message() != "time must be at most 8" {
		t.Fatalf("max message = %v", err)
	}
}

func TestParseQuery_UnsupportedField(t *testing.T) {
	type bad struct {
		N int `query:"n"`
	}
	req := httptest.NewRequest("GET", "/?n=1", nil)
	if _, err := ParseQuery[bad](req); perr.CodeOf(err) != perr.ErrorCodeUnknown {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestParseQuery_NonStruct(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, err := ParseQuery[string](req); err == nil {
		t.Fatalf("expected error for non-struct target")
	}
}

func TestValidate_InvalidValidationError(t *testing.T) {
	if err := Validate(nil); perr.CodeOf(err) != perr.ErrorCodeUnknown {
		t.Fatalf("expected internal error for nil target, got %v", err)
	}
	if err := Validate(query{Time: "1pm", Origin: "est"}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestFieldNames_JsonTagNameUsed(t *testing.T) {
	type s struct {
		Val int `json:"foo,omitempty" validate:"min=1"`
	}
	err := Default().Struct(s{Val: 0})
	field, msg := FirstProblem(err)
	if field != "foo" {
		t.Fatalf("expected field=foo, got %s", field)
	}
	if !strings.Contains(msg, "at least") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestFieldNames_DashUsesFieldName(t *testing.T) {
	type s struct {
		Secret int `json:"-" validate:"min=1"`
	}
	err := Default().Struct(s{Secret: 0})
	field, _ := FirstProblem(err)
	if field != "Secret" {
		t.Fatalf("expected field=Secret, got %s", field)
	}
}

func TestFieldNames_NoTagUsesFieldName(t *testing.T) {
	type s struct {
		Plain int `validate:"min=1"`
	}
	err := Default().Struct(s{Plain: 0})
	field, _ := FirstProblem(err)
	if field != "Plain" {
		t.Fatalf("expected field=Plain, got %s", field)
	}
}

func TestFirstProblem_GenericError(t *testing.T) {
	field, msg := FirstProblem(errors.New("boom"))
	if field != "" || msg != "boom" {
		t.Fatalf("expected generic passthrough, got field=%q msg=%q", field, msg)
	}
}

func TestTranslations_MaxAndListenAddr(t *testing.T) {

	type s struct {
		Count int    `json:"count" validate:"max=5"`
		Addr  string `json:"addr" validate:"listen_addr"`
	}

	err1 := Default().Struct(s{Count: 6, Addr: ":4000"})
	_, msg1 := FirstProblem(err1)
	if msg1 != "count must be at most 5" {
		t.Fatalf("unexpected max message: %q", msg1)
	}

	err2 := Default().Struct(s{Count: 1, Addr: "4000"})
	field, msg2 := FirstProblem(err2)
	if field != "addr" || msg2 != "addr must be a listen address like :4000 or 127.0.0.1:4000" {
		t.Fatalf("unexpected listen_addr message: %q %q", field, msg2)
	}

	for _, ok := range []string{":4000", "127.0.0.1:0", "[::1]:8080", "localhost:65535"} {
		if err := Default().Struct(s{Addr: ok}); err != nil {
			t.Fatalf("%q should be a valid listen address: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "localhost", ":http", ":70000", ":-1"} {
		if err := Default().Struct(s{Addr: bad}); err == nil {
			t.Fatalf("%q should be rejected", bad)
		}
	}
}

func TestRegisterValidation_LastWins(t *testing.T) {

	if err := RegisterValidation("dupe_tag", func(fl FieldLevel) bool { return false }); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if err := RegisterValidation("dupe_tag", func(fl FieldLevel) bool { return true }); err != nil {
		t.Fatalf("unexpected error on second register: %v", err)
	}

	type S struct {
		N int `json:"n" validate:"dupe_tag"`
	}

	if err := Default().Struct(S{N: 0}); err != nil {
		t.Fatalf("expected validation to pass after overwrite, got %v", err)
	}
}

type embedded struct {
	Zone string `query:"zone" json:"zone"`
}

func TestParseQuery_PromotedFields(t *testing.T) {
	type outer struct {
		embedded
		Time string `query:"time" json:"time"`
	}
	got, err := ParseQuery[outer](httptest.NewRequest("GET", "/?zone=cet&time=9am", nil))
	if err != nil || got.Zone != "cet" || got.Time != "9am" {
		t.Fatalf("got %+v, err %v", got, err)
	}
}
