package normalize

import (
	"sync"
	"testing"
)

func TestToken_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity ascii", in: "1:30pm", out: "1:30pm"},
		{name: "case fold", in: "EST", out: "est"},
		{name: "iana name", in: "Europe/London", out: "europe/london"},
		{name: "fullwidth digits and colon", in: "\uff11\uff13\uff1a\uff13\uff10", out: "13:30"},
		{name: "fullwidth letters", in: "\uff11\uff30\uff2d", out: "1pm"},
		{name: "remove zero-widths", in: "e\u200bs\u200dt", out: "est"},
		{name: "remove combining marks", in: "es\u0336t", out: "est"},
		{name: "typographic minus", in: "UTC\u22125", out: "utc-5"},
		{name: "en dash", in: "utc\u20133", out: "utc-3"},
		{name: "fullwidth plus", in: "utc\uff0b1", out: "utc+1"},
		{name: "stray whitespace", in: "  1 pm\t", out: "1pm"},
		{name: "control characters", in: "12\x00:\x7f30", out: "12:30"},
		{name: "invalid utf8", in: string([]byte{0xff, 'b', 's', 't'}), out: "bst"},
		{name: "empty", in: "", out: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Token(tc.in)
			if got != tc.out {
				t.Fatalf("Token(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// normalizing again must be a no-op
			if got2 := Token(got); got2 != got {
				t.Fatalf("Token not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

func TestToken_IANAName(t *testing.T) {
	if got := Token("America/New_York"); got != "america/new_york" {
		t.Fatalf("Token() = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("plain"); got != "plain" {
		t.Fatalf("fast path changed input: %q", got)
	}
	in := "a\x01b\u0085c\x7f" + string([]byte{0xc3})
	if got := Sanitize(in); got != "abc" {
		t.Fatalf("Sanitize(%q) = %q, want abc", in, got)
	}
}

func TestFoldSign(t *testing.T) {
	for in, want := range map[rune]rune{'\u2212': '-', '\u2013': '-', '\u2795': '+', 'a': 'a'} {
		if got := foldSign(in); got != want {
			t.Fatalf("foldSign(%U) = %q, want %q", in, got, want)
		}
	}
}

func TestToken_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := Token(" Europe/LONDON "); got != "europe/london" {
					t.Errorf("Token = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
