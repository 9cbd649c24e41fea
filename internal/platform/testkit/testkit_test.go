package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
}

func TestMustNotContain(t *testing.T) {
	t.Parallel()

	MustNotContain(t, "alpha beta", "gamma")
}

func TestRef(t *testing.T) {
	t.Parallel()

	p := Ref("est")
	if p == nil || *p != "est" {
		t.Fatalf("Ref mismatch")
	}
	if Ref(3) == Ref(3) {
		t.Fatalf("Ref should allocate per call")
	}
}
