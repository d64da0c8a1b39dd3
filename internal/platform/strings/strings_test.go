package strings

import (
	"testing"

	kit "polyglot/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []int{1, 2}
	if got := IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []int{9}
	if got := IfEmpty(in, def); len(got) != 1 || got[0] != 9 {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	if got := MustPrefix(" detect/ "); got != "/detect" {
		t.Fatalf("MustPrefix = %q", got)
	}
	if got := MustPrefix("/stats"); got != "/stats" {
		t.Fatalf("MustPrefix = %q", got)
	}
	kit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestNilHelpers(t *testing.T) {
	if Ptr("") != nil {
		t.Fatalf("Ptr of empty must be nil")
	}
	if *Ptr("x") != "x" {
		t.Fatalf("Ptr deref mismatch")
	}
	if SQLNull("  ") != nil {
		t.Fatalf("SQLNull blank must be nil")
	}
	if SQLNull("a") != "a" {
		t.Fatalf("SQLNull non-blank must pass through")
	}
	if Deref(nil) != "" || Deref(Ptr("y")) != "y" {
		t.Fatalf("Deref mismatch")
	}
	if EmptyToNil(" \t") != "" || EmptyToNil("z") != "z" {
		t.Fatalf("EmptyToNil mismatch")
	}
}
