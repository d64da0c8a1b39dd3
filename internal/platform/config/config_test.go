package config

import (
	"testing"
	"time"

	kit "polyglot/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	nested := api.Prefix("LOG_")
	if got := nested.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  polyglot ")
	if got := c.MustString("NAME"); got != "polyglot" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want 8", got)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustBool(t *testing.T) {
	c := New().Prefix("F_")
	t.Setenv("F_ON", " true ")
	if !c.MustBool("ON") {
		t.Fatalf("MustBool true expected")
	}
	t.Setenv("F_BAD", "notabool")
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
}

func TestMustDuration(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	t.Setenv("D_BAD", "nope")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("P_HIGH", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("HIGH") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "1")
	t.Setenv("R_B", "2")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "B", "C") })
}

func TestMayDefaults(t *testing.T) {
	c := New().Prefix("M_")
	if got := c.MayString("S", "fallback"); got != "fallback" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayInt("I", 3); got != 3 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("M_I_BAD", "zzz")
	if got := c.MayInt("I_BAD", 3); got != 3 {
		t.Fatalf("MayInt invalid = %d, want default", got)
	}
	if got := c.MayFloat64("F", 0.25); got != 0.25 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	if got := c.MayBool("B", true); !got {
		t.Fatalf("MayBool default expected")
	}
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_LIST", " a , b ,, c ")
	got := c.MayCSV("LIST", nil)
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("MISSING", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV default = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_MODE", "batch")
	if got := c.MayEnum("MODE", "single", "single", "batch"); got != "batch" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_BAD", "wat")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "single", "single", "batch") })
}
