package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	kit "polyglot/internal/platform/testkit"
)

func TestInitAndChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "polyglot-test", Writer: &buf})

	Get().Info().Str("k", "v").Msg("hello log")
	out := buf.String()
	kit.MustContain(t, out, `"hello log"`)
	kit.MustContain(t, out, `"service":"polyglot-test"`)

	buf.Reset()
	Named("detect").Info().Msg("named")
	kit.MustContain(t, buf.String(), `"component":"detect"`)

	buf.Reset()
	ctx := WithRequest(context.Background(), "req-123")
	C(ctx).Info().Msg("scoped")
	kit.MustContain(t, buf.String(), `"request_id":"req-123"`)
}

func TestCWithoutRequestID(t *testing.T) {
	// no request id in ctx: still a usable logger
	l := C(context.Background())
	if l == nil {
		t.Fatalf("C returned nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"bogus":   zerolog.DebugLevel,
		"":        zerolog.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v want %v", in, got, want)
		}
	}
}
