package scope_test

import (
	"context"
	"testing"

	"polyglot/internal/modkit/scope"
)

func TestWithAndGet(t *testing.T) {
	ctx := scope.With(context.Background(), map[string]string{"request_id": "abc"})

	if v, ok := scope.Get(ctx, "request_id"); !ok || v != "abc" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
	if _, ok := scope.Get(ctx, "missing"); ok {
		t.Fatal("missing key must not be found")
	}
}

func TestWithMerges(t *testing.T) {
	ctx := scope.With(context.Background(), map[string]string{"a": "1"})
	ctx = scope.With(ctx, map[string]string{"b": "2"})

	s := scope.From(ctx)
	if s.Values["a"] != "1" || s.Values["b"] != "2" {
		t.Fatalf("values = %v", s.Values)
	}
}

func TestFromEmptyContext(t *testing.T) {
	s := scope.From(context.Background())
	if s.Values == nil || len(s.Values) != 0 {
		t.Fatalf("scope = %+v", s)
	}
}
