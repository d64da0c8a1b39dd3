// Package scope carries request-scoped attributes across module boundaries
package scope

import "context"

// Scope holds string attributes that travel with a request
// (request id today; tenant or actor later)
type Scope struct {
	Values map[string]string
}

type key struct{}

// With merges kv into the scope on ctx and returns the derived context
func With(ctx context.Context, kv map[string]string) context.Context {
	s := From(ctx) // From guarantees a non-nil map
	for k, v := range kv {
		s.Values[k] = v
	}
	return context.WithValue(ctx, key{}, s)
}

// Get returns the value for k and whether it was set
func Get(ctx context.Context, k string) (string, bool) {
	s := From(ctx)
	v, ok := s.Values[k]
	return v, ok
}

// From returns the scope on ctx, or an empty one
func From(ctx context.Context) Scope {
	v := ctx.Value(key{})
	if v == nil {
		return Scope{Values: make(map[string]string)}
	}
	s, _ := v.(Scope)
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	return s
}
