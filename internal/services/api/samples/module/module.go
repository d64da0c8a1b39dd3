// Package module wires samples into the API using modkit
package module

import (
	"net/http"

	modkit "polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	str "polyglot/internal/platform/strings"
	sampleshttp "polyglot/internal/services/api/samples/http"
	samplessvc "polyglot/internal/services/api/samples/service"
	labelsdom "polyglot/internal/services/labels/domain"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc samplessvc.Service
}

// New constructs a samples module over the labels query port
func New(deps modkit.Deps, labels labelsdom.QueryPort, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("samples"), modkit.WithPrefix("/samples")}, opts...)...)

	svc := samplessvc.New(labels)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSamplesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		sampleshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
