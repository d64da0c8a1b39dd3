// Package module implements the labels service module
package module

import (
	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/modkit/repokit"
	"polyglot/internal/services/labels/domain"
	"polyglot/internal/services/labels/repo"
	"polyglot/internal/services/labels/service"
)

// Ports exposed by the labels module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the labels service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new labels module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var obs *repo.CH
	if deps.CH != nil {
		obs = repo.NewCH(deps.CH)
	}

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, obs, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Writer: svc,
		Query:  svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "labels" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
