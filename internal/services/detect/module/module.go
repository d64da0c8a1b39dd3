// Package module implements the detect module
package module

import (
	"polyglot/internal/core/cues"
	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/modkit/repokit"
	"polyglot/internal/services/detect/domain"
	"polyglot/internal/services/detect/service"
)

// Ports exposed by the detect module
type Ports struct {
	Runner domain.RunnerPort
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new detect module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
	}, opts...)...)

	// Basic guardrails against incorrect wiring
	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("detect module: expected WithPorts(detect/domain.Ports)")
	}
	if ports.Posts == nil || ports.Labels == nil {
		panic("detect module: Ports missing Posts or Labels")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.Version != 0 {
		cfg.Version = overrides.Version
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	if overrides.MaxRangeHours != 0 {
		cfg.MaxRangeHours = overrides.MaxRangeHours
	}
	// bool overrides win (default false if caller didn't set)
	cfg.DryRun = overrides.DryRun
	cfg.SkipSpam = cfg.SkipSpam || overrides.SkipSpam

	// Shared cue pack for the range runner
	pack, err := cues.Load()
	if err != nil {
		panic(err)
	}

	// Range runner (scan window over posts and write labels)
	runner := service.New(
		ports.Posts,
		ports.Labels,
		pack,
		repokit.TxRunner(deps.PG),
		service.Config{
			Version:       cfg.Version,
			Workers:       cfg.Workers,
			PageSize:      cfg.PageSize,
			MaxRangeHours: cfg.MaxRangeHours,
			DryRun:        cfg.DryRun,
			SkipSpam:      cfg.SkipSpam,
		},
	)

	// Direct writer (per-post detection; used by ingest for inline labeling)
	writer := service.NewWriter(
		ports.Labels,
		service.WriterConfig{Version: cfg.Version},
	)

	m := &Module{deps: deps}
	m.ports = Ports{
		Runner: runner,
		Writer: writer,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "detect" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
