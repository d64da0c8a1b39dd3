package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"polyglot/internal/modkit"
	"polyglot/internal/modkit/module"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	"polyglot/internal/platform/store"

	detectmod "polyglot/internal/services/detect/module"
	labelsmod "polyglot/internal/services/labels/module"
	postsmod "polyglot/internal/services/posts/module"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()

	var (
		startStr = flag.String("start", "", "inclusive hour, e.g. 2026-03-01T00")
		endStr   = flag.String("end", "", "exclusive hour, e.g. 2026-03-01T03")
		ver      = flag.Int("ver", 1, "detector version to stamp")
		workers  = flag.Int("workers", 2, "concurrency (>=1)")
		page     = flag.Int("page", 5000, "page size (rows)")
		dryRun   = flag.Bool("dry-run", false, "compute but do not write labels")
	)
	flag.Parse()

	if *startStr == "" || *endStr == "" {
		log.Fatal("start/end are required (hour resolution)")
	}
	start, err := time.Parse("2006-01-02T15", *startStr)
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	end, err := time.Parse("2006-01-02T15", *endStr)
	if err != nil {
		log.Fatalf("bad -end: %v", err)
	}
	if !start.Before(end) {
		log.Fatal("start must be < end")
	}

	st, err := store.Open(context.Background(), store.Config{
		AppName: "polyglot",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", true),
			URL:     chCfg.MayString("DBURL", ""),
			Role:    "detect",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// Pass CLI flags into CORE_DETECT_* so the module can read its own config
	mustSetEnv("CORE_DETECT_VERSION", strconv.Itoa(*ver))
	mustSetEnv("CORE_DETECT_WORKERS", strconv.Itoa(*workers))
	mustSetEnv("CORE_DETECT_PAGE_SIZE", strconv.Itoa(*page))
	mustSetEnv("CORE_DETECT_DRY_RUN", map[bool]string{true: "1", false: "0"}[*dryRun])

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	// Build dependency modules first
	pm := postsmod.New(deps)
	lm := labelsmod.New(deps)

	// Build detect module with ports injected from deps modules
	dm := detectmod.New(
		deps,
		detectmod.Options{
			Version:  *ver,
			Workers:  *workers,
			PageSize: *page,
			DryRun:   *dryRun,
		},
		detectmod.WithDepsModules(pm, lm),
	)

	// Register ports
	module.Register(pm.Name(), pm.Ports())
	module.Register(lm.Name(), lm.Ports())
	module.Register(dm.Name(), dm.Ports())

	// Kick the runner
	ports := dm.Ports().(detectmod.Ports)
	report, err := ports.Runner.RunRange(context.Background(), start.UTC(), end.UTC())
	if err != nil {
		l.Fatal().Err(err).Msg("detect failed")
	}
	l.Info().
		Int("pages", report.Pages).
		Int("posts", report.Posts).
		Int("labeled", report.Labeled).
		Int("skipped", report.Skipped).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("detect run finished")
}
