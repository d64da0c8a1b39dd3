package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"polyglot/internal/core/cues"
	"polyglot/internal/core/langdetect"
	"polyglot/internal/core/normalize"
	"polyglot/internal/modkit"
	"polyglot/internal/modkit/module"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	"polyglot/internal/platform/store"

	"polyglot/internal/adapters/ingest/exportfile"
	detectdom "polyglot/internal/services/detect/domain"
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
		dir    = flag.String("dir", "", "directory of export JSON files")
		ver    = flag.Int("ver", 1, "detector version for inline labels")
		label  = flag.Bool("label", true, "write labels inline as posts are ingested")
		dryRun = flag.Bool("dry-run", false, "decode and extract but write nothing")
	)
	flag.Parse()

	if *dir == "" {
		log.Fatal("-dir is required")
	}
	mustSetEnv("CORE_DETECT_VERSION", strconv.Itoa(*ver))

	st, err := store.Open(context.Background(), store.Config{
		AppName: "polyglot",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", true),
			URL:     chCfg.MayString("DBURL", ""),
			Role:    "extract",
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

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	pm := postsmod.New(deps)
	lm := labelsmod.New(deps)
	dm := detectmod.New(
		deps,
		detectmod.Options{Version: *ver},
		detectmod.WithDepsModules(pm, lm),
	)
	module.Register(pm.Name(), pm.Ports())
	module.Register(lm.Name(), lm.Ports())
	module.Register(dm.Name(), dm.Ports())

	writer := module.MustPortsOf[postsmod.Ports](pm).Writer
	var labeler detectdom.WriterPort
	if *label {
		labeler = module.MustPortsOf[detectmod.Ports](dm).Writer
	}

	pack, err := cues.Load()
	if err != nil {
		l.Panic().Err(err).Msg("cue pack load failed")
	}
	det := langdetect.New(pack, *ver)
	norm := normalize.New()

	ctx := context.Background()
	var files, extracted, inserted, labeled int

	err = exportfile.Walk(ctx, *dir, func(f exportfile.File) error {
		files++
		posts := exportfile.FromExport(f.Posts, filepath.Base(f.Path), norm, det)
		extracted += len(posts)
		if *dryRun || len(posts) == 0 {
			return nil
		}

		n, err := writer.InsertBatch(ctx, posts)
		if err != nil {
			return err
		}
		inserted += n

		if labeler == nil {
			return nil
		}
		xs := make([]detectdom.WriteInput, 0, len(posts))
		for _, p := range posts {
			xs = append(xs, detectdom.WriteInput{
				PostID:    p.ID,
				TextNorm:  p.TextNorm,
				CreatedAt: p.CreatedAt,
				Author:    p.Author,
			})
		}
		w, err := labeler.Write(ctx, xs)
		if err != nil {
			return err
		}
		labeled += w
		return nil
	})
	if err != nil {
		l.Fatal().Err(err).Msg("extract failed")
	}

	l.Info().
		Int("files", files).
		Int("extracted", extracted).
		Int("inserted", inserted).
		Int("labeled", labeled).
		Bool("dry_run", *dryRun).
		Msg("extract finished")
}
