// Package api provides the HTTP API for the application
package api

import (
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	phttp "polyglot/internal/platform/net/http"
	"polyglot/internal/platform/store"

	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/modkit/module"
	"polyglot/internal/modkit/swaggerkit"

	detectmod "polyglot/internal/services/api/detect/module"
	metamod "polyglot/internal/services/api/meta/module"
	samplesmod "polyglot/internal/services/api/samples/module"
	statsmod "polyglot/internal/services/api/stats/module"

	// Labels module owns post_labels storage and the observation mirror
	labelsmod "polyglot/internal/services/labels/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	detectorVersion := opt.Config.Prefix("CORE_DETECT_").MayInt("VERSION", 1)

	// Construct the labels module first and extract its Query port
	labels := labelsmod.New(deps)
	lq := module.MustPortsOf[labelsmod.Ports](labels).Query

	mods := []module.Module{
		metamod.New(deps, detectorVersion),
		detectmod.New(deps, detectorVersion),
		statsmod.New(deps, lq),
		samplesmod.New(deps, lq),
		labels, // include labels so its ports are registered
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
