// Package api provides the HTTP API for the application
package api

import (
	"gitinsight/internal/platform/config"
	"gitinsight/internal/platform/logger"
	phttp "gitinsight/internal/platform/net/http"
	"gitinsight/internal/platform/store"

	"gitinsight/internal/modkit"
	"gitinsight/internal/modkit/httpkit"
	"gitinsight/internal/modkit/module"
	"gitinsight/internal/modkit/swaggerkit"

	candidatesmod "gitinsight/internal/services/api/candidates/module"
	insightdom "gitinsight/internal/services/api/insight/domain"
	insightmod "gitinsight/internal/services/api/insight/module"
	metamod "gitinsight/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	Profiles       insightdom.ProfilePort
	Summarizer     insightdom.SummarizerPort
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
// routes live at the router root per the UI contract
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	insight := insightmod.New(
		deps,
		modkit.WithPorts(insightmod.Ports{
			Profiles:   opt.Profiles,
			Summarizer: opt.Summarizer,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		candidatesmod.New(deps),
		insight,
	}

	for _, mw := range httpkit.CommonStack() {
		r.Use(mw)
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		// register each module's ports under its own name (for cross-module lookups)
		module.Register(m.Name(), m.Ports())

		m.MountRoutes(r)
	}
}
