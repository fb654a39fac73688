// Package module wires insight into the API using modkit
package module

import (
	"net/http"

	modkit "gitinsight/internal/modkit"
	"gitinsight/internal/modkit/httpkit"

	"gitinsight/internal/services/api/insight/domain"
	ihttp "gitinsight/internal/services/api/insight/http"
	isvc "gitinsight/internal/services/api/insight/service"
)

// Module implements the insight API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc isvc.Service
}

// Ports declares the injected adapter ports for this module
type Ports struct {
	Profiles   domain.ProfilePort
	Summarizer domain.SummarizerPort
}

// New constructs the insight module
// routes mount at the router root so the prefix stays empty
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("insight"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Profiles == nil {
		panic("insight module requires a Profiles port")
	}
	if injected.Summarizer == nil {
		panic("insight module requires a Summarizer port")
	}

	svc := isvc.New(injected.Profiles, injected.Summarizer, isvc.Config{
		ReadmeTimeout:    cfg.ReadmeTimeout,
		SummarizeTimeout: cfg.SummarizeTimeout,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptInsightPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		ihttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	mount := func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	}
	if m.prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(m.prefix, mount)
}

// Name returns the module name
func (m *Module) Name() string { return m.name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.prefix }
