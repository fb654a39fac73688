// Package module wires candidates into the API using modkit
package module

import (
	"net/http"

	modkit "gitinsight/internal/modkit"
	"gitinsight/internal/modkit/httpkit"
	"gitinsight/internal/modkit/repokit"
	str "gitinsight/internal/platform/strings"

	chttp "gitinsight/internal/services/api/candidates/http"
	crepo "gitinsight/internal/services/api/candidates/repo"
	csvc "gitinsight/internal/services/api/candidates/service"
)

// Module implements the candidates API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc csvc.Service
}

// New constructs a candidates module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("candidates"),
		modkit.WithPrefix("/candidates"),
	}, opts...)...)

	binder := crepo.NewPG()
	svc := csvc.New(repokit.TxRunner(deps.PG), binder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCandidatesPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		chttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
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
func (m *Module) Name() string { return str.MustString(m.name, "candidates") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }
