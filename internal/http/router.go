// Package http wires the service's HTTP surface: registration, login, the
// root probe, and the health endpoints. Handlers validate request shape,
// delegate to the credential and token services, and translate their errors
// into the response contract.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quietgrove/gatehouse/internal/service"
	"github.com/quietgrove/gatehouse/internal/store"
	"github.com/quietgrove/gatehouse/pkg/httpx"
	"github.com/quietgrove/gatehouse/pkg/jwtx"
	"github.com/quietgrove/gatehouse/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	signer jwtx.Signer

	Credentials *service.CredentialService
	Tokens      *service.TokenService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	signer jwtx.Signer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		signer:       signer,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &RegisterHandler{
		Credentials: r.Credentials,
		Tokens:      r.Tokens,
	}
	r.Mux.Handle("POST /api/users", h)
}

func (r *Router) registerAuth() {
	h := &LoginHandler{
		Credentials: r.Credentials,
		Tokens:      r.Tokens,
	}
	r.Mux.Handle("POST /api/auth", h)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
