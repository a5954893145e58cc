// Package handlers implements the HTTP surface of the enrollment service.
// Handlers are thin glue: request parsing, identity extraction, and JSON
// shaping. Every enrollment decision lives in the usecase engine.
package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"ludamus.io/enrolld/ent"
	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/membership"
	"ludamus.io/enrolld/internal/pkg/worker"
	"ludamus.io/enrolld/internal/repository"
	"ludamus.io/enrolld/internal/slots"
	"ludamus.io/enrolld/internal/usecase"
)

// Server holds the shared dependencies of all handlers.
type Server struct {
	client       *ent.Client
	pool         *pgxpool.Pool
	store        repository.Store
	gateways     *membership.Registry
	pools        *worker.Pools
	dispatcher   *domain.EventDispatcher
	resolverOpts []slots.Option
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	Store        repository.Store
	Gateways     *membership.Registry
	Pools        *worker.Pools
	Dispatcher   *domain.EventDispatcher
	ResolverOpts []slots.Option
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		pool:         deps.Pool,
		store:        deps.Store,
		gateways:     deps.Gateways,
		pools:        deps.Pools,
		dispatcher:   deps.Dispatcher,
		resolverOpts: deps.ResolverOpts,
	}
}

// requestScope builds the per-request read path: a fresh read-through cache
// over the shared store, and a resolver and engine bound to it. The cache
// is discarded with the request.
func (s *Server) requestScope() (repository.Store, *slots.Resolver, *usecase.ParticipationEngine) {
	store := repository.NewCachingStore(s.store)
	resolver := slots.NewResolver(store, s.gateways, s.resolverOpts...)
	engine := usecase.NewParticipationEngine(store, resolver, s.pools, s.dispatcher)
	return store, resolver, engine
}
