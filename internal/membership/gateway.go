// Package membership talks to external membership and ticketing APIs.
//
// An enrollment config may name a provider here; the slot resolver asks it
// how many slots an email address is entitled to. Providers are resolved
// from configuration once at startup into an immutable registry.
package membership

import (
	"context"
	"errors"
	"fmt"

	"ludamus.io/enrolld/internal/config"
)

// ErrUnavailable marks transport-level gateway failures (timeouts, DNS,
// non-2xx answers). Callers degrade to a cached-negative placeholder
// instead of failing the enrollment flow.
var ErrUnavailable = errors.New("membership gateway unavailable")

// Gateway answers slot entitlement lookups for one external provider.
type Gateway interface {
	// FetchCount returns the number of enrollment slots the given email
	// is entitled to. Zero is a valid answer meaning no entitlement.
	FetchCount(ctx context.Context, email string) (int, error)
}

// Registry is the immutable name-to-gateway map built at startup.
type Registry struct {
	gateways map[string]Gateway
}

// NewRegistry builds a Registry from configuration. Every configured
// provider gets an HTTP gateway; unknown provider names asked for later
// are a configuration error surfaced by Lookup.
func NewRegistry(cfg config.MembershipConfig) *Registry {
	gateways := make(map[string]Gateway, len(cfg.Providers))
	for _, p := range cfg.Providers {
		gateways[p.Name] = NewHTTPGateway(p)
	}
	return &Registry{gateways: gateways}
}

// NewRegistryWith builds a Registry from explicit gateways. Tests use it
// to plug in mocks.
func NewRegistryWith(gateways map[string]Gateway) *Registry {
	copied := make(map[string]Gateway, len(gateways))
	for name, gw := range gateways {
		copied[name] = gw
	}
	return &Registry{gateways: copied}
}

// Lookup returns the gateway registered under name.
func (r *Registry) Lookup(name string) (Gateway, error) {
	gw, ok := r.gateways[name]
	if !ok {
		return nil, fmt.Errorf("membership provider %q is not configured", name)
	}
	return gw, nil
}

// Names returns the registered provider names, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gateways))
	for name := range r.gateways {
		names = append(names, name)
	}
	return names
}
