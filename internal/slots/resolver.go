// Package slots resolves how many enrollment slots an email address is
// entitled to under an enrollment config, combining stored grants, domain
// grants, and just-in-time membership gateway lookups with a negative-result
// cooldown.
package slots

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/membership"
	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/repository"
	"ludamus.io/enrolld/internal/service"
)

// DefaultRecheckCooldown guards repeated gateway lookups after a zero-slot
// answer.
const DefaultRecheckCooldown = 15 * time.Minute

// Outcome tags a Resolution. The distinction between NoAccess and a
// degraded NoAccess matters to callers that log or surface gateway health.
type Outcome int

const (
	// NoAccess means the email has no slot entitlement under the config.
	NoAccess Outcome = iota
	// Access means the email holds Slots > 0 under the config.
	Access
)

// Resolution is the tagged result of a per-config slot lookup.
type Resolution struct {
	Outcome Outcome
	Slots   int

	// Degraded marks results produced while the gateway was unreachable;
	// the answer is a throttled placeholder, not a confirmed negative.
	Degraded bool
}

// Granted reports whether the resolution carries a positive entitlement.
func (r Resolution) Granted() bool { return r.Outcome == Access && r.Slots > 0 }

// Resolver performs slot lookups against the store and the membership
// gateway registry.
type Resolver struct {
	store    repository.Store
	gateways *membership.Registry

	cooldown    time.Duration
	maxAPISlots int // 0 = uncapped

	now func() time.Time
}

// Option tunes a Resolver.
type Option func(*Resolver)

// WithCooldown overrides the zero-slot recheck cooldown.
func WithCooldown(d time.Duration) Option {
	return func(r *Resolver) { r.cooldown = d }
}

// WithMaxAPISlots caps gateway-sourced slot counts. Zero disables the cap.
func WithMaxAPISlots(n int) Option {
	return func(r *Resolver) { r.maxAPISlots = n }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a Resolver.
func NewResolver(store repository.Store, gateways *membership.Registry, opts ...Option) *Resolver {
	r := &Resolver{
		store:    store,
		gateways: gateways,
		cooldown: DefaultRecheckCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve determines the email's slot entitlement under one config.
//
// A stored positive grant is terminal. A stored zero is terminal when
// manually entered; when gateway-sourced it is a cached negative honored
// until the cooldown elapses, then re-fetched. With no stored row at all,
// configs without a provider answer NoAccess and configs with one fetch.
func (r *Resolver) Resolve(ctx context.Context, cfg domain.EnrollmentConfig, email string) (Resolution, error) {
	row, err := r.store.UserConfig(ctx, cfg.ID, email)
	if err != nil {
		return Resolution{}, err
	}

	switch {
	case row != nil && row.AllowedSlots > 0:
		return Resolution{Outcome: Access, Slots: row.AllowedSlots}, nil

	case row != nil:
		if !row.FetchedFromAPI {
			// Manually entered zero: a static no-access decision.
			return Resolution{Outcome: NoAccess}, nil
		}
		if row.LastCheck != nil && r.now().Sub(*row.LastCheck) < r.cooldown {
			return Resolution{Outcome: NoAccess}, nil
		}
		return r.fetch(ctx, cfg, email, row)

	case !cfg.UsesProvider():
		// Never checked, and nothing to check against.
		return Resolution{Outcome: NoAccess}, nil

	default:
		return r.fetch(ctx, cfg, email, nil)
	}
}

// fetch consults the gateway and persists the observed entitlement. Rows
// written here carry fetched_from_api so later resolutions know the zero is
// a cooldown-guarded cache, not an operator decision.
func (r *Resolver) fetch(ctx context.Context, cfg domain.EnrollmentConfig, email string, existing *domain.UserEnrollmentConfig) (Resolution, error) {
	now := r.now()

	gw, err := r.gateways.Lookup(cfg.APIProvider)
	if err != nil {
		logger.Error("Slot lookup misconfigured", zap.Int64("config_id", cfg.ID), zap.Error(err))
		return r.degrade(ctx, cfg, email, existing, now)
	}

	count, err := gw.FetchCount(ctx, email)
	if err != nil {
		logger.Warn("Slot lookup degraded to cached negative",
			zap.String("provider", cfg.APIProvider),
			zap.Int64("config_id", cfg.ID),
			zap.Error(err),
		)
		return r.degrade(ctx, cfg, email, existing, now)
	}

	if r.maxAPISlots > 0 && count > r.maxAPISlots {
		count = r.maxAPISlots
	}

	saved, err := r.store.UpsertUserConfig(ctx, domain.UserEnrollmentConfig{
		ConfigID:       cfg.ID,
		UserEmail:      email,
		AllowedSlots:   count,
		FetchedFromAPI: true,
		LastCheck:      &now,
	})
	if err != nil {
		return Resolution{}, err
	}
	if saved.AllowedSlots > 0 {
		return Resolution{Outcome: Access, Slots: saved.AllowedSlots}, nil
	}
	return Resolution{Outcome: NoAccess}, nil
}

// degrade records a placeholder so retries are throttled, then answers
// NoAccess without failing the caller.
func (r *Resolver) degrade(ctx context.Context, cfg domain.EnrollmentConfig, email string, existing *domain.UserEnrollmentConfig, now time.Time) (Resolution, error) {
	if existing != nil {
		if err := r.store.TouchUserConfigCheck(ctx, existing.ID, now); err != nil {
			return Resolution{}, err
		}
	} else {
		if _, err := r.store.UpsertUserConfig(ctx, domain.UserEnrollmentConfig{
			ConfigID:       cfg.ID,
			UserEmail:      email,
			AllowedSlots:   0,
			FetchedFromAPI: true,
			LastCheck:      &now,
		}); err != nil {
			return Resolution{}, err
		}
	}
	return Resolution{Outcome: NoAccess, Degraded: true}, nil
}

// AggregateForEvent sums the email's entitlement across every currently
// active config of the event: per-config resolved grants plus matching
// domain grants. Returns nil when no source contributed anything, which
// callers read as "no enrollment access at all".
func (r *Resolver) AggregateForEvent(ctx context.Context, eventID int64, email string) (*domain.VirtualEnrollmentConfig, error) {
	configs, err := r.store.ConfigsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	agg := domain.VirtualEnrollmentConfig{Email: email}
	contributed := false

	for _, cfg := range service.ActiveConfigs(configs, r.now()) {
		res, err := r.Resolve(ctx, cfg, email)
		if err != nil {
			return nil, err
		}
		if res.Granted() {
			agg.AllowedSlots += res.Slots
			agg.HasUserGrant = true
			contributed = true
		}

		domainCfgs, err := r.store.DomainConfigsByConfig(ctx, cfg.ID)
		if err != nil {
			return nil, err
		}
		for _, dc := range domainCfgs {
			if dc.MatchesEmail(email) && dc.AllowedSlotsPerUser > 0 {
				agg.AllowedSlots += dc.AllowedSlotsPerUser
				agg.HasDomGrant = true
				contributed = true
			}
		}
	}

	if !contributed {
		return nil, nil
	}
	return &agg, nil
}
