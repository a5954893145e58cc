package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ludamus.io/enrolld/internal/domain"
)

// CachingStore is a per-request read-through cache over a Store. It is
// created at the start of one engine invocation and discarded with it;
// nothing here survives the request, so staleness is bounded by the
// request's own lifetime.
//
// Counts and participation reads are never cached: they are the values the
// capacity and budget guards race on. Writes pass through and drop the
// affected entry.
type CachingStore struct {
	Store

	mu          sync.Mutex
	events      map[int64]domain.Event
	sessions    map[int64]domain.Session
	agenda      map[int64]*domain.AgendaItem
	configs     map[int64][]domain.EnrollmentConfig
	domainCfgs  map[int64][]domain.DomainEnrollmentConfig
	users       map[int64]domain.User
	connected   map[int64][]domain.User
	userConfigs map[string]*domain.UserEnrollmentConfig
}

// NewCachingStore wraps inner with an empty cache arena.
func NewCachingStore(inner Store) *CachingStore {
	return &CachingStore{
		Store:       inner,
		events:      make(map[int64]domain.Event),
		sessions:    make(map[int64]domain.Session),
		agenda:      make(map[int64]*domain.AgendaItem),
		configs:     make(map[int64][]domain.EnrollmentConfig),
		domainCfgs:  make(map[int64][]domain.DomainEnrollmentConfig),
		users:       make(map[int64]domain.User),
		connected:   make(map[int64][]domain.User),
		userConfigs: make(map[string]*domain.UserEnrollmentConfig),
	}
}

func userConfigKey(configID int64, email string) string {
	return fmt.Sprintf("%d/%s", configID, email)
}

// EventByID implements Store.
func (c *CachingStore) EventByID(ctx context.Context, id int64) (domain.Event, error) {
	c.mu.Lock()
	if ev, ok := c.events[id]; ok {
		c.mu.Unlock()
		return ev, nil
	}
	c.mu.Unlock()

	ev, err := c.Store.EventByID(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	c.mu.Lock()
	c.events[id] = ev
	c.mu.Unlock()
	return ev, nil
}

// SessionByID implements Store.
func (c *CachingStore) SessionByID(ctx context.Context, id int64) (domain.Session, error) {
	c.mu.Lock()
	if s, ok := c.sessions[id]; ok {
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()

	s, err := c.Store.SessionByID(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	c.mu.Lock()
	c.sessions[id] = s
	c.mu.Unlock()
	return s, nil
}

// AgendaItemBySession implements Store.
func (c *CachingStore) AgendaItemBySession(ctx context.Context, sessionID int64) (*domain.AgendaItem, error) {
	c.mu.Lock()
	if item, ok := c.agenda[sessionID]; ok {
		c.mu.Unlock()
		return item, nil
	}
	c.mu.Unlock()

	item, err := c.Store.AgendaItemBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.agenda[sessionID] = item
	c.mu.Unlock()
	return item, nil
}

// ConfigsByEvent implements Store.
func (c *CachingStore) ConfigsByEvent(ctx context.Context, eventID int64) ([]domain.EnrollmentConfig, error) {
	c.mu.Lock()
	if cfgs, ok := c.configs[eventID]; ok {
		c.mu.Unlock()
		return cfgs, nil
	}
	c.mu.Unlock()

	cfgs, err := c.Store.ConfigsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.configs[eventID] = cfgs
	c.mu.Unlock()
	return cfgs, nil
}

// DomainConfigsByConfig implements Store.
func (c *CachingStore) DomainConfigsByConfig(ctx context.Context, configID int64) ([]domain.DomainEnrollmentConfig, error) {
	c.mu.Lock()
	if cfgs, ok := c.domainCfgs[configID]; ok {
		c.mu.Unlock()
		return cfgs, nil
	}
	c.mu.Unlock()

	cfgs, err := c.Store.DomainConfigsByConfig(ctx, configID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.domainCfgs[configID] = cfgs
	c.mu.Unlock()
	return cfgs, nil
}

// UserByID implements Store.
func (c *CachingStore) UserByID(ctx context.Context, id int64) (domain.User, error) {
	c.mu.Lock()
	if u, ok := c.users[id]; ok {
		c.mu.Unlock()
		return u, nil
	}
	c.mu.Unlock()

	u, err := c.Store.UserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	c.mu.Lock()
	c.users[id] = u
	c.mu.Unlock()
	return u, nil
}

// ConnectedUsers implements Store.
func (c *CachingStore) ConnectedUsers(ctx context.Context, managerID int64) ([]domain.User, error) {
	c.mu.Lock()
	if users, ok := c.connected[managerID]; ok {
		c.mu.Unlock()
		return users, nil
	}
	c.mu.Unlock()

	users, err := c.Store.ConnectedUsers(ctx, managerID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.connected[managerID] = users
	c.mu.Unlock()
	return users, nil
}

// UserConfig implements Store. Nil results (no row) are cached too; the
// resolver decides whether to fall through to the gateway.
func (c *CachingStore) UserConfig(ctx context.Context, configID int64, email string) (*domain.UserEnrollmentConfig, error) {
	key := userConfigKey(configID, email)
	c.mu.Lock()
	if cfg, ok := c.userConfigs[key]; ok {
		c.mu.Unlock()
		return cfg, nil
	}
	c.mu.Unlock()

	cfg, err := c.Store.UserConfig(ctx, configID, email)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.userConfigs[key] = cfg
	c.mu.Unlock()
	return cfg, nil
}

// UpsertUserConfig implements Store, replacing the cached entry with the
// written row.
func (c *CachingStore) UpsertUserConfig(ctx context.Context, cfg domain.UserEnrollmentConfig) (domain.UserEnrollmentConfig, error) {
	saved, err := c.Store.UpsertUserConfig(ctx, cfg)
	if err != nil {
		return domain.UserEnrollmentConfig{}, err
	}
	c.mu.Lock()
	cached := saved
	c.userConfigs[userConfigKey(saved.ConfigID, saved.UserEmail)] = &cached
	c.mu.Unlock()
	return saved, nil
}

// TouchUserConfigCheck implements Store, dropping any cached entry whose
// last_check it changed.
func (c *CachingStore) TouchUserConfigCheck(ctx context.Context, id int64, at time.Time) error {
	if err := c.Store.TouchUserConfigCheck(ctx, id, at); err != nil {
		return err
	}
	c.mu.Lock()
	for key, cfg := range c.userConfigs {
		if cfg != nil && cfg.ID == id {
			delete(c.userConfigs, key)
		}
	}
	c.mu.Unlock()
	return nil
}
