package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/repository"
	"ludamus.io/enrolld/internal/repository/memstore"
)

// countingStore wraps a Store and counts calls per method, so tests can
// assert which reads the cache absorbed.
type countingStore struct {
	repository.Store
	calls map[string]int
}

func newCountingStore(inner repository.Store) *countingStore {
	return &countingStore{Store: inner, calls: make(map[string]int)}
}

func (c *countingStore) ConfigsByEvent(ctx context.Context, eventID int64) ([]domain.EnrollmentConfig, error) {
	c.calls["ConfigsByEvent"]++
	return c.Store.ConfigsByEvent(ctx, eventID)
}

func (c *countingStore) DomainConfigsByConfig(ctx context.Context, configID int64) ([]domain.DomainEnrollmentConfig, error) {
	c.calls["DomainConfigsByConfig"]++
	return c.Store.DomainConfigsByConfig(ctx, configID)
}

func (c *countingStore) UserConfig(ctx context.Context, configID int64, email string) (*domain.UserEnrollmentConfig, error) {
	c.calls["UserConfig"]++
	return c.Store.UserConfig(ctx, configID, email)
}

func (c *countingStore) ConfirmedCount(ctx context.Context, sessionID int64) (int, error) {
	c.calls["ConfirmedCount"]++
	return c.Store.ConfirmedCount(ctx, sessionID)
}

type cacheFixture struct {
	counting *countingStore
	cached   *repository.CachingStore
	event    domain.Event
	config   domain.EnrollmentConfig
}

func newCacheFixture(t *testing.T) *cacheFixture {
	t.Helper()

	mem := memstore.New()
	now := time.Now()
	event := mem.AddEvent(domain.Event{
		Name:      "Con",
		Slug:      "con",
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(48 * time.Hour),
	})
	config := mem.AddConfig(domain.EnrollmentConfig{
		EventID:         event.ID,
		Name:            "general",
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(time.Hour),
		PercentageSlots: 100,
	})
	mem.AddDomainConfig(domain.DomainEnrollmentConfig{
		ConfigID:            config.ID,
		Domain:              "example.com",
		AllowedSlotsPerUser: 2,
	})

	counting := newCountingStore(mem)
	return &cacheFixture{
		counting: counting,
		cached:   repository.NewCachingStore(counting),
		event:    event,
		config:   config,
	}
}

func TestCachingStore_ConfigReadsHitStoreOnce(t *testing.T) {
	f := newCacheFixture(t)
	ctx := t.Context()

	first, err := f.cached.ConfigsByEvent(ctx, f.event.ID)
	require.NoError(t, err)
	second, err := f.cached.ConfigsByEvent(ctx, f.event.ID)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, f.counting.calls["ConfigsByEvent"])

	_, err = f.cached.DomainConfigsByConfig(ctx, f.config.ID)
	require.NoError(t, err)
	_, err = f.cached.DomainConfigsByConfig(ctx, f.config.ID)
	require.NoError(t, err)
	require.Equal(t, 1, f.counting.calls["DomainConfigsByConfig"])
}

func TestCachingStore_CachesNilUserConfig(t *testing.T) {
	f := newCacheFixture(t)
	ctx := t.Context()

	cfg, err := f.cached.UserConfig(ctx, f.config.ID, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, cfg)

	cfg, err = f.cached.UserConfig(ctx, f.config.ID, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, cfg)

	require.Equal(t, 1, f.counting.calls["UserConfig"])
}

func TestCachingStore_UpsertRefreshesCachedEntry(t *testing.T) {
	f := newCacheFixture(t)
	ctx := t.Context()

	// Prime the cache with the absent row.
	_, err := f.cached.UserConfig(ctx, f.config.ID, "ada@example.com")
	require.NoError(t, err)

	saved, err := f.cached.UpsertUserConfig(ctx, domain.UserEnrollmentConfig{
		ConfigID:     f.config.ID,
		UserEmail:    "ada@example.com",
		AllowedSlots: 3,
	})
	require.NoError(t, err)

	got, err := f.cached.UserConfig(ctx, f.config.ID, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, saved.AllowedSlots, got.AllowedSlots)
	// The read after the upsert is served from the refreshed cache entry.
	require.Equal(t, 1, f.counting.calls["UserConfig"])
}

func TestCachingStore_CountsAreNeverCached(t *testing.T) {
	f := newCacheFixture(t)
	ctx := t.Context()

	_, err := f.cached.ConfirmedCount(ctx, 1)
	require.NoError(t, err)
	_, err = f.cached.ConfirmedCount(ctx, 1)
	require.NoError(t, err)

	require.Equal(t, 2, f.counting.calls["ConfirmedCount"])
}
