package slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/membership"
	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/repository/memstore"
	"ludamus.io/enrolld/internal/slots"
)

func init() {
	_ = logger.Init("error", "json")
}

type fixture struct {
	store    *memstore.Store
	mock     *membership.MockGateway
	event    domain.Event
	config   domain.EnrollmentConfig
	now      time.Time
	resolver *slots.Resolver
}

func newFixture(t *testing.T, opts ...slots.Option) *fixture {
	t.Helper()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	store := memstore.New()
	event := store.AddEvent(domain.Event{Name: "Spring Convention", Slug: "spring"})
	cfg := store.AddConfig(domain.EnrollmentConfig{
		EventID:         event.ID,
		Name:            "members",
		StartTime:       now.Add(-time.Hour),
		EndTime:         now.Add(time.Hour),
		PercentageSlots: 100,
		APIProvider:     "guild",
	})

	mock := membership.NewMockGateway()
	registry := membership.NewRegistryWith(map[string]membership.Gateway{"guild": mock})

	opts = append([]slots.Option{slots.WithClock(func() time.Time { return now })}, opts...)
	return &fixture{
		store:    store,
		mock:     mock,
		event:    event,
		config:   cfg,
		now:      now,
		resolver: slots.NewResolver(store, registry, opts...),
	}
}

func TestResolveStoredPositiveGrantIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:     f.config.ID,
		UserEmail:    "ada@example.com",
		AllowedSlots: 3,
	})

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.True(t, res.Granted())
	require.Equal(t, 3, res.Slots)
	require.Zero(t, f.mock.Calls(), "stored grant must not hit the gateway")
}

func TestResolveManualZeroNeverRefetches(t *testing.T) {
	f := newFixture(t)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:       f.config.ID,
		UserEmail:      "ada@example.com",
		AllowedSlots:   0,
		FetchedFromAPI: false,
	})
	f.mock.Seed("ada@example.com", 5)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.Zero(t, f.mock.Calls())
}

func TestResolveNegativeCacheCooldown(t *testing.T) {
	f := newFixture(t, slots.WithCooldown(15*time.Minute))
	recent := f.now.Add(-5 * time.Minute)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:       f.config.ID,
		UserEmail:      "ada@example.com",
		AllowedSlots:   0,
		FetchedFromAPI: true,
		LastCheck:      &recent,
	})
	f.mock.Seed("ada@example.com", 2)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.Zero(t, f.mock.Calls(), "within cooldown the gateway must stay untouched")
}

func TestResolveRefetchesAfterCooldown(t *testing.T) {
	f := newFixture(t, slots.WithCooldown(15*time.Minute))
	stale := f.now.Add(-20 * time.Minute)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:       f.config.ID,
		UserEmail:      "ada@example.com",
		AllowedSlots:   0,
		FetchedFromAPI: true,
		LastCheck:      &stale,
	})
	f.mock.Seed("ada@example.com", 2)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.True(t, res.Granted())
	require.Equal(t, 2, res.Slots)
	require.Equal(t, 1, f.mock.Calls())

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.NotNil(t, row)
	require.Equal(t, 2, row.AllowedSlots)
	require.True(t, row.FetchedFromAPI)
	require.NotNil(t, row.LastCheck)
	require.Equal(t, f.now, *row.LastCheck)
}

func TestResolveNoRowNoProvider(t *testing.T) {
	f := newFixture(t)
	plain := f.store.AddConfig(domain.EnrollmentConfig{
		EventID:         f.event.ID,
		Name:            "walk-in",
		StartTime:       f.now.Add(-time.Hour),
		EndTime:         f.now.Add(time.Hour),
		PercentageSlots: 100,
	})

	res, err := f.resolver.Resolve(context.Background(), plain, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.Zero(t, f.mock.Calls())
	require.Nil(t, f.store.UserConfigFor(plain.ID, "ada@example.com"), "no placeholder row without a provider")
}

func TestResolveFirstFetchPositive(t *testing.T) {
	f := newFixture(t)
	f.mock.Seed("ada@example.com", 4)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.True(t, res.Granted())
	require.Equal(t, 4, res.Slots)

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.NotNil(t, row)
	require.Equal(t, 4, row.AllowedSlots)
	require.True(t, row.FetchedFromAPI)
}

func TestResolveFirstFetchZeroWritesNegativeCache(t *testing.T) {
	f := newFixture(t)
	f.mock.Seed("ada@example.com", 0)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.False(t, res.Degraded)

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.NotNil(t, row)
	require.Equal(t, 0, row.AllowedSlots)
	require.True(t, row.FetchedFromAPI)
	require.NotNil(t, row.LastCheck)

	// The fresh negative cache suppresses the next lookup entirely.
	res, err = f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.Equal(t, 1, f.mock.Calls())
}

func TestResolveGatewayFailureWritesPlaceholder(t *testing.T) {
	f := newFixture(t)
	f.mock.Fail(membership.ErrUnavailable)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err, "gateway outages degrade, they do not fail the caller")
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.True(t, res.Degraded)

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.NotNil(t, row)
	require.Equal(t, 0, row.AllowedSlots)
	require.True(t, row.FetchedFromAPI)
	require.NotNil(t, row.LastCheck)
}

func TestResolveGatewayFailureTouchesExistingRow(t *testing.T) {
	f := newFixture(t, slots.WithCooldown(15*time.Minute))
	stale := f.now.Add(-time.Hour)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:       f.config.ID,
		UserEmail:      "ada@example.com",
		AllowedSlots:   0,
		FetchedFromAPI: true,
		LastCheck:      &stale,
	})
	f.mock.Fail(membership.ErrUnavailable)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.True(t, res.Degraded)

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.NotNil(t, row)
	require.NotNil(t, row.LastCheck)
	require.Equal(t, f.now, *row.LastCheck, "failure must restamp last_check to throttle retries")
	require.Equal(t, 0, row.AllowedSlots)
}

func TestResolveUnknownProviderDegrades(t *testing.T) {
	f := newFixture(t)
	orphan := f.store.AddConfig(domain.EnrollmentConfig{
		EventID:         f.event.ID,
		Name:            "legacy",
		StartTime:       f.now.Add(-time.Hour),
		EndTime:         f.now.Add(time.Hour),
		PercentageSlots: 100,
		APIProvider:     "retired-provider",
	})

	res, err := f.resolver.Resolve(context.Background(), orphan, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, slots.NoAccess, res.Outcome)
	require.True(t, res.Degraded)
}

func TestResolveCapsGatewayCounts(t *testing.T) {
	f := newFixture(t, slots.WithMaxAPISlots(5))
	f.mock.Seed("ada@example.com", 40)

	res, err := f.resolver.Resolve(context.Background(), f.config, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, 5, res.Slots)

	row := f.store.UserConfigFor(f.config.ID, "ada@example.com")
	require.Equal(t, 5, row.AllowedSlots)
}

func TestAggregateSumsUserAndDomainGrants(t *testing.T) {
	f := newFixture(t)
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:     f.config.ID,
		UserEmail:    "ada@example.com",
		AllowedSlots: 5,
	})
	f.store.AddDomainConfig(domain.DomainEnrollmentConfig{
		ConfigID:            f.config.ID,
		Domain:              "example.com",
		AllowedSlotsPerUser: 3,
	})

	agg, err := f.resolver.AggregateForEvent(context.Background(), f.event.ID, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, agg)
	require.Equal(t, 8, agg.AllowedSlots)
	require.True(t, agg.HasUserGrant)
	require.True(t, agg.HasDomGrant)
}

func TestAggregateDomainOnly(t *testing.T) {
	f := newFixture(t)
	f.store.AddDomainConfig(domain.DomainEnrollmentConfig{
		ConfigID:            f.config.ID,
		Domain:              "example.com",
		AllowedSlotsPerUser: 2,
	})

	agg, err := f.resolver.AggregateForEvent(context.Background(), f.event.ID, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, agg)
	require.Equal(t, 2, agg.AllowedSlots)
	require.False(t, agg.HasUserGrant)
	require.True(t, agg.HasDomGrant)
}

func TestAggregateIgnoresInactiveConfigs(t *testing.T) {
	f := newFixture(t)
	expired := f.store.AddConfig(domain.EnrollmentConfig{
		EventID:         f.event.ID,
		Name:            "early-bird",
		StartTime:       f.now.Add(-48 * time.Hour),
		EndTime:         f.now.Add(-24 * time.Hour),
		PercentageSlots: 100,
	})
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:     expired.ID,
		UserEmail:    "ada@example.com",
		AllowedSlots: 10,
	})

	agg, err := f.resolver.AggregateForEvent(context.Background(), f.event.ID, "ada@example.com")
	require.NoError(t, err)
	require.Nil(t, agg, "grants on expired configs contribute nothing")
}

func TestAggregateNothingContributedReturnsNil(t *testing.T) {
	f := newFixture(t)
	f.mock.Seed("ada@example.com", 0)

	agg, err := f.resolver.AggregateForEvent(context.Background(), f.event.ID, "ada@example.com")
	require.NoError(t, err)
	require.Nil(t, agg)
}
