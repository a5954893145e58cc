package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/membership"
	apperrors "ludamus.io/enrolld/internal/pkg/errors"
	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/pkg/worker"
	"ludamus.io/enrolld/internal/repository/memstore"
	"ludamus.io/enrolld/internal/slots"
)

func init() {
	_ = logger.Init("error", "json")
}

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type engineFixture struct {
	store   *memstore.Store
	mock    *membership.MockGateway
	engine  *ParticipationEngine
	events  *eventRecorder
	event   domain.Event
	session domain.Session
	config  domain.EnrollmentConfig
}

type eventRecorder struct {
	mu    sync.Mutex
	types []domain.EventType
}

func (r *eventRecorder) record(_ context.Context, ev *domain.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, ev.EventType)
	return nil
}

func (r *eventRecorder) seen() []domain.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.EventType(nil), r.types...)
}

type fixtureOpt func(*domain.EnrollmentConfig, *domain.Session)

func withConfig(fn func(*domain.EnrollmentConfig)) fixtureOpt {
	return func(cfg *domain.EnrollmentConfig, _ *domain.Session) { fn(cfg) }
}

func withSession(fn func(*domain.Session)) fixtureOpt {
	return func(_ *domain.EnrollmentConfig, sess *domain.Session) { fn(sess) }
}

func newEngineFixture(t *testing.T, opts ...fixtureOpt) *engineFixture {
	t.Helper()

	store := memstore.New()
	event := store.AddEvent(domain.Event{Name: "Spring Convention", Slug: "spring"})

	cfg := domain.EnrollmentConfig{
		EventID:             event.ID,
		Name:                "general",
		StartTime:           testNow.Add(-time.Hour),
		EndTime:             testNow.Add(time.Hour),
		PercentageSlots:     100,
		MaxWaitlistSessions: 3,
	}
	sess := domain.Session{
		EventID:           event.ID,
		Title:             "Deep Dungeon",
		Slug:              "deep-dungeon",
		ParticipantsLimit: 4,
	}
	for _, opt := range opts {
		opt(&cfg, &sess)
	}
	cfg = store.AddConfig(cfg)
	session := store.AddSession(sess, &domain.AgendaItem{
		StartTime: testNow.Add(2 * time.Hour),
		EndTime:   testNow.Add(4 * time.Hour),
		Confirmed: true,
	})

	mock := membership.NewMockGateway()
	registry := membership.NewRegistryWith(map[string]membership.Gateway{"guild": mock})
	resolver := slots.NewResolver(store, registry, slots.WithClock(func() time.Time { return testNow }))

	recorder := &eventRecorder{}
	dispatcher := domain.NewEventDispatcher()
	for _, typ := range []domain.EventType{
		domain.EventParticipantEnrolled,
		domain.EventParticipantWaitlisted,
		domain.EventParticipantPromoted,
		domain.EventParticipantCancelled,
	} {
		dispatcher.Register(typ, recorder.record)
	}

	engine := NewParticipationEngine(store, resolver, nil, dispatcher).
		WithClock(func() time.Time { return testNow })

	return &engineFixture{
		store:   store,
		mock:    mock,
		engine:  engine,
		events:  recorder,
		event:   event,
		session: session,
		config:  cfg,
	}
}

func (f *engineFixture) addUser(name string) domain.User {
	return f.store.AddUser(domain.User{Name: name, Slug: name, IsActive: true})
}

func (f *engineFixture) process(t *testing.T, actorID int64, choices map[int64]string) *BatchResult {
	t.Helper()
	res, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   actorID,
		Choices:   choices,
	})
	require.NoError(t, err)
	return res
}

func outcomeOf(t *testing.T, res *BatchResult, userID int64) UserOutcome {
	t.Helper()
	for _, o := range res.Outcomes {
		if o.UserID == userID {
			return o
		}
	}
	t.Fatalf("no outcome for user %d", userID)
	return UserOutcome{}
}

func TestProcessBatchEnrollsUser(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})

	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeEnrolled, out.Kind)
	parts := f.store.Participations()
	require.Len(t, parts, 1)
	require.True(t, parts[0].Status.IsConfirmed())
	require.Equal(t, ada.ID, parts[0].EnrolledByID)
	require.Equal(t, []domain.EventType{domain.EventParticipantEnrolled}, f.events.seen())
}

func TestProcessBatchSessionNotFound(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: 9999,
		ActorID:   ada.ID,
		Choices:   map[int64]string{ada.ID: "enroll"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeSessionNotFound, appErr.Code)
}

func TestProcessBatchInvalidChoiceFailsWholeBatch(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   ada.ID,
		Choices:   map[int64]string{ada.ID: "subscribe"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeInvalidChoice, appErr.Code)
	require.Empty(t, f.store.Participations())
}

func TestProcessBatchNoActiveConfig(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(cfg *domain.EnrollmentConfig) {
		cfg.StartTime = testNow.Add(-48 * time.Hour)
		cfg.EndTime = testNow.Add(-24 * time.Hour)
	}))
	ada := f.addUser("ada")

	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   ada.ID,
		Choices:   map[int64]string{ada.ID: "enroll"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeNoEnrollmentConfig, appErr.Code)
}

func TestProcessBatchCapacityAllOrNothing(t *testing.T) {
	f := newEngineFixture(t, withSession(func(s *domain.Session) {
		s.ParticipantsLimit = 1
	}))
	manager := f.addUser("manager")
	kid := f.store.AddUser(domain.User{Name: "kid", Slug: "kid", IsActive: true, ManagerID: &manager.ID})

	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   manager.ID,
		Choices:   map[int64]string{manager.ID: "enroll", kid.ID: "enroll"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeCapacityExceeded, appErr.Code)
	require.Empty(t, f.store.Participations(), "partial enrollment must not survive a capacity failure")
}

func TestProcessBatchEffectiveLimitUsesPercentage(t *testing.T) {
	f := newEngineFixture(t,
		withSession(func(s *domain.Session) { s.ParticipantsLimit = 3 }),
		withConfig(func(c *domain.EnrollmentConfig) { c.PercentageSlots = 50 }),
	)
	manager := f.addUser("manager")
	kid := f.store.AddUser(domain.User{Name: "kid", Slug: "kid", IsActive: true, ManagerID: &manager.ID})

	// floor(3 * 50 / 100) = 1 seat; two requests must be rejected outright.
	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   manager.ID,
		Choices:   map[int64]string{manager.ID: "enroll", kid.ID: "enroll"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeCapacityExceeded, appErr.Code)

	res := f.process(t, manager.ID, map[int64]string{manager.ID: "enroll"})
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, manager.ID).Kind)
}

func TestProcessBatchHostCannotSelfEnroll(t *testing.T) {
	f := newEngineFixture(t)
	host := f.addUser("host")
	f.store.SetSessionHost(f.session.ID, host.ID)

	res := f.process(t, host.ID, map[int64]string{host.ID: "enroll"})
	out := outcomeOf(t, res, host.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonSessionHost, out.Reason)
	require.Empty(t, f.store.Participations())
}

func TestProcessBatchEnrollIsIdempotent(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	res := f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})

	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonAlreadyEnrolled, out.Reason)
	require.Len(t, f.store.Participations(), 1)
}

func TestProcessBatchScheduleConflictSkips(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	// A second session overlapping the fixture session's time window.
	other := f.store.AddSession(domain.Session{
		EventID:           f.event.ID,
		Title:             "Rival Table",
		Slug:              "rival-table",
		ParticipantsLimit: 4,
	}, &domain.AgendaItem{
		StartTime: testNow.Add(3 * time.Hour),
		EndTime:   testNow.Add(5 * time.Hour),
		Confirmed: true,
	})
	f.store.AddParticipation(domain.SessionParticipation{
		SessionID:    other.ID,
		UserID:       ada.ID,
		Status:       domain.StatusConfirmed,
		EnrolledByID: ada.ID,
	})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonScheduleConflict, out.Reason)
}

func TestProcessBatchWaitlistDisabled(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.MaxWaitlistSessions = 0
	}))
	ada := f.addUser("ada")

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "waitlist"})
	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeDenied, out.Kind)
	require.Equal(t, ReasonWaitlistDisabled, out.Reason)
}

func TestProcessBatchWaitlistLimit(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.MaxWaitlistSessions = 1
	}))
	ada := f.addUser("ada")

	other := f.store.AddSession(domain.Session{
		EventID:           f.event.ID,
		Title:             "Other Table",
		Slug:              "other-table",
		ParticipantsLimit: 1,
	}, nil)
	f.store.AddParticipation(domain.SessionParticipation{
		SessionID:    other.ID,
		UserID:       ada.ID,
		Status:       domain.StatusWaiting,
		EnrolledByID: ada.ID,
	})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "waitlist"})
	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonWaitlistLimit, out.Reason)
}

func TestProcessBatchWaitlistThenUpgrade(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "waitlist"})
	require.Equal(t, OutcomeWaitlisted, outcomeOf(t, res, ada.ID).Kind)

	res = f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, ada.ID).Kind)

	parts := f.store.Participations()
	require.Len(t, parts, 1, "upgrade reuses the waiting row")
	require.True(t, parts[0].Status.IsConfirmed())
}

func TestProcessBatchCancelPromotesEarliestWaiting(t *testing.T) {
	f := newEngineFixture(t, withSession(func(s *domain.Session) {
		s.ParticipantsLimit = 1
	}))
	ada := f.addUser("ada")
	bob := f.addUser("bob")
	eve := f.addUser("eve")

	f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	f.process(t, bob.ID, map[int64]string{bob.ID: "waitlist"})
	f.process(t, eve.ID, map[int64]string{eve.ID: "waitlist"})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "cancel"})
	require.Equal(t, OutcomeCancelled, outcomeOf(t, res, ada.ID).Kind)
	require.NotNil(t, res.PromotedUserID)
	require.Equal(t, bob.ID, *res.PromotedUserID, "earliest waitlisted wins the freed seat")

	confirmed := 0
	waiting := 0
	for _, p := range f.store.Participations() {
		switch {
		case p.Status.IsConfirmed():
			confirmed++
			require.Equal(t, bob.ID, p.UserID)
		case p.Status.IsWaiting():
			waiting++
			require.Equal(t, eve.ID, p.UserID)
		}
	}
	require.Equal(t, 1, confirmed)
	require.Equal(t, 1, waiting)
	require.Contains(t, f.events.seen(), domain.EventParticipantPromoted)
}

func TestProcessBatchCancelWaitingNoPromotion(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")
	bob := f.addUser("bob")

	f.process(t, ada.ID, map[int64]string{ada.ID: "waitlist"})
	f.process(t, bob.ID, map[int64]string{bob.ID: "waitlist"})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "cancel"})
	require.Equal(t, OutcomeCancelled, outcomeOf(t, res, ada.ID).Kind)
	require.Nil(t, res.PromotedUserID, "cancelling a waitlist spot frees no seat")
}

func TestProcessBatchCancelNotEnrolled(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "cancel"})
	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonNotEnrolled, out.Reason)
}

func TestProcessBatchUnknownUserSkipped(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")
	stranger := f.addUser("stranger")

	res := f.process(t, ada.ID, map[int64]string{stranger.ID: "enroll"})
	out := outcomeOf(t, res, stranger.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonNotConnected, out.Reason)
	require.Empty(t, f.store.Participations())
}

func TestProcessBatchUnderMinAge(t *testing.T) {
	f := newEngineFixture(t, withSession(func(s *domain.Session) {
		s.MinAge = 18
	}))
	manager := f.addUser("manager")
	birth := testNow.AddDate(-12, 0, 0)
	kid := f.store.AddUser(domain.User{
		Name: "kid", Slug: "kid", IsActive: true,
		BirthDate: &birth, ManagerID: &manager.ID,
	})

	res := f.process(t, manager.ID, map[int64]string{kid.ID: "enroll", manager.ID: "enroll"})
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, manager.ID).Kind)
	kidOut := outcomeOf(t, res, kid.ID)
	require.Equal(t, OutcomeSkipped, kidOut.Kind)
	require.Equal(t, ReasonUnderMinAge, kidOut.Reason)
}

func TestProcessBatchRestrictedRequiresEmail(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.RestrictToConfiguredUsers = true
	}))
	manager := f.addUser("manager")
	kid := f.store.AddUser(domain.User{Name: "kid", Slug: "kid", IsActive: true, ManagerID: &manager.ID})

	res := f.process(t, manager.ID, map[int64]string{manager.ID: "enroll", kid.ID: "enroll"})

	self := outcomeOf(t, res, manager.ID)
	require.Equal(t, OutcomeDenied, self.Kind)
	require.Equal(t, ReasonEmailRequired, self.Reason)

	child := outcomeOf(t, res, kid.ID)
	require.Equal(t, OutcomeDenied, child.Kind)
	require.Equal(t, ReasonManagerInfoMissing, child.Reason)
}

func TestProcessBatchRestrictedWithoutGrant(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.RestrictToConfiguredUsers = true
	}))
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", Email: "ada@example.com", IsActive: true})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	out := outcomeOf(t, res, ada.ID)
	require.Equal(t, OutcomeDenied, out.Kind)
	require.Equal(t, ReasonEnrollmentAccess, out.Reason)
}

func TestProcessBatchRestrictedBudgetCountsDistinctPeople(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.RestrictToConfiguredUsers = true
	}))
	manager := f.store.AddUser(domain.User{Name: "manager", Slug: "manager", Email: "m@example.com", IsActive: true})
	kid := f.store.AddUser(domain.User{Name: "kid", Slug: "kid", IsActive: true, ManagerID: &manager.ID})
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:     f.config.ID,
		UserEmail:    "m@example.com",
		AllowedSlots: 1,
	})

	res := f.process(t, manager.ID, map[int64]string{manager.ID: "enroll", kid.ID: "enroll"})

	// Deterministic order: lower user ID (the manager) consumes the slot.
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, manager.ID).Kind)
	kidOut := outcomeOf(t, res, kid.ID)
	require.Equal(t, OutcomeDenied, kidOut.Kind)
	require.Equal(t, ReasonEnrollmentAccess, kidOut.Reason)

	// Already-enrolled people are counted, not re-charged: the manager can
	// still cancel and re-enroll without burning a second slot.
	f.process(t, manager.ID, map[int64]string{manager.ID: "cancel"})
	res = f.process(t, manager.ID, map[int64]string{manager.ID: "enroll"})
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, manager.ID).Kind)
}

func TestProcessBatchRestrictedBudgetViaGateway(t *testing.T) {
	f := newEngineFixture(t, withConfig(func(c *domain.EnrollmentConfig) {
		c.RestrictToConfiguredUsers = true
		c.APIProvider = "guild"
	}))
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", Email: "ada@example.com", IsActive: true})
	f.mock.Seed("ada@example.com", 2)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()
	f.engine.pools = pools

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "enroll"})
	require.Equal(t, OutcomeEnrolled, outcomeOf(t, res, ada.ID).Kind)
	require.Equal(t, 1, f.mock.Calls())
}

func TestProcessBatchInactiveActorRejected(t *testing.T) {
	f := newEngineFixture(t)
	ghost := f.store.AddUser(domain.User{Name: "ghost", Slug: "ghost", IsActive: false})

	_, err := f.engine.ProcessBatch(context.Background(), BatchInput{
		SessionID: f.session.ID,
		ActorID:   ghost.ID,
		Choices:   map[int64]string{ghost.ID: "enroll"},
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.CodeUserInactive, appErr.Code)
}

func TestProcessBatchInactiveConnectedUserSkipped(t *testing.T) {
	f := newEngineFixture(t)
	manager := f.addUser("manager")
	ghost := f.store.AddUser(domain.User{Name: "ghost", Slug: "ghost", IsActive: false, ManagerID: &manager.ID})

	res := f.process(t, manager.ID, map[int64]string{ghost.ID: "enroll"})
	out := outcomeOf(t, res, ghost.ID)
	require.Equal(t, OutcomeSkipped, out.Kind)
	require.Equal(t, ReasonUserInactive, out.Reason)
}

func TestProcessBatchWaitlistOverwritesLegacyStatus(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	f.store.AddParticipation(domain.SessionParticipation{
		SessionID:    f.session.ID,
		UserID:       ada.ID,
		Status:       domain.ParseParticipationStatus("ENROLLED"),
		EnrolledByID: ada.ID,
	})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "waitlist"})
	require.Equal(t, OutcomeWaitlisted, outcomeOf(t, res, ada.ID).Kind)

	parts := f.store.Participations()
	require.Len(t, parts, 1, "legacy row is reused, not duplicated")
	require.True(t, parts[0].Status.IsWaiting())
}

func TestProcessBatchCancelLegacyStatusFreesNoSeat(t *testing.T) {
	f := newEngineFixture(t, withSession(func(s *domain.Session) {
		s.ParticipantsLimit = 1
	}))
	ada := f.addUser("ada")
	bob := f.addUser("bob")

	f.store.AddParticipation(domain.SessionParticipation{
		SessionID:    f.session.ID,
		UserID:       ada.ID,
		Status:       domain.ParseParticipationStatus("ENROLLED"),
		EnrolledByID: ada.ID,
	})
	f.process(t, bob.ID, map[int64]string{bob.ID: "waitlist"})

	res := f.process(t, ada.ID, map[int64]string{ada.ID: "cancel"})
	require.Equal(t, OutcomeCancelled, outcomeOf(t, res, ada.ID).Kind)
	require.Nil(t, res.PromotedUserID, "a legacy row holds no seat, so nothing is freed")

	parts := f.store.Participations()
	require.Len(t, parts, 1)
	require.Equal(t, bob.ID, parts[0].UserID)
	require.True(t, parts[0].Status.IsWaiting())
}

func TestProcessBatchEmptyActionIgnored(t *testing.T) {
	f := newEngineFixture(t)
	ada := f.addUser("ada")

	res := f.process(t, ada.ID, map[int64]string{ada.ID: ""})
	require.Empty(t, res.Outcomes)
	require.Empty(t, f.store.Participations())
}
