// Package usecase provides application use cases.
//
// UseCases are reusable across HTTP, CLI, and job workers. Atomic
// transactions are managed at the use case level.
package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"ludamus.io/enrolld/internal/domain"
	apperrors "ludamus.io/enrolld/internal/pkg/errors"
	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/pkg/worker"
	"ludamus.io/enrolld/internal/repository"
	"ludamus.io/enrolld/internal/service"
	"ludamus.io/enrolld/internal/slots"
)

// OutcomeKind classifies what happened to one user in a batch.
type OutcomeKind string

const (
	OutcomeEnrolled   OutcomeKind = "enrolled"
	OutcomeWaitlisted OutcomeKind = "waitlisted"
	OutcomeCancelled  OutcomeKind = "cancelled"
	OutcomeSkipped    OutcomeKind = "skipped"
	OutcomeDenied     OutcomeKind = "denied"
)

// Per-user skip and denial reasons. Skips are benign no-ops; denials are
// policy refusals the caller should surface prominently.
const (
	ReasonSessionHost        = "session_host"
	ReasonAlreadyEnrolled    = "already_enrolled"
	ReasonAlreadyWaitlisted  = "already_waitlisted"
	ReasonScheduleConflict   = "schedule_conflict"
	ReasonNotEnrolled        = "not_enrolled"
	ReasonUnderMinAge        = "under_min_age"
	ReasonNotConnected       = "not_connected"
	ReasonUserInactive       = "user_inactive"
	ReasonWaitlistDisabled   = "waitlist_disabled"
	ReasonWaitlistLimit      = "waitlist_limit_reached"
	ReasonEnrollmentAccess   = "enrollment_access_required"
	ReasonEmailRequired      = "email_required"
	ReasonManagerInfoMissing = "manager_information_missing"
)

// BatchInput is one enrollment request: the acting user chooses an action
// for themselves and any of their connected users, against one session.
type BatchInput struct {
	SessionID int64            `json:"session_id"`
	ActorID   int64            `json:"-"`
	Choices   map[int64]string `json:"choices"`
}

// UserOutcome reports what happened to one user.
type UserOutcome struct {
	UserID   int64       `json:"user_id"`
	UserName string      `json:"user_name,omitempty"`
	Kind     OutcomeKind `json:"outcome"`
	Reason   string      `json:"reason,omitempty"`
}

// BatchResult is the full result of a processed batch.
type BatchResult struct {
	SessionID      int64         `json:"session_id"`
	Outcomes       []UserOutcome `json:"outcomes"`
	PromotedUserID *int64        `json:"promoted_user_id,omitempty"`
}

// pendingEvent is a state change awaiting post-commit dispatch.
type pendingEvent struct {
	typ     domain.EventType
	payload domain.ParticipationPayload
}

// ParticipationEngine processes enrollment batches: the capacity check,
// the per-user state machine, and waitlist promotion, all inside one
// transaction holding the session row lock. Slot-budget resolution runs
// before the transaction so gateway latency never extends lock hold time.
type ParticipationEngine struct {
	store      repository.Store
	resolver   *slots.Resolver
	pools      *worker.Pools
	dispatcher *domain.EventDispatcher
	now        func() time.Time
}

// NewParticipationEngine creates the engine. pools and dispatcher may be
// nil; budget lookups then run inline and events are not dispatched.
func NewParticipationEngine(
	store repository.Store,
	resolver *slots.Resolver,
	pools *worker.Pools,
	dispatcher *domain.EventDispatcher,
) *ParticipationEngine {
	return &ParticipationEngine{
		store:      store,
		resolver:   resolver,
		pools:      pools,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (e *ParticipationEngine) WithClock(now func() time.Time) *ParticipationEngine {
	e.now = now
	return e
}

// target is one parsed batch entry.
type target struct {
	user   domain.User
	action domain.Action
	isSelf bool
}

// ProcessBatch executes one enrollment batch end to end.
//
// Phase 1 loads and validates the session, actor, and connected users.
// Phase 2 resolves the enrollment config and, when the config restricts
// enrollment to configured users, the actor's slot budget (gateway calls
// happen here, outside the transaction). Phase 3 runs the state machine
// in a single transaction under the session row lock, with an
// all-or-nothing capacity check for requested seats. Phase 4 dispatches
// domain events for every committed state change.
func (e *ParticipationEngine) ProcessBatch(ctx context.Context, input BatchInput) (*BatchResult, error) {
	now := e.now()

	session, err := e.store.SessionByID(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrSessionNotFound(input.SessionID)
		}
		return nil, err
	}
	event, err := e.store.EventByID(ctx, session.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeEventNotFound, "event not found")
		}
		return nil, err
	}
	agenda, err := e.store.AgendaItemBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	actor, err := e.store.UserByID(ctx, input.ActorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, err
	}
	if !actor.IsActive {
		return nil, apperrors.Forbidden(apperrors.CodeUserInactive, "account is inactive")
	}
	connected, err := e.store.ConnectedUsers(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	circle := map[int64]domain.User{actor.ID: actor}
	circleIDs := []int64{actor.ID}
	for _, u := range connected {
		circle[u.ID] = u
		circleIDs = append(circleIDs, u.ID)
	}

	var preOutcomes []UserOutcome
	targets := make([]target, 0, len(input.Choices))
	for userID, raw := range input.Choices {
		if raw == "" {
			continue
		}
		action, ok := domain.ParseAction(raw)
		if !ok {
			return nil, apperrors.ErrInvalidChoice(raw)
		}
		u, member := circle[userID]
		if !member {
			preOutcomes = append(preOutcomes, UserOutcome{
				UserID: userID, Kind: OutcomeSkipped, Reason: ReasonNotConnected,
			})
			continue
		}
		targets = append(targets, target{user: u, action: action, isSelf: userID == actor.ID})
	}
	// Map iteration order is random; process deterministically.
	sort.Slice(targets, func(i, j int) bool { return targets[i].user.ID < targets[j].user.ID })
	sort.Slice(preOutcomes, func(i, j int) bool { return preOutcomes[i].UserID < preOutcomes[j].UserID })

	configs, err := e.store.ConfigsByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	cfg := service.MostLiberal(configs, agenda, now)
	if cfg == nil {
		return nil, apperrors.ErrNoEnrollmentConfig(event.ID)
	}

	budget, err := e.resolveBudget(ctx, event.ID, actor, circleIDs, *cfg)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{SessionID: session.ID}
	var events []pendingEvent
	txErr := e.store.InTx(ctx, func(tx repository.TxStore) error {
		// Reset per attempt so transaction retries do not duplicate output.
		result.Outcomes = append([]UserOutcome(nil), preOutcomes...)
		result.PromotedUserID = nil
		events = events[:0]
		b := budget

		locked, err := tx.LockSession(ctx, session.ID)
		if err != nil {
			return err
		}
		confirmed, err := tx.ConfirmedCount(ctx, session.ID)
		if err != nil {
			return err
		}
		limit := service.EffectiveLimit(locked, *cfg)

		parts := make(map[int64]*domain.SessionParticipation, len(targets))
		requested := 0
		for _, t := range targets {
			part, err := tx.ParticipationFor(ctx, session.ID, t.user.ID)
			if err != nil {
				return err
			}
			parts[t.user.ID] = part
			if t.action == domain.ActionEnroll && !isHost(locked, t.user.ID) &&
				(part == nil || !part.Status.IsConfirmed()) {
				requested++
			}
		}
		if available := limit - confirmed; requested > available {
			return apperrors.ErrCapacityExceeded(requested, available)
		}

		freed := 0
		for _, t := range targets {
			outcome, err := e.apply(ctx, tx, locked, event.ID, agenda, *cfg, &b, t, parts[t.user.ID], actor, &freed, &events)
			if err != nil {
				return err
			}
			result.Outcomes = append(result.Outcomes, outcome)
		}

		for i := 0; i < freed; i++ {
			promoted, err := e.promoteOne(ctx, tx, locked, event.ID, agenda, &events)
			if err != nil {
				return err
			}
			if promoted == nil {
				break
			}
			result.PromotedUserID = &promoted.UserID
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	e.dispatch(ctx, events)

	logger.Info("Enrollment batch processed",
		zap.Int64("session_id", session.ID),
		zap.Int64("actor_id", actor.ID),
		zap.Int("outcomes", len(result.Outcomes)),
	)
	return result, nil
}

// budgetState carries the actor's resolved slot budget through the batch.
type budgetState struct {
	restricted bool
	denied     string // non-empty: every admission is refused with this reason
	remaining  int    // people-slots left when restricted and not denied
}

// resolveBudget computes the actor's admission budget for a restricted
// config. Connected users inherit the acting manager's entitlement; a
// manager without an email address cannot be resolved at all.
func (e *ParticipationEngine) resolveBudget(
	ctx context.Context,
	eventID int64,
	actor domain.User,
	circleIDs []int64,
	cfg domain.EnrollmentConfig,
) (budgetState, error) {
	if !cfg.RestrictToConfiguredUsers {
		return budgetState{}, nil
	}
	if !actor.HasEmail() {
		return budgetState{restricted: true, denied: ReasonEmailRequired}, nil
	}

	agg, err := e.aggregate(ctx, eventID, actor.Email)
	if err != nil {
		return budgetState{}, err
	}
	if agg == nil || agg.AllowedSlots <= 0 {
		return budgetState{restricted: true, denied: ReasonEnrollmentAccess}, nil
	}

	used, err := e.store.DistinctEnrolledPeople(ctx, eventID, circleIDs)
	if err != nil {
		return budgetState{}, err
	}
	return budgetState{restricted: true, remaining: agg.AllowedSlots - used}, nil
}

// aggregate runs the slot aggregation through the gateway worker pool so
// concurrent membership lookups stay bounded service-wide.
func (e *ParticipationEngine) aggregate(ctx context.Context, eventID int64, email string) (*domain.VirtualEnrollmentConfig, error) {
	if e.pools == nil {
		return e.resolver.AggregateForEvent(ctx, eventID, email)
	}

	type reply struct {
		agg *domain.VirtualEnrollmentConfig
		err error
	}
	ch := make(chan reply, 1)
	if err := e.pools.Gateway.Submit(ctx, func(ctx context.Context) {
		agg, err := e.resolver.AggregateForEvent(ctx, eventID, email)
		ch <- reply{agg: agg, err: err}
	}); err != nil {
		return nil, err
	}
	select {
	case r := <-ch:
		return r.agg, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// apply runs the state machine for one target inside the transaction.
func (e *ParticipationEngine) apply(
	ctx context.Context,
	tx repository.TxStore,
	session domain.Session,
	eventID int64,
	agenda *domain.AgendaItem,
	cfg domain.EnrollmentConfig,
	budget *budgetState,
	t target,
	part *domain.SessionParticipation,
	actor domain.User,
	freed *int,
	events *[]pendingEvent,
) (UserOutcome, error) {
	out := UserOutcome{UserID: t.user.ID, UserName: t.user.Name}

	switch t.action {
	case domain.ActionCancel:
		if part == nil {
			out.Kind, out.Reason = OutcomeSkipped, ReasonNotEnrolled
			return out, nil
		}
		wasConfirmed := part.Status.IsConfirmed()
		if err := tx.DeleteParticipation(ctx, part.ID); err != nil {
			return out, err
		}
		if wasConfirmed {
			*freed++
		}
		out.Kind = OutcomeCancelled
		*events = append(*events, pendingEvent{
			typ:     domain.EventParticipantCancelled,
			payload: payloadFor(session, t.user, actor.ID, domain.ParticipationStatus{}),
		})
		return out, nil

	case domain.ActionEnroll:
		if reason := e.admissionGuard(session, t, *budget); reason != "" {
			out.Kind, out.Reason = outcomeFor(reason), reason
			return out, nil
		}
		if part != nil && part.Status.IsConfirmed() {
			out.Kind, out.Reason = OutcomeSkipped, ReasonAlreadyEnrolled
			return out, nil
		}
		if agenda != nil {
			busy, err := tx.ConfirmedAgendaForUser(ctx, eventID, t.user.ID)
			if err != nil {
				return out, err
			}
			if service.FindTimeConflict(*agenda, busy) != nil {
				out.Kind, out.Reason = OutcomeSkipped, ReasonScheduleConflict
				return out, nil
			}
		}
		ok, err := e.consumeBudget(ctx, tx, eventID, t.user.ID, budget)
		if err != nil {
			return out, err
		}
		if !ok {
			out.Kind, out.Reason = OutcomeDenied, ReasonEnrollmentAccess
			return out, nil
		}
		if part != nil {
			// Waiting or unrecognized status: promote the existing row.
			if err := tx.UpdateParticipationStatus(ctx, part.ID, domain.StatusConfirmed); err != nil {
				return out, err
			}
		} else {
			if _, err := tx.CreateParticipation(ctx, domain.SessionParticipation{
				SessionID:    session.ID,
				UserID:       t.user.ID,
				Status:       domain.StatusConfirmed,
				EnrolledByID: actor.ID,
			}); err != nil {
				return out, err
			}
		}
		out.Kind = OutcomeEnrolled
		*events = append(*events, pendingEvent{
			typ:     domain.EventParticipantEnrolled,
			payload: payloadFor(session, t.user, actor.ID, domain.StatusConfirmed),
		})
		return out, nil

	case domain.ActionWaitlist:
		if !cfg.WaitlistEnabled() {
			out.Kind, out.Reason = OutcomeDenied, ReasonWaitlistDisabled
			return out, nil
		}
		if reason := e.admissionGuard(session, t, *budget); reason != "" {
			out.Kind, out.Reason = outcomeFor(reason), reason
			return out, nil
		}
		if part != nil && part.Status.IsConfirmed() {
			out.Kind, out.Reason = OutcomeSkipped, ReasonAlreadyEnrolled
			return out, nil
		}
		if part != nil && part.Status.IsWaiting() {
			out.Kind, out.Reason = OutcomeSkipped, ReasonAlreadyWaitlisted
			return out, nil
		}
		waiting, err := e.store.WaitingSessionCount(ctx, eventID, t.user.ID)
		if err != nil {
			return out, err
		}
		if waiting >= cfg.MaxWaitlistSessions {
			out.Kind, out.Reason = OutcomeSkipped, ReasonWaitlistLimit
			return out, nil
		}
		ok, err := e.consumeBudget(ctx, tx, eventID, t.user.ID, budget)
		if err != nil {
			return out, err
		}
		if !ok {
			out.Kind, out.Reason = OutcomeDenied, ReasonEnrollmentAccess
			return out, nil
		}
		if part != nil {
			if err := tx.UpdateParticipationStatus(ctx, part.ID, domain.StatusWaiting); err != nil {
				return out, err
			}
		} else {
			if _, err := tx.CreateParticipation(ctx, domain.SessionParticipation{
				SessionID:    session.ID,
				UserID:       t.user.ID,
				Status:       domain.StatusWaiting,
				EnrolledByID: actor.ID,
			}); err != nil {
				return out, err
			}
		}
		out.Kind = OutcomeWaitlisted
		*events = append(*events, pendingEvent{
			typ:     domain.EventParticipantWaitlisted,
			payload: payloadFor(session, t.user, actor.ID, domain.StatusWaiting),
		})
		return out, nil
	}

	out.Kind, out.Reason = OutcomeSkipped, ReasonNotEnrolled
	return out, nil
}

// admissionGuard holds the checks shared by enroll and waitlist.
func (e *ParticipationEngine) admissionGuard(session domain.Session, t target, budget budgetState) string {
	if isHost(session, t.user.ID) {
		return ReasonSessionHost
	}
	if !t.user.IsActive {
		return ReasonUserInactive
	}
	if session.MinAge > 0 {
		if age := t.user.Age(e.now()); age >= 0 && age < session.MinAge {
			return ReasonUnderMinAge
		}
	}
	if budget.denied != "" {
		if !t.isSelf && budget.denied == ReasonEmailRequired {
			return ReasonManagerInfoMissing
		}
		return budget.denied
	}
	return ""
}

func isHost(session domain.Session, userID int64) bool {
	return session.HostID != nil && *session.HostID == userID
}

// consumeBudget charges one person-slot for a user who is not yet counted
// against the actor's budget. Users already holding any participation in
// the event are already counted and cost nothing. Returns false when the
// budget is exhausted.
func (e *ParticipationEngine) consumeBudget(ctx context.Context, tx repository.TxStore, eventID, userID int64, b *budgetState) (bool, error) {
	if !b.restricted {
		return true, nil
	}
	counted, err := tx.DistinctEnrolledPeople(ctx, eventID, []int64{userID})
	if err != nil {
		return false, err
	}
	if counted > 0 {
		return true, nil
	}
	if b.remaining <= 0 {
		return false, nil
	}
	b.remaining--
	return true, nil
}

// promoteOne moves the earliest eligible waiting participant into the seat
// freed by a cancellation. The slot budget was checked when the user joined
// the waitlist; promotion re-checks only what can change afterwards.
func (e *ParticipationEngine) promoteOne(
	ctx context.Context,
	tx repository.TxStore,
	session domain.Session,
	eventID int64,
	agenda *domain.AgendaItem,
	events *[]pendingEvent,
) (*domain.SessionParticipation, error) {
	waiting, err := tx.WaitingParticipations(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	for _, cand := range waiting {
		if isHost(session, cand.UserID) {
			continue
		}
		user, err := e.store.UserByID(ctx, cand.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if !user.IsActive {
			continue
		}
		if agenda != nil {
			busy, err := tx.ConfirmedAgendaForUser(ctx, eventID, cand.UserID)
			if err != nil {
				return nil, err
			}
			if service.FindTimeConflict(*agenda, busy) != nil {
				continue
			}
		}
		if err := tx.UpdateParticipationStatus(ctx, cand.ID, domain.StatusConfirmed); err != nil {
			return nil, err
		}
		*events = append(*events, pendingEvent{
			typ:     domain.EventParticipantPromoted,
			payload: payloadFor(session, user, cand.EnrolledByID, domain.StatusConfirmed),
		})
		promoted := cand
		return &promoted, nil
	}
	return nil, nil
}

func outcomeFor(reason string) OutcomeKind {
	switch reason {
	case ReasonEmailRequired, ReasonManagerInfoMissing, ReasonEnrollmentAccess, ReasonWaitlistDisabled:
		return OutcomeDenied
	default:
		return OutcomeSkipped
	}
}

func payloadFor(session domain.Session, user domain.User, enrolledBy int64, status domain.ParticipationStatus) domain.ParticipationPayload {
	return domain.ParticipationPayload{
		SessionID:    session.ID,
		SessionTitle: session.Title,
		UserID:       user.ID,
		UserName:     user.Name,
		EnrolledByID: enrolledBy,
		Status:       status.String(),
	}
}

// dispatch publishes domain events for the committed state changes.
func (e *ParticipationEngine) dispatch(ctx context.Context, events []pendingEvent) {
	if e.dispatcher == nil {
		return
	}
	for _, ev := range events {
		if err := e.dispatcher.Dispatch(ctx, domain.NewParticipationEvent(ev.typ, ev.payload)); err != nil {
			logger.Warn("Participation event dispatch failed",
				zap.Int64("session_id", ev.payload.SessionID),
				zap.Int64("user_id", ev.payload.UserID),
				zap.Error(err),
			)
		}
	}
}
