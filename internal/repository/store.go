// Package repository defines the persistence boundary of the enrollment
// engine. The engine reads and writes through these interfaces; concrete
// implementations live in the entstore and memstore subpackages.
package repository

import (
	"context"
	"errors"
	"time"

	"ludamus.io/enrolld/internal/domain"
)

// ErrNotFound is returned for missing rows. Implementations translate
// their driver-specific not-found errors to this sentinel.
var ErrNotFound = errors.New("repository: not found")

// Store is the read side plus the transaction entry point. Reads outside a
// transaction may be served from a per-request cache; gateway-driven
// UserEnrollmentConfig writes go through here because they must NOT share
// the enrollment transaction.
type Store interface {
	EventByID(ctx context.Context, id int64) (domain.Event, error)
	SessionByID(ctx context.Context, id int64) (domain.Session, error)
	AgendaItemBySession(ctx context.Context, sessionID int64) (*domain.AgendaItem, error)
	ConfigsByEvent(ctx context.Context, eventID int64) ([]domain.EnrollmentConfig, error)
	DomainConfigsByConfig(ctx context.Context, configID int64) ([]domain.DomainEnrollmentConfig, error)

	UserByID(ctx context.Context, id int64) (domain.User, error)
	ConnectedUsers(ctx context.Context, managerID int64) ([]domain.User, error)

	// UserConfig returns nil (not ErrNotFound) when no row exists; the
	// resolver distinguishes "never checked" from "checked, zero".
	UserConfig(ctx context.Context, configID int64, email string) (*domain.UserEnrollmentConfig, error)
	UpsertUserConfig(ctx context.Context, cfg domain.UserEnrollmentConfig) (domain.UserEnrollmentConfig, error)
	TouchUserConfigCheck(ctx context.Context, id int64, at time.Time) error

	// DistinctEnrolledPeople counts distinct users among userIDs holding a
	// CONFIRMED or WAITING participation in any session of the event.
	DistinctEnrolledPeople(ctx context.Context, eventID int64, userIDs []int64) (int, error)

	// ConfirmedAgendaForUser returns agenda items of the user's CONFIRMED
	// sessions within the event, for time-conflict checks.
	ConfirmedAgendaForUser(ctx context.Context, eventID, userID int64) ([]domain.AgendaItem, error)

	// WaitingSessionCount counts sessions in the event where the user is
	// currently WAITING, for the max_waitlist_sessions guard.
	WaitingSessionCount(ctx context.Context, eventID, userID int64) (int, error)

	// ConfirmedCount and WaitingCount are unlocked reads for availability
	// queries. Enrollment decisions use the TxStore counterparts instead.
	ConfirmedCount(ctx context.Context, sessionID int64) (int, error)
	WaitingCount(ctx context.Context, sessionID int64) (int, error)

	// InTx runs fn inside one serializable transaction scope. The TxStore
	// passed to fn is only valid until fn returns.
	InTx(ctx context.Context, fn func(tx TxStore) error) error
}

// TxStore is the write side, valid only inside Store.InTx. LockSession
// must be called before capacity reads so concurrent batches serialize on
// the session row.
type TxStore interface {
	// LockSession rereads the session with a row lock held for the rest
	// of the transaction.
	LockSession(ctx context.Context, sessionID int64) (domain.Session, error)

	ConfirmedCount(ctx context.Context, sessionID int64) (int, error)
	ParticipationFor(ctx context.Context, sessionID, userID int64) (*domain.SessionParticipation, error)
	WaitingParticipations(ctx context.Context, sessionID int64) ([]domain.SessionParticipation, error)

	CreateParticipation(ctx context.Context, p domain.SessionParticipation) (domain.SessionParticipation, error)
	UpdateParticipationStatus(ctx context.Context, id int64, status domain.ParticipationStatus) error
	DeleteParticipation(ctx context.Context, id int64) error

	// ConfirmedAgendaForUser mirrors the Store read inside the
	// transaction, for promotion-time conflict checks.
	ConfirmedAgendaForUser(ctx context.Context, eventID, userID int64) ([]domain.AgendaItem, error)
	DistinctEnrolledPeople(ctx context.Context, eventID int64, userIDs []int64) (int, error)
}
