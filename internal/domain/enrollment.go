// Package domain holds the enrollment model: events, sessions, enrollment
// windows, slot grants, and the participation state machine's vocabulary.
// It has no persistence or transport dependencies.
package domain

import (
	"strings"
	"time"
)

// ParticipationStatus is the state of a user's relation to a session.
// Values persisted by earlier systems may fall outside the known set; such
// rows parse to a status with Known()==false and round-trip unchanged.
type ParticipationStatus struct {
	raw string
}

var (
	StatusConfirmed = ParticipationStatus{raw: "CONFIRMED"}
	StatusWaiting   = ParticipationStatus{raw: "WAITING"}
)

// ParseParticipationStatus maps a stored status string to a domain status.
// Unrecognized values are preserved verbatim.
func ParseParticipationStatus(raw string) ParticipationStatus {
	switch raw {
	case StatusConfirmed.raw:
		return StatusConfirmed
	case StatusWaiting.raw:
		return StatusWaiting
	default:
		return ParticipationStatus{raw: raw}
	}
}

func (s ParticipationStatus) String() string { return s.raw }

// Known reports whether the status is one of the states the engine manages.
func (s ParticipationStatus) Known() bool {
	return s == StatusConfirmed || s == StatusWaiting
}

func (s ParticipationStatus) IsConfirmed() bool { return s == StatusConfirmed }
func (s ParticipationStatus) IsWaiting() bool   { return s == StatusWaiting }

// Action is a requested enrollment operation for a single user.
type Action string

const (
	ActionEnroll   Action = "enroll"
	ActionWaitlist Action = "waitlist"
	ActionCancel   Action = "cancel"
)

// ParseAction validates a request action string.
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionEnroll, ActionWaitlist, ActionCancel:
		return Action(raw), true
	}
	return "", false
}

// Event is a convention with a fixed schedule window.
type Event struct {
	ID        int64
	SphereID  int64
	Name      string
	Slug      string
	StartTime time.Time
	EndTime   time.Time
}

// EnrollmentConfig opens an enrollment window for an event.
type EnrollmentConfig struct {
	ID                        int64
	EventID                   int64
	Name                      string
	StartTime                 time.Time
	EndTime                   time.Time
	PercentageSlots           int
	LimitToEndTime            bool
	RestrictToConfiguredUsers bool
	MaxWaitlistSessions       int
	BannerText                string
	APIProvider               string
}

// Active reports whether the window is open at the given instant.
// The window is closed-interval: both bounds count as open.
func (c EnrollmentConfig) Active(now time.Time) bool {
	return !now.Before(c.StartTime) && !now.After(c.EndTime)
}

// WaitlistEnabled reports whether this window allows waitlisting at all.
func (c EnrollmentConfig) WaitlistEnabled() bool { return c.MaxWaitlistSessions > 0 }

// UsesProvider reports whether slot budgets for this config come from an
// external membership gateway rather than manual grants alone.
func (c EnrollmentConfig) UsesProvider() bool { return c.APIProvider != "" }

// UserEnrollmentConfig is a per-email slot grant under one config.
type UserEnrollmentConfig struct {
	ID             int64
	ConfigID       int64
	UserEmail      string
	AllowedSlots   int
	FetchedFromAPI bool
	LastCheck      *time.Time
}

// DomainEnrollmentConfig grants slots to every email under a domain.
type DomainEnrollmentConfig struct {
	ID                  int64
	ConfigID            int64
	Domain              string
	AllowedSlotsPerUser int
}

// MatchesEmail reports whether the email's domain part equals the grant's
// domain, compared case-insensitively.
func (d DomainEnrollmentConfig) MatchesEmail(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], d.Domain)
}

// VirtualEnrollmentConfig is the aggregate slot budget for one email across
// every currently valid config of an event. It is computed, never stored.
type VirtualEnrollmentConfig struct {
	Email        string
	AllowedSlots int
	HasUserGrant bool
	HasDomGrant  bool
}

// Session is an enrollable activity within an event.
type Session struct {
	ID                int64
	EventID           int64
	Title             string
	Slug              string
	ParticipantsLimit int
	MinAge            int
	HostID            *int64
}

// AgendaItem binds a session to a time range and a space.
type AgendaItem struct {
	ID        int64
	SessionID int64
	SpaceID   int64
	StartTime time.Time
	EndTime   time.Time
	Confirmed bool
}

// Overlaps reports whether two half-open time ranges intersect.
// Back-to-back items sharing a boundary instant do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SessionParticipation is one user's persisted relation to a session.
type SessionParticipation struct {
	ID           int64
	SessionID    int64
	UserID       int64
	Status       ParticipationStatus
	EnrolledByID int64
	CreatedAt    time.Time
}

// User is an account that can enroll or be enrolled by its manager.
type User struct {
	ID        int64
	Name      string
	Slug      string
	Email     string
	IsActive  bool
	BirthDate *time.Time
	ManagerID *int64
}

// HasEmail reports whether the user carries a usable email address.
func (u User) HasEmail() bool { return strings.TrimSpace(u.Email) != "" }

// Age returns the user's age in whole years at the given instant, or -1
// when no birth date is recorded.
func (u User) Age(now time.Time) int {
	if u.BirthDate == nil {
		return -1
	}
	years := now.Year() - u.BirthDate.Year()
	anniversary := u.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
