// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgendaItem is the predicate function for agendaitem builders.
type AgendaItem func(*sql.Selector)

// DomainEnrollmentConfig is the predicate function for domainenrollmentconfig builders.
type DomainEnrollmentConfig func(*sql.Selector)

// EnrollmentConfig is the predicate function for enrollmentconfig builders.
type EnrollmentConfig func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SessionParticipation is the predicate function for sessionparticipation builders.
type SessionParticipation func(*sql.Selector)

// Space is the predicate function for space builders.
type Space func(*sql.Selector)

// Sphere is the predicate function for sphere builders.
type Sphere func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserEnrollmentConfig is the predicate function for userenrollmentconfig builders.
type UserEnrollmentConfig func(*sql.Selector)
