package domain

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Participation lifecycle
	EventParticipantEnrolled   EventType = "PARTICIPANT_ENROLLED"
	EventParticipantWaitlisted EventType = "PARTICIPANT_WAITLISTED"
	EventParticipantPromoted   EventType = "PARTICIPANT_PROMOTED"
	EventParticipantCancelled  EventType = "PARTICIPANT_CANCELLED"

	// Slot resolution
	EventSlotLookupFailed EventType = "SLOT_LOOKUP_FAILED"
)

// DomainEvent represents an immutable domain event.
type DomainEvent struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewParticipationEvent wraps a participation payload in a dispatchable
// domain event. Marshal failures are impossible for this payload shape, so
// the payload bytes are built unconditionally.
func NewParticipationEvent(eventType EventType, p ParticipationPayload) *DomainEvent {
	raw, _ := json.Marshal(p)
	return &DomainEvent{
		EventID:       newEventID(),
		EventType:     eventType,
		AggregateType: "session",
		AggregateID:   strconv.FormatInt(p.SessionID, 10),
		Payload:       raw,
		CreatedBy:     strconv.FormatInt(p.EnrolledByID, 10),
		CreatedAt:     time.Now(),
	}
}

// newEventID generates a time-ordered UUID v7, falling back to v4.
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ParticipationPayload is the payload for participation lifecycle events.
type ParticipationPayload struct {
	SessionID    int64  `json:"session_id"`
	SessionTitle string `json:"session_title"`
	UserID       int64  `json:"user_id"`
	UserName     string `json:"user_name"`
	EnrolledByID int64  `json:"enrolled_by_id"`
	Status       string `json:"status"`
}

// ToJSON converts payload to JSON bytes.
func (p ParticipationPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// SlotLookupPayload is the payload for external slot lookup failures.
type SlotLookupPayload struct {
	ConfigID int64  `json:"config_id"`
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Reason   string `json:"reason"`
}

// ToJSON converts payload to JSON bytes.
func (p SlotLookupPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
