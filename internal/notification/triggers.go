package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/pkg/logger"
)

// Triggers translates participation domain events into inbox notifications.
// Four trigger points:
//  1. ENROLLMENT_CONFIRMED after a successful enroll
//  2. ENROLLMENT_WAITLISTED after joining a waitlist
//  3. ENROLLMENT_PROMOTED when a freed seat is handed to a waiting user
//  4. ENROLLMENT_CANCELLED after a cancellation
//
// When a manager acted on behalf of a connected user, the manager gets a
// copy so they know what happened to the people they enrolled.
type Triggers struct {
	sender Sender
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender) *Triggers {
	return &Triggers{sender: sender}
}

// Register subscribes the triggers to the participation event stream.
func (t *Triggers) Register(dispatcher *domain.EventDispatcher) {
	dispatcher.Register(domain.EventParticipantEnrolled, t.onEvent)
	dispatcher.Register(domain.EventParticipantWaitlisted, t.onEvent)
	dispatcher.Register(domain.EventParticipantPromoted, t.onEvent)
	dispatcher.Register(domain.EventParticipantCancelled, t.onEvent)
}

func (t *Triggers) onEvent(ctx context.Context, event *domain.DomainEvent) error {
	var payload domain.ParticipationPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode participation payload: %w", err)
	}

	params, ok := t.paramsFor(event.EventType, payload)
	if !ok {
		logger.Warn("no notification mapping for event type",
			zap.String("event_type", string(event.EventType)),
		)
		return nil
	}

	recipients := []int64{payload.UserID}
	if payload.EnrolledByID != 0 && payload.EnrolledByID != payload.UserID {
		recipients = append(recipients, payload.EnrolledByID)
	}

	if err := t.sender.SendToMany(ctx, recipients, params); err != nil {
		logger.Error("failed to send enrollment notification",
			zap.String("event_type", string(event.EventType)),
			zap.Int64("session_id", payload.SessionID),
			zap.Int64("user_id", payload.UserID),
			zap.Error(err),
		)
	}
	return nil
}

func (t *Triggers) paramsFor(eventType domain.EventType, p domain.ParticipationPayload) (Params, bool) {
	base := Params{
		ResourceType: "session",
		ResourceID:   strconv.FormatInt(p.SessionID, 10),
	}

	switch eventType {
	case domain.EventParticipantEnrolled:
		base.Type = TypeEnrollmentConfirmed
		base.Title = "Enrollment confirmed"
		base.Message = fmt.Sprintf("%s has a confirmed spot in %q", p.UserName, p.SessionTitle)
	case domain.EventParticipantWaitlisted:
		base.Type = TypeEnrollmentWaitlisted
		base.Title = "Added to waiting list"
		base.Message = fmt.Sprintf("%s joined the waiting list for %q", p.UserName, p.SessionTitle)
	case domain.EventParticipantPromoted:
		base.Type = TypeEnrollmentPromoted
		base.Title = "A spot opened up"
		base.Message = fmt.Sprintf("%s moved from the waiting list into %q", p.UserName, p.SessionTitle)
	case domain.EventParticipantCancelled:
		base.Type = TypeEnrollmentCancelled
		base.Title = "Enrollment cancelled"
		base.Message = fmt.Sprintf("%s is no longer enrolled in %q", p.UserName, p.SessionTitle)
	default:
		return Params{}, false
	}
	return base, true
}
