package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

type recordingSender struct {
	sent []sentBatch
	err  error
}

type sentBatch struct {
	recipients []int64
	params     Params
}

func (r *recordingSender) Send(_ context.Context, params Params) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentBatch{recipients: []int64{params.RecipientID}, params: params})
	return nil
}

func (r *recordingSender) SendToMany(_ context.Context, recipients []int64, params Params) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sentBatch{recipients: recipients, params: params})
	return nil
}

func dispatchParticipation(t *testing.T, sender *recordingSender, typ domain.EventType, p domain.ParticipationPayload) {
	t.Helper()
	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender).Register(dispatcher)
	require.NoError(t, dispatcher.Dispatch(context.Background(), domain.NewParticipationEvent(typ, p)))
}

func TestTriggers_EnrolledNotifiesParticipant(t *testing.T) {
	sender := &recordingSender{}

	dispatchParticipation(t, sender, domain.EventParticipantEnrolled, domain.ParticipationPayload{
		SessionID:    7,
		SessionTitle: "Opening Game",
		UserID:       42,
		UserName:     "ada",
		EnrolledByID: 42,
	})

	require.Len(t, sender.sent, 1)
	batch := sender.sent[0]
	assert.Equal(t, []int64{42}, batch.recipients)
	assert.Equal(t, TypeEnrollmentConfirmed, batch.params.Type)
	assert.Equal(t, "Enrollment confirmed", batch.params.Title)
	assert.Contains(t, batch.params.Message, `"Opening Game"`)
	assert.Equal(t, "session", batch.params.ResourceType)
	assert.Equal(t, "7", batch.params.ResourceID)
}

func TestTriggers_ManagerGetsCopy(t *testing.T) {
	sender := &recordingSender{}

	dispatchParticipation(t, sender, domain.EventParticipantWaitlisted, domain.ParticipationPayload{
		SessionID:    7,
		SessionTitle: "Opening Game",
		UserID:       43,
		UserName:     "kid",
		EnrolledByID: 42,
	})

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []int64{43, 42}, sender.sent[0].recipients)
	assert.Equal(t, TypeEnrollmentWaitlisted, sender.sent[0].params.Type)
}

func TestTriggers_EventTypeMapping(t *testing.T) {
	cases := []struct {
		eventType domain.EventType
		wantType  string
		wantTitle string
	}{
		{domain.EventParticipantEnrolled, TypeEnrollmentConfirmed, "Enrollment confirmed"},
		{domain.EventParticipantWaitlisted, TypeEnrollmentWaitlisted, "Added to waiting list"},
		{domain.EventParticipantPromoted, TypeEnrollmentPromoted, "A spot opened up"},
		{domain.EventParticipantCancelled, TypeEnrollmentCancelled, "Enrollment cancelled"},
	}

	for _, tc := range cases {
		sender := &recordingSender{}
		dispatchParticipation(t, sender, tc.eventType, domain.ParticipationPayload{
			SessionID: 1, SessionTitle: "s", UserID: 2, UserName: "u",
		})
		require.Len(t, sender.sent, 1, tc.eventType)
		assert.Equal(t, tc.wantType, sender.sent[0].params.Type, tc.eventType)
		assert.Equal(t, tc.wantTitle, sender.sent[0].params.Title, tc.eventType)
	}
}

func TestTriggers_SenderFailureDoesNotPropagate(t *testing.T) {
	sender := &recordingSender{err: errors.New("inbox unavailable")}

	dispatcher := domain.NewEventDispatcher()
	NewTriggers(sender).Register(dispatcher)

	err := dispatcher.Dispatch(context.Background(), domain.NewParticipationEvent(
		domain.EventParticipantEnrolled,
		domain.ParticipationPayload{SessionID: 1, UserID: 2},
	))
	assert.NoError(t, err)
}
