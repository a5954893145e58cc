package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/domain"
)

func (f *apiFixture) getAvailability(t *testing.T, userID int64, sessionPath string) (*httptest.ResponseRecorder, availabilityResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionPath+"/availability", nil)
	f.router(userID).ServeHTTP(w, req)

	var resp availabilityResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestGetAvailability_OpenWindow(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})
	f.store.AddParticipation(domain.SessionParticipation{
		SessionID: f.session.ID,
		UserID:    ada.ID,
		Status:    domain.StatusConfirmed,
	})

	w, resp := f.getAvailability(t, ada.ID, strconv.FormatInt(f.session.ID, 10))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, resp.EnrollmentOpen)
	assert.Equal(t, 4, resp.ParticipantsLimit)
	assert.Equal(t, 4, resp.EffectiveLimit)
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 3, resp.Available)
	assert.True(t, resp.WaitlistEnabled)
	assert.Zero(t, resp.Waiting)
	assert.Equal(t, "general", resp.ConfigName)
	assert.Nil(t, resp.Slots)
}

func TestGetAvailability_NoActiveConfig(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now()
	closed := f.store.AddEvent(domain.Event{Name: "Winter Convention", Slug: "winter"})
	f.store.AddConfig(domain.EnrollmentConfig{
		EventID:         closed.ID,
		Name:            "past",
		StartTime:       now.Add(-48 * time.Hour),
		EndTime:         now.Add(-24 * time.Hour),
		PercentageSlots: 100,
	})
	session := f.store.AddSession(domain.Session{
		EventID:           closed.ID,
		Title:             "Late Game",
		Slug:              "late-game",
		ParticipantsLimit: 6,
	}, &domain.AgendaItem{
		StartTime: now.Add(2 * time.Hour),
		EndTime:   now.Add(3 * time.Hour),
		Confirmed: true,
	})
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w, resp := f.getAvailability(t, ada.ID, strconv.FormatInt(session.ID, 10))

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.EnrollmentOpen)
	assert.Equal(t, 6, resp.ParticipantsLimit)
	assert.Zero(t, resp.EffectiveLimit)
	assert.Zero(t, resp.Available)
}

func TestGetAvailability_SessionNotFound(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w, _ := f.getAvailability(t, ada.ID, "424242")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")
}

func TestGetAvailability_RestrictedReportsSlots(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now()
	event := f.store.AddEvent(domain.Event{Name: "Members Only", Slug: "members"})
	cfg := f.store.AddConfig(domain.EnrollmentConfig{
		EventID:                   event.ID,
		Name:                      "restricted",
		StartTime:                 now.Add(-time.Hour),
		EndTime:                   now.Add(time.Hour),
		PercentageSlots:           100,
		RestrictToConfiguredUsers: true,
		MaxWaitlistSessions:       2,
	})
	session := f.store.AddSession(domain.Session{
		EventID:           event.ID,
		Title:             "Members Game",
		Slug:              "members-game",
		ParticipantsLimit: 8,
	}, &domain.AgendaItem{
		StartTime: now.Add(2 * time.Hour),
		EndTime:   now.Add(3 * time.Hour),
		Confirmed: true,
	})
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", Email: "ada@example.com", IsActive: true})
	f.store.SeedUserConfig(domain.UserEnrollmentConfig{
		ConfigID:     cfg.ID,
		UserEmail:    "ada@example.com",
		AllowedSlots: 3,
	})

	w, resp := f.getAvailability(t, ada.ID, strconv.FormatInt(session.ID, 10))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, resp.EnrollmentOpen)
	require.NotNil(t, resp.Slots)
	assert.Equal(t, 3, resp.Slots.AllowedSlots)
	assert.Zero(t, resp.Slots.UsedSlots)
	assert.True(t, resp.Slots.HasUserGrant)
	assert.False(t, resp.Slots.HasDomGrant)
}

func TestGetAvailability_RestrictedWithoutEmail(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now()
	event := f.store.AddEvent(domain.Event{Name: "Members Only", Slug: "members-2"})
	f.store.AddConfig(domain.EnrollmentConfig{
		EventID:                   event.ID,
		Name:                      "restricted",
		StartTime:                 now.Add(-time.Hour),
		EndTime:                   now.Add(time.Hour),
		PercentageSlots:           100,
		RestrictToConfiguredUsers: true,
	})
	session := f.store.AddSession(domain.Session{
		EventID:           event.ID,
		Title:             "Members Game",
		Slug:              "members-game-2",
		ParticipantsLimit: 8,
	}, &domain.AgendaItem{
		StartTime: now.Add(2 * time.Hour),
		EndTime:   now.Add(3 * time.Hour),
		Confirmed: true,
	})
	ghost := f.store.AddUser(domain.User{Name: "ghost", Slug: "ghost", IsActive: true})

	w, resp := f.getAvailability(t, ghost.ID, strconv.FormatInt(session.ID, 10))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Slots)
	assert.Zero(t, resp.Slots.AllowedSlots)
	assert.False(t, resp.Slots.HasUserGrant)
}
