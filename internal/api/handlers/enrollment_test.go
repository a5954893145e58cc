package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/api/middleware"
	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/membership"
	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/repository/memstore"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

type apiFixture struct {
	store   *memstore.Store
	mock    *membership.MockGateway
	server  *Server
	event   domain.Event
	session domain.Session
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	store := memstore.New()
	mock := membership.NewMockGateway()

	now := time.Now()
	event := store.AddEvent(domain.Event{Name: "Autumn Convention", Slug: "autumn"})
	store.AddConfig(domain.EnrollmentConfig{
		EventID:             event.ID,
		Name:                "general",
		StartTime:           now.Add(-time.Hour),
		EndTime:             now.Add(time.Hour),
		PercentageSlots:     100,
		MaxWaitlistSessions: 3,
	})
	session := store.AddSession(domain.Session{
		EventID:           event.ID,
		Title:             "Opening Game",
		Slug:              "opening-game",
		ParticipantsLimit: 4,
	}, &domain.AgendaItem{
		StartTime: now.Add(2 * time.Hour),
		EndTime:   now.Add(4 * time.Hour),
		Confirmed: true,
	})

	server := NewServer(ServerDeps{
		Store:      store,
		Gateways:   membership.NewRegistryWith(map[string]membership.Gateway{"guild": mock}),
		Dispatcher: domain.NewEventDispatcher(),
	})

	return &apiFixture{store: store, mock: mock, server: server, event: event, session: session}
}

// router builds the test route table with the caller authenticated as userID.
// userID 0 simulates an unauthenticated request.
func (f *apiFixture) router(userID int64) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(
				middleware.SetUserContext(c.Request.Context(), userID, "test-user"),
			)
			c.Next()
		})
	}
	r.POST("/api/v1/sessions/:id/enrollment", f.server.PostEnrollmentBatch)
	r.GET("/api/v1/sessions/:id/availability", f.server.GetAvailability)
	return r
}

func (f *apiFixture) postEnrollment(userID int64, sessionPath string, choices map[int64]string) *httptest.ResponseRecorder {
	raw := make(map[string]string, len(choices))
	for uid, action := range choices {
		raw[strconv.FormatInt(uid, 10)] = action
	}
	body, _ := json.Marshal(map[string]any{"choices": raw})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionPath+"/enrollment", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	f.router(userID).ServeHTTP(w, req)
	return w
}

func TestPostEnrollmentBatch_Enrolls(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := f.postEnrollment(ada.ID, strconv.FormatInt(f.session.ID, 10), map[int64]string{ada.ID: "enroll"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		SessionID int64 `json:"session_id"`
		Outcomes  []struct {
			UserID int64  `json:"user_id"`
			Kind   string `json:"outcome"`
		} `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, f.session.ID, result.SessionID)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, ada.ID, result.Outcomes[0].UserID)
	assert.Equal(t, "enrolled", result.Outcomes[0].Kind)

	confirmed, err := f.store.ConfirmedCount(context.Background(), f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, confirmed)
}

func TestPostEnrollmentBatch_Unauthenticated(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := f.postEnrollment(0, strconv.FormatInt(f.session.ID, 10), map[int64]string{ada.ID: "enroll"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_FAILED")
}

func TestPostEnrollmentBatch_BadSessionID(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := f.postEnrollment(ada.ID, "abc", map[int64]string{ada.ID: "enroll"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST_FIELD")
}

func TestPostEnrollmentBatch_SessionNotFound(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := f.postEnrollment(ada.ID, "99999", map[int64]string{ada.ID: "enroll"})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")
}

func TestPostEnrollmentBatch_InvalidChoiceRejectsBatch(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := f.postEnrollment(ada.ID, strconv.FormatInt(f.session.ID, 10), map[int64]string{ada.ID: "join"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CHOICE")

	confirmed, err := f.store.ConfirmedCount(context.Background(), f.session.ID)
	require.NoError(t, err)
	assert.Zero(t, confirmed)
}

func TestPostEnrollmentBatch_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)
	ada := f.store.AddUser(domain.User{Name: "ada", Slug: "ada", IsActive: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+strconv.FormatInt(f.session.ID, 10)+"/enrollment",
		strings.NewReader(`{"choices": 12}`))
	req.Header.Set("Content-Type", "application/json")
	f.router(ada.ID).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
}

func TestPostEnrollmentBatch_CapacityExceeded(t *testing.T) {
	f := newAPIFixture(t)
	small := f.store.AddSession(domain.Session{
		EventID:           f.event.ID,
		Title:             "Tiny Table",
		Slug:              "tiny-table",
		ParticipantsLimit: 1,
	}, &domain.AgendaItem{
		StartTime: time.Now().Add(5 * time.Hour),
		EndTime:   time.Now().Add(6 * time.Hour),
		Confirmed: true,
	})
	manager := f.store.AddUser(domain.User{Name: "manager", Slug: "manager", IsActive: true})
	kid := f.store.AddUser(domain.User{Name: "kid", Slug: "kid", IsActive: true, ManagerID: &manager.ID})

	w := f.postEnrollment(manager.ID, strconv.FormatInt(small.ID, 10), map[int64]string{
		manager.ID: "enroll",
		kid.ID:     "enroll",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CAPACITY_EXCEEDED")
}
