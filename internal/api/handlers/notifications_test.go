package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/ent"
	"ludamus.io/enrolld/ent/notification"
	"ludamus.io/enrolld/internal/api/middleware"
	"ludamus.io/enrolld/internal/testutil"
)

// notificationFixture needs a real database because the inbox handlers
// query the ent client directly.
func notificationFixture(t *testing.T) (*ent.Client, *gin.Engine, int64) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, "handlers_notifications")

	ctx := t.Context()
	user := client.User.Create().
		SetName("ada").
		SetSlug("ada").
		SetEmail("ada@example.com").
		SetIsActive(true).
		SaveX(ctx)

	server := NewServer(ServerDeps{EntClient: client})

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), user.ID, user.Name),
		)
		c.Next()
	})
	r.GET("/api/v1/notifications", server.ListNotifications)
	r.GET("/api/v1/notifications/unread-count", server.GetUnreadCount)
	r.POST("/api/v1/notifications/:id/read", server.MarkNotificationRead)
	r.POST("/api/v1/notifications/read-all", server.MarkAllNotificationsRead)

	return client, r, user.ID
}

func seedNotification(t *testing.T, client *ent.Client, recipientID int64, title string) string {
	t.Helper()
	n := client.Notification.Create().
		SetID(uuid.NewString()).
		SetRecipientID(recipientID).
		SetType(notification.TypeENROLLMENT_CONFIRMED).
		SetTitle(title).
		SetMessage("message for " + title).
		SetResourceType("session").
		SetResourceID("1").
		SetRead(false).
		SaveX(t.Context())
	return n.ID
}

func TestListNotifications(t *testing.T) {
	client, r, userID := notificationFixture(t)
	seedNotification(t, client, userID, "first")
	seedNotification(t, client, userID, "second")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Items      []notificationView `json:"items"`
		Pagination paginationView     `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 2)
	assert.Equal(t, 2, body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Page)
}

func TestGetUnreadCount(t *testing.T) {
	client, r, userID := notificationFixture(t)
	id := seedNotification(t, client, userID, "first")
	seedNotification(t, client, userID, "second")
	client.Notification.UpdateOneID(id).SetRead(true).SaveX(t.Context())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/unread-count", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 1}`, w.Body.String())
}

func TestMarkNotificationRead(t *testing.T) {
	client, r, userID := notificationFixture(t)
	id := seedNotification(t, client, userID, "first")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+id+"/read", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	n := client.Notification.GetX(t.Context(), id)
	assert.True(t, n.Read)
	require.NotNil(t, n.ReadAt)
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	_, r, _ := notificationFixture(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+uuid.NewString()+"/read", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOTIFICATION_NOT_FOUND")
}

func TestMarkAllNotificationsRead(t *testing.T) {
	client, r, userID := notificationFixture(t)
	seedNotification(t, client, userID, "first")
	seedNotification(t, client, userID, "second")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	unread := client.Notification.Query().
		Where(notification.RecipientID(userID), notification.ReadEQ(false)).
		CountX(t.Context())
	assert.Zero(t, unread)
}
