package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ludamus.io/enrolld/ent"
	entnotification "ludamus.io/enrolld/ent/notification"
	"ludamus.io/enrolld/internal/api/middleware"
	apperrors "ludamus.io/enrolld/internal/pkg/errors"
	"ludamus.io/enrolld/internal/pkg/logger"
)

type notificationView struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	ReadAt       time.Time `json:"read_at,omitzero"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type paginationView struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "authentication required"))
		return
	}

	query := s.client.Notification.Query().
		Where(entnotification.RecipientID(userID))

	if c.Query("unread_only") == "true" {
		query = query.Where(entnotification.ReadEQ(false))
	}

	page, perPage := defaultPagination(queryInt(c, "page"), queryInt(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		_ = c.Error(err)
		return
	}

	items := make([]notificationView, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationToView(n))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"pagination": paginationView{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "authentication required"))
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			entnotification.RecipientID(userID),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "authentication required"))
		return
	}

	notificationID := c.Param("id")

	// Verify the notification exists and belongs to the caller.
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.RecipientID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.NotFound("NOTIFICATION_NOT_FOUND", "Notification not found"))
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		_ = c.Error(err)
		return
	}

	if !n.Read {
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			SetReadAt(time.Now()).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			_ = c.Error(err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == 0 {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "authentication required"))
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			entnotification.RecipientID(userID),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func notificationToView(n *ent.Notification) notificationView {
	view := notificationView{
		ID:           n.ID,
		Type:         n.Type.String(),
		Title:        n.Title,
		Message:      n.Message,
		Read:         n.Read,
		ResourceType: n.ResourceType,
		ResourceID:   n.ResourceID,
		CreatedAt:    n.CreatedAt,
	}
	if n.ReadAt != nil {
		view.ReadAt = *n.ReadAt
	}
	return view
}

// defaultPagination normalizes page/perPage query params (0 = not set).
func defaultPagination(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func queryInt(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}
