package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ludamus.io/enrolld/internal/api/middleware"
	apperrors "ludamus.io/enrolld/internal/pkg/errors"
	"ludamus.io/enrolld/internal/usecase"
)

// enrollmentRequest is the batch body. Keys are user IDs of the acting user
// or their connected users; values are enroll|waitlist|cancel or "" to skip.
type enrollmentRequest struct {
	Choices map[string]string `json:"choices" binding:"required"`
}

// PostEnrollmentBatch handles POST /sessions/:id/enrollment.
func (s *Server) PostEnrollmentBatch(c *gin.Context) {
	sessionID, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid session id"))
		return
	}

	actorID := middleware.GetUserID(c.Request.Context())
	if actorID == 0 {
		_ = c.Error(apperrors.Unauthorized(apperrors.CodeAuthFailed, "authentication required"))
		return
	}

	var req enrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed, "invalid request body", http.StatusBadRequest))
		return
	}

	choices := make(map[int64]string, len(req.Choices))
	for rawID, action := range req.Choices {
		uid, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || uid <= 0 {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid user id in choices"))
			return
		}
		choices[uid] = action
	}

	_, _, engine := s.requestScope()
	result, err := engine.ProcessBatch(c.Request.Context(), usecase.BatchInput{
		SessionID: sessionID,
		ActorID:   actorID,
		Choices:   choices,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
