package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ludamus.io/enrolld/internal/api/middleware"
	"ludamus.io/enrolld/internal/domain"
	apperrors "ludamus.io/enrolld/internal/pkg/errors"
	"ludamus.io/enrolld/internal/repository"
	"ludamus.io/enrolld/internal/service"
)

// availabilityResponse describes how full a session is and whether the
// caller could still get a seat under the currently open window.
type availabilityResponse struct {
	SessionID         int64  `json:"session_id"`
	EnrollmentOpen    bool   `json:"enrollment_open"`
	ParticipantsLimit int    `json:"participants_limit"`
	EffectiveLimit    int    `json:"effective_limit"`
	Confirmed         int    `json:"confirmed"`
	Available         int    `json:"available"`
	WaitlistEnabled   bool   `json:"waitlist_enabled"`
	Waiting           int    `json:"waiting"`
	ConfigName        string `json:"config_name,omitempty"`
	BannerText        string `json:"banner_text,omitempty"`

	// Slots carries the caller's aggregate budget when the open window is
	// restricted to configured users. Absent otherwise.
	Slots *slotsInfo `json:"slots,omitempty"`
}

type slotsInfo struct {
	AllowedSlots int  `json:"allowed_slots"`
	UsedSlots    int  `json:"used_slots"`
	HasUserGrant bool `json:"has_user_grant"`
	HasDomGrant  bool `json:"has_domain_grant"`
}

// GetAvailability handles GET /sessions/:id/availability.
func (s *Server) GetAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := pathID(c, "id")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid session id"))
		return
	}

	store, resolver, _ := s.requestScope()

	session, err := store.SessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = c.Error(apperrors.ErrSessionNotFound(sessionID))
		} else {
			_ = c.Error(err)
		}
		return
	}

	confirmed, err := store.ConfirmedCount(ctx, sessionID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	waiting, err := store.WaitingCount(ctx, sessionID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := availabilityResponse{
		SessionID:         sessionID,
		ParticipantsLimit: session.ParticipantsLimit,
		Confirmed:         confirmed,
		Waiting:           waiting,
	}

	agenda, err := store.AgendaItemBySession(ctx, sessionID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	configs, err := store.ConfigsByEvent(ctx, session.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cfg := service.MostLiberal(configs, agenda, time.Now())
	if cfg == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.EnrollmentOpen = true
	resp.EffectiveLimit = service.EffectiveLimit(session, *cfg)
	resp.WaitlistEnabled = cfg.WaitlistEnabled()
	resp.ConfigName = cfg.Name
	resp.BannerText = cfg.BannerText
	if resp.EffectiveLimit > confirmed {
		resp.Available = resp.EffectiveLimit - confirmed
	}

	if cfg.RestrictToConfiguredUsers {
		if info, err := s.callerSlots(c, store, resolver, session.EventID); err == nil {
			resp.Slots = info
		} else {
			_ = c.Error(err)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// callerSlots aggregates the authenticated caller's slot budget for the
// event and how much of it their circle has already used.
func (s *Server) callerSlots(c *gin.Context, store repository.Store, resolver slotResolver, eventID int64) (*slotsInfo, error) {
	ctx := c.Request.Context()
	actorID := middleware.GetUserID(ctx)
	if actorID == 0 {
		return nil, nil
	}

	actor, err := store.UserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.HasEmail() {
		return &slotsInfo{}, nil
	}

	aggregate, err := resolver.AggregateForEvent(ctx, eventID, actor.Email)
	if err != nil {
		return nil, err
	}
	if aggregate == nil {
		return &slotsInfo{}, nil
	}

	connected, err := store.ConnectedUsers(ctx, actorID)
	if err != nil {
		return nil, err
	}
	circle := make([]int64, 0, len(connected)+1)
	circle = append(circle, actorID)
	for _, u := range connected {
		circle = append(circle, u.ID)
	}
	used, err := store.DistinctEnrolledPeople(ctx, eventID, circle)
	if err != nil {
		return nil, err
	}

	return &slotsInfo{
		AllowedSlots: aggregate.AllowedSlots,
		UsedSlots:    used,
		HasUserGrant: aggregate.HasUserGrant,
		HasDomGrant:  aggregate.HasDomGrant,
	}, nil
}

// slotResolver is the slice of the resolver the availability read needs.
type slotResolver interface {
	AggregateForEvent(ctx context.Context, eventID int64, email string) (*domain.VirtualEnrollmentConfig, error)
}
