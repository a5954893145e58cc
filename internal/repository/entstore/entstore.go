// Package entstore implements the repository interfaces on the ent client.
package entstore

import (
	"context"
	"fmt"
	"time"

	"ludamus.io/enrolld/ent"
	"ludamus.io/enrolld/ent/agendaitem"
	"ludamus.io/enrolld/ent/domainenrollmentconfig"
	"ludamus.io/enrolld/ent/enrollmentconfig"
	"ludamus.io/enrolld/ent/session"
	"ludamus.io/enrolld/ent/sessionparticipation"
	"ludamus.io/enrolld/ent/user"
	"ludamus.io/enrolld/ent/userenrollmentconfig"
	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/repository"
)

// Store is the production repository.Store backed by PostgreSQL via ent.
type Store struct {
	client *ent.Client
}

// New creates a Store.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

func (s *Store) EventByID(ctx context.Context, id int64) (domain.Event, error) {
	row, err := s.client.Event.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.Event{}, repository.ErrNotFound
		}
		return domain.Event{}, fmt.Errorf("load event %d: %w", id, err)
	}
	return domain.Event{
		ID:        row.ID,
		SphereID:  row.SphereID,
		Name:      row.Name,
		Slug:      row.Slug,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
	}, nil
}

func (s *Store) SessionByID(ctx context.Context, id int64) (domain.Session, error) {
	row, err := s.client.Session.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.Session{}, repository.ErrNotFound
		}
		return domain.Session{}, fmt.Errorf("load session %d: %w", id, err)
	}
	return toDomainSession(row), nil
}

func (s *Store) AgendaItemBySession(ctx context.Context, sessionID int64) (*domain.AgendaItem, error) {
	row, err := s.client.AgendaItem.Query().
		Where(agendaitem.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load agenda item for session %d: %w", sessionID, err)
	}
	item := toDomainAgendaItem(row)
	return &item, nil
}

func (s *Store) ConfigsByEvent(ctx context.Context, eventID int64) ([]domain.EnrollmentConfig, error) {
	rows, err := s.client.EnrollmentConfig.Query().
		Where(enrollmentconfig.EventID(eventID)).
		Order(ent.Asc(enrollmentconfig.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load enrollment configs for event %d: %w", eventID, err)
	}
	out := make([]domain.EnrollmentConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.EnrollmentConfig{
			ID:                        row.ID,
			EventID:                   row.EventID,
			Name:                      row.Name,
			StartTime:                 row.StartTime,
			EndTime:                   row.EndTime,
			PercentageSlots:           row.PercentageSlots,
			LimitToEndTime:            row.LimitToEndTime,
			RestrictToConfiguredUsers: row.RestrictToConfiguredUsers,
			MaxWaitlistSessions:       row.MaxWaitlistSessions,
			BannerText:                row.BannerText,
			APIProvider:               row.APIProvider,
		})
	}
	return out, nil
}

func (s *Store) DomainConfigsByConfig(ctx context.Context, configID int64) ([]domain.DomainEnrollmentConfig, error) {
	rows, err := s.client.DomainEnrollmentConfig.Query().
		Where(domainenrollmentconfig.ConfigID(configID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load domain configs for config %d: %w", configID, err)
	}
	out := make([]domain.DomainEnrollmentConfig, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DomainEnrollmentConfig{
			ID:                  row.ID,
			ConfigID:            row.ConfigID,
			Domain:              row.Domain,
			AllowedSlotsPerUser: row.AllowedSlotsPerUser,
		})
	}
	return out, nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.User{}, repository.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("load user %d: %w", id, err)
	}
	return toDomainUser(row), nil
}

func (s *Store) ConnectedUsers(ctx context.Context, managerID int64) ([]domain.User, error) {
	rows, err := s.client.User.Query().
		Where(user.ManagerID(managerID)).
		Order(ent.Asc(user.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load connected users of %d: %w", managerID, err)
	}
	out := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainUser(row))
	}
	return out, nil
}

func (s *Store) UserConfig(ctx context.Context, configID int64, email string) (*domain.UserEnrollmentConfig, error) {
	row, err := s.client.UserEnrollmentConfig.Query().
		Where(
			userenrollmentconfig.ConfigID(configID),
			userenrollmentconfig.UserEmail(email),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user config for config %d: %w", configID, err)
	}
	cfg := toDomainUserConfig(row)
	return &cfg, nil
}

// UpsertUserConfig inserts or replaces the per-email grant row. Concurrent
// fetchers racing on the same (config, email) pair converge on one row via
// the unique index.
func (s *Store) UpsertUserConfig(ctx context.Context, cfg domain.UserEnrollmentConfig) (domain.UserEnrollmentConfig, error) {
	id, err := s.client.UserEnrollmentConfig.Create().
		SetConfigID(cfg.ConfigID).
		SetUserEmail(cfg.UserEmail).
		SetAllowedSlots(cfg.AllowedSlots).
		SetFetchedFromAPI(cfg.FetchedFromAPI).
		SetNillableLastCheck(cfg.LastCheck).
		OnConflictColumns(
			userenrollmentconfig.FieldConfigID,
			userenrollmentconfig.FieldUserEmail,
		).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return domain.UserEnrollmentConfig{}, fmt.Errorf("upsert user config for config %d: %w", cfg.ConfigID, err)
	}
	row, err := s.client.UserEnrollmentConfig.Get(ctx, id)
	if err != nil {
		return domain.UserEnrollmentConfig{}, fmt.Errorf("reload user config %d: %w", id, err)
	}
	return toDomainUserConfig(row), nil
}

func (s *Store) TouchUserConfigCheck(ctx context.Context, id int64, at time.Time) error {
	err := s.client.UserEnrollmentConfig.UpdateOneID(id).
		SetLastCheck(at).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("touch user config %d: %w", id, err)
	}
	return nil
}

func (s *Store) DistinctEnrolledPeople(ctx context.Context, eventID int64, userIDs []int64) (int, error) {
	return distinctEnrolledPeople(ctx, s.client.SessionParticipation, eventID, userIDs)
}

func (s *Store) ConfirmedAgendaForUser(ctx context.Context, eventID, userID int64) ([]domain.AgendaItem, error) {
	return confirmedAgendaForUser(ctx, s.client.AgendaItem, eventID, userID)
}

func (s *Store) WaitingSessionCount(ctx context.Context, eventID, userID int64) (int, error) {
	n, err := s.client.SessionParticipation.Query().
		Where(
			sessionparticipation.UserID(userID),
			sessionparticipation.Status(domain.StatusWaiting.String()),
			sessionparticipation.HasSessionWith(session.EventID(eventID)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count waiting sessions of user %d: %w", userID, err)
	}
	return n, nil
}

func (s *Store) ConfirmedCount(ctx context.Context, sessionID int64) (int, error) {
	return participationCount(ctx, s.client.SessionParticipation, sessionID, domain.StatusConfirmed)
}

func (s *Store) WaitingCount(ctx context.Context, sessionID int64) (int, error) {
	return participationCount(ctx, s.client.SessionParticipation, sessionID, domain.StatusWaiting)
}

func participationCount(ctx context.Context, sp *ent.SessionParticipationClient, sessionID int64, status domain.ParticipationStatus) (int, error) {
	n, err := sp.Query().
		Where(
			sessionparticipation.SessionID(sessionID),
			sessionparticipation.Status(status.String()),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s for session %d: %w", status, sessionID, err)
	}
	return n, nil
}

// InTx runs fn inside one database transaction. The callback must lock the
// session row before reading counts it intends to act on.
func (s *Store) InTx(ctx context.Context, fn func(tx repository.TxStore) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(&txStore{tx: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// txStore implements repository.TxStore on an open ent transaction.
type txStore struct {
	tx *ent.Tx
}

func (t *txStore) LockSession(ctx context.Context, sessionID int64) (domain.Session, error) {
	row, err := t.tx.Session.Query().
		Where(session.ID(sessionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.Session{}, repository.ErrNotFound
		}
		return domain.Session{}, fmt.Errorf("lock session %d: %w", sessionID, err)
	}
	return toDomainSession(row), nil
}

func (t *txStore) ConfirmedCount(ctx context.Context, sessionID int64) (int, error) {
	n, err := t.tx.SessionParticipation.Query().
		Where(
			sessionparticipation.SessionID(sessionID),
			sessionparticipation.Status(domain.StatusConfirmed.String()),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count confirmed for session %d: %w", sessionID, err)
	}
	return n, nil
}

func (t *txStore) ParticipationFor(ctx context.Context, sessionID, userID int64) (*domain.SessionParticipation, error) {
	row, err := t.tx.SessionParticipation.Query().
		Where(
			sessionparticipation.SessionID(sessionID),
			sessionparticipation.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load participation for session %d user %d: %w", sessionID, userID, err)
	}
	p := toDomainParticipation(row)
	return &p, nil
}

func (t *txStore) WaitingParticipations(ctx context.Context, sessionID int64) ([]domain.SessionParticipation, error) {
	rows, err := t.tx.SessionParticipation.Query().
		Where(
			sessionparticipation.SessionID(sessionID),
			sessionparticipation.Status(domain.StatusWaiting.String()),
		).
		Order(
			ent.Asc(sessionparticipation.FieldCreatedAt),
			ent.Asc(sessionparticipation.FieldID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load waitlist for session %d: %w", sessionID, err)
	}
	out := make([]domain.SessionParticipation, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainParticipation(row))
	}
	return out, nil
}

func (t *txStore) CreateParticipation(ctx context.Context, p domain.SessionParticipation) (domain.SessionParticipation, error) {
	row, err := t.tx.SessionParticipation.Create().
		SetSessionID(p.SessionID).
		SetUserID(p.UserID).
		SetEnrolledByID(p.EnrolledByID).
		SetStatus(p.Status.String()).
		Save(ctx)
	if err != nil {
		return domain.SessionParticipation{}, fmt.Errorf("create participation for session %d user %d: %w", p.SessionID, p.UserID, err)
	}
	return toDomainParticipation(row), nil
}

func (t *txStore) UpdateParticipationStatus(ctx context.Context, id int64, status domain.ParticipationStatus) error {
	err := t.tx.SessionParticipation.UpdateOneID(id).
		SetStatus(status.String()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update participation %d: %w", id, err)
	}
	return nil
}

func (t *txStore) DeleteParticipation(ctx context.Context, id int64) error {
	if err := t.tx.SessionParticipation.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete participation %d: %w", id, err)
	}
	return nil
}

func (t *txStore) ConfirmedAgendaForUser(ctx context.Context, eventID, userID int64) ([]domain.AgendaItem, error) {
	return confirmedAgendaForUser(ctx, t.tx.AgendaItem, eventID, userID)
}

func (t *txStore) DistinctEnrolledPeople(ctx context.Context, eventID int64, userIDs []int64) (int, error) {
	return distinctEnrolledPeople(ctx, t.tx.SessionParticipation, eventID, userIDs)
}

// confirmedAgendaForUser loads the schedule entries of every session in the
// event where the user holds a confirmed seat.
func confirmedAgendaForUser(ctx context.Context, client *ent.AgendaItemClient, eventID, userID int64) ([]domain.AgendaItem, error) {
	rows, err := client.Query().
		Where(
			agendaitem.HasSessionWith(
				session.EventID(eventID),
				session.HasParticipationsWith(
					sessionparticipation.UserID(userID),
					sessionparticipation.Status(domain.StatusConfirmed.String()),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load confirmed agenda of user %d: %w", userID, err)
	}
	out := make([]domain.AgendaItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainAgendaItem(row))
	}
	return out, nil
}

// distinctEnrolledPeople counts how many of the given users hold any
// confirmed or waiting participation in the event.
func distinctEnrolledPeople(ctx context.Context, client *ent.SessionParticipationClient, eventID int64, userIDs []int64) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	rows, err := client.Query().
		Where(
			sessionparticipation.UserIDIn(userIDs...),
			sessionparticipation.StatusIn(
				domain.StatusConfirmed.String(),
				domain.StatusWaiting.String(),
			),
			sessionparticipation.HasSessionWith(session.EventID(eventID)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("count enrolled people for event %d: %w", eventID, err)
	}
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		seen[row.UserID] = struct{}{}
	}
	return len(seen), nil
}

func toDomainSession(row *ent.Session) domain.Session {
	return domain.Session{
		ID:                row.ID,
		EventID:           row.EventID,
		Title:             row.Title,
		Slug:              row.Slug,
		ParticipantsLimit: row.ParticipantsLimit,
		MinAge:            row.MinAge,
		HostID:            row.HostID,
	}
}

func toDomainAgendaItem(row *ent.AgendaItem) domain.AgendaItem {
	return domain.AgendaItem{
		ID:        row.ID,
		SessionID: row.SessionID,
		SpaceID:   row.SpaceID,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Confirmed: row.SessionConfirmed,
	}
}

func toDomainUser(row *ent.User) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Email:     row.Email,
		IsActive:  row.IsActive,
		BirthDate: row.BirthDate,
		ManagerID: row.ManagerID,
	}
}

func toDomainUserConfig(row *ent.UserEnrollmentConfig) domain.UserEnrollmentConfig {
	return domain.UserEnrollmentConfig{
		ID:             row.ID,
		ConfigID:       row.ConfigID,
		UserEmail:      row.UserEmail,
		AllowedSlots:   row.AllowedSlots,
		FetchedFromAPI: row.FetchedFromAPI,
		LastCheck:      row.LastCheck,
	}
}

func toDomainParticipation(row *ent.SessionParticipation) domain.SessionParticipation {
	return domain.SessionParticipation{
		ID:           row.ID,
		SessionID:    row.SessionID,
		UserID:       row.UserID,
		Status:       domain.ParseParticipationStatus(row.Status),
		EnrolledByID: row.EnrolledByID,
		CreatedAt:    row.CreatedAt,
	}
}
