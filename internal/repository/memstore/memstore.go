// Package memstore is an in-memory repository.Store used by engine tests
// and local experiments. One mutex serializes everything, which also makes
// InTx an honest approximation of the serializable transaction the real
// store provides.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"ludamus.io/enrolld/internal/domain"
	"ludamus.io/enrolld/internal/repository"
)

// Store implements repository.Store and repository.TxStore over maps.
type Store struct {
	mu sync.Mutex

	events         map[int64]domain.Event
	sessions       map[int64]domain.Session
	agenda         map[int64]domain.AgendaItem // keyed by session ID
	configs        map[int64][]domain.EnrollmentConfig
	domainCfgs     map[int64][]domain.DomainEnrollmentConfig
	users          map[int64]domain.User
	userConfigs    map[int64]domain.UserEnrollmentConfig
	participations map[int64]domain.SessionParticipation

	nextID int64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		events:         make(map[int64]domain.Event),
		sessions:       make(map[int64]domain.Session),
		agenda:         make(map[int64]domain.AgendaItem),
		configs:        make(map[int64][]domain.EnrollmentConfig),
		domainCfgs:     make(map[int64][]domain.DomainEnrollmentConfig),
		users:          make(map[int64]domain.User),
		userConfigs:    make(map[int64]domain.UserEnrollmentConfig),
		participations: make(map[int64]domain.SessionParticipation),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// Seed helpers. All assign IDs when the given one is zero.

// AddEvent stores an event.
func (s *Store) AddEvent(ev domain.Event) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.ID == 0 {
		ev.ID = s.id()
	}
	s.events[ev.ID] = ev
	return ev
}

// AddSession stores a session, optionally scheduling it.
func (s *Store) AddSession(sess domain.Session, item *domain.AgendaItem) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.ID == 0 {
		sess.ID = s.id()
	}
	s.sessions[sess.ID] = sess
	if item != nil {
		scheduled := *item
		if scheduled.ID == 0 {
			scheduled.ID = s.id()
		}
		scheduled.SessionID = sess.ID
		s.agenda[sess.ID] = scheduled
	}
	return sess
}

// SetSessionHost assigns a host after the session was created.
func (s *Store) SetSessionHost(sessionID, hostID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	sess.HostID = &hostID
	s.sessions[sessionID] = sess
}

// AddConfig attaches an enrollment config to its event.
func (s *Store) AddConfig(cfg domain.EnrollmentConfig) domain.EnrollmentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.ID == 0 {
		cfg.ID = s.id()
	}
	s.configs[cfg.EventID] = append(s.configs[cfg.EventID], cfg)
	return cfg
}

// AddDomainConfig attaches a domain grant to its config.
func (s *Store) AddDomainConfig(cfg domain.DomainEnrollmentConfig) domain.DomainEnrollmentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.ID == 0 {
		cfg.ID = s.id()
	}
	s.domainCfgs[cfg.ConfigID] = append(s.domainCfgs[cfg.ConfigID], cfg)
	return cfg
}

// AddUser stores a user.
func (s *Store) AddUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.id()
	}
	s.users[u.ID] = u
	return u
}

// SeedUserConfig stores a per-email grant directly.
func (s *Store) SeedUserConfig(cfg domain.UserEnrollmentConfig) domain.UserEnrollmentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.ID == 0 {
		cfg.ID = s.id()
	}
	s.userConfigs[cfg.ID] = cfg
	return cfg
}

// AddParticipation stores a participation row directly.
func (s *Store) AddParticipation(p domain.SessionParticipation) domain.SessionParticipation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.id()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.participations[p.ID] = p
	return p
}

// Participations returns a snapshot of all rows, for assertions.
func (s *Store) Participations() []domain.SessionParticipation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SessionParticipation, 0, len(s.participations))
	for _, p := range s.participations {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UserConfigFor returns the stored grant for (config, email), for assertions.
func (s *Store) UserConfigFor(configID int64, email string) *domain.UserEnrollmentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserConfig(configID, email)
}

func (s *Store) findUserConfig(configID int64, email string) *domain.UserEnrollmentConfig {
	for _, cfg := range s.userConfigs {
		if cfg.ConfigID == configID && cfg.UserEmail == email {
			c := cfg
			return &c
		}
	}
	return nil
}

// Store interface.

// EventByID implements repository.Store.
func (s *Store) EventByID(_ context.Context, id int64) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.events[id]
	if !ok {
		return domain.Event{}, repository.ErrNotFound
	}
	return ev, nil
}

// SessionByID implements repository.Store.
func (s *Store) SessionByID(_ context.Context, id int64) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, repository.ErrNotFound
	}
	return sess, nil
}

// AgendaItemBySession implements repository.Store.
func (s *Store) AgendaItemBySession(_ context.Context, sessionID int64) (*domain.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.agenda[sessionID]
	if !ok {
		return nil, nil
	}
	out := item
	return &out, nil
}

// ConfigsByEvent implements repository.Store.
func (s *Store) ConfigsByEvent(_ context.Context, eventID int64) ([]domain.EnrollmentConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EnrollmentConfig, len(s.configs[eventID]))
	copy(out, s.configs[eventID])
	return out, nil
}

// DomainConfigsByConfig implements repository.Store.
func (s *Store) DomainConfigsByConfig(_ context.Context, configID int64) ([]domain.DomainEnrollmentConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DomainEnrollmentConfig, len(s.domainCfgs[configID]))
	copy(out, s.domainCfgs[configID])
	return out, nil
}

// UserByID implements repository.Store.
func (s *Store) UserByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, repository.ErrNotFound
	}
	return u, nil
}

// ConnectedUsers implements repository.Store.
func (s *Store) ConnectedUsers(_ context.Context, managerID int64) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.users {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UserConfig implements repository.Store.
func (s *Store) UserConfig(_ context.Context, configID int64, email string) (*domain.UserEnrollmentConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findUserConfig(configID, email), nil
}

// UpsertUserConfig implements repository.Store.
func (s *Store) UpsertUserConfig(_ context.Context, cfg domain.UserEnrollmentConfig) (domain.UserEnrollmentConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.findUserConfig(cfg.ConfigID, cfg.UserEmail); existing != nil {
		cfg.ID = existing.ID
	} else if cfg.ID == 0 {
		cfg.ID = s.id()
	}
	s.userConfigs[cfg.ID] = cfg
	return cfg, nil
}

// TouchUserConfigCheck implements repository.Store.
func (s *Store) TouchUserConfigCheck(_ context.Context, id int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.userConfigs[id]
	if !ok {
		return repository.ErrNotFound
	}
	checked := at
	cfg.LastCheck = &checked
	s.userConfigs[id] = cfg
	return nil
}

// DistinctEnrolledPeople implements repository.Store.
func (s *Store) DistinctEnrolledPeople(_ context.Context, eventID int64, userIDs []int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.distinctEnrolledLocked(eventID, userIDs), nil
}

func (s *Store) distinctEnrolledLocked(eventID int64, userIDs []int64) int {
	wanted := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	seen := make(map[int64]struct{})
	for _, p := range s.participations {
		if _, ok := wanted[p.UserID]; !ok {
			continue
		}
		sess, ok := s.sessions[p.SessionID]
		if !ok || sess.EventID != eventID {
			continue
		}
		if p.Status.IsConfirmed() || p.Status.IsWaiting() {
			seen[p.UserID] = struct{}{}
		}
	}
	return len(seen)
}

// ConfirmedAgendaForUser implements repository.Store.
func (s *Store) ConfirmedAgendaForUser(_ context.Context, eventID, userID int64) ([]domain.AgendaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmedAgendaLocked(eventID, userID), nil
}

func (s *Store) confirmedAgendaLocked(eventID, userID int64) []domain.AgendaItem {
	var out []domain.AgendaItem
	for _, p := range s.participations {
		if p.UserID != userID || !p.Status.IsConfirmed() {
			continue
		}
		sess, ok := s.sessions[p.SessionID]
		if !ok || sess.EventID != eventID {
			continue
		}
		if item, ok := s.agenda[p.SessionID]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SessionID < out[j].SessionID })
	return out
}

// WaitingSessionCount implements repository.Store.
func (s *Store) WaitingSessionCount(_ context.Context, eventID, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, p := range s.participations {
		if p.UserID != userID || !p.Status.IsWaiting() {
			continue
		}
		if sess, ok := s.sessions[p.SessionID]; ok && sess.EventID == eventID {
			count++
		}
	}
	return count, nil
}

// ConfirmedCount implements repository.Store.
func (s *Store) ConfirmedCount(_ context.Context, sessionID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countByStatusLocked(sessionID, func(st domain.ParticipationStatus) bool { return st.IsConfirmed() }), nil
}

// WaitingCount implements repository.Store.
func (s *Store) WaitingCount(_ context.Context, sessionID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countByStatusLocked(sessionID, func(st domain.ParticipationStatus) bool { return st.IsWaiting() }), nil
}

func (s *Store) countByStatusLocked(sessionID int64, match func(domain.ParticipationStatus) bool) int {
	count := 0
	for _, p := range s.participations {
		if p.SessionID == sessionID && match(p.Status) {
			count++
		}
	}
	return count
}

// InTx implements repository.Store. The store's single mutex already
// serializes access, so fn simply runs against the same store.
func (s *Store) InTx(_ context.Context, fn func(tx repository.TxStore) error) error {
	return fn(&txStore{s: s})
}

// txStore implements repository.TxStore over the parent store.
type txStore struct {
	s *Store
}

// LockSession implements repository.TxStore.
func (t *txStore) LockSession(ctx context.Context, sessionID int64) (domain.Session, error) {
	return t.s.SessionByID(ctx, sessionID)
}

// ConfirmedCount implements repository.TxStore.
func (t *txStore) ConfirmedCount(_ context.Context, sessionID int64) (int, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	count := 0
	for _, p := range t.s.participations {
		if p.SessionID == sessionID && p.Status.IsConfirmed() {
			count++
		}
	}
	return count, nil
}

// ParticipationFor implements repository.TxStore.
func (t *txStore) ParticipationFor(_ context.Context, sessionID, userID int64) (*domain.SessionParticipation, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, p := range t.s.participations {
		if p.SessionID == sessionID && p.UserID == userID {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

// WaitingParticipations implements repository.TxStore, ordered by creation
// time then ID.
func (t *txStore) WaitingParticipations(_ context.Context, sessionID int64) ([]domain.SessionParticipation, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	var out []domain.SessionParticipation
	for _, p := range t.s.participations {
		if p.SessionID == sessionID && p.Status.IsWaiting() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateParticipation implements repository.TxStore.
func (t *txStore) CreateParticipation(_ context.Context, p domain.SessionParticipation) (domain.SessionParticipation, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if p.ID == 0 {
		p.ID = t.s.id()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	t.s.participations[p.ID] = p
	return p, nil
}

// UpdateParticipationStatus implements repository.TxStore.
func (t *txStore) UpdateParticipationStatus(_ context.Context, id int64, status domain.ParticipationStatus) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	p, ok := t.s.participations[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Status = status
	t.s.participations[id] = p
	return nil
}

// DeleteParticipation implements repository.TxStore.
func (t *txStore) DeleteParticipation(_ context.Context, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.participations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(t.s.participations, id)
	return nil
}

// ConfirmedAgendaForUser implements repository.TxStore.
func (t *txStore) ConfirmedAgendaForUser(_ context.Context, eventID, userID int64) ([]domain.AgendaItem, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.confirmedAgendaLocked(eventID, userID), nil
}

// DistinctEnrolledPeople implements repository.TxStore.
func (t *txStore) DistinctEnrolledPeople(_ context.Context, eventID int64, userIDs []int64) (int, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.s.distinctEnrolledLocked(eventID, userIDs), nil
}
