// Package service holds pure decision logic. Nothing here touches the
// database or the network; callers load state and apply the results.
package service

import (
	"sort"
	"time"

	"ludamus.io/enrolld/internal/domain"
)

// ActiveConfigs filters an event's enrollment configs to those whose
// validity window contains the given instant.
func ActiveConfigs(configs []domain.EnrollmentConfig, at time.Time) []domain.EnrollmentConfig {
	active := make([]domain.EnrollmentConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Active(at) {
			active = append(active, cfg)
		}
	}
	return active
}

// EligibleConfigs filters active configs by the limit_to_end_time rule
// against the session's agenda start. An unscheduled session (nil agenda)
// cannot satisfy time-limited configs, but unrestricted ones still apply.
func EligibleConfigs(configs []domain.EnrollmentConfig, agenda *domain.AgendaItem, at time.Time) []domain.EnrollmentConfig {
	eligible := make([]domain.EnrollmentConfig, 0, len(configs))
	for _, cfg := range ActiveConfigs(configs, at) {
		if cfg.LimitToEndTime {
			if agenda == nil || agenda.StartTime.After(cfg.EndTime) {
				continue
			}
		}
		eligible = append(eligible, cfg)
	}
	return eligible
}

// MostLiberal returns the eligible config granting the largest capacity
// fraction, or nil when no config is eligible (enrollment unavailable).
// Ties break by earliest start_time, then lowest ID, for determinism.
func MostLiberal(configs []domain.EnrollmentConfig, agenda *domain.AgendaItem, at time.Time) *domain.EnrollmentConfig {
	eligible := EligibleConfigs(configs, agenda, at)
	if len(eligible) == 0 {
		return nil
	}
	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.PercentageSlots != b.PercentageSlots {
			return a.PercentageSlots > b.PercentageSlots
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})
	best := eligible[0]
	return &best
}

// EffectiveLimit computes a session's usable confirmed-seat count under a
// config: floor(participants_limit × percentage_slots / 100).
func EffectiveLimit(session domain.Session, cfg domain.EnrollmentConfig) int {
	return session.ParticipantsLimit * cfg.PercentageSlots / 100
}
