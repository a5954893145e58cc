package service

import (
	"testing"
	"time"

	"ludamus.io/enrolld/internal/domain"
)

var resolverNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

func window(startOffset, endOffset time.Duration) (time.Time, time.Time) {
	return resolverNow.Add(startOffset), resolverNow.Add(endOffset)
}

func cfg(id int64, pct int, startOffset, endOffset time.Duration) domain.EnrollmentConfig {
	start, end := window(startOffset, endOffset)
	return domain.EnrollmentConfig{
		ID:              id,
		PercentageSlots: pct,
		StartTime:       start,
		EndTime:         end,
	}
}

func TestActiveConfigs(t *testing.T) {
	t.Parallel()

	configs := []domain.EnrollmentConfig{
		cfg(1, 100, -time.Hour, time.Hour),
		cfg(2, 100, time.Hour, 2*time.Hour),   // not yet open
		cfg(3, 100, -2*time.Hour, -time.Hour), // already closed
		cfg(4, 100, -time.Hour, 0),            // closes exactly now, still active
	}

	active := ActiveConfigs(configs, resolverNow)
	if len(active) != 2 {
		t.Fatalf("ActiveConfigs returned %d configs, want 2", len(active))
	}
	if active[0].ID != 1 || active[1].ID != 4 {
		t.Fatalf("ActiveConfigs returned IDs %d,%d, want 1,4", active[0].ID, active[1].ID)
	}
}

func TestEligibleConfigs_LimitToEndTime(t *testing.T) {
	t.Parallel()

	limited := cfg(1, 100, -time.Hour, time.Hour)
	limited.LimitToEndTime = true
	open := cfg(2, 100, -time.Hour, time.Hour)

	earlySession := &domain.AgendaItem{StartTime: resolverNow.Add(30 * time.Minute)}
	lateSession := &domain.AgendaItem{StartTime: resolverNow.Add(2 * time.Hour)}
	boundary := &domain.AgendaItem{StartTime: limited.EndTime}

	tests := []struct {
		name    string
		agenda  *domain.AgendaItem
		wantIDs []int64
	}{
		{"session before window end", earlySession, []int64{1, 2}},
		{"session after window end", lateSession, []int64{2}},
		{"session starting exactly at window end", boundary, []int64{1, 2}},
		{"unscheduled session", nil, []int64{2}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := EligibleConfigs([]domain.EnrollmentConfig{limited, open}, tt.agenda, resolverNow)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d configs, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Fatalf("config[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestMostLiberal(t *testing.T) {
	t.Parallel()

	agenda := &domain.AgendaItem{StartTime: resolverNow.Add(time.Hour)}

	t.Run("highest percentage wins", func(t *testing.T) {
		t.Parallel()
		got := MostLiberal([]domain.EnrollmentConfig{
			cfg(1, 50, -time.Hour, 2*time.Hour),
			cfg(2, 80, -time.Hour, 2*time.Hour),
		}, agenda, resolverNow)
		if got == nil || got.ID != 2 {
			t.Fatalf("MostLiberal = %+v, want ID 2", got)
		}
	})

	t.Run("tie breaks by earliest start then lowest id", func(t *testing.T) {
		t.Parallel()
		early := cfg(5, 80, -2*time.Hour, 2*time.Hour)
		late := cfg(3, 80, -time.Hour, 2*time.Hour)
		got := MostLiberal([]domain.EnrollmentConfig{late, early}, agenda, resolverNow)
		if got == nil || got.ID != 5 {
			t.Fatalf("MostLiberal = %+v, want ID 5 (earliest start)", got)
		}

		twinA := cfg(7, 80, -time.Hour, 2*time.Hour)
		twinB := cfg(4, 80, -time.Hour, 2*time.Hour)
		got = MostLiberal([]domain.EnrollmentConfig{twinA, twinB}, agenda, resolverNow)
		if got == nil || got.ID != 4 {
			t.Fatalf("MostLiberal = %+v, want ID 4 (lowest id)", got)
		}
	})

	t.Run("no eligible config", func(t *testing.T) {
		t.Parallel()
		got := MostLiberal([]domain.EnrollmentConfig{
			cfg(1, 100, time.Hour, 2*time.Hour),
		}, agenda, resolverNow)
		if got != nil {
			t.Fatalf("MostLiberal = %+v, want nil", got)
		}
	})
}

func TestEffectiveLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		pct   int
		want  int
	}{
		{"half", 10, 50, 5},
		{"floor rounds down", 10, 55, 5},
		{"full", 10, 100, 10},
		{"zero percentage", 10, 0, 0},
		{"small limit floors to zero", 1, 50, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session := domain.Session{ParticipantsLimit: tt.limit}
			config := domain.EnrollmentConfig{PercentageSlots: tt.pct}
			if got := EffectiveLimit(session, config); got != tt.want {
				t.Fatalf("EffectiveLimit(%d, %d%%) = %d, want %d", tt.limit, tt.pct, got, tt.want)
			}
		})
	}
}
