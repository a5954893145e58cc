package service

import (
	"testing"
	"time"

	"ludamus.io/enrolld/internal/domain"
)

func TestFindTimeConflict(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 4, 11, 10, 0, 0, 0, time.UTC)
	item := func(sessionID int64, startHour, endHour int) domain.AgendaItem {
		return domain.AgendaItem{
			SessionID: sessionID,
			StartTime: base.Add(time.Duration(startHour) * time.Hour),
			EndTime:   base.Add(time.Duration(endHour) * time.Hour),
		}
	}

	target := item(1, 2, 4)

	tests := []struct {
		name   string
		busy   []domain.AgendaItem
		wantID int64 // 0 means no conflict
	}{
		{"no busy items", nil, 0},
		{"disjoint", []domain.AgendaItem{item(2, 5, 6)}, 0},
		{"back to back", []domain.AgendaItem{item(2, 4, 6), item(3, 0, 2)}, 0},
		{"overlap", []domain.AgendaItem{item(2, 3, 5)}, 2},
		{"contained", []domain.AgendaItem{item(2, 0, 6)}, 2},
		{"same session ignored", []domain.AgendaItem{item(1, 2, 4)}, 0},
		{"first of several", []domain.AgendaItem{item(2, 5, 6), item(3, 3, 5), item(4, 1, 3)}, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FindTimeConflict(target, tt.busy)
			switch {
			case tt.wantID == 0 && got != nil:
				t.Fatalf("FindTimeConflict = session %d, want none", got.SessionID)
			case tt.wantID != 0 && (got == nil || got.SessionID != tt.wantID):
				t.Fatalf("FindTimeConflict = %+v, want session %d", got, tt.wantID)
			}
		})
	}
}
