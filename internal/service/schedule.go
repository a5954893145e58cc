package service

import (
	"ludamus.io/enrolld/internal/domain"
)

// FindTimeConflict returns the first agenda item in busy that overlaps
// target, or nil. Items are compared as half-open intervals, so a session
// ending exactly when another starts does not conflict. Unscheduled
// sessions never conflict; callers pass only scheduled items.
func FindTimeConflict(target domain.AgendaItem, busy []domain.AgendaItem) *domain.AgendaItem {
	for i := range busy {
		if busy[i].SessionID == target.SessionID {
			continue
		}
		if domain.Overlaps(target.StartTime, target.EndTime, busy[i].StartTime, busy[i].EndTime) {
			return &busy[i]
		}
	}
	return nil
}
