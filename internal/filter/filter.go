// Package filter classifies sessions into display-time date windows.
package filter

import (
	"time"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/timecalc"
)

// New maps a filter type to a concrete date window evaluated at now.
// Unknown types fall back to the unbounded "all" filter rather than failing.
func New(typ models.FilterType, now time.Time, weekStart time.Weekday) models.SessionFilter {
	switch typ {
	case models.FilterThisWeek:
		start, end := timecalc.ThisWeekRange(now, weekStart)
		return models.SessionFilter{Type: typ, StartDate: start, EndDate: end}
	case models.FilterLastWeek:
		start, end := timecalc.LastWeekRange(now)
		return models.SessionFilter{Type: typ, StartDate: start, EndDate: end}
	case models.FilterLastMonth:
		start, end := timecalc.LastMonthRange(now)
		return models.SessionFilter{Type: typ, StartDate: start, EndDate: end}
	default:
		return models.SessionFilter{Type: models.FilterAll}
	}
}

// Apply returns the subsequence of sessions whose date falls inside the
// filter's window, preserving input order. The input slice is returned
// unchanged for the "all" filter or when the window is unbounded.
func Apply(sessions []models.Session, f models.SessionFilter) []models.Session {
	if f.Type == models.FilterAll || f.StartDate.IsZero() || f.EndDate.IsZero() {
		return sessions
	}
	matched := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if timecalc.DateInRange(s.Date, f.StartDate, f.EndDate) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Counts holds per-window session totals for the history footer.
type Counts struct {
	All       int
	LastWeek  int
	LastMonth int
}

// CountSessions computes the totals by applying each window filter in turn.
func CountSessions(sessions []models.Session, now time.Time) Counts {
	return Counts{
		All:       len(sessions),
		LastWeek:  len(Apply(sessions, New(models.FilterLastWeek, now, time.Monday))),
		LastMonth: len(Apply(sessions, New(models.FilterLastMonth, now, time.Monday))),
	}
}
