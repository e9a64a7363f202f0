package models

import "time"

// FilterType names a date window applied to the session history for display.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterThisWeek  FilterType = "thisWeek"
	FilterLastWeek  FilterType = "lastWeek"
	FilterLastMonth FilterType = "lastMonth"
)

// SessionFilter describes a display-time date window over the history.
// StartDate and EndDate are zero when Type is FilterAll.
type SessionFilter struct {
	Type      FilterType
	StartDate time.Time
	EndDate   time.Time
}
