package timecalc

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ThisWeekRange returns the start of the current week (00:00:00 on the
// configured first weekday) through end-of-day now.
func ThisWeekRange(now time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	back := (int(now.Weekday()) - int(weekStart) + 7) % 7
	start := StartOfDay(now.AddDate(0, 0, -back))
	return start, EndOfDay(now)
}

// LastWeekRange returns the trailing week: midnight seven days before now
// through end-of-day now, so a session dated exactly seven days ago is still
// inside the window.
func LastWeekRange(now time.Time) (time.Time, time.Time) {
	return StartOfDay(now.AddDate(0, 0, -7)), EndOfDay(now)
}

// LastMonthRange returns the previous calendar month, first day 00:00:00
// through last day 23:59:59.
func LastMonthRange(now time.Time) (time.Time, time.Time) {
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfThis.AddDate(0, -1, 0)
	end := EndOfDay(firstOfThis.AddDate(0, 0, -1))
	return start, end
}

// DateInRange reports whether a YYYY-MM-DD date falls inside [start, end],
// comparing calendar days only so both boundary dates are inclusive.
// Unparseable dates are never in range.
func DateInRange(date string, start, end time.Time) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	n := dayOrdinal(t.Date())
	return n >= dayOrdinal(start.Date()) && n <= dayOrdinal(end.Date())
}

func dayOrdinal(year int, month time.Month, day int) int {
	return year*10000 + int(month)*100 + day
}

// FormatElapsed formats a duration as "1h 23m 45s", dropping leading zero units.
func FormatElapsed(d time.Duration) string {
	seconds := int64(d.Seconds())
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
