package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used for Session.Date.
const DateLayout = "2006-01-02"

// Session represents a completed clock-in/clock-out work interval.
// JSON field names match the stored WORK_SESSIONS format exactly.
type Session struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`     // local calendar day, YYYY-MM-DD
	ClockIn  string  `json:"clockIn"`  // ISO 8601, UTC
	ClockOut string  `json:"clockOut"` // ISO 8601, UTC
	Hours    float64 `json:"hours"`
}

// NewSession builds a session from its bounding timestamps. The date is the
// clock-out local calendar day, hours are rounded to 2 decimal places.
func NewSession(clockIn, clockOut time.Time) Session {
	return Session{
		ID:       newSessionID(clockOut),
		Date:     clockOut.Format(DateLayout),
		ClockIn:  clockIn.UTC().Format(time.RFC3339),
		ClockOut: clockOut.UTC().Format(time.RFC3339),
		Hours:    RoundHours(clockOut.Sub(clockIn)),
	}
}

// RoundHours converts a duration to fractional hours rounded to 2 decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// newSessionID creates a unique session ID from a timestamp prefix and a
// random suffix, so IDs sort roughly chronologically.
func newSessionID(t time.Time) string {
	return fmt.Sprintf("%s-%s", t.Format("20060102T150405"), uuid.NewString()[:8])
}
