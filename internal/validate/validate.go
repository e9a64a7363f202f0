// Package validate sanitizes untrusted decoded JSON before it enters the
// application's working state. It is the sole defense against corrupted
// persisted data: every function returns a safe value, never an error.
package validate

import (
	"regexp"
	"time"

	"github.com/punchtrack/punch/internal/models"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ClockState sanitizes a decoded CLOCK_STATE value. Anything short of a fully
// consistent open state collapses to the closed default; the function never
// partially trusts its input.
func ClockState(raw any) models.ClockState {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.ClockState{}
	}
	clocked, ok := obj["isClocked"].(bool)
	if !ok || !clocked {
		return models.ClockState{}
	}
	ts, ok := obj["clockInTime"].(string)
	if !ok || ts == "" {
		return models.ClockState{}
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		return models.ClockState{}
	}
	return models.ClockState{IsClocked: true, ClockInTime: &ts}
}

// Session checks a decoded history element against the session invariants
// and returns the typed value when they all hold.
func Session(raw any) (models.Session, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return models.Session{}, false
	}
	id, ok := obj["id"].(string)
	if !ok || id == "" {
		return models.Session{}, false
	}
	date, ok := obj["date"].(string)
	if !ok || !validDate(date) {
		return models.Session{}, false
	}
	clockIn, inOK := obj["clockIn"].(string)
	clockOut, outOK := obj["clockOut"].(string)
	if !inOK || !outOK {
		return models.Session{}, false
	}
	in, err := time.Parse(time.RFC3339, clockIn)
	if err != nil {
		return models.Session{}, false
	}
	out, err := time.Parse(time.RFC3339, clockOut)
	if err != nil || !out.After(in) {
		return models.Session{}, false
	}
	hours, ok := obj["hours"].(float64)
	if !ok || hours < 0 {
		return models.Session{}, false
	}
	return models.Session{
		ID:       id,
		Date:     date,
		ClockIn:  clockIn,
		ClockOut: clockOut,
		Hours:    hours,
	}, true
}

// Sessions sanitizes a decoded WORK_SESSIONS value: non-arrays become an
// empty history, invalid elements are dropped, order is preserved.
func Sessions(raw any) []models.Session {
	arr, ok := raw.([]any)
	if !ok {
		return []models.Session{}
	}
	sessions := make([]models.Session, 0, len(arr))
	for _, el := range arr {
		if s, ok := Session(el); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

func validDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}
