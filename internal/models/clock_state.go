package models

import "time"

// ClockState marks whether the user currently has an open session.
// Invariant: IsClocked == false implies ClockInTime == nil, and
// IsClocked == true implies ClockInTime is a valid RFC 3339 timestamp.
type ClockState struct {
	IsClocked   bool    `json:"isClocked"`
	ClockInTime *string `json:"clockInTime"`
}

// ClockedIn returns the state for an open session started at t.
func ClockedIn(t time.Time) ClockState {
	ts := t.UTC().Format(time.RFC3339)
	return ClockState{IsClocked: true, ClockInTime: &ts}
}

// ClockedOut returns the closed state.
func ClockedOut() ClockState {
	return ClockState{}
}

// ClockInAt parses the stored clock-in timestamp. The bool is false when the
// state is closed or the timestamp does not parse.
func (s ClockState) ClockInAt() (time.Time, bool) {
	if !s.IsClocked || s.ClockInTime == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *s.ClockInTime)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
