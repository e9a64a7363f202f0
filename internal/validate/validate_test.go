package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/validate"
)

// decode parses a JSON literal the way stored values are decoded before
// validation.
func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad test literal %q: %v", s, err)
	}
	return v
}

func TestClockStateMalformedCollapsesToDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"null", `null`},
		{"not an object", `"clocked in"`},
		{"array", `[true, "2026-08-20T09:00:00Z"]`},
		{"empty object", `{}`},
		{"isClocked as string", `{"isClocked":"true","clockInTime":"2026-08-20T09:00:00Z"}`},
		{"isClocked as number", `{"isClocked":1,"clockInTime":"2026-08-20T09:00:00Z"}`},
		{"clocked with null time", `{"isClocked":true,"clockInTime":null}`},
		{"clocked with missing time", `{"isClocked":true}`},
		{"clocked with empty time", `{"isClocked":true,"clockInTime":""}`},
		{"clocked with garbage time", `{"isClocked":true,"clockInTime":"yesterday"}`},
		{"clocked with numeric time", `{"isClocked":true,"clockInTime":1724140800}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validate.ClockState(decode(t, tt.raw))
			if got.IsClocked || got.ClockInTime != nil {
				t.Errorf("ClockState(%s) = %+v, want closed default", tt.raw, got)
			}
		})
	}
}

func TestClockStateClockedOutIgnoresStrayTime(t *testing.T) {
	// isClocked false with a time set is inconsistent; the whole value
	// collapses to the default rather than keeping the stray timestamp.
	got := validate.ClockState(decode(t, `{"isClocked":false,"clockInTime":"2026-08-20T09:00:00Z"}`))
	if got.IsClocked || got.ClockInTime != nil {
		t.Errorf("got %+v, want closed default", got)
	}
}

func TestClockStateValidOpenState(t *testing.T) {
	got := validate.ClockState(decode(t, `{"isClocked":true,"clockInTime":"2026-08-20T09:00:00Z"}`))
	if !got.IsClocked {
		t.Fatal("expected open state")
	}
	if got.ClockInTime == nil || *got.ClockInTime != "2026-08-20T09:00:00Z" {
		t.Errorf("ClockInTime = %v, want 2026-08-20T09:00:00Z", got.ClockInTime)
	}
}

const validSessionJSON = `{"id":"s1","date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":8}`

func TestSessionInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"null", `null`},
		{"not an object", `42`},
		{"missing id", `{"date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":8}`},
		{"empty id", `{"id":"","date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":8}`},
		{"bad date format", `{"id":"s1","date":"20/08/2026","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":8}`},
		{"impossible date", `{"id":"s1","date":"2026-13-40","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":8}`},
		{"clockIn not a timestamp", `{"id":"s1","date":"2026-08-20","clockIn":"nine","clockOut":"2026-08-20T17:00:00Z","hours":8}`},
		{"clockOut equals clockIn", `{"id":"s1","date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T09:00:00Z","hours":0}`},
		{"clockOut before clockIn", `{"id":"s1","date":"2026-08-20","clockIn":"2026-08-20T17:00:00Z","clockOut":"2026-08-20T09:00:00Z","hours":8}`},
		{"negative hours", `{"id":"s1","date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":-1}`},
		{"hours as string", `{"id":"s1","date":"2026-08-20","clockIn":"2026-08-20T09:00:00Z","clockOut":"2026-08-20T17:00:00Z","hours":"8"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := validate.Session(decode(t, tt.raw)); ok {
				t.Errorf("Session(%s) accepted, want rejected", tt.raw)
			}
		})
	}
}

func TestSessionValid(t *testing.T) {
	s, ok := validate.Session(decode(t, validSessionJSON))
	if !ok {
		t.Fatal("valid session rejected")
	}
	want := models.Session{
		ID:       "s1",
		Date:     "2026-08-20",
		ClockIn:  "2026-08-20T09:00:00Z",
		ClockOut: "2026-08-20T17:00:00Z",
		Hours:    8,
	}
	if s != want {
		t.Errorf("Session = %+v, want %+v", s, want)
	}
}

func TestSessionsNonArray(t *testing.T) {
	for _, raw := range []string{`null`, `{}`, `"sessions"`, `42`} {
		got := validate.Sessions(decode(t, raw))
		if got == nil || len(got) != 0 {
			t.Errorf("Sessions(%s) = %v, want empty slice", raw, got)
		}
	}
}

func TestSessionsDropsInvalidPreservingOrder(t *testing.T) {
	raw := `[` + validSessionJSON + `,null,{"id":"junk"},` +
		`{"id":"s2","date":"2026-08-21","clockIn":"2026-08-21T10:00:00Z","clockOut":"2026-08-21T12:30:00Z","hours":2.5}]`

	got := validate.Sessions(decode(t, raw))
	if len(got) != 2 {
		t.Fatalf("Sessions kept %d entries, want 2", len(got))
	}
	if got[0].ID != "s1" || got[1].ID != "s2" {
		t.Errorf("Sessions order = [%s, %s], want [s1, s2]", got[0].ID, got[1].ID)
	}
}
