package timecalc_test

import (
	"testing"
	"time"

	"github.com/punchtrack/punch/internal/timecalc"
)

func TestThisWeekRange(t *testing.T) {
	// 2026-08-20 is a Thursday.
	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

	start, end := timecalc.ThisWeekRange(now, time.Monday)
	if want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("Monday-start week begins %v, want %v", start, want)
	}
	if want := time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("week ends %v, want %v", end, want)
	}

	start, _ = timecalc.ThisWeekRange(now, time.Sunday)
	if want := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("Sunday-start week begins %v, want %v", start, want)
	}
}

func TestThisWeekRangeOnWeekStartDay(t *testing.T) {
	// A Monday with Monday start: the window is just that day.
	now := time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC)
	start, _ := timecalc.ThisWeekRange(now, time.Monday)
	if want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("week begins %v, want %v", start, want)
	}
}

func TestLastWeekRange(t *testing.T) {
	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	start, end := timecalc.LastWeekRange(now)
	if want := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("trailing week begins %v, want %v", start, want)
	}
	if want := time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("trailing week ends %v, want %v", end, want)
	}
}

func TestLastMonthRange(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// Plain previous month.
			time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			// January rolls back into the previous year.
			time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			// March 2028: previous month is a leap February.
			time.Date(2028, 3, 10, 12, 0, 0, 0, time.UTC),
			time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2028, 2, 29, 23, 59, 59, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		start, end := timecalc.LastMonthRange(tt.now)
		if !start.Equal(tt.wantStart) {
			t.Errorf("LastMonthRange(%v) start = %v, want %v", tt.now, start, tt.wantStart)
		}
		if !end.Equal(tt.wantEnd) {
			t.Errorf("LastMonthRange(%v) end = %v, want %v", tt.now, end, tt.wantEnd)
		}
	}
}

func TestDateInRange(t *testing.T) {
	start := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-13", true},  // start boundary, inclusive
		{"2026-08-20", true},  // end boundary, inclusive
		{"2026-08-16", true},  // interior
		{"2026-08-12", false}, // one day before
		{"2026-08-21", false}, // one day after
		{"not-a-date", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := timecalc.DateInRange(tt.date, start, end); got != tt.want {
			t.Errorf("DateInRange(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestDateInRangeIgnoresTimeOfDay(t *testing.T) {
	// Range endpoints carry times; the comparison is by calendar day only,
	// so the end date is inside even though the endpoint time is midnight.
	start := time.Date(2026, 8, 13, 22, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	if !timecalc.DateInRange("2026-08-13", start, end) {
		t.Error("start date excluded despite calendar-day comparison")
	}
	if !timecalc.DateInRange("2026-08-20", start, end) {
		t.Error("end date excluded despite calendar-day comparison")
	}
}

func TestDateInRangeLeapDay(t *testing.T) {
	start := time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2028, 2, 29, 23, 59, 59, 0, time.UTC)
	if !timecalc.DateInRange("2028-02-29", start, end) {
		t.Error("leap day excluded from February window")
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2026, 8, 20, 14, 30, 45, 123, time.UTC)
	if got := timecalc.StartOfDay(at); !got.Equal(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := timecalc.EndOfDay(at); !got.Equal(time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 8, 20, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 8, 20, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)
	if !timecalc.SameDay(a, b) {
		t.Error("expected same day")
	}
	if timecalc.SameDay(b, c) {
		t.Error("expected different days across midnight")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m 30s"},
		{8 * time.Hour, "8h 0m 0s"},
		{3*time.Hour + 25*time.Minute + 7*time.Second, "3h 25m 7s"},
	}
	for _, tt := range tests {
		if got := timecalc.FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
