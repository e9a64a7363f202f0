package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/punchtrack/punch/internal/models"
)

func TestNewSessionEightHourDay(t *testing.T) {
	clockIn := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)

	s := models.NewSession(clockIn, clockOut)

	if s.Hours != 8.00 {
		t.Errorf("Hours = %v, want 8.00", s.Hours)
	}
	if s.Date != "2026-08-20" {
		t.Errorf("Date = %q, want clock-out day 2026-08-20", s.Date)
	}
	if s.ClockIn != "2026-08-20T09:00:00Z" {
		t.Errorf("ClockIn = %q", s.ClockIn)
	}
	if s.ClockOut != "2026-08-20T17:00:00Z" {
		t.Errorf("ClockOut = %q", s.ClockOut)
	}
}

func TestNewSessionDateIsClockOutDay(t *testing.T) {
	// Overnight session: clocked in before midnight, out after.
	clockIn := time.Date(2026, 8, 20, 22, 30, 0, 0, time.UTC)
	clockOut := time.Date(2026, 8, 21, 2, 0, 0, 0, time.UTC)

	s := models.NewSession(clockIn, clockOut)
	if s.Date != "2026-08-21" {
		t.Errorf("Date = %q, want clock-out day 2026-08-21", s.Date)
	}
	if s.Hours != 3.5 {
		t.Errorf("Hours = %v, want 3.5", s.Hours)
	}
}

func TestNewSessionIDs(t *testing.T) {
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	a := models.NewSession(at, at.Add(time.Hour))
	b := models.NewSession(at, at.Add(time.Hour))

	if a.ID == b.ID {
		t.Errorf("two sessions share ID %q", a.ID)
	}
	if !strings.HasPrefix(a.ID, "20260820T100000-") {
		t.Errorf("ID %q missing clock-out timestamp prefix", a.ID)
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want float64
	}{
		{0, 0},
		{8 * time.Hour, 8},
		{90 * time.Minute, 1.5},
		{20 * time.Minute, 0.33},
		{10 * time.Minute, 0.17},
		{time.Second, 0},
	}
	for _, tt := range tests {
		if got := models.RoundHours(tt.d); got != tt.want {
			t.Errorf("RoundHours(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestClockStateHelpers(t *testing.T) {
	at := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	open := models.ClockedIn(at)
	if !open.IsClocked || open.ClockInTime == nil {
		t.Fatalf("ClockedIn = %+v", open)
	}
	parsed, ok := open.ClockInAt()
	if !ok || !parsed.Equal(at) {
		t.Errorf("ClockInAt = %v, %v", parsed, ok)
	}

	closed := models.ClockedOut()
	if closed.IsClocked || closed.ClockInTime != nil {
		t.Errorf("ClockedOut = %+v", closed)
	}
	if _, ok := closed.ClockInAt(); ok {
		t.Error("closed state reported a clock-in time")
	}
}
