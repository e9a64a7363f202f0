package parser_test

import (
	"testing"
	"time"

	"github.com/punchtrack/punch/internal/parser"
)

var now = time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)

func TestParseWhen(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"", now},
		{"09:00", time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)},
		{"23:59", time.Date(2026, 8, 20, 23, 59, 0, 0, time.UTC)},
		{"2026-08-19 17:30", time.Date(2026, 8, 19, 17, 30, 0, 0, time.UTC)},
		{"15 minutes ago", now.Add(-15 * time.Minute)},
		{"1 hour ago", now.Add(-time.Hour)},
		{"2 hours ago", now.Add(-2 * time.Hour)},
	}
	for _, tt := range tests {
		got, err := parser.ParseWhen(tt.input, now)
		if err != nil {
			t.Errorf("ParseWhen(%q): %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseWhen(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseWhenInvalid(t *testing.T) {
	inputs := []string{
		"25:00",
		"09:60",
		"nine thirty",
		"2026-13-01 09:00",
		"0 minutes ago",
		"99 hours ago",
		"3 days ago",
	}
	for _, input := range inputs {
		if _, err := parser.ParseWhen(input, now); err == nil {
			t.Errorf("ParseWhen(%q) accepted, want error", input)
		}
	}
}

func TestParseSessionTimes(t *testing.T) {
	in, out, err := parser.ParseSessionTimes("2026-08-20", "09:00", "17:30")
	if err != nil {
		t.Fatalf("ParseSessionTimes: %v", err)
	}
	if in.Hour() != 9 || in.Minute() != 0 {
		t.Errorf("in = %v", in)
	}
	if out.Hour() != 17 || out.Minute() != 30 {
		t.Errorf("out = %v", out)
	}
	if !out.After(in) {
		t.Error("out not after in")
	}
	if in.Year() != 2026 || in.Month() != time.August || in.Day() != 20 {
		t.Errorf("in date = %v", in)
	}
}

func TestParseSessionTimesInvalid(t *testing.T) {
	tests := []struct {
		name          string
		date, in, out string
	}{
		{"bad date", "20-08-2026", "09:00", "17:00"},
		{"bad in", "2026-08-20", "9am", "17:00"},
		{"bad out", "2026-08-20", "09:00", "5pm"},
		{"out equals in", "2026-08-20", "09:00", "09:00"},
		{"out before in", "2026-08-20", "17:00", "09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := parser.ParseSessionTimes(tt.date, tt.in, tt.out); err == nil {
				t.Errorf("ParseSessionTimes(%q, %q, %q) accepted", tt.date, tt.in, tt.out)
			}
		})
	}
}
