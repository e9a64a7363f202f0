package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseWhen parses the clock time formats accepted on the command line.
// Supported formats:
// - HH:MM (e.g., "09:30") — today at that time
// - yyyy-mm-dd HH:MM (e.g., "2026-08-20 09:30")
// - X minutes/hours ago (e.g., "15 minutes ago", "1 hour ago")
// An empty input means now.
func ParseWhen(input string, now time.Time) (time.Time, error) {
	if input == "" {
		return now, nil
	}

	input = strings.TrimSpace(input)

	if t, err := parseClockFormat(input, now); err == nil {
		return t, nil
	}

	if t, err := parseDateTimeFormat(input, now); err == nil {
		return t, nil
	}

	if t, err := parseRelativeAgo(input, now); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format. Use: HH:MM, yyyy-mm-dd HH:MM, or X minutes/hours ago")
}

// parseClockFormat parses HH:MM on today's date.
func parseClockFormat(input string, now time.Time) (time.Time, error) {
	clockRegex := regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	matches := clockRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid clock format")
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour > 23 {
		return time.Time{}, fmt.Errorf("hour must be between 0 and 23")
	}

	minute, err := strconv.Atoi(matches[2])
	if err != nil || minute > 59 {
		return time.Time{}, fmt.Errorf("minute must be between 0 and 59")
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// parseDateTimeFormat parses "yyyy-mm-dd HH:MM" in local time.
func parseDateTimeFormat(input string, now time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time format")
	}
	return t, nil
}

// ParseSessionTimes turns a manual-entry triple (yyyy-mm-dd date plus HH:MM
// in/out clock times) into the session's bounding local timestamps. The out
// time must be strictly after the in time; overnight sessions are entered by
// dating them on the clock-out day.
func ParseSessionTimes(date, in, out string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", date)
	}
	clockIn, err := clockOnDay(day, in)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	clockOut, err := clockOnDay(day, out)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !clockOut.After(clockIn) {
		return time.Time{}, time.Time{}, fmt.Errorf("out time %s is not after in time %s", out, in)
	}
	return clockIn, clockOut, nil
}

func clockOnDay(day time.Time, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// parseRelativeAgo parses "X minutes ago" / "X hours ago".
func parseRelativeAgo(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(input)

	agoRegex := regexp.MustCompile(`^(\d+)\s+(minute|minutes|hour|hours)\s+ago$`)
	matches := agoRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "minute", "minutes":
		if amount < 1 || amount > 1440 {
			return time.Time{}, fmt.Errorf("minutes must be between 1 and 1440")
		}
		return now.Add(-time.Duration(amount) * time.Minute), nil

	case "hour", "hours":
		if amount < 1 || amount > 24 {
			return time.Time{}, fmt.Errorf("hours must be between 1 and 24")
		}
		return now.Add(-time.Duration(amount) * time.Hour), nil

	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}
