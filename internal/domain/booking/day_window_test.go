package booking

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	loc := time.UTC
	date := time.Date(2024, 6, 15, 13, 45, 9, 123, loc)

	start, end := DayWindow(date)

	if !start.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, loc)) {
		t.Fatalf("expected start at midnight, got %s", start)
	}

	nextMidnight := time.Date(2024, 6, 16, 0, 0, 0, 0, loc)
	if !end.Before(nextMidnight) {
		t.Fatalf("end %s must precede the next midnight", end)
	}
	if nextMidnight.Sub(end) != time.Nanosecond {
		t.Fatalf("end must be the last instant of the day, got %s", end)
	}
}

func TestDayWindowIgnoresTimeOfDay(t *testing.T) {
	loc := time.UTC

	s1, e1 := DayWindow(time.Date(2024, 6, 15, 0, 0, 0, 0, loc))
	s2, e2 := DayWindow(time.Date(2024, 6, 15, 23, 59, 59, 0, loc))

	if !s1.Equal(s2) || !e1.Equal(e2) {
		t.Fatal("same calendar day must produce the same window")
	}
}
