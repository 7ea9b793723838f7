package utils

import (
	"testing"
	"time"
)

func TestTimeElapsed(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{"zero time", time.Time{}, "N/A"},
		{"seconds ago", now.Add(-30 * time.Second), "Just now"},
		{"minutes ago", now.Add(-12 * time.Minute), "12m ago"},
		{"hours and minutes", now.Add(-(3*time.Hour + 5*time.Minute)), "3h 5m ago"},
		{"days hours minutes", now.Add(-(52*time.Hour + 3*time.Minute)), "2d 4h 3m ago"},
		{"future clamps to now", now.Add(10 * time.Minute), "Just now"},
	}
	for _, tc := range cases {
		if got := TimeElapsed(tc.ts, now); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestElapsedDuration(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		start    time.Time
		expected string
	}{
		{"zero time", time.Time{}, "N/A"},
		{"same day", now.Add(-6 * time.Hour), "Today"},
		{"one day", now.AddDate(0, 0, -1), "1 day"},
		{"several days", now.AddDate(0, 0, -5), "5 days"},
		{"one week", now.AddDate(0, 0, -8), "1 week"},
		{"three weeks", now.AddDate(0, 0, -21), "3 weeks"},
		{"four weeks rounds to a month", now.AddDate(0, 0, -28), "1 month"},
		{"two months", now.AddDate(0, 0, -65), "2 months"},
		{"one year", now.AddDate(0, 0, -400), "1 year"},
		{"two years", now.AddDate(0, 0, -750), "2 years"},
	}
	for _, tc := range cases {
		if got := ElapsedDuration(tc.start, now); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestUniqueSlice(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}
	out := UniqueSlice(in)
	if len(out) != 3 || out[0] != "a" || out[1] != "b" || out[2] != "c" {
		t.Fatalf("unexpected result %v", out)
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("ops@example.com") {
		t.Fatal("expected valid email to pass")
	}
	if IsValidEmail("not-an-email") {
		t.Fatal("expected invalid email to fail")
	}
}
