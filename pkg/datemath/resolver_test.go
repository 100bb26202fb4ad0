package datemath_test

import (
	"testing"
	"time"

	"echonote/pkg/datemath"
)

func TestResolve(t *testing.T) {
	// Monday, January 1, 2024
	today := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{
			name:   "Empty phrase",
			phrase: "",
			want:   "",
		},
		{
			name:   "Whitespace only",
			phrase: "   ",
			want:   "",
		},
		{
			name:   "Today",
			phrase: "today",
			want:   "2024-01-01",
		},
		{
			name:   "Today uppercase",
			phrase: "TODAY",
			want:   "2024-01-01",
		},
		{
			name:   "Tomorrow",
			phrase: "tomorrow",
			want:   "2024-01-02",
		},
		{
			name:   "Weekday later this week",
			phrase: "Friday",
			want:   "2024-01-05",
		},
		{
			name:   "Weekday equal to today advances a full week",
			phrase: "Monday",
			want:   "2024-01-08",
		},
		{
			name:   "Next weekday prefix",
			phrase: "next wednesday",
			want:   "2024-01-03",
		},
		{
			name:   "Canonical date unchanged",
			phrase: "2024-03-15",
			want:   "2024-03-15",
		},
		{
			name:   "Unrecognized phrase passes through",
			phrase: "banana",
			want:   "banana",
		},
		{
			name:   "Unrecognized multi-word phrase passes through",
			phrase: "sometime after the meeting",
			want:   "sometime after the meeting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.Resolve(tt.phrase, today)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolveWeekdayIsStrictlyFuture(t *testing.T) {
	// Every weekday name resolved against every base weekday must land 1-7
	// days ahead, never on the base day itself.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // Monday

	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for offset := 0; offset < 7; offset++ {
		today := base.AddDate(0, 0, offset)
		for _, name := range names {
			got := datemath.Resolve(name, today)
			resolved, err := time.Parse(datemath.DateFormat, got)
			if err != nil {
				t.Fatalf("Resolve(%q, %v) returned non-date %q", name, today, got)
			}
			days := int(resolved.Sub(today.Truncate(24*time.Hour)).Hours() / 24)
			if days < 1 || days > 7 {
				t.Errorf("Resolve(%q, %v) = %q, %d days out, want within [1,7]", name, today, got, days)
			}
		}
	}
}

func TestResolveCanonicalDatesAreFixedPoints(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	for _, d := range []string{"1999-12-31", "2024-01-01", "2030-07-04"} {
		if got := datemath.Resolve(d, today); got != d {
			t.Errorf("Resolve(%q) = %q, want unchanged", d, got)
		}
	}
}
