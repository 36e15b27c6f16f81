package services

import (
	"testing"
	"time"
)

func TestDifferenceInDays(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "forward",
			a:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC),
			want: 28,
		},
		{
			name: "backward is symmetric",
			a:    time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 28,
		},
		{
			name: "partial day rounds up",
			a:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 2, 1, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "leap year february",
			a:    time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
		{
			name: "span beyond time.Duration range",
			a:    time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 154863,
		},
		{
			name: "whole calendar range",
			a:    time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
			b:    time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 3652058,
		},
		{
			name: "sub-second remainder rounds up",
			a:    time.Date(2024, time.January, 1, 0, 0, 0, int(500*time.Millisecond), time.UTC),
			b:    time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DifferenceInDays(tt.a, tt.b); got != tt.want {
				t.Fatalf("DifferenceInDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddDaysRollsOverMonthAndYear(t *testing.T) {
	start := time.Date(2023, time.December, 30, 0, 0, 0, 0, time.UTC)

	got := AddDays(start, 3)
	if DayKey(got) != "2024-01-02" {
		t.Fatalf("expected 2024-01-02, got %s", DayKey(got))
	}
	if DayKey(start) != "2023-12-30" {
		t.Fatalf("expected input to stay 2023-12-30, got %s", DayKey(start))
	}

	back := AddDays(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), -1)
	if DayKey(back) != "2024-02-29" {
		t.Fatalf("expected 2024-02-29, got %s", DayKey(back))
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	base := time.Date(2024, time.March, 28, 15, 45, 0, 0, location)
	for _, offset := range []int{-400, -31, -1, 0, 1, 3, 30, 365, 1000} {
		roundTrip := AddDays(AddDays(base, offset), -offset)
		if !StartOfDay(roundTrip).Equal(StartOfDay(base)) {
			t.Fatalf("offset %d: expected %s, got %s", offset, StartOfDay(base), StartOfDay(roundTrip))
		}
	}
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 2, 1, 19, 35, 10, 0, location)
	start := StartOfDay(raw)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if start.Location() != location {
		t.Fatalf("expected location %s, got %s", location, start.Location())
	}
	if start.Day() != 1 {
		t.Fatalf("expected same calendar day, got %d", start.Day())
	}
}

func TestLocalTodayUsesObserverLocation(t *testing.T) {
	location, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	now := time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)
	today := LocalToday(now, location)
	if DayKey(today) != "2026-02-02" {
		t.Fatalf("expected 2026-02-02 in Tokyo, got %s", DayKey(today))
	}
	if today.Location() != time.UTC {
		t.Fatalf("expected UTC calendar date, got %s", today.Location())
	}
}

func TestParseDayKey(t *testing.T) {
	day, err := ParseDayKey(" 2024-01-05 ")
	if err != nil {
		t.Fatalf("parse day key: %v", err)
	}
	if DayKey(day) != "2024-01-05" {
		t.Fatalf("expected 2024-01-05, got %s", DayKey(day))
	}

	for _, raw := range []string{"", "2024-13-01", "05/01/2024", "2024-01-05T10:00:00Z"} {
		if _, err := ParseDayKey(raw); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}
