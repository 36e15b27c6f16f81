package services

import (
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// StartOfDay drops the time-of-day component, keeping the value's location.
func StartOfDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// CalendarDate returns the calendar date of value as a UTC midnight. All
// prediction arithmetic runs on these so that no day is 23 or 25 hours long.
func CalendarDate(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// LocalToday is the calendar date of now as observed in location.
func LocalToday(now time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return CalendarDate(now.In(location))
}

func AddDays(value time.Time, days int) time.Time {
	return value.AddDate(0, 0, days)
}

// DifferenceInDays is the absolute span between a and b rounded up to whole
// days. It works on Unix seconds so spans beyond the range of time.Duration
// stay exact.
func DifferenceInDays(a time.Time, b time.Time) int {
	if b.Before(a) {
		a, b = b, a
	}
	seconds := b.Unix() - a.Unix()
	nanos := b.Nanosecond() - a.Nanosecond()
	if nanos < 0 {
		seconds--
		nanos += int(time.Second)
	}

	days := seconds / secondsPerDay
	if seconds%secondsPerDay != 0 || nanos != 0 {
		days++
	}
	return int(days)
}

func ParseDayKey(raw string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, strings.TrimSpace(raw), time.UTC)
}

func DayKey(value time.Time) string {
	return value.Format(dayKeyLayout)
}

func sameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

func betweenInclusive(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
