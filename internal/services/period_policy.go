package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

// MaxPeriodDays bounds a single logged period. Longer entries are input
// mistakes and would make every prediction expand them day by day.
const MaxPeriodDays = 60

var (
	ErrPeriodTooLong       = fmt.Errorf("period must not be longer than %d days", MaxPeriodDays)
	ErrPeriodDatesRequired = errors.New("period start and end dates are required")
	ErrPeriodStartAfterEnd = errors.New("period start date is after end date")
)

// NewPeriodCycle validates a logged period before it reaches MergePeriod.
func NewPeriodCycle(id string, start time.Time, end time.Time) (models.Cycle, error) {
	if start.IsZero() || end.IsZero() {
		return models.Cycle{}, ErrPeriodDatesRequired
	}
	start = CalendarDate(start)
	end = CalendarDate(end)
	if start.After(end) {
		return models.Cycle{}, ErrPeriodStartAfterEnd
	}
	if DifferenceInDays(start, end)+1 > MaxPeriodDays {
		return models.Cycle{}, ErrPeriodTooLong
	}
	return models.Cycle{ID: id, StartDate: start, EndDate: end}, nil
}

// MergePeriod applies the save policy: an entry starting on or before the end
// of the latest cycle replaces that cycle, anything later is appended. The
// result is sorted and the reported flag tells whether a replace happened.
func MergePeriod(cycles []models.Cycle, entry models.Cycle) ([]models.Cycle, bool) {
	sorted := SortCycles(cycles)
	entry.StartDate = CalendarDate(entry.StartDate)
	entry.EndDate = CalendarDate(entry.EndDate)

	if len(sorted) > 0 {
		last := sorted[len(sorted)-1]
		if !entry.StartDate.After(last.EndDate) {
			sorted[len(sorted)-1] = entry
			return SortCycles(sorted), true
		}
	}

	return SortCycles(append(sorted, entry)), false
}

// PeriodFormDefaults prefills the log form with the latest cycle, or with
// today when nothing was logged yet.
func PeriodFormDefaults(cycles []models.Cycle, today time.Time) (time.Time, time.Time) {
	if len(cycles) == 0 {
		day := CalendarDate(today)
		return day, day
	}
	sorted := SortCycles(cycles)
	last := sorted[len(sorted)-1]
	return last.StartDate, last.EndDate
}
