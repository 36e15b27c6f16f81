package services

import (
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

type DayType string

const (
	DayTypePast      DayType = "past"
	DayTypeFuture    DayType = "future"
	DayTypePeriod    DayType = "period"
	DayTypeFertile   DayType = "fertile"
	DayTypeOvulation DayType = "ovulation"
)

const calendarGridDays = 42

type CalendarDay struct {
	Date           time.Time
	DateString     string
	DayOfMonth     int
	IsCurrentMonth bool
	IsToday        bool
	Type           DayType
	Log            *models.DailyLog
}

// CalendarGridStart is the Sunday on or before the first day of month.
func CalendarGridStart(month time.Time) time.Time {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return AddDays(monthStart, -int(monthStart.Weekday()))
}

// BuildCalendarMonth classifies the six-week grid around month. Each check
// overrides the previous one: past/future, logged period, fertile, ovulation,
// and finally predicted period on days without a logged period.
func BuildCalendarMonth(month time.Time, cycles []models.Cycle, prediction CyclePrediction, logs models.DailyLogs, today time.Time) []CalendarDay {
	gridStart := CalendarGridStart(month)
	todayDate := CalendarDate(today)
	sorted := SortCycles(cycles)

	fertileMap := dayKeySet(prediction.FertileWindow)
	predictedMap := dayKeySet(prediction.PredictedPeriod)
	ovulationKey := ""
	if prediction.OvulationDay != nil {
		ovulationKey = DayKey(*prediction.OvulationDay)
	}

	days := make([]CalendarDay, 0, calendarGridDays)
	for offset := 0; offset < calendarGridDays; offset++ {
		day := AddDays(gridStart, offset)
		key := DayKey(day)

		dayType := DayTypeFuture
		if day.Before(todayDate) {
			dayType = DayTypePast
		}

		inPeriod := inAnyCycle(sorted, day)
		if inPeriod {
			dayType = DayTypePeriod
		}
		if fertileMap[key] {
			dayType = DayTypeFertile
		}
		if key == ovulationKey {
			dayType = DayTypeOvulation
		}
		if predictedMap[key] && !inPeriod {
			dayType = DayTypePeriod
		}

		var entry *models.DailyLog
		if logEntry, ok := logs[key]; ok {
			copied := models.DailyLog{Symptoms: append([]models.Symptom{}, logEntry.Symptoms...)}
			entry = &copied
		}

		days = append(days, CalendarDay{
			Date:           day,
			DateString:     key,
			DayOfMonth:     day.Day(),
			IsCurrentMonth: day.Month() == month.Month(),
			IsToday:        sameDay(day, todayDate),
			Type:           dayType,
			Log:            entry,
		})
	}

	return days
}

func dayKeySet(days []time.Time) map[string]bool {
	set := make(map[string]bool, len(days))
	for _, day := range days {
		set[DayKey(CalendarDate(day))] = true
	}
	return set
}
