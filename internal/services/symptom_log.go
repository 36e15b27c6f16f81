package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/utero/internal/models"
)

var ErrUnknownSymptom = errors.New("unknown symptom")

// ToggleSymptom adds symptom to the day's log or removes it when already
// present. The returned map is a copy; logs is left as it was.
func ToggleSymptom(logs models.DailyLogs, day time.Time, symptom models.Symptom) (models.DailyLogs, error) {
	if !models.IsKnownSymptom(symptom) {
		return nil, ErrUnknownSymptom
	}

	key := DayKey(CalendarDate(day))
	updated := make(models.DailyLogs, len(logs)+1)
	for existingKey, entry := range logs {
		updated[existingKey] = entry
	}

	current := logs[key].Symptoms
	symptoms := make([]models.Symptom, 0, len(current)+1)
	removed := false
	for _, existing := range current {
		if existing == symptom && !removed {
			removed = true
			continue
		}
		symptoms = append(symptoms, existing)
	}
	if !removed {
		symptoms = append(symptoms, symptom)
	}

	updated[key] = models.DailyLog{Symptoms: symptoms}
	return updated, nil
}

// DayLog returns the entry for day, or an empty one.
func DayLog(logs models.DailyLogs, day time.Time) models.DailyLog {
	entry, ok := logs[DayKey(CalendarDate(day))]
	if !ok {
		return models.DailyLog{Symptoms: []models.Symptom{}}
	}
	return models.DailyLog{Symptoms: append([]models.Symptom{}, entry.Symptoms...)}
}
