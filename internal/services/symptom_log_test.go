package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/utero/internal/models"
)

func TestToggleSymptomAddsAndRemoves(t *testing.T) {
	day := mustParseDay("2024-01-03")

	added, err := ToggleSymptom(nil, day, models.SymptomHeadache)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if got := added["2024-01-03"].Symptoms; len(got) != 1 || got[0] != models.SymptomHeadache {
		t.Fatalf("expected headache logged, got %v", got)
	}

	both, err := ToggleSymptom(added, day, models.SymptomAcne)
	if err != nil {
		t.Fatalf("toggle second: %v", err)
	}
	if got := both["2024-01-03"].Symptoms; len(got) != 2 || got[1] != models.SymptomAcne {
		t.Fatalf("expected symptoms appended in order, got %v", got)
	}
	if len(added["2024-01-03"].Symptoms) != 1 {
		t.Fatal("expected previous log map to stay untouched")
	}

	removed, err := ToggleSymptom(both, day, models.SymptomHeadache)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if got := removed["2024-01-03"].Symptoms; len(got) != 1 || got[0] != models.SymptomAcne {
		t.Fatalf("expected only acne left, got %v", got)
	}
}

func TestToggleSymptomRejectsUnknownTag(t *testing.T) {
	_, err := ToggleSymptom(models.DailyLogs{}, mustParseDay("2024-01-03"), models.Symptom("Sneezing"))
	if !errors.Is(err, ErrUnknownSymptom) {
		t.Fatalf("expected ErrUnknownSymptom, got %v", err)
	}
}

func TestDayLogReturnsEmptyEntryForMissingDay(t *testing.T) {
	entry := DayLog(nil, mustParseDay("2024-01-03"))
	if entry.Symptoms == nil || len(entry.Symptoms) != 0 {
		t.Fatalf("expected empty non-nil symptoms, got %v", entry.Symptoms)
	}
}
