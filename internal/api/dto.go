package api

import (
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
)

type periodPayload struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type togglePayload struct {
	Symptom string `json:"symptom" validate:"required,symptom"`
}

type cycleResponse struct {
	ID           string `json:"id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PeriodLength int    `json:"period_length"`
}

type phaseResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type predictionResponse struct {
	Today               string        `json:"today"`
	AverageCycleLength  int           `json:"average_cycle_length"`
	AveragePeriodLength int           `json:"average_period_length"`
	PredictedPeriod     []string      `json:"predicted_period"`
	FertileWindow       []string      `json:"fertile_window"`
	OvulationDay        *string       `json:"ovulation_day"`
	CurrentPhase        phaseResponse `json:"current_phase"`
	DayOfCycle          *int          `json:"day_of_cycle"`
}

type summaryCard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type summaryResponse struct {
	Today string        `json:"today"`
	Phase phaseResponse `json:"phase"`
	Cards []summaryCard `json:"cards"`
}

type calendarDayResponse struct {
	Date           string           `json:"date"`
	DayOfMonth     int              `json:"day_of_month"`
	IsCurrentMonth bool             `json:"is_current_month"`
	IsToday        bool             `json:"is_today"`
	Type           services.DayType `json:"type"`
	Symptoms       []models.Symptom `json:"symptoms"`
}

type calendarResponse struct {
	Month string                `json:"month"`
	Today string                `json:"today"`
	Days  []calendarDayResponse `json:"days"`
}

type symptomResponse struct {
	Name  models.Symptom `json:"name"`
	Label string         `json:"label"`
	Icon  string         `json:"icon"`
	Color string         `json:"color"`
}

type dayLogResponse struct {
	Date     string           `json:"date"`
	Symptoms []models.Symptom `json:"symptoms"`
}

type formDefaultsResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func newCycleResponses(cycles []models.Cycle) []cycleResponse {
	result := make([]cycleResponse, 0, len(cycles))
	for _, cycle := range cycles {
		result = append(result, cycleResponse{
			ID:           cycle.ID,
			StartDate:    services.DayKey(cycle.StartDate),
			EndDate:      services.DayKey(cycle.EndDate),
			PeriodLength: services.PeriodLength(cycle),
		})
	}
	return result
}
