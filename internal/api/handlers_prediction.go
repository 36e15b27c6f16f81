package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	prediction := handler.tracker.Prediction(today)
	return c.JSON(predictionResponse{
		Today:               services.DayKey(today),
		AverageCycleLength:  prediction.AverageCycleLength,
		AveragePeriodLength: prediction.AveragePeriodLength,
		PredictedPeriod:     formatDays(prediction.PredictedPeriod),
		FertileWindow:       formatDays(prediction.FertileWindow),
		OvulationDay:        formatDayPointer(prediction.OvulationDay),
		CurrentPhase:        handler.localizedPhase(currentLanguage(c), prediction.CurrentPhase),
		DayOfCycle:          prediction.DayOfCycle,
	})
}

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	language := currentLanguage(c)
	summary := services.BuildSummary(handler.tracker.Prediction(today))

	cycleDay := handler.i18n.Translate(language, "summary.empty")
	if summary.DayOfCycle != nil {
		cycleDay = handler.i18n.Translatef(language, "summary.cycle_day_value", *summary.DayOfCycle)
	}
	nextPeriod := handler.i18n.Translate(language, "summary.not_available")
	if summary.NextPeriodStart != nil {
		nextPeriod = summary.NextPeriodStart.Format(handler.i18n.Translate(language, "summary.date_format"))
	}

	return c.JSON(summaryResponse{
		Today: services.DayKey(today),
		Phase: handler.localizedPhase(language, summary.Phase),
		Cards: []summaryCard{
			{Key: "cycle_day", Label: handler.i18n.Translate(language, "summary.cycle_day"), Value: cycleDay},
			{Key: "period_length", Label: handler.i18n.Translate(language, "summary.period_length"), Value: handler.i18n.Translatef(language, "summary.days_value", summary.AveragePeriodLength)},
			{Key: "next_period", Label: handler.i18n.Translate(language, "summary.next_period"), Value: nextPeriod},
			{Key: "cycle_length", Label: handler.i18n.Translate(language, "summary.cycle_length"), Value: handler.i18n.Translatef(language, "summary.days_value", summary.AverageCycleLength)},
		},
	})
}

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	month, err := parseMonthQuery(c.Query("month"), today)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	days, _ := handler.tracker.Calendar(month, today)
	response := calendarResponse{
		Month: month.Format(monthLayout),
		Today: services.DayKey(today),
		Days:  make([]calendarDayResponse, 0, len(days)),
	}
	for _, day := range days {
		symptoms := []models.Symptom{}
		if day.Log != nil {
			symptoms = append(symptoms, day.Log.Symptoms...)
		}
		response.Days = append(response.Days, calendarDayResponse{
			Date:           day.DateString,
			DayOfMonth:     day.DayOfMonth,
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
			Type:           day.Type,
			Symptoms:       symptoms,
		})
	}
	return c.JSON(response)
}

// localizedPhase falls back to the engine's English text for keys the
// locale does not carry.
func (handler *Handler) localizedPhase(language string, phase services.Phase) phaseResponse {
	return phaseResponse{
		Key:         phase.Key,
		Name:        translateOr(handler, language, "phase."+phase.Key+".name", phase.Name),
		Description: translateOr(handler, language, "phase."+phase.Key+".description", phase.Description),
	}
}

func translateOr(handler *Handler, language string, key string, fallback string) string {
	if translated := handler.i18n.Translate(language, key); translated != key {
		return translated
	}
	return fallback
}
