package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/models"
	"github.com/terraincognita07/utero/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	language := currentLanguage(c)
	builtins := models.DefaultBuiltinSymptoms()
	result := make([]symptomResponse, 0, len(builtins))
	for _, builtin := range builtins {
		result = append(result, symptomResponse{
			Name:  builtin.Name,
			Label: translateOr(handler, language, symptomMessageKey(builtin.Name), string(builtin.Name)),
			Icon:  builtin.Icon,
			Color: builtin.Color,
		})
	}
	return c.JSON(fiber.Map{"symptoms": result})
}

func (handler *Handler) GetDayLog(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entry := handler.tracker.DayLog(day)
	return c.JSON(dayLogResponse{Date: services.DayKey(day), Symptoms: entry.Symptoms})
}

func (handler *Handler) ToggleSymptom(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	payload := togglePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	entry, err := handler.tracker.ToggleSymptom(c.UserContext(), day, models.Symptom(payload.Symptom))
	switch {
	case errors.Is(err, services.ErrUnknownSymptom):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		handler.logger.Error("toggle symptom failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle symptom")
	}

	return c.JSON(dayLogResponse{Date: services.DayKey(day), Symptoms: entry.Symptoms})
}

func symptomMessageKey(symptom models.Symptom) string {
	return "symptom." + strings.ReplaceAll(strings.ToLower(string(symptom)), " ", "_")
}
