package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"cycles": newCycleResponses(handler.tracker.Cycles())})
}

func (handler *Handler) LogPeriod(c *fiber.Ctx) error {
	payload := periodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	start, err := parseDayParam(payload.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	end, err := parseDayParam(payload.EndDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	cycles, replaced, err := handler.tracker.LogPeriod(c.UserContext(), start, end)
	switch {
	case errors.Is(err, services.ErrPeriodDatesRequired),
		errors.Is(err, services.ErrPeriodStartAfterEnd),
		errors.Is(err, services.ErrPeriodTooLong):
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	case err != nil:
		handler.logger.Error("log period failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save period")
	}

	status := fiber.StatusCreated
	if replaced {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{
		"cycles":   newCycleResponses(cycles),
		"replaced": replaced,
	})
}

func (handler *Handler) GetFormDefaults(c *fiber.Ctx) error {
	today, err := handler.requestToday(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	start, end := handler.tracker.FormDefaults(today)
	return c.JSON(formDefaultsResponse{
		StartDate: services.DayKey(start),
		EndDate:   services.DayKey(end),
	})
}
