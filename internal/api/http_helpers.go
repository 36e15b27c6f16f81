package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/services"
)

const monthLayout = "2006-01"

var (
	errInvalidDay   = errors.New("invalid date, expected YYYY-MM-DD")
	errInvalidMonth = errors.New("invalid month, expected YYYY-MM")
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string) (time.Time, error) {
	day, err := services.ParseDayKey(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidDay, raw)
	}
	return day, nil
}

// requestToday honours ?today= so clients can look at the tracker from any
// day; otherwise it is the current date in the configured location.
func (handler *Handler) requestToday(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("today"))
	if raw == "" {
		return handler.today(), nil
	}
	return parseDayParam(raw)
}

func parseMonthQuery(raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Date(fallback.Year(), fallback.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	month, err := time.ParseInLocation(monthLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidMonth, raw)
	}
	return month, nil
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func formatDayPointer(value *time.Time) *string {
	if value == nil {
		return nil
	}
	key := services.DayKey(*value)
	return &key
}

func formatDays(days []time.Time) []string {
	result := make([]string, 0, len(days))
	for _, day := range days {
		result = append(result, services.DayKey(day))
	}
	return result
}
