package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware counts requests by route template so that path
// parameters do not explode label cardinality.
func (handler *Handler) MetricsMiddleware(c *fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}

	route := c.Route().Path
	if route == "" || route == "/" {
		route = "unmatched"
	}
	handler.metrics.HTTPRequest(c.Method(), route, strconv.Itoa(status))
	return err
}
