package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utero/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	entries := handler.tracker.Export(from, to)
	c.Set(fiber.HeaderContentDisposition, exportAttachment("json"))
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.ExportCSVHeaders()); err != nil {
		return handler.exportFailed(c, err)
	}
	for _, entry := range handler.tracker.Export(from, to) {
		if err := writer.Write(entry.CSVColumns()); err != nil {
			return handler.exportFailed(c, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return handler.exportFailed(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment("csv"))
	return c.Send(buffer.Bytes())
}

func (handler *Handler) exportFailed(c *fiber.Ctx, err error) error {
	handler.logger.Error("export failed", zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, "failed to build export")
}

func exportAttachment(extension string) string {
	return fmt.Sprintf("attachment; filename=\"utero-export.%s\"", extension)
}
