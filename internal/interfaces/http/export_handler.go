package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/export"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler descarga de fichas, listados PDF y la hoja XLSX.
type ExportHandler struct {
	uc  *export.ExportUseCase
	log zerolog.Logger
}

// NewExportHandler construye el handler de exportación.
func NewExportHandler(uc *export.ExportUseCase, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// EmployeePDF godoc
// @Summary      Imprimir ficha de un empleado
// @Tags         export
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/pdf [get]
func (h *ExportHandler) EmployeePDF(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.send(c, mimePDF, func(ctx context.Context) ([]byte, string, error) {
		return h.uc.EmployeePDF(ctx, id)
	})
}

// DirectoryPDF godoc
// @Summary      Imprimir listado
// @Description  PDF de la lista filtrada vigente con el resumen de la plantilla.
// @Tags         export
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/employees/export/pdf [get]
func (h *ExportHandler) DirectoryPDF(c *fiber.Ctx) error {
	return h.send(c, mimePDF, h.uc.DirectoryPDF)
}

// DirectoryXLSX godoc
// @Summary      Exportar listado a Excel
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/employees/export/xlsx [get]
func (h *ExportHandler) DirectoryXLSX(c *fiber.Ctx) error {
	return h.send(c, mimeXLSX, h.uc.DirectoryXLSX)
}

func (h *ExportHandler) send(c *fiber.Ctx, mime string, build func(context.Context) ([]byte, string, error)) error {
	body, filename, err := build(c.UserContext())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		case errors.Is(err, domain.ErrStoreLoading):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_LOADING", Message: err.Error()})
		}
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error generando documento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return c.Send(body)
}
