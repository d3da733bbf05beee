package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/view"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Catalog godoc
// @Summary      Opciones del formulario
// @Description  Géneros, catálogo de regiones, tamaños de página y modos de vista.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func Catalog(c *fiber.Ctx) error {
	out := dto.CatalogResponse{
		States:    entity.States(),
		PageSizes: view.PageSizes(),
	}
	for _, g := range entity.Genders() {
		out.Genders = append(out.Genders, string(g))
	}
	for _, m := range view.ViewModes() {
		out.ViewModes = append(out.ViewModes, string(m))
	}
	return c.JSON(out)
}
