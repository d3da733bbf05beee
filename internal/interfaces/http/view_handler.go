package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/view"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// ViewHandler estado de la vista de lista: filtros, paginación, modo y selección.
type ViewHandler struct {
	store *directory.EmployeeStore
	list  *view.ListView
	now   func() time.Time
}

// NewViewHandler construye el handler de la vista.
func NewViewHandler(store *directory.EmployeeStore, list *view.ListView) *ViewHandler {
	return &ViewHandler{store: store, list: list, now: time.Now}
}

// SetFilters godoc
// @Summary      Cambiar filtros
// @Description  Los campos ausentes no se tocan. Cambiar un filtro vuelve a la página 1 y limpia la selección.
// @Tags         view
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.FiltersRequest  true  "search_query, gender (all|male|female|other), status (all|active|inactive)"
// @Success      200   {object}  dto.EmployeeListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/filters [put]
func (h *ViewHandler) SetFilters(c *fiber.Ctx) error {
	var in dto.FiltersRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// se parsea todo antes de tocar el store: un filtro inválido no aplica ninguno
	var (
		gender entity.GenderFilter
		status entity.StatusFilter
		err    error
	)
	if in.Gender != nil {
		if gender, err = entity.ParseGenderFilter(*in.Gender); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}
	if in.Status != nil {
		if status, err = entity.ParseStatusFilter(*in.Status); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}

	if in.SearchQuery != nil {
		h.store.SetSearchQuery(*in.SearchQuery)
	}
	if in.Gender != nil {
		h.store.SetGenderFilter(gender)
	}
	if in.Status != nil {
		h.store.SetStatusFilter(status)
	}
	return c.JSON(h.list.Snapshot(h.now()))
}

// ClearFilters godoc
// @Summary      Limpiar filtros
// @Tags         view
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployeeListResponse
// @Router       /api/employees/filters [delete]
func (h *ViewHandler) ClearFilters(c *fiber.Ctx) error {
	h.store.ClearFilters()
	return c.JSON(h.list.Snapshot(h.now()))
}

// SetView godoc
// @Summary      Paginación y modo de vista
// @Tags         view
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ViewRequest  true  "page, page_size, view_mode (table|grid)"
// @Success      200   {object}  dto.EmployeeListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/view [put]
func (h *ViewHandler) SetView(c *fiber.Ctx) error {
	var in dto.ViewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ViewMode != nil {
		mode, err := view.ParseViewMode(*in.ViewMode)
		if err == nil {
			err = h.list.SetViewMode(mode)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}
	if in.PageSize != nil {
		if err := h.list.SetPageSize(*in.PageSize); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}
	if in.Page != nil {
		if err := h.list.SetPage(*in.Page); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}
	return c.JSON(h.list.Snapshot(h.now()))
}

// ToggleSelection godoc
// @Summary      Marcar / desmarcar un empleado
// @Tags         view
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.SelectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/selection/{id} [post]
func (h *ViewHandler) ToggleSelection(c *fiber.Ctx) error {
	if _, err := h.list.ToggleSelection(utils.CopyString(c.Params("id"))); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el empleado no está en el listado filtrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.list.Snapshot(h.now()).Selection)
}

// SetSelection godoc
// @Summary      Seleccionar todo / nada
// @Description  all=true selecciona todo el listado filtrado (no solo la página); false limpia la selección.
// @Tags         view
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SelectAllRequest  true  "all"
// @Success      200   {object}  dto.SelectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/selection [put]
func (h *ViewHandler) SetSelection(c *fiber.Ctx) error {
	var in dto.SelectAllRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.All {
		h.list.SelectAll()
	} else {
		h.list.DeselectAll()
	}
	return c.JSON(h.list.Snapshot(h.now()).Selection)
}

// DeleteSelected godoc
// @Summary      Eliminar la selección
// @Tags         view
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BulkDeleteResponse
// @Router       /api/employees/selection/items [delete]
func (h *ViewHandler) DeleteSelected(c *fiber.Ctx) error {
	n := h.list.DeleteSelected()
	return c.JSON(dto.BulkDeleteResponse{Deleted: n, Stats: h.store.Stats()})
}
