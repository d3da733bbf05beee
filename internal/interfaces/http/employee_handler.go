package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Empleados-api/internal/application/directory"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/application/view"
	"github.com/jhoicas/Empleados-api/internal/domain/validation"
)

// EmployeeHandler CRUD del directorio y listado paginado.
type EmployeeHandler struct {
	store     *directory.EmployeeStore
	list      *view.ListView
	saveDelay time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewEmployeeHandler construye el handler. saveDelay es la espera simulada del envío del formulario.
func NewEmployeeHandler(store *directory.EmployeeStore, list *view.ListView, saveDelay time.Duration, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: store, list: list, saveDelay: saveDelay, log: log, now: time.Now}
}

// List godoc
// @Summary      Listar empleados
// @Description  Página vigente de la lista filtrada. page y page_size actualizan el estado de la vista.
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "página (desde 1)"
// @Param        page_size  query  int  false  "10, 20, 30, 40 o 50"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err == nil {
			err = h.list.SetPageSize(size)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page_size debe ser 10, 20, 30, 40 o 50"})
		}
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err == nil {
			err = h.list.SetPage(page)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "page debe ser un entero mayor o igual a 1"})
		}
	}
	return c.JSON(h.list.Snapshot(h.now()))
}

// Create godoc
// @Summary      Crear empleado
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.EmployeeRequest  true  "fullName, gender, dob, state, isActive, profileImage"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	now := h.now()
	data, err := validation.ValidateCreate(toInput(in), now)
	if err != nil {
		return validationError(c, err)
	}
	h.simulateSave()
	e := h.store.Add(data)
	h.log.Info().Str("employee_id", e.ID).Msg("empleado creado")
	return c.Status(fiber.StatusCreated).JSON(view.Present(e, now))
}

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	e, ok := h.store.GetByID(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	return c.JSON(view.Present(e, h.now()))
}

// Update godoc
// @Summary      Editar empleado
// @Description  Actualización parcial: solo se validan y aplican los campos enviados. profileImage "" quita la foto.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string               true  "ID del empleado"
// @Param        body  body  dto.EmployeeRequest  true  "campos a modificar"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := h.store.GetByID(id); !ok {
		return notFound(c)
	}
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	now := h.now()
	patch, err := validation.ValidatePatch(toInput(in), now)
	if err != nil {
		return validationError(c, err)
	}
	h.simulateSave()
	h.store.Update(id, patch)
	e, ok := h.store.GetByID(id)
	if !ok {
		// eliminado mientras se guardaba
		return notFound(c)
	}
	h.log.Info().Str("employee_id", id).Msg("empleado actualizado")
	return c.JSON(view.Present(e, now))
}

// Delete godoc
// @Summary      Eliminar empleado
// @Description  Idempotente: un ID inexistente también responde 204.
// @Tags         employees
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del empleado"
// @Success      204
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.store.Delete(id)
	h.log.Info().Str("employee_id", id).Msg("empleado eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStatus godoc
// @Summary      Activar / desactivar empleado
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/status [patch]
func (h *EmployeeHandler) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	h.store.ToggleStatus(id)
	e, ok := h.store.GetByID(id)
	if !ok {
		return notFound(c)
	}
	return c.JSON(view.Present(e, h.now()))
}

// BulkDelete godoc
// @Summary      Eliminar varios empleados
// @Description  Borra todos los IDs en un solo lote; los inexistentes se ignoran.
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BulkDeleteRequest  true  "ids"
// @Success      200   {object}  dto.BulkDeleteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/employees/bulk-delete [post]
func (h *EmployeeHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkDeleteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deleted := h.store.DeleteMany(in.IDs)
	h.log.Info().Int("deleted", deleted).Msg("borrado masivo")
	return c.JSON(dto.BulkDeleteResponse{Deleted: deleted, Stats: h.store.Stats()})
}

func (h *EmployeeHandler) simulateSave() {
	if h.saveDelay > 0 {
		time.Sleep(h.saveDelay)
	}
}

func toInput(in dto.EmployeeRequest) validation.EmployeeInput {
	return validation.EmployeeInput{
		FullName:     in.FullName,
		Gender:       in.Gender,
		DOB:          in.DOB,
		State:        in.State,
		IsActive:     in.IsActive,
		ProfileImage: in.ProfileImage,
	}
}

func validationError(c *fiber.Ctx, err error) error {
	var fields validation.FieldErrors
	if errors.As(err, &fields) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "el formulario tiene errores",
			Fields:  fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
}
