package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
)

// loadingChecker contrato mínimo para saber si el directorio terminó de cargar.
// Lo implementa *directory.EmployeeStore.
type loadingChecker interface {
	IsLoading() bool
}

// RequireStoreReady responde 503 mientras el directorio se inicializa: las vistas
// que dependen de la lista no deben renderizarse hasta entonces.
func RequireStoreReady(checker loadingChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker.IsLoading() {
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STORE_LOADING",
				Message: "el directorio aún se está cargando",
			})
		}
		return c.Next()
	}
}
