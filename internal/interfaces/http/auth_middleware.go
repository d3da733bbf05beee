package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// Locals keys para el usuario de la sesión en Fiber.
const (
	LocalUsername = "username"
	LocalName     = "name"
)

// tokenValidator lo implementa *auth.SessionGate.
type tokenValidator interface {
	ValidateToken(token string) (entity.AuthUser, error)
}

// AuthMiddleware valida el Bearer Token contra la sesión abierta y deja el usuario en c.Locals.
func AuthMiddleware(gate tokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		user, err := gate.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrSessionClosed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "la sesión fue cerrada, inicie sesión de nuevo"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalName, user.Name)
		return c.Next()
	}
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetName devuelve el nombre visible del usuario (después del middleware de auth).
func GetName(c *fiber.Ctx) string {
	v := c.Locals(LocalName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
