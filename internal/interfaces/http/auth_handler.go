package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
)

// AuthHandler maneja login, logout y estado de la sesión.
type AuthHandler struct {
	gate *auth.SessionGate
	log  zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(gate *auth.SessionGate, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{gate: gate, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.LoginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.gate.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Warn().Str("username", in.Username).Msg("intento de login rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResponse{Success: false, Error: auth.InvalidCredentialsMessage})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.log.Info().Str("username", out.User.Username).Msg("sesión iniciada")
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Elimina auth_user; todos los tokens emitidos dejan de ser válidos.
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.gate.Logout()
	h.log.Info().Str("username", GetUsername(c)).Msg("sesión cerrada")
	return c.SendStatus(fiber.StatusNoContent)
}

// Session godoc
// @Summary      Estado de la sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.gate.Session())
}
