package dto

import "time"

// LoginRequest entrada para login del administrador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUserResponse usuario de la sesión abierta (mismo contenido que auth_user).
type AuthUserResponse struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// LoginResponse salida de login. Con Success=false solo viene Error.
type LoginResponse struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Token     string            `json:"token,omitempty"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
	User      *AuthUserResponse `json:"user,omitempty"`
}

// SessionResponse estado de la sesión (GET /api/auth/session).
type SessionResponse struct {
	IsAuthenticated bool              `json:"is_authenticated"`
	IsLoading       bool              `json:"is_loading"`
	User            *AuthUserResponse `json:"user,omitempty"`
}
