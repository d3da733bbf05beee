package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrValidation         = errors.New("validación fallida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrSessionClosed      = errors.New("sesión cerrada o reemplazada")
	ErrStoreLoading       = errors.New("el directorio aún se está cargando")
)
