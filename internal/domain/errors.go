package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrSessionExpired = errors.New("sesión expirada")
	ErrNoSession      = errors.New("sin sesión activa")
	ErrUnknownView    = errors.New("vista desconocida")
	ErrRowNotFound    = errors.New("fila de comisión no encontrada")
	ErrRowBusy        = errors.New("la fila ya se está guardando")
)
