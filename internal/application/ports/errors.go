package ports

import (
	"fmt"
	"net/http"

	"github.com/jhoicas/settlement-admin/internal/domain"
)

// APIError respuesta no-2xx del API remoto. Message sale de response.data.message cuando existe.
type APIError struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("webadmin: %s %s: HTTP %d", e.Method, e.Path, e.Status)
}

// Unwrap traduce el status a un error de dominio para usar errors.Is en los handlers.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		return nil
	}
}
