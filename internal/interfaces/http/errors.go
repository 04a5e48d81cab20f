package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/listing"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/internal/domain/commission"
)

// respondError traduce errores de dominio y del API remoto a dto.ErrorResponse.
// Un 401 del API remoto siempre sale como SESSION_EXPIRED para que la UI vuelva al login.
func respondError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func classify(err error) (int, string) {
	var apiErr *ports.APIError
	switch {
	case errors.Is(err, commission.ErrNegativeHeadquarters):
		return fiber.StatusUnprocessableEntity, "NEGATIVE_HEADQUARTERS"
	case errors.Is(err, domain.ErrSessionExpired):
		return fiber.StatusUnauthorized, "SESSION_EXPIRED"
	case errors.Is(err, domain.ErrNoSession):
		return fiber.StatusUnauthorized, "NO_SESSION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrRowBusy):
		return fiber.StatusConflict, "ROW_BUSY"
	case errors.Is(err, listing.ErrSuperseded):
		return fiber.StatusConflict, "SUPERSEDED"
	case errors.Is(err, domain.ErrUnknownView):
		return fiber.StatusNotFound, "UNKNOWN_VIEW"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrRowNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &apiErr):
		return fiber.StatusBadGateway, "UPSTREAM"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
}
