package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// PaymentHandler operaciones sobre transacciones (los listados van por /api/views/payments).
type PaymentHandler struct {
	uc *usecase.PaymentUseCase
}

func NewPaymentHandler(uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Cancel godoc
// @Summary      Cancelar transacción
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID"
// @Param        body  body  dto.CancelPaymentRequest  true  "Monto y motivo"
// @Success      200   {object}  entity.Payment
// @Router       /api/payments/{id}/cancel [post]
func (h *PaymentHandler) Cancel(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.CancelPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Cancel(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterTerminal asocia una transacción sin terminal registrada a un comercio.
func (h *PaymentHandler) RegisterTerminal(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.RegisterTerminalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterTerminal(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
