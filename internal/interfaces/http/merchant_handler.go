package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// MerchantHandler CRUD de comercios.
type MerchantHandler struct {
	uc *usecase.MerchantUseCase
}

func NewMerchantHandler(uc *usecase.MerchantUseCase) *MerchantHandler {
	return &MerchantHandler{uc: uc}
}

// Create godoc
// @Summary      Crear comercio
// @Tags         merchants
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MerchantRequest  true  "Datos del comercio"
// @Success      201   {object}  entity.Merchant
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/merchants [post]
func (h *MerchantHandler) Create(c *fiber.Ctx) error {
	var in dto.MerchantRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MerchantHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *MerchantHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.MerchantRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comercio
// @Tags         merchants
// @Security     BearerAuth
// @Param        id   path  int  true  "ID"
// @Success      204
// @Router       /api/merchants/{id} [delete]
func (h *MerchantHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
