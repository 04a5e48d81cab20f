package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// TerminalHandler CRUD de terminales.
type TerminalHandler struct {
	uc *usecase.TerminalUseCase
}

func NewTerminalHandler(uc *usecase.TerminalUseCase) *TerminalHandler {
	return &TerminalHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar terminal
// @Tags         terminals
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TerminalRequest  true  "Terminal"
// @Success      201   {object}  entity.Terminal
// @Failure      409   {object}  dto.ErrorResponse  "código duplicado"
// @Router       /api/terminals [post]
func (h *TerminalHandler) Create(c *fiber.Ctx) error {
	var in dto.TerminalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TerminalHandler) GetByID(c *fiber.Ctx) error {
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

func (h *TerminalHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.TerminalRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TerminalHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckDuplicate godoc
// @Summary      ¿Código de terminal ya registrado?
// @Tags         terminals
// @Security     BearerAuth
// @Produce      json
// @Param        terminalCode  query  string  true  "Código"
// @Success      200  {object}  dto.DuplicateResponse
// @Router       /api/terminals/check-duplicate [get]
func (h *TerminalHandler) CheckDuplicate(c *fiber.Ctx) error {
	dup, err := h.uc.CheckDuplicate(c.UserContext(), c.Query("terminalCode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DuplicateResponse{Duplicate: dup})
}
