package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// CommissionHandler tabla editable de comisiones por comercio.
type CommissionHandler struct {
	uc *usecase.CommissionUseCase
}

func NewCommissionHandler(uc *usecase.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// Rows godoc
// @Summary      Filas de comisión con su estado de edición
// @Description  Las filas se cargan con la vista "commissions" (GET /api/views/commissions?refresh=true).
// @Tags         commissions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.CommissionRowResponse
// @Router       /api/commissions/rows [get]
func (h *CommissionHandler) Rows(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.uc.Rows(ws))
}

// Edit godoc
// @Summary      Editar una tasa (filtro de teclado de dos decimales)
// @Tags         commissions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la fila"
// @Param        body  body  dto.CommissionEditRequest  true  "Campo y valor"
// @Success      200   {object}  dto.CommissionRowResponse
// @Failure      409   {object}  dto.ErrorResponse  "ROW_BUSY"
// @Router       /api/commissions/{id} [patch]
func (h *CommissionHandler) Edit(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.CommissionEditRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Edit(ws, id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar una fila
// @Description  Bloquea con 422 NEGATIVE_HEADQUARTERS si la comisión de casa matriz queda negativa.
// @Tags         commissions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "ID de la fila"
// @Success      200  {object}  dto.CommissionRowResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id}/save [post]
func (h *CommissionHandler) Save(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Save(c.UserContext(), ws, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CommissionHandler) Histories(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.Histories(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
