package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/domain"
)

// SessionHandler estado de la aplicación del usuario (centro, propósito de pago, UI).
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler { return &SessionHandler{} }

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	st, ok := ws.Store.State()
	if !ok {
		return respondError(c, domain.ErrNoSession)
	}
	return c.JSON(session.Response(st))
}

// SwitchCenter godoc
// @Summary      Cambiar centro activo
// @Tags         session
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchCenterRequest  true  "Centro"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/session/center [put]
func (h *SessionHandler) SwitchCenter(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.SwitchCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	st, err := ws.Store.SwitchCenter(c.UserContext(), in.CenterID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session.Response(st))
}

// SetPaymentPurpose godoc
// @Summary      Cambiar propósito de pago
// @Tags         session
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentPurposeRequest  true  "DELIVERY_FEE | MONTHLY_RENT"
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/session/payment-purpose [put]
func (h *SessionHandler) SetPaymentPurpose(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PaymentPurposeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	st, err := ws.Store.SetPaymentPurpose(c.UserContext(), in.PaymentPurpose)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session.Response(st))
}

// ToggleSidebar alterna la barra lateral.
func (h *SessionHandler) ToggleSidebar(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	st, err := ws.Store.ToggleSidebar(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session.Response(st))
}

// ToggleTheme alterna claro/oscuro.
func (h *SessionHandler) ToggleTheme(c *fiber.Ctx) error {
	ws, err := requireWorkspace(c)
	if err != nil {
		return respondError(c, err)
	}
	st, err := ws.Store.ToggleTheme(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session.Response(st))
}
