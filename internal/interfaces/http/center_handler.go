package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// CenterHandler configuración de centros y su segundo factor (TOTP).
type CenterHandler struct {
	centers *usecase.CenterUseCase
	totp    *usecase.TotpUseCase
}

func NewCenterHandler(centers *usecase.CenterUseCase, totp *usecase.TotpUseCase) *CenterHandler {
	return &CenterHandler{centers: centers, totp: totp}
}

// List godoc
// @Summary      Listar centros
// @Tags         centers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  entity.Center
// @Router       /api/centers [get]
func (h *CenterHandler) List(c *fiber.Ctx) error {
	out, err := h.centers.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail centro por ?centerId=.
func (h *CenterHandler) Detail(c *fiber.Ctx) error {
	out, err := h.centers.Detail(c.UserContext(), int64(c.QueryInt("centerId")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.centers.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CenterHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.CenterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.centers.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── TOTP ──────────────────────────────────────────────────────────────────────

// TotpStatus estado del segundo factor por ?centerId=.
func (h *CenterHandler) TotpStatus(c *fiber.Ctx) error {
	out, err := h.totp.Status(c.UserContext(), int64(c.QueryInt("centerId")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotpSetup godoc
// @Summary      Generar secreto TOTP
// @Description  Devuelve el secreto, la URL otpauth y el QR en PNG (base64).
// @Tags         totp
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CenterIDRequest  true  "Centro"
// @Success      200   {object}  dto.TotpSetupResponse
// @Router       /api/totp/setup [post]
func (h *CenterHandler) TotpSetup(c *fiber.Ctx) error {
	var in dto.CenterIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.totp.Setup(c.UserContext(), in.CenterID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CenterHandler) TotpEnable(c *fiber.Ctx) error {
	var in dto.TotpCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.totp.Enable(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CenterHandler) TotpDisable(c *fiber.Ctx) error {
	var in dto.TotpCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.totp.Disable(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CenterHandler) TotpVerify(c *fiber.Ctx) error {
	var in dto.TotpCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.totp.Verify(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
