package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/usecase"
)

// UserHandler utilidades de usuarios.
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CheckDuplicate godoc
// @Summary      ¿loginId ya existe?
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        loginId  query  string  true  "loginId"
// @Success      200  {object}  dto.DuplicateResponse
// @Router       /api/users/check-duplicate [get]
func (h *UserHandler) CheckDuplicate(c *fiber.Ctx) error {
	dup, err := h.uc.CheckLoginID(c.UserContext(), c.Query("loginId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DuplicateResponse{Duplicate: dup})
}
